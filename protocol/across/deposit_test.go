package across_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
	"github.com/sprintertech/across-relayer/protocol/across"
	mock_across "github.com/sprintertech/across-relayer/protocol/across/mock"
)

var (
	spokePool = common.HexToAddress("0x09aea4b2242abC8bb4BB78D537A67a245A7bEC64")
	txHash    = common.HexToHash("0x2f0b5a6b36d8b9f9f64a4e7c2a42b6f2e7e3d5cb0d5b8d4c42c2ea6f4d3a6b11")
	depositor = common.HexToAddress("0x6C8A0c210C4C097270FA5df9b799d79A6887b11A")
)

func depositLog(address common.Address, depositID uint32) *types.Log {
	data, _ := consts.SpokePoolABI.Events["V3FundsDeposited"].Inputs.NonIndexed().Pack(
		common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
		common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"),
		big.NewInt(10_100_000),
		big.NewInt(10_000_000),
		uint32(1718000000),
		uint32(1718003600),
		uint32(0),
		depositor,
		common.Address{},
		[]byte{},
	)

	return &types.Log{
		Address: address,
		Topics: []common.Hash{
			events.AcrossDepositSig.GetTopic(),
			common.BigToHash(big.NewInt(42161)),
			common.BigToHash(big.NewInt(int64(depositID))),
			common.BytesToHash(depositor.Bytes()),
		},
		Data:        data,
		BlockNumber: 100,
		BlockHash:   common.HexToHash("0xabc"),
		TxHash:      txHash,
	}
}

type DepositFetcherTestSuite struct {
	suite.Suite

	fetcher     *across.DepositFetcher
	mockFetcher *mock_across.MockReceiptFetcher
}

func TestRunDepositFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(DepositFetcherTestSuite))
}

func (s *DepositFetcherTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockFetcher = mock_across.NewMockReceiptFetcher(ctrl)
	s.fetcher = across.NewDepositFetcher(s.mockFetcher, spokePool)
}

func (s *DepositFetcherTestSuite) Test_Deposit_ReceiptError() {
	s.mockFetcher.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(nil, errors.New("error"))

	_, err := s.fetcher.Deposit(context.Background(), txHash, 5)

	s.NotNil(err)
}

func (s *DepositFetcherTestSuite) Test_Deposit_NotFound() {
	removed := depositLog(spokePool, 5)
	removed.Removed = true
	s.mockFetcher.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{
		Logs: []*types.Log{
			removed,
			depositLog(common.HexToAddress("0x1"), 5),
			depositLog(spokePool, 6),
		},
	}, nil)

	_, err := s.fetcher.Deposit(context.Background(), txHash, 5)

	s.NotNil(err)
}

func (s *DepositFetcherTestSuite) Test_Deposit_Found() {
	s.mockFetcher.EXPECT().TransactionReceipt(gomock.Any(), txHash).Return(&types.Receipt{
		Logs: []*types.Log{
			depositLog(spokePool, 4),
			depositLog(spokePool, 5),
		},
	}, nil)

	deposit, err := s.fetcher.Deposit(context.Background(), txHash, 5)

	s.Nil(err)
	s.Equal(uint32(5), deposit.DepositId)
	s.Equal(big.NewInt(42161), deposit.DestinationChainId)
	s.Equal(depositor, deposit.Depositor)
	s.Equal(depositor, deposit.Recipient)
	s.Equal(big.NewInt(10_000_000), deposit.OutputAmount)
	s.Equal(uint32(1718000000), deposit.QuoteTimestamp)
	s.Equal(uint64(100), deposit.BlockNumber)
	s.Equal(txHash, deposit.TxHash)
}
