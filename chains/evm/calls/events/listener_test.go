package events_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
	mock_events "github.com/sprintertech/across-relayer/chains/evm/calls/events/mock"
)

var (
	spokePool = common.HexToAddress("0x6f26Bf09B1C792e3228e5467807a900A503c0281")
	depositor = common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	recipient = common.HexToAddress("0x0D8d5c8B7b1e7c0D5C0e0F6b3F2A8d7d4C3B2A10")
)

func depositLog(depositID uint32, block uint64) types.Log {
	data, err := consts.SpokePoolABI.Events["V3FundsDeposited"].Inputs.NonIndexed().Pack(
		common.HexToAddress("0x4200000000000000000000000000000000000006"),
		common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"),
		big.NewInt(1_000_000_000_000_000_000),
		big.NewInt(999_000_000_000_000_000),
		uint32(1_700_000_000),
		uint32(1_700_003_600),
		uint32(0),
		recipient,
		common.Address{},
		[]byte{0x01},
	)
	if err != nil {
		panic(err)
	}

	return types.Log{
		Address: spokePool,
		Topics: []common.Hash{
			events.AcrossDepositSig.GetTopic(),
			common.BigToHash(big.NewInt(42161)),
			common.BigToHash(big.NewInt(int64(depositID))),
			common.BytesToHash(depositor.Bytes()),
		},
		Data:        data,
		BlockNumber: block,
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(block)),
		TxHash:      common.HexToHash("0xabcd"),
		Index:       3,
	}
}

type UnpackDepositTestSuite struct {
	suite.Suite
}

func TestRunUnpackDepositTestSuite(t *testing.T) {
	suite.Run(t, new(UnpackDepositTestSuite))
}

func (s *UnpackDepositTestSuite) Test_MissingTopics() {
	l := depositLog(1, 100)
	l.Topics = l.Topics[:2]

	_, err := events.UnpackDeposit(consts.SpokePoolABI, l)

	s.NotNil(err)
}

func (s *UnpackDepositTestSuite) Test_InvalidTopic() {
	l := depositLog(1, 100)
	l.Topics[0] = common.HexToHash("0x01")

	_, err := events.UnpackDeposit(consts.SpokePoolABI, l)

	s.NotNil(err)
}

func (s *UnpackDepositTestSuite) Test_InvalidData() {
	l := depositLog(1, 100)
	l.Data = []byte{0x01}

	_, err := events.UnpackDeposit(consts.SpokePoolABI, l)

	s.NotNil(err)
}

func (s *UnpackDepositTestSuite) Test_ValidDeposit() {
	deposit, err := events.UnpackDeposit(consts.SpokePoolABI, depositLog(7, 100))

	s.Nil(err)
	s.Equal(uint32(7), deposit.DepositId)
	s.Equal(big.NewInt(42161), deposit.DestinationChainId)
	s.Equal(depositor, deposit.Depositor)
	s.Equal(recipient, deposit.Recipient)
	s.Equal(common.Address{}, deposit.ExclusiveRelayer)
	s.Equal(big.NewInt(1_000_000_000_000_000_000), deposit.InputAmount)
	s.Equal(big.NewInt(999_000_000_000_000_000), deposit.OutputAmount)
	s.Equal(uint32(1_700_003_600), deposit.FillDeadline)
	s.Equal([]byte{0x01}, deposit.Message)
	s.Equal(uint64(100), deposit.BlockNumber)
	s.Equal(common.HexToHash("0xabcd"), deposit.TxHash)
	s.Equal(uint(3), deposit.LogIndex)
	s.Equal("10-7-"+common.BigToHash(big.NewInt(100)).Hex(), deposit.Key(10))
}

type ListenerTestSuite struct {
	suite.Suite

	listener   *events.Listener
	mockClient *mock_events.MockLogFilterer
}

func TestRunListenerTestSuite(t *testing.T) {
	suite.Run(t, new(ListenerTestSuite))
}

func (s *ListenerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mock_events.NewMockLogFilterer(ctrl)
	s.listener = events.NewListener(s.mockClient, zerolog.Nop())
}

func (s *ListenerTestSuite) Test_FetchDeposits_FilterFails() {
	s.mockClient.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

	_, err := s.listener.FetchDeposits(context.Background(), spokePool, big.NewInt(1), big.NewInt(10))

	s.NotNil(err)
}

func (s *ListenerTestSuite) Test_FetchDeposits_SkipsRemovedAndMalformed() {
	removed := depositLog(2, 5)
	removed.Removed = true
	malformed := depositLog(3, 6)
	malformed.Data = []byte{}

	s.mockClient.EXPECT().FilterLogs(
		gomock.Any(),
		events.DepositQuery(spokePool, big.NewInt(1), big.NewInt(10)),
	).Return([]types.Log{depositLog(1, 4), removed, malformed, depositLog(4, 7)}, nil)

	deposits, err := s.listener.FetchDeposits(context.Background(), spokePool, big.NewInt(1), big.NewInt(10))

	s.Nil(err)
	s.Len(deposits, 2)
	s.Equal(uint32(1), deposits[0].DepositId)
	s.Equal(uint32(4), deposits[1].DepositId)
}

func (s *ListenerTestSuite) Test_DepositQuery() {
	query := events.DepositQuery(spokePool, big.NewInt(1), nil)

	s.Equal([]common.Address{spokePool}, query.Addresses)
	s.Equal(events.AcrossDepositSig.GetTopic(), query.Topics[0][0])
	s.Equal(big.NewInt(1), query.FromBlock)
	s.Nil(query.ToBlock)
}
