package order_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-relayer/chains/evm"
	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
	"github.com/sprintertech/across-relayer/chains/evm/order"
	"github.com/sprintertech/across-relayer/config"
	"github.com/sprintertech/across-relayer/config/chain"
	"github.com/sprintertech/across-relayer/protocol/across"
)

var (
	self        = common.HexToAddress("0x5C7BCd6E7De5423a257D81B442095A1a6ced35C5")
	usdcBase    = common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	usdcArb     = common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831")
	wethArb     = common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")
	depositor   = common.HexToAddress("0x6C8A0c210C4C097270FA5df9b799d79A6887b11A")
	blockHash   = common.HexToHash("0x9a7d5e4f5c2a03c0d7b8ca3f5f8f3b6a2b07b1f7b6a62f5e1c1e0b8d6a3f4c21")
	sourceID    = across.BASE_CHAIN_ID
	destination = across.ARBITRUM_CHAIN_ID
)

type FilterTestSuite struct {
	suite.Suite

	source       evm.SourceChainConfig
	destinations *evm.ChainTable
	deposit      events.AcrossDeposit
}

func TestRunFilterTestSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}

func (s *FilterTestSuite) SetupTest() {
	base, _ := across.SupportedChain(sourceID)
	srcID := sourceID
	s.source = evm.SourceChainConfig{
		GeneralChainConfig: chain.GeneralChainConfig{Id: &srcID, Name: "base"},
		SpokePool:          base.SpokePool,
		WrappedNative:      base.WrappedNative,
	}

	dstID := destination
	table, err := evm.NewChainTable(nil, []*evm.DestinationChainConfig{
		{
			GeneralChainConfig: chain.GeneralChainConfig{Id: &dstID, Name: "arbitrum"},
			SupportedTokens: []config.SupportedToken{
				{
					Address:   usdcArb,
					Symbol:    "USDC",
					Decimals:  6,
					MinAmount: big.NewInt(1_000_000),
					MaxAmount: big.NewInt(1_000_000_000),
				},
				{
					Address:   wethArb,
					Symbol:    "WETH",
					Decimals:  18,
					MinAmount: big.NewInt(1_000_000_000_000_000),
					MaxAmount: big.NewInt(2_000_000_000_000_000_000),
				},
			},
		},
	})
	s.Nil(err)
	s.destinations = table

	s.deposit = events.AcrossDeposit{
		InputToken:          usdcBase,
		OutputToken:         usdcArb,
		InputAmount:         big.NewInt(10_100_000),
		OutputAmount:        big.NewInt(10_000_000),
		DestinationChainId:  new(big.Int).SetUint64(destination),
		DepositId:           42,
		QuoteTimestamp:      1718000000,
		FillDeadline:        1718003600,
		ExclusivityDeadline: 0,
		Depositor:           depositor,
		Recipient:           depositor,
		Message:             []byte{},
		BlockNumber:         1000,
		BlockHash:           blockHash,
	}
}

func (s *FilterTestSuite) Test_Incomplete() {
	s.deposit.BlockHash = common.Hash{}
	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)
	s.Equal(order.Incomplete, rejection)

	s.deposit.BlockHash = blockHash
	s.deposit.BlockNumber = 0
	_, rejection = order.Filter(s.deposit, s.source, s.destinations, self)
	s.Equal(order.Incomplete, rejection)
}

func (s *FilterTestSuite) Test_ExclusivityViolation() {
	s.deposit.ExclusiveRelayer = common.HexToAddress("0x1")

	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(order.ExclusivityViolation, rejection)
}

func (s *FilterTestSuite) Test_ExclusivityViolationWinsOverOtherChecks() {
	s.deposit.ExclusiveRelayer = common.HexToAddress("0x1")
	s.deposit.DestinationChainId = big.NewInt(999)
	s.deposit.OutputToken = common.HexToAddress("0x2")
	s.deposit.OutputAmount = big.NewInt(1)

	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(order.ExclusivityViolation, rejection)
}

func (s *FilterTestSuite) Test_ExclusiveToSelf() {
	s.deposit.ExclusiveRelayer = self

	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(order.Accepted, rejection)
}

func (s *FilterTestSuite) Test_UnsupportedDestination() {
	s.deposit.DestinationChainId = new(big.Int).SetUint64(across.OPTIMISM_CHAIN_ID)

	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(order.UnsupportedDestination, rejection)
}

func (s *FilterTestSuite) Test_NoMatchingToken() {
	s.deposit.OutputToken = common.HexToAddress("0x3")

	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(order.NoMatchingToken, rejection)
}

func (s *FilterTestSuite) Test_WrappedNativeEquivalence() {
	s.deposit.InputToken = s.source.WrappedNative
	s.deposit.OutputToken = common.Address{}
	s.deposit.InputAmount = big.NewInt(1_010_000_000_000_000_000)
	s.deposit.OutputAmount = big.NewInt(1_000_000_000_000_000_000)

	fillOrder, rejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(order.Accepted, rejection)
	s.Equal(wethArb, fillOrder.RelayData.OutputToken)
	s.Equal("WETH", fillOrder.Token.Symbol)
}

func (s *FilterTestSuite) Test_AmountOutOfRange() {
	s.deposit.OutputAmount = big.NewInt(999_999)
	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)
	s.Equal(order.AmountOutOfRange, rejection)

	s.deposit.OutputAmount = big.NewInt(1_000_000_001)
	_, rejection = order.Filter(s.deposit, s.source, s.destinations, self)
	s.Equal(order.AmountOutOfRange, rejection)
}

func (s *FilterTestSuite) Test_BoundsInclusive() {
	s.deposit.OutputAmount = big.NewInt(1_000_000)
	_, rejection := order.Filter(s.deposit, s.source, s.destinations, self)
	s.Equal(order.Accepted, rejection)

	s.deposit.OutputAmount = big.NewInt(1_000_000_000)
	_, rejection = order.Filter(s.deposit, s.source, s.destinations, self)
	s.Equal(order.Accepted, rejection)
}

func (s *FilterTestSuite) Test_Accepted() {
	fillOrder, rejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(order.Accepted, rejection)
	s.Equal(order.NormalizedFillOrder{
		RelayData: order.V3RelayData{
			Depositor:           depositor,
			Recipient:           depositor,
			ExclusiveRelayer:    common.Address{},
			InputToken:          usdcBase,
			OutputToken:         usdcArb,
			InputAmount:         big.NewInt(10_100_000),
			OutputAmount:        big.NewInt(10_000_000),
			OriginChainId:       new(big.Int).SetUint64(sourceID),
			DepositId:           42,
			FillDeadline:        1718003600,
			ExclusivityDeadline: 0,
			Message:             []byte{},
		},
		DestinationChainId: destination,
		Token:              fillOrder.Token,
		BlockNumber:        1000,
		BlockHash:          blockHash,
		QuoteTimestamp:     1718000000,
	}, fillOrder)
	s.Equal(usdcArb, fillOrder.Token.Address)
}

func (s *FilterTestSuite) Test_Idempotent() {
	first, firstRejection := order.Filter(s.deposit, s.source, s.destinations, self)
	second, secondRejection := order.Filter(s.deposit, s.source, s.destinations, self)

	s.Equal(firstRejection, secondRejection)
	s.Equal(first, second)

	s.deposit.ExclusiveRelayer = common.HexToAddress("0x1")
	_, firstRejection = order.Filter(s.deposit, s.source, s.destinations, self)
	_, secondRejection = order.Filter(s.deposit, s.source, s.destinations, self)
	s.Equal(firstRejection, secondRejection)
}
