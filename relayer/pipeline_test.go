package relayer_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/across-relayer/chains/evm"
	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
	"github.com/sprintertech/across-relayer/chains/evm/confirmations"
	mock_confirmations "github.com/sprintertech/across-relayer/chains/evm/confirmations/mock"
	"github.com/sprintertech/across-relayer/chains/evm/executor"
	mock_executor "github.com/sprintertech/across-relayer/chains/evm/executor/mock"
	"github.com/sprintertech/across-relayer/chains/evm/fee"
	"github.com/sprintertech/across-relayer/chains/evm/order"
	"github.com/sprintertech/across-relayer/config"
	"github.com/sprintertech/across-relayer/config/chain"
	"github.com/sprintertech/across-relayer/protocol/across"
	"github.com/sprintertech/across-relayer/relayer"
	mock_relayer "github.com/sprintertech/across-relayer/relayer/mock"
)

var (
	self        = common.HexToAddress("0x5C7BCd6E7De5423a257D81B442095A1a6ced35C5")
	usdcBase    = common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	usdcArb     = common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831")
	depositor   = common.HexToAddress("0x6C8A0c210C4C097270FA5df9b799d79A6887b11A")
	sourceID    = across.BASE_CHAIN_ID
	destination = across.ARBITRUM_CHAIN_ID
)

type PipelineTestSuite struct {
	suite.Suite

	chains        *evm.ChainTable
	mockGate      *mock_relayer.MockGate
	mockEstimator *mock_relayer.MockEstimator
	mockExecutor  *mock_relayer.MockExecutor
	mockMetrics   *mock_relayer.MockMetrics
	deposit       events.AcrossDeposit
	policy        fee.GasPolicy
	key           string
}

func TestRunPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockGate = mock_relayer.NewMockGate(ctrl)
	s.mockEstimator = mock_relayer.NewMockEstimator(ctrl)
	s.mockExecutor = mock_relayer.NewMockExecutor(ctrl)
	s.mockMetrics = mock_relayer.NewMockMetrics(ctrl)

	thresholds, err := confirmations.NewThresholds(map[string]uint64{"0": 0})
	s.Nil(err)

	base, _ := across.SupportedChain(sourceID)
	arbitrum, _ := across.SupportedChain(destination)
	srcID := sourceID
	dstID := destination
	s.chains, err = evm.NewChainTable(
		[]*evm.SourceChainConfig{
			{
				GeneralChainConfig: chain.GeneralChainConfig{Id: &srcID, Name: "base"},
				SpokePool:          base.SpokePool,
				WrappedNative:      base.WrappedNative,
				Confirmations:      thresholds,
			},
		},
		[]*evm.DestinationChainConfig{
			{
				GeneralChainConfig: chain.GeneralChainConfig{Id: &dstID, Name: "arbitrum"},
				SpokePool:          arbitrum.SpokePool,
				FallbackGasPrice:   big.NewInt(5_000_000_000),
				SupportedTokens: []config.SupportedToken{
					{
						Address:   usdcArb,
						Symbol:    "USDC",
						Decimals:  6,
						MinAmount: big.NewInt(1_000_000),
						MaxAmount: big.NewInt(1_000_000_000),
					},
				},
			},
		},
	)
	s.Nil(err)

	s.deposit = events.AcrossDeposit{
		InputToken:         usdcBase,
		OutputToken:        usdcArb,
		InputAmount:        big.NewInt(10_100_000),
		OutputAmount:       big.NewInt(10_000_000),
		DestinationChainId: new(big.Int).SetUint64(destination),
		DepositId:          7,
		QuoteTimestamp:     1718000000,
		FillDeadline:       1718003600,
		Depositor:          depositor,
		Recipient:          depositor,
		Message:            []byte{},
		BlockNumber:        1000,
		BlockHash:          common.HexToHash("0xabc"),
	}
	s.key = s.deposit.Key(sourceID)
	s.policy = fee.GasPolicy{
		GasPrice: big.NewInt(5_000_000_000),
		GasLimit: 500_000,
	}
}

func (s *PipelineTestSuite) newPipeline(simulateOnly bool) *relayer.Pipeline {
	return relayer.NewPipeline(
		s.chains,
		map[uint64]relayer.Gate{sourceID: s.mockGate},
		s.mockEstimator,
		map[uint64]relayer.Executor{destination: s.mockExecutor},
		self,
		simulateOnly,
		s.mockMetrics,
		zerolog.Nop(),
	)
}

func (s *PipelineTestSuite) Test_UnknownSource() {
	s.mockMetrics.EXPECT().TrackDeposit(uint64(1), s.deposit.Key(1))

	s.newPipeline(true).HandleDeposit(context.Background(), 1, s.deposit)
}

func (s *PipelineTestSuite) Test_RejectedDeposit() {
	s.deposit.ExclusiveRelayer = common.HexToAddress("0x1")
	s.mockMetrics.EXPECT().TrackDeposit(sourceID, s.key)
	s.mockMetrics.EXPECT().TrackRejection(sourceID, order.ExclusivityViolation.String())

	s.newPipeline(true).HandleDeposit(context.Background(), sourceID, s.deposit)
}

func (s *PipelineTestSuite) Test_ReorgedOrderDropped() {
	s.mockMetrics.EXPECT().TrackDeposit(sourceID, s.key)
	s.mockGate.EXPECT().Await(gomock.Any(), gomock.Any()).Return(confirmations.Decision{
		State:  confirmations.Dropped,
		Reason: confirmations.Reorged,
		Depth:  2,
	})
	s.mockMetrics.EXPECT().TrackConfirmation(sourceID, "dropped", "reorged")

	s.newPipeline(true).HandleDeposit(context.Background(), sourceID, s.deposit)
}

func (s *PipelineTestSuite) Test_EstimationFailed() {
	s.mockMetrics.EXPECT().TrackDeposit(sourceID, s.key)
	s.mockGate.EXPECT().Await(gomock.Any(), gomock.Any()).Return(confirmations.Decision{State: confirmations.Released})
	s.mockMetrics.EXPECT().TrackConfirmation(sourceID, "released", "")
	s.mockEstimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(fee.GasPolicy{}, errors.New("error"))

	s.newPipeline(true).HandleDeposit(context.Background(), sourceID, s.deposit)
}

func (s *PipelineTestSuite) Test_Submitted() {
	txHash := common.HexToHash("0x123")
	s.mockMetrics.EXPECT().TrackDeposit(sourceID, s.key)
	s.mockGate.EXPECT().Await(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, pinned confirmations.PinnedOrder) confirmations.Decision {
			blockNumber, blockHash := pinned.OriginBlock()
			s.Equal(uint64(1000), blockNumber)
			s.Equal(common.HexToHash("0xabc"), blockHash)
			s.Equal(big.NewInt(10_100_000), pinned.Amount())
			return confirmations.Decision{State: confirmations.Released}
		})
	s.mockMetrics.EXPECT().TrackConfirmation(sourceID, "released", "")
	s.mockEstimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(s.policy, nil)
	s.mockExecutor.EXPECT().Fill(gomock.Any(), gomock.Any(), s.policy, false).DoAndReturn(
		func(ctx context.Context, fillOrder order.NormalizedFillOrder, policy fee.GasPolicy, simulateOnly bool) executor.Outcome {
			s.Equal(destination, fillOrder.DestinationChainId)
			s.Equal(sourceID, fillOrder.OriginChainID())
			s.Equal(uint32(7), fillOrder.RelayData.DepositId)
			return executor.Outcome{Kind: executor.Submitted, TxHash: txHash}
		})
	s.mockMetrics.EXPECT().TrackFill(destination, s.key, "submitted")

	s.newPipeline(false).HandleDeposit(context.Background(), sourceID, s.deposit)
}

func (s *PipelineTestSuite) Test_SimulateOnly_EndToEnd() {
	ctrl := gomock.NewController(s.T())
	mockBlockReader := mock_confirmations.NewMockBlockReader(ctrl)
	mockFillClient := mock_executor.NewMockFillClient(ctrl)

	source, _ := s.chains.Source(sourceID)
	arbitrum, _ := s.chains.Destination(destination)
	gate := confirmations.NewGate(mockBlockReader, source.Confirmations, zerolog.Nop())
	filler := executor.NewExecutor(mockFillClient, destination, arbitrum.SpokePool, zerolog.Nop())

	mockFillClient.EXPECT().From().Return(self).AnyTimes()
	mockFillClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return([]byte{}, nil).Times(1)
	mockFillClient.EXPECT().Transact(gomock.Any(), gomock.Any()).Times(0)

	s.mockEstimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(s.policy, nil)
	s.mockMetrics.EXPECT().TrackDeposit(sourceID, s.key)
	s.mockMetrics.EXPECT().TrackConfirmation(sourceID, "released", "")
	s.mockMetrics.EXPECT().TrackFill(destination, s.key, "simulated")

	pipeline := relayer.NewPipeline(
		s.chains,
		map[uint64]relayer.Gate{sourceID: gate},
		s.mockEstimator,
		map[uint64]relayer.Executor{destination: filler},
		self,
		true,
		s.mockMetrics,
		zerolog.Nop(),
	)
	pipeline.HandleDeposit(context.Background(), sourceID, s.deposit)
}
