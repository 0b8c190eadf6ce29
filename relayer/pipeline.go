package relayer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/sprintertech/across-relayer/chains/evm"
	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
	"github.com/sprintertech/across-relayer/chains/evm/confirmations"
	"github.com/sprintertech/across-relayer/chains/evm/executor"
	"github.com/sprintertech/across-relayer/chains/evm/fee"
	"github.com/sprintertech/across-relayer/chains/evm/order"
)

type ChainRegistry interface {
	Source(id uint64) (evm.SourceChainConfig, bool)
	Destination(id uint64) (evm.DestinationChainConfig, bool)
}

type Gate interface {
	Await(ctx context.Context, pinned confirmations.PinnedOrder) confirmations.Decision
}

type Estimator interface {
	Estimate(ctx context.Context, fillOrder order.NormalizedFillOrder) (fee.GasPolicy, error)
}

type Executor interface {
	Fill(ctx context.Context, fillOrder order.NormalizedFillOrder, policy fee.GasPolicy, simulateOnly bool) executor.Outcome
}

type Metrics interface {
	TrackDeposit(origin uint64, key string)
	TrackRejection(origin uint64, reason string)
	TrackConfirmation(origin uint64, state string, reason string)
	TrackFill(destination uint64, key string, outcome string)
}

// Pipeline takes a single deposit through filtering, confirmation gating,
// gas estimation and the fill.
type Pipeline struct {
	chains       ChainRegistry
	gates        map[uint64]Gate
	estimator    Estimator
	executors    map[uint64]Executor
	self         common.Address
	simulateOnly bool
	metrics      Metrics
	log          zerolog.Logger
}

func NewPipeline(
	chains ChainRegistry,
	gates map[uint64]Gate,
	estimator Estimator,
	executors map[uint64]Executor,
	self common.Address,
	simulateOnly bool,
	metrics Metrics,
	log zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		chains:       chains,
		gates:        gates,
		estimator:    estimator,
		executors:    executors,
		self:         self,
		simulateOnly: simulateOnly,
		metrics:      metrics,
		log:          log,
	}
}

// HandleDeposit blocks until the deposit is filled or abandoned.
func (p *Pipeline) HandleDeposit(ctx context.Context, originChainID uint64, deposit events.AcrossDeposit) {
	key := deposit.Key(originChainID)
	log := p.log.With().Uint64("origin", originChainID).Uint32("depositId", deposit.DepositId).Logger()
	p.metrics.TrackDeposit(originChainID, key)

	source, ok := p.chains.Source(originChainID)
	if !ok {
		log.Error().Msgf("Received deposit from unknown source chain")
		return
	}

	fillOrder, rejection := order.Filter(deposit, source, p.chains, p.self)
	if rejection != order.Accepted {
		log.Debug().Str("reason", rejection.String()).Msgf("Skipping deposit")
		p.metrics.TrackRejection(originChainID, rejection.String())
		return
	}
	log = log.With().Uint64("destination", fillOrder.DestinationChainId).Logger()

	gate, ok := p.gates[originChainID]
	if !ok {
		log.Error().Msgf("No confirmation gate for source chain")
		return
	}
	decision := gate.Await(ctx, fillOrder)
	p.metrics.TrackConfirmation(originChainID, decision.State.String(), string(decision.Reason))
	if decision.State == confirmations.Dropped {
		if decision.Reason == confirmations.Reorged {
			log.Info().Msgf("Deposit block reorged, dropping order")
		} else {
			log.Debug().Str("reason", string(decision.Reason)).Msgf("Dropping order")
		}
		return
	}

	policy, err := p.estimator.Estimate(ctx, fillOrder)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed estimating fill gas")
		return
	}

	filler, ok := p.executors[fillOrder.DestinationChainId]
	if !ok {
		log.Error().Msgf("No executor for destination chain")
		return
	}
	outcome := filler.Fill(ctx, fillOrder, policy, p.simulateOnly)
	p.metrics.TrackFill(fillOrder.DestinationChainId, key, outcome.Kind.String())

	log.Debug().Str("outcome", outcome.Kind.String()).Str("tx", outcome.TxHash.Hex()).Msgf("Order processed")
}
