package confirmations

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

type State int

const (
	Released State = iota
	Dropped
)

func (s State) String() string {
	switch s {
	case Released:
		return "released"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

type DropReason string

const (
	NoThreshold        DropReason = "no-threshold"
	Reorged            DropReason = "reorged"
	SubscriptionFailed DropReason = "subscription-failed"
	BlockUnavailable   DropReason = "block-unavailable"
	Cancelled          DropReason = "cancelled"
)

// Decision is the terminal outcome of a confirmation wait.
type Decision struct {
	State  State
	Reason DropReason
	Depth  uint64
}

func released(depth uint64) Decision {
	return Decision{State: Released, Depth: depth}
}

func dropped(reason DropReason, depth uint64) Decision {
	return Decision{State: Dropped, Reason: reason, Depth: depth}
}

type BlockReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

// PinnedOrder is an order pinned to the block its deposit was emitted in.
type PinnedOrder interface {
	OriginBlock() (uint64, common.Hash)
	Amount() *big.Int
}

// Gate defers order execution until the origin block is deep enough in the
// source chain and still part of the canonical chain.
type Gate struct {
	client     BlockReader
	thresholds Thresholds
	log        zerolog.Logger
}

func NewGate(client BlockReader, thresholds Thresholds, log zerolog.Logger) *Gate {
	return &Gate{
		client:     client,
		thresholds: thresholds,
		log:        log,
	}
}

// Await blocks until the order is either released for execution or dropped.
// Each call owns at most one head subscription which is released before returning.
func (g *Gate) Await(ctx context.Context, order PinnedOrder) Decision {
	blockNumber, blockHash := order.OriginBlock()

	depth, ok := g.thresholds.RequiredDepth(order.Amount())
	if !ok {
		g.log.Debug().Msgf("No confirmation threshold found for amount %s", order.Amount())
		return dropped(NoThreshold, 0)
	}
	if depth == 0 {
		return released(depth)
	}

	target := blockNumber + depth
	head, err := g.client.BlockNumber(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msgf("Failed fetching current block number")
		return dropped(BlockUnavailable, depth)
	}
	if head >= target {
		return g.verify(ctx, blockNumber, blockHash, depth)
	}

	g.log.Debug().Msgf("Not enough confirmations: { currentBlockNumber: %d, thresholdBlockNumber: %d }", head, target)
	return g.wait(ctx, blockNumber, blockHash, depth, target)
}

func (g *Gate) wait(ctx context.Context, blockNumber uint64, blockHash common.Hash, depth uint64, target uint64) Decision {
	heads := make(chan *types.Header)
	sub, err := g.client.SubscribeNewHead(ctx, heads)
	if err != nil {
		g.log.Warn().Err(err).Msgf("Failed subscribing to new blocks")
		return dropped(SubscriptionFailed, depth)
	}
	defer sub.Unsubscribe()

	for {
		select {
		case head := <-heads:
			{
				if head.Number.Uint64() < target {
					continue
				}

				return g.verify(ctx, blockNumber, blockHash, depth)
			}
		case err := <-sub.Err():
			{
				g.log.Warn().Err(err).Msgf("Error watching blocks")
				return dropped(SubscriptionFailed, depth)
			}
		case <-ctx.Done():
			{
				return dropped(Cancelled, depth)
			}
		}
	}
}

// verify checks that the origin block has not been reorganized out of the chain.
func (g *Gate) verify(ctx context.Context, blockNumber uint64, blockHash common.Hash, depth uint64) Decision {
	header, err := g.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		g.log.Warn().Err(err).Msgf("Failed fetching block %d", blockNumber)
		return dropped(BlockUnavailable, depth)
	}

	if header.Hash() != blockHash {
		g.log.Info().Msgf(
			"Different block hash: { fetchedBlockHash: %s, fillOrderBlockHash: %s }",
			header.Hash().Hex(), blockHash.Hex())
		return dropped(Reorged, depth)
	}

	g.log.Debug().Msgf("Confirmation reached: %d", blockNumber+depth)
	return released(depth)
}
