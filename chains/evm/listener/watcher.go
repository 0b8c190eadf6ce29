// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package listener

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
)

const (
	RETRY_INTERVAL = time.Second * 5
)

type LogClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}

type DepositCache interface {
	Seen(key string) bool
}

type DepositHandler interface {
	HandleDeposit(ctx context.Context, originChainID uint64, deposit events.AcrossDeposit)
}

// ChainWatcher streams deposits of a single source chain spoke pool and
// hands each new deposit to the handler on its own goroutine.
type ChainWatcher struct {
	client    LogClient
	chainID   uint64
	spokePool common.Address
	cache     DepositCache
	handler   DepositHandler
	deposits  *events.Listener

	resubscribeInterval time.Duration
	overlap             uint64
	retryInterval       time.Duration

	log zerolog.Logger
}

func NewChainWatcher(
	client LogClient,
	chainID uint64,
	spokePool common.Address,
	cache DepositCache,
	handler DepositHandler,
	resubscribeInterval time.Duration,
	overlap uint64,
	log zerolog.Logger,
) *ChainWatcher {
	log = log.With().Uint64("chain", chainID).Logger()
	return &ChainWatcher{
		client:              client,
		chainID:             chainID,
		spokePool:           spokePool,
		cache:               cache,
		handler:             handler,
		deposits:            events.NewListener(client, log),
		resubscribeInterval: resubscribeInterval,
		overlap:             overlap,
		retryInterval:       RETRY_INTERVAL,
		log:                 log,
	}
}

// Watch runs until the context is cancelled. The log subscription is
// re-created every resubscribe interval and after subscription errors.
// Every new subscription re-scans the overlap blocks behind the head.
func (w *ChainWatcher) Watch(ctx context.Context) error {
	wg := conc.NewWaitGroup()
	defer func() {
		if r := wg.WaitAndRecover(); r != nil {
			w.log.Error().Msgf("Deposit handler panicked: %s", r.String())
		}
	}()

	for {
		err := w.subscribe(ctx, wg)
		if ctx.Err() != nil {
			return nil
		}

		if err == nil {
			w.log.Debug().Msgf("Resubscribing to deposits")
			continue
		}

		w.log.Warn().Err(err).Msgf("Deposit subscription failed, retrying in %s", w.retryInterval)
		select {
		case <-time.After(w.retryInterval):
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *ChainWatcher) subscribe(ctx context.Context, wg *conc.WaitGroup) error {
	logs := make(chan types.Log)
	sub, err := w.client.SubscribeFilterLogs(ctx, events.DepositQuery(w.spokePool, nil, nil), logs)
	if err != nil {
		return fmt.Errorf("failed subscribing to deposits: %w", err)
	}
	defer sub.Unsubscribe()

	// head is read after subscribing so the backfill covers every block
	// mined before the subscription started
	head, err := w.client.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed fetching head: %w", err)
	}

	start := uint64(0)
	if head > w.overlap {
		start = head - w.overlap
	}
	missed, err := w.deposits.FetchDeposits(ctx, w.spokePool, new(big.Int).SetUint64(start), new(big.Int).SetUint64(head))
	if err != nil {
		return fmt.Errorf("failed fetching deposits in range %d-%d: %w", start, head, err)
	}
	for _, deposit := range missed {
		w.dispatch(ctx, wg, deposit)
	}

	w.log.Debug().Msgf("Subscribed to deposits from block %d", start)

	timer := time.NewTimer(w.resubscribeInterval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return nil
		case err := <-sub.Err():
			if err == nil {
				return fmt.Errorf("deposit subscription closed")
			}
			return err
		case l := <-logs:
			for _, deposit := range w.deposits.UnpackDeposits([]types.Log{l}) {
				w.dispatch(ctx, wg, deposit)
			}
		}
	}
}

func (w *ChainWatcher) dispatch(ctx context.Context, wg *conc.WaitGroup, deposit *events.AcrossDeposit) {
	if w.cache.Seen(deposit.Key(w.chainID)) {
		return
	}

	w.log.Debug().Uint32("depositId", deposit.DepositId).Uint64("block", deposit.BlockNumber).Msgf("Received deposit")
	wg.Go(func() {
		w.handler.HandleDeposit(ctx, w.chainID, *deposit)
	})
}
