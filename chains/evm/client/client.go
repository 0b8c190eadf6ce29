package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor/transaction"
)

const (
	DEFAULT_LOG_POLLING_INTERVAL  = time.Second
	DEFAULT_HEAD_POLLING_INTERVAL = 200 * time.Millisecond
	DEFAULT_BLOCK_RANGE           = 1000
	DEFAULT_RECEIPT_INTERVAL      = time.Second
)

// PollingConfig configures subscriptions over endpoints that do not
// support push notifications.
type PollingConfig struct {
	LogInterval  time.Duration
	HeadInterval time.Duration
	BlockRange   uint64

	ReceiptInterval time.Duration
}

func (c PollingConfig) withDefaults() PollingConfig {
	if c.LogInterval == 0 {
		c.LogInterval = DEFAULT_LOG_POLLING_INTERVAL
	}
	if c.HeadInterval == 0 {
		c.HeadInterval = DEFAULT_HEAD_POLLING_INTERVAL
	}
	if c.BlockRange == 0 {
		c.BlockRange = DEFAULT_BLOCK_RANGE
	}
	if c.ReceiptInterval == 0 {
		c.ReceiptInterval = DEFAULT_RECEIPT_INTERVAL
	}
	return c
}

type EVMClient struct {
	*evmClient.EVMClient

	chainID   *big.Int
	signer    Signer
	websocket bool
	polling   PollingConfig

	nonceLock sync.Mutex
	nonce     *uint64
}

// NewEVMClient dials the endpoint. Subscriptions are native over websocket
// endpoints and polled otherwise. The signer can be nil for read only clients.
func NewEVMClient(ctx context.Context, url string, signer Signer, polling PollingConfig) (*EVMClient, error) {
	coreClient, err := evmClient.NewEVMClient(url, signer)
	if err != nil {
		return nil, fmt.Errorf("failed dialing %s: %w", url, err)
	}

	c := &EVMClient{
		EVMClient: coreClient,
		signer:    signer,
		websocket: strings.HasPrefix(url, "ws://") || strings.HasPrefix(url, "wss://"),
		polling:   polling.withDefaults(),
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed fetching chain id: %w", err)
	}
	c.chainID = chainID
	return c, nil
}

// From returns the signer address or the zero address for read only clients.
func (c *EVMClient) From() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.CommonAddress()
}

func (c *EVMClient) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	if c.websocket {
		return c.EVMClient.Client.SubscribeNewHead(ctx, ch)
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		ticker := time.NewTicker(c.polling.HeadInterval)
		defer ticker.Stop()

		var last uint64
		for {
			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				{
					head, err := c.HeaderByNumber(ctx, nil)
					if err != nil {
						return err
					}
					if head.Number.Uint64() <= last {
						continue
					}
					last = head.Number.Uint64()

					select {
					case ch <- head:
					case <-quit:
						return nil
					}
				}
			}
		}
	}), nil
}

// SubscribeFilterLogs streams logs matching the query. Polling starts at the
// query FromBlock or at the next block if it is not set.
func (c *EVMClient) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	if c.websocket {
		return c.EVMClient.Client.SubscribeFilterLogs(ctx, q, ch)
	}

	var from uint64
	if q.FromBlock != nil {
		from = q.FromBlock.Uint64()
	} else {
		head, err := c.BlockNumber(ctx)
		if err != nil {
			return nil, err
		}
		from = head + 1
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		ticker := time.NewTicker(c.polling.LogInterval)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				{
					head, err := c.BlockNumber(ctx)
					if err != nil {
						return err
					}
					if head < from {
						continue
					}

					to := min(head, from+c.polling.BlockRange-1)
					query := q
					query.FromBlock = new(big.Int).SetUint64(from)
					query.ToBlock = new(big.Int).SetUint64(to)
					logs, err := c.FilterLogs(ctx, query)
					if err != nil {
						return err
					}

					for _, l := range logs {
						select {
						case ch <- l:
						case <-quit:
							return nil
						}
					}
					from = to + 1
				}
			}
		}
	}), nil
}

// CallContract executes the call message at the given block. It shadows the
// map based call of the embedded client so the client can back bound contracts.
func (c *EVMClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.EVMClient.Client.CallContract(ctx, msg, blockNumber)
}

// Transact signs and sends a transaction built from the call message and
// returns its hash. Fee market fields take precedence over the legacy gas price.
func (c *EVMClient) Transact(ctx context.Context, msg ethereum.CallMsg) (common.Hash, error) {
	if c.signer == nil {
		return common.Hash{}, fmt.Errorf("client has no signer")
	}

	c.nonceLock.Lock()
	defer c.nonceLock.Unlock()

	nonce, err := c.nextNonce(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	gasPrices := []*big.Int{msg.GasPrice}
	if msg.GasFeeCap != nil {
		gasPrices = []*big.Int{msg.GasTipCap, msg.GasFeeCap}
	}
	value := msg.Value
	if value == nil {
		value = big.NewInt(0)
	}
	tx, err := transaction.NewTransaction(nonce, msg.To, value, msg.Gas, gasPrices, msg.Data)
	if err != nil {
		return common.Hash{}, err
	}

	hash, err := c.SignAndSendTransaction(ctx, tx)
	if err != nil {
		// the next transaction starts from the pending nonce
		c.nonce = nil
		return common.Hash{}, err
	}

	next := nonce + 1
	c.nonce = &next
	return hash, nil
}

func (c *EVMClient) nextNonce(ctx context.Context) (uint64, error) {
	pending, err := c.PendingNonceAt(ctx, c.signer.CommonAddress())
	if err != nil {
		return 0, err
	}

	if c.nonce != nil && *c.nonce > pending {
		return *c.nonce, nil
	}
	return pending, nil
}

// WaitReceipt polls for the receipt of the transaction until it is mined
// or the context is done.
func (c *EVMClient) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.polling.ReceiptInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *EVMClient) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, c, tx)
}

// TransactOpts returns transaction options signing with the client signer.
func (c *EVMClient) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("client has no signer")
	}

	return &bind.TransactOpts{
		From:    c.signer.CommonAddress(),
		Context: ctx,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != c.signer.CommonAddress() {
				return nil, bind.ErrNotAuthorized
			}
			return SignTx(c.signer, tx, c.chainID)
		},
	}, nil
}
