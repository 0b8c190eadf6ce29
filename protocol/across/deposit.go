package across

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
)

const (
	TRANSACTION_TIMEOUT = 30 * time.Second
)

type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// DepositFetcher reads deposits emitted by a spoke pool from transaction receipts.
type DepositFetcher struct {
	client    ReceiptFetcher
	spokePool common.Address
}

func NewDepositFetcher(client ReceiptFetcher, spokePool common.Address) *DepositFetcher {
	return &DepositFetcher{
		client:    client,
		spokePool: spokePool,
	}
}

func (f *DepositFetcher) Deposit(ctx context.Context, hash common.Hash, depositID uint32) (*events.AcrossDeposit, error) {
	ctx, cancel := context.WithTimeout(ctx, TRANSACTION_TIMEOUT)
	defer cancel()

	receipt, err := f.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}

	for _, l := range receipt.Logs {
		if l.Removed || l.Address != f.spokePool {
			continue
		}
		if len(l.Topics) < 4 || l.Topics[0] != events.AcrossDepositSig.GetTopic() {
			continue
		}
		if l.Topics[2] != common.BigToHash(new(big.Int).SetUint64(uint64(depositID))) {
			continue
		}

		return events.UnpackDeposit(consts.SpokePoolABI, *l)
	}

	return nil, fmt.Errorf("deposit with id %d not found in %s", depositID, hash.Hex())
}
