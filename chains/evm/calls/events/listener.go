// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
)

type LogFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]ethTypes.Log, error)
}

type Listener struct {
	client LogFilterer
	abi    abi.ABI
	log    zerolog.Logger
}

func NewListener(client LogFilterer, log zerolog.Logger) *Listener {
	return &Listener{
		client: client,
		abi:    consts.SpokePoolABI,
		log:    log,
	}
}

// DepositQuery builds the log filter for V3FundsDeposited events of the spoke pool.
func DepositQuery(spokePool common.Address, startBlock *big.Int, endBlock *big.Int) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: startBlock,
		ToBlock:   endBlock,
		Addresses: []common.Address{spokePool},
		Topics: [][]common.Hash{
			{AcrossDepositSig.GetTopic()},
		},
	}
}

// FetchDeposits returns all deposits emitted by the spoke pool in the block range.
// Logs that fail to unpack are skipped.
func (l *Listener) FetchDeposits(ctx context.Context, spokePool common.Address, startBlock *big.Int, endBlock *big.Int) ([]*AcrossDeposit, error) {
	logs, err := l.client.FilterLogs(ctx, DepositQuery(spokePool, startBlock, endBlock))
	if err != nil {
		return nil, err
	}

	return l.UnpackDeposits(logs), nil
}

// UnpackDeposits converts raw logs into deposits, dropping removed and
// malformed logs.
func (l *Listener) UnpackDeposits(logs []ethTypes.Log) []*AcrossDeposit {
	deposits := make([]*AcrossDeposit, 0, len(logs))
	for _, dl := range logs {
		if dl.Removed {
			continue
		}

		d, err := UnpackDeposit(l.abi, dl)
		if err != nil {
			l.log.Warn().Err(err).Str("tx", dl.TxHash.Hex()).Msgf("Failed unpacking deposit log")
			continue
		}
		deposits = append(deposits, d)
	}
	return deposits
}

// UnpackDeposit decodes a V3FundsDeposited log, reading indexed fields from topics.
func UnpackDeposit(abi abi.ABI, l ethTypes.Log) (*AcrossDeposit, error) {
	if len(l.Topics) < 4 {
		return nil, fmt.Errorf("across deposit missing topics")
	}
	if l.Topics[0] != AcrossDepositSig.GetTopic() {
		return nil, fmt.Errorf("log %s is not an across deposit", l.TxHash.Hex())
	}

	d := &AcrossDeposit{}
	err := abi.UnpackIntoInterface(d, "V3FundsDeposited", l.Data)
	if err != nil {
		return nil, err
	}

	d.DestinationChainId = new(big.Int).SetBytes(l.Topics[1].Bytes())
	// nolint:gosec
	d.DepositId = uint32(new(big.Int).SetBytes(l.Topics[2].Bytes()).Uint64())
	d.Depositor = common.BytesToAddress(l.Topics[3].Bytes())

	d.BlockNumber = l.BlockNumber
	d.BlockHash = l.BlockHash
	d.TxHash = l.TxHash
	d.LogIndex = l.Index
	return d, nil
}
