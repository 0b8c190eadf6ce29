package executor

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
	"github.com/sprintertech/across-relayer/chains/evm/fee"
	"github.com/sprintertech/across-relayer/chains/evm/order"
)

type OutcomeKind int

const (
	Submitted OutcomeKind = iota
	Simulated
	Reverted
	ExecutionFailed
	TransactionFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Submitted:
		return "submitted"
	case Simulated:
		return "simulated"
	case Reverted:
		return "reverted"
	case ExecutionFailed:
		return "execution-failed"
	case TransactionFailed:
		return "transaction-failed"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Kind   OutcomeKind
	TxHash common.Hash
	Reason string
}

type FillClient interface {
	From() common.Address
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	Transact(ctx context.Context, msg ethereum.CallMsg) (common.Hash, error)
	WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// Executor fills orders on a single destination chain.
type Executor struct {
	client    FillClient
	chainID   *big.Int
	spokePool common.Address
	log       zerolog.Logger
}

func NewExecutor(client FillClient, chainID uint64, spokePool common.Address, log zerolog.Logger) *Executor {
	return &Executor{
		client:    client,
		chainID:   new(big.Int).SetUint64(chainID),
		spokePool: spokePool,
		log:       log,
	}
}

// Fill simulates the fill and, unless simulateOnly is set, submits it and
// waits for the receipt. Failures are reported through the outcome.
func (e *Executor) Fill(ctx context.Context, fillOrder order.NormalizedFillOrder, policy fee.GasPolicy, simulateOnly bool) Outcome {
	msg, err := e.fillMsg(fillOrder, policy)
	if err != nil {
		return e.failed(err)
	}

	_, err = e.client.CallContract(ctx, msg, nil)
	if err != nil {
		return e.failed(err)
	}

	if simulateOnly {
		e.log.Info().Msgf("Simulated fillV3Relay transaction")
		return Outcome{Kind: Simulated}
	}
	e.log.Debug().Msgf("Simulated fillV3Relay transaction")

	hash, err := e.client.Transact(ctx, msg)
	if err != nil {
		return e.failed(err)
	}
	e.log.Debug().Msgf("Filled order on chain %s: %s", e.chainID, hash.Hex())

	receipt, err := e.client.WaitReceipt(ctx, hash)
	if err != nil {
		outcome := e.failed(err)
		outcome.TxHash = hash
		return outcome
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		e.log.Warn().Msgf("Transaction failed: %s", hash.Hex())
		return Outcome{Kind: TransactionFailed, TxHash: hash}
	}

	e.log.Info().Msgf("Transaction successful: %s", hash.Hex())
	return Outcome{Kind: Submitted, TxHash: hash}
}

func (e *Executor) fillMsg(fillOrder order.NormalizedFillOrder, policy fee.GasPolicy) (ethereum.CallMsg, error) {
	// repayment is taken on the destination chain
	data, err := consts.SpokePoolABI.Pack("fillV3Relay", fillOrder.RelayData, e.chainID)
	if err != nil {
		return ethereum.CallMsg{}, err
	}

	return ethereum.CallMsg{
		From:      e.client.From(),
		To:        &e.spokePool,
		Gas:       policy.GasLimit,
		GasPrice:  policy.GasPrice,
		GasFeeCap: policy.MaxFeePerGas,
		GasTipCap: policy.MaxPriorityFeePerGas,
		Data:      data,
	}, nil
}

func (e *Executor) failed(err error) Outcome {
	classified := Classify(err)
	switch classified := classified.(type) {
	case *RevertError:
		{
			e.log.Warn().Msgf("Failed to fill order: %s", classified.Reason)
			return Outcome{Kind: Reverted, Reason: classified.Reason}
		}
	default:
		{
			e.log.Warn().Err(err).Msgf("Failed to fill order: %s", classified.Error())
			return Outcome{Kind: ExecutionFailed, Reason: classified.Error()}
		}
	}
}
