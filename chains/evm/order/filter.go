package order

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/across-relayer/chains/evm"
	"github.com/sprintertech/across-relayer/chains/evm/calls/events"
	"github.com/sprintertech/across-relayer/config"
	"github.com/sprintertech/across-relayer/protocol/across"
)

type Rejection int

const (
	Accepted Rejection = iota
	Incomplete
	ExclusivityViolation
	UnsupportedDestination
	NoMatchingToken
	AmountOutOfRange
)

func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Incomplete:
		return "incomplete"
	case ExclusivityViolation:
		return "exclusivity-violation"
	case UnsupportedDestination:
		return "unsupported-destination"
	case NoMatchingToken:
		return "no-matching-token"
	case AmountOutOfRange:
		return "amount-out-of-range"
	default:
		return "unknown"
	}
}

type DestinationRegistry interface {
	Destination(id uint64) (evm.DestinationChainConfig, bool)
}

// Filter decides if the relayer is willing to fill the deposit. Checks are
// applied in a fixed order and the first failing check is returned.
func Filter(
	deposit events.AcrossDeposit,
	source evm.SourceChainConfig,
	destinations DestinationRegistry,
	self common.Address,
) (NormalizedFillOrder, Rejection) {
	if deposit.BlockNumber == 0 || deposit.BlockHash == (common.Hash{}) {
		return NormalizedFillOrder{}, Incomplete
	}

	if deposit.ExclusiveRelayer != self && deposit.ExclusiveRelayer != (common.Address{}) {
		return NormalizedFillOrder{}, ExclusivityViolation
	}

	if deposit.DestinationChainId == nil || !deposit.DestinationChainId.IsUint64() {
		return NormalizedFillOrder{}, UnsupportedDestination
	}
	destination, ok := destinations.Destination(deposit.DestinationChainId.Uint64())
	if !ok {
		return NormalizedFillOrder{}, UnsupportedDestination
	}

	token, ok := matchToken(deposit, source, destination.SupportedTokens)
	if !ok {
		return NormalizedFillOrder{}, NoMatchingToken
	}

	if deposit.OutputAmount == nil ||
		deposit.OutputAmount.Cmp(token.MinAmount) < 0 ||
		deposit.OutputAmount.Cmp(token.MaxAmount) > 0 {
		return NormalizedFillOrder{}, AmountOutOfRange
	}

	return NormalizedFillOrder{
		RelayData: V3RelayData{
			Depositor:           deposit.Depositor,
			Recipient:           deposit.Recipient,
			ExclusiveRelayer:    deposit.ExclusiveRelayer,
			InputToken:          deposit.InputToken,
			OutputToken:         token.Address,
			InputAmount:         deposit.InputAmount,
			OutputAmount:        deposit.OutputAmount,
			OriginChainId:       new(big.Int).SetUint64(*source.GeneralChainConfig.Id),
			DepositId:           deposit.DepositId,
			FillDeadline:        deposit.FillDeadline,
			ExclusivityDeadline: deposit.ExclusivityDeadline,
			Message:             deposit.Message,
		},
		DestinationChainId: deposit.DestinationChainId.Uint64(),
		Token:              token,
		BlockNumber:        deposit.BlockNumber,
		BlockHash:          deposit.BlockHash,
		QuoteTimestamp:     deposit.QuoteTimestamp,
	}, Accepted
}

// matchToken returns the first supported token matching the deposit output token
// or, for wrapped native deposits, the destination wrapped native token.
func matchToken(deposit events.AcrossDeposit, source evm.SourceChainConfig, tokens []config.SupportedToken) (config.SupportedToken, bool) {
	for _, token := range tokens {
		if token.Address == deposit.OutputToken {
			return token, true
		}

		if token.Symbol == across.WRAPPED_NATIVE_SYMBOL && deposit.InputToken == source.WrappedNative {
			return token, true
		}
	}

	return config.SupportedToken{}, false
}
