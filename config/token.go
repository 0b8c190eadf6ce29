package config

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// SupportedToken is a token the relayer is willing to fill on a destination chain.
// Amount bounds are inclusive and expressed in the token's raw units.
type SupportedToken struct {
	Address   common.Address
	Symbol    string
	Decimals  uint8
	MinAmount *big.Int
	MaxAmount *big.Int
	// L1Token is the hub pool token backing this token.
	L1Token common.Address
}

type RawSupportedToken struct {
	Address   string `mapstructure:"address"`
	Symbol    string `mapstructure:"symbol"`
	Decimals  uint8  `mapstructure:"decimals"`
	MinAmount string `mapstructure:"minAmount"`
	MaxAmount string `mapstructure:"maxAmount"`
	L1Token   string `mapstructure:"l1Token"`
}

// NewSupportedToken validates the raw token and converts human unit bounds
// into raw token units. Tokens outside the home chain must name the hub pool
// token backing them; home chain tokens back themselves by default.
func NewSupportedToken(raw RawSupportedToken, homeChain bool) (SupportedToken, error) {
	if !common.IsHexAddress(raw.Address) {
		return SupportedToken{}, fmt.Errorf("invalid token address %s", raw.Address)
	}
	if raw.Symbol == "" {
		return SupportedToken{}, fmt.Errorf("required field token.Symbol empty for %s", raw.Address)
	}

	minAmount, err := ToRawAmount(raw.MinAmount, raw.Decimals)
	if err != nil {
		return SupportedToken{}, fmt.Errorf("invalid min amount for %s: %w", raw.Symbol, err)
	}
	maxAmount, err := ToRawAmount(raw.MaxAmount, raw.Decimals)
	if err != nil {
		return SupportedToken{}, fmt.Errorf("invalid max amount for %s: %w", raw.Symbol, err)
	}
	if minAmount.Cmp(maxAmount) > 0 {
		return SupportedToken{}, fmt.Errorf("min amount %s bigger than max amount %s for %s", raw.MinAmount, raw.MaxAmount, raw.Symbol)
	}

	l1Token := common.HexToAddress(raw.Address)
	if raw.L1Token == "" && !homeChain {
		return SupportedToken{}, fmt.Errorf("required field token.L1Token empty for %s", raw.Symbol)
	}
	if raw.L1Token != "" {
		if !common.IsHexAddress(raw.L1Token) {
			return SupportedToken{}, fmt.Errorf("invalid l1 token address %s", raw.L1Token)
		}
		l1Token = common.HexToAddress(raw.L1Token)
	}

	return SupportedToken{
		Address:   common.HexToAddress(raw.Address),
		Symbol:    raw.Symbol,
		Decimals:  raw.Decimals,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		L1Token:   l1Token,
	}, nil
}

// ToRawAmount converts a human readable amount, like "0.5", into raw units
// of a token with the given decimals.
func ToRawAmount(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("negative amount %s", amount)
	}

	return d.Shift(int32(decimals)).Round(0).BigInt(), nil
}
