// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"maps"
	"math/big"
	"slices"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/across-relayer/chains/evm/confirmations"
	"github.com/sprintertech/across-relayer/config"
	"github.com/sprintertech/across-relayer/config/chain"
	"github.com/sprintertech/across-relayer/protocol/across"
)

// gas price divisors applied on chains where the tiered price overshoots
var defaultGasPriceDivisors = map[uint64]uint64{
	across.ARBITRUM_CHAIN_ID: 10,
}

type SourceChainConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	SpokePool     common.Address
	WrappedNative common.Address

	PollingInterval      time.Duration
	BlockPollingInterval time.Duration
	BlockRange           *big.Int

	Confirmations confirmations.Thresholds
}

type RawSourceChainConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	// polling intervals are in milliseconds
	PollingInterval      uint64            `mapstructure:"pollingInterval" default:"1000"`
	BlockPollingInterval uint64            `mapstructure:"blockPollingInterval" default:"200"`
	BlockRange           int64             `mapstructure:"blockRange" default:"1000"`
	Confirmations        map[string]uint64 `mapstructure:"confirmations"`
}

func (c *RawSourceChainConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.PollingInterval == 0 || c.BlockPollingInterval == 0 {
		return fmt.Errorf("polling intervals must be positive for chain %d", *c.Id)
	}
	if c.BlockRange <= 0 {
		return fmt.Errorf("block range must be positive for chain %d", *c.Id)
	}
	if len(c.Confirmations) == 0 {
		return fmt.Errorf("required field chain.Confirmations empty for chain %d", *c.Id)
	}
	return nil
}

// NewSourceChainConfig decodes and validates an instance of a SourceChainConfig
// from raw chain config
func NewSourceChainConfig(chainConfig map[string]interface{}) (*SourceChainConfig, error) {
	var c RawSourceChainConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	c.ParseEnv()
	err = c.Validate()
	if err != nil {
		return nil, err
	}

	thresholds, err := confirmations.NewThresholds(c.Confirmations)
	if err != nil {
		return nil, err
	}

	deployment, _ := across.SupportedChain(*c.Id)
	return &SourceChainConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		SpokePool:          deployment.SpokePool,
		WrappedNative:      deployment.WrappedNative,
		// nolint:gosec
		PollingInterval: time.Duration(c.PollingInterval) * time.Millisecond,
		// nolint:gosec
		BlockPollingInterval: time.Duration(c.BlockPollingInterval) * time.Millisecond,
		BlockRange:           big.NewInt(c.BlockRange),
		Confirmations:        thresholds,
	}, nil
}

type DestinationChainConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	SpokePool common.Address
	FeeMarket bool

	FallbackGasPrice *big.Int
	// GasPriceDivisor is 1 when the tiered gas price is used as is.
	GasPriceDivisor uint64

	SupportedTokens []config.SupportedToken
}

type RawDestinationChainConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	FeeMarket bool `mapstructure:"feeMarket"`
	// fallback gas price in gwei
	FallbackGasPrice string                     `mapstructure:"fallbackGasPrice" default:"5"`
	GasPriceDivisor  uint64                     `mapstructure:"gasPriceDivisor"`
	SupportedTokens  []config.RawSupportedToken `mapstructure:"supportedTokens"`
}

func (c *RawDestinationChainConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if len(c.SupportedTokens) == 0 {
		return fmt.Errorf("required field chain.SupportedTokens empty for chain %d", *c.Id)
	}
	return nil
}

// NewDestinationChainConfig decodes and validates an instance of a DestinationChainConfig
// from raw chain config
func NewDestinationChainConfig(chainConfig map[string]interface{}, homeChainID uint64) (*DestinationChainConfig, error) {
	var c RawDestinationChainConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	c.ParseEnv()
	err = c.Validate()
	if err != nil {
		return nil, err
	}

	fallbackGasPrice, err := config.ToRawAmount(c.FallbackGasPrice, 9)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback gas price for chain %d: %w", *c.Id, err)
	}
	if fallbackGasPrice.Sign() == 0 {
		return nil, fmt.Errorf("fallback gas price must be positive for chain %d", *c.Id)
	}

	divisor := c.GasPriceDivisor
	if divisor == 0 {
		divisor = defaultGasPriceDivisors[*c.Id]
	}
	if divisor == 0 {
		divisor = 1
	}

	tokens := make([]config.SupportedToken, len(c.SupportedTokens))
	for i, rawToken := range c.SupportedTokens {
		token, err := config.NewSupportedToken(rawToken, *c.Id == homeChainID)
		if err != nil {
			return nil, fmt.Errorf("invalid token on chain %d: %w", *c.Id, err)
		}
		tokens[i] = token
	}

	deployment, _ := across.SupportedChain(*c.Id)
	return &DestinationChainConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		SpokePool:          deployment.SpokePool,
		FeeMarket:          c.FeeMarket,
		FallbackGasPrice:   fallbackGasPrice,
		GasPriceDivisor:    divisor,
		SupportedTokens:    tokens,
	}, nil
}

// ChainTable is the validated set of chains the relayer works with.
type ChainTable struct {
	sources      map[uint64]SourceChainConfig
	destinations map[uint64]DestinationChainConfig
}

func NewChainTable(sources []*SourceChainConfig, destinations []*DestinationChainConfig) (*ChainTable, error) {
	t := &ChainTable{
		sources:      make(map[uint64]SourceChainConfig),
		destinations: make(map[uint64]DestinationChainConfig),
	}

	for _, s := range sources {
		id := *s.GeneralChainConfig.Id
		if _, ok := t.sources[id]; ok {
			return nil, fmt.Errorf("duplicate source chain %d", id)
		}
		t.sources[id] = *s
	}
	for _, d := range destinations {
		id := *d.GeneralChainConfig.Id
		if _, ok := t.destinations[id]; ok {
			return nil, fmt.Errorf("duplicate destination chain %d", id)
		}
		t.destinations[id] = *d
	}

	return t, nil
}

func (t *ChainTable) Source(id uint64) (SourceChainConfig, bool) {
	c, ok := t.sources[id]
	return c, ok
}

func (t *ChainTable) Destination(id uint64) (DestinationChainConfig, bool) {
	c, ok := t.destinations[id]
	return c, ok
}

// Sources returns source chain configs ordered by chain id.
func (t *ChainTable) Sources() []SourceChainConfig {
	configs := make([]SourceChainConfig, 0, len(t.sources))
	for _, id := range sortedKeys(t.sources) {
		configs = append(configs, t.sources[id])
	}
	return configs
}

// Destinations returns destination chain configs ordered by chain id.
func (t *ChainTable) Destinations() []DestinationChainConfig {
	configs := make([]DestinationChainConfig, 0, len(t.destinations))
	for _, id := range sortedKeys(t.destinations) {
		configs = append(configs, t.destinations[id])
	}
	return configs
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
