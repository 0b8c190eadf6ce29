// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/sprintertech/across-relayer/protocol/across"
)

type RelayerConfig struct {
	LogLevel zerolog.Level
	Simulate bool
	// Hex encoded secp256k1 private key used to sign fills.
	Key string

	HomeChainId  uint64
	HomeEndpoint string
	HubPool      common.Address
	ConfigStore  common.Address

	ResubscribeInterval time.Duration
	ResubscribeOverlap  uint64
	AverageBlockTime    time.Duration

	AutoApprove bool
	ApiAddr     string

	OpenTelemetryCollectorURL string
}

type RawRelayerConfig struct {
	LogLevel            string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	Simulate            bool   `mapstructure:"simulate" json:"simulate"`
	Key                 string `mapstructure:"key" json:"key"`
	KeyFile             string `mapstructure:"keyFile" json:"keyFile"`
	HomeChainId         uint64 `mapstructure:"homeChainId" json:"homeChainId" default:"1"`
	HomeEndpoint        string `mapstructure:"homeEndpoint" json:"homeEndpoint"`
	ResubscribeInterval uint64 `mapstructure:"resubscribeInterval" json:"resubscribeInterval" default:"300"`
	ResubscribeOverlap  uint64 `mapstructure:"resubscribeOverlap" json:"resubscribeOverlap" default:"5"`
	AverageBlockTime    uint64 `mapstructure:"averageBlockTime" json:"averageBlockTime" default:"12"`
	AutoApprove         bool   `mapstructure:"autoApprove" json:"autoApprove"`
	ApiAddr             string `mapstructure:"apiAddr" json:"apiAddr"`

	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
}

// NewRelayerConfig validates the raw relayer configuration and resolves
// the signing key.
func NewRelayerConfig(rawConfig RawRelayerConfig) (RelayerConfig, error) {
	config := RelayerConfig{}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level %s: %w", rawConfig.LogLevel, err)
	}

	key, err := resolvePrivateKey(rawConfig.Key, rawConfig.KeyFile)
	if err != nil {
		return config, err
	}

	hub, ok := across.HubDeployment(rawConfig.HomeChainId)
	if !ok {
		return config, fmt.Errorf("home chain %d does not host the HubPool", rawConfig.HomeChainId)
	}

	if rawConfig.HomeEndpoint == "" {
		rawConfig.HomeEndpoint = os.Getenv(fmt.Sprintf("RPC_PROVIDER_%d", rawConfig.HomeChainId))
	}
	if rawConfig.HomeEndpoint == "" {
		return config, fmt.Errorf("required field relayer.homeEndpoint empty")
	}
	if rawConfig.ResubscribeInterval == 0 {
		return config, fmt.Errorf("relayer.resubscribeInterval must be positive")
	}
	if rawConfig.AverageBlockTime == 0 {
		return config, fmt.Errorf("relayer.averageBlockTime must be positive")
	}

	config.LogLevel = logLevel
	config.Simulate = rawConfig.Simulate
	config.Key = key
	config.HomeChainId = rawConfig.HomeChainId
	config.HomeEndpoint = rawConfig.HomeEndpoint
	config.HubPool = hub.HubPool
	config.ConfigStore = hub.ConfigStore
	// nolint:gosec
	config.ResubscribeInterval = time.Duration(rawConfig.ResubscribeInterval) * time.Second
	config.ResubscribeOverlap = rawConfig.ResubscribeOverlap
	// nolint:gosec
	config.AverageBlockTime = time.Duration(rawConfig.AverageBlockTime) * time.Second
	config.AutoApprove = rawConfig.AutoApprove
	config.ApiAddr = rawConfig.ApiAddr
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	return config, nil
}

func resolvePrivateKey(key, keyFile string) (string, error) {
	if key != "" {
		return strings.TrimPrefix(key, "0x"), nil
	}

	if keyFile == "" {
		return "", fmt.Errorf("private key not supplied")
	}
	contents, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to load private key: %w", err)
	}
	return strings.TrimPrefix(strings.TrimSpace(string(contents)), "0x"), nil
}
