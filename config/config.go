// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sprintertech/across-relayer/config/relayer"
)

const (
	ConfigFlagName = "config"
	ENV_PREFIX     = "RELAYER"
)

type Config struct {
	RelayerConfig     relayer.RelayerConfig
	SourceChains      []map[string]interface{}
	DestinationChains []map[string]interface{}
}

type RawConfig struct {
	RelayerConfig     relayer.RawRelayerConfig `mapstructure:"relayer" json:"relayer"`
	SourceChains      []map[string]interface{} `mapstructure:"sourceChains" json:"sourceChains"`
	DestinationChains []map[string]interface{} `mapstructure:"destinationChains" json:"destinationChains"`
}

// BindFlags registers the configuration flags shared by all commands.
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON configuration file")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))
}

// GetConfigFromFile reads the configuration file at path. Relayer values set
// through RELAYER_* environment variables take precedence over the file.
func GetConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	rawConfig := RawConfig{}
	err = v.Unmarshal(&rawConfig)
	if err != nil {
		return nil, err
	}

	envRelayerConfig, err := rawRelayerConfigFromENV()
	if err != nil {
		return nil, err
	}
	err = mergo.Merge(&rawConfig.RelayerConfig, envRelayerConfig, mergo.WithOverride)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

// GetConfigFromENV builds the configuration purely from environment variables.
// Chains are expected as JSON arrays in RELAYER_SOURCE_CHAINS and
// RELAYER_DESTINATION_CHAINS.
func GetConfigFromENV() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()

	rawRelayerConfig, err := rawRelayerConfigFromENV()
	if err != nil {
		return nil, err
	}

	sourceChains, err := chainsFromENV(v, "SOURCE_CHAINS")
	if err != nil {
		return nil, err
	}
	destinationChains, err := chainsFromENV(v, "DESTINATION_CHAINS")
	if err != nil {
		return nil, err
	}

	return processRawConfig(RawConfig{
		RelayerConfig:     rawRelayerConfig,
		SourceChains:      sourceChains,
		DestinationChains: destinationChains,
	})
}

func rawRelayerConfigFromENV() (relayer.RawRelayerConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()

	c := relayer.RawRelayerConfig{
		LogLevel:     v.GetString("LOG_LEVEL"),
		Simulate:     v.GetBool("SIMULATE"),
		Key:          v.GetString("KEY"),
		KeyFile:      v.GetString("KEY_FILE"),
		HomeEndpoint: v.GetString("HOME_ENDPOINT"),
		ApiAddr:      v.GetString("API_ADDR"),
		AutoApprove:  v.GetBool("AUTO_APPROVE"),

		OpenTelemetryCollectorURL: v.GetString("OPEN_TELEMETRY_COLLECTOR_URL"),
	}
	return c, nil
}

func chainsFromENV(v *viper.Viper, key string) ([]map[string]interface{}, error) {
	raw := v.GetString(key)
	if raw == "" {
		return []map[string]interface{}{}, nil
	}

	jv := viper.New()
	jv.SetConfigType("json")
	err := jv.ReadConfig(strings.NewReader(fmt.Sprintf(`{"chains": %s}`, raw)))
	if err != nil {
		return nil, fmt.Errorf("failed parsing %s_%s: %w", ENV_PREFIX, key, err)
	}

	var chains []map[string]interface{}
	err = mapstructure.Decode(jv.Get("chains"), &chains)
	if err != nil {
		return nil, err
	}
	return chains, nil
}

func processRawConfig(rawConfig RawConfig) (*Config, error) {
	err := defaults.Set(&rawConfig.RelayerConfig)
	if err != nil {
		return nil, err
	}

	relayerConfig, err := relayer.NewRelayerConfig(rawConfig.RelayerConfig)
	if err != nil {
		return nil, err
	}

	if len(rawConfig.SourceChains) == 0 {
		return nil, fmt.Errorf("at least one source chain is required")
	}
	if len(rawConfig.DestinationChains) == 0 {
		return nil, fmt.Errorf("at least one destination chain is required")
	}

	return &Config{
		RelayerConfig:     relayerConfig,
		SourceChains:      rawConfig.SourceChains,
		DestinationChains: rawConfig.DestinationChains,
	}, nil
}
