// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
	"os"

	"github.com/sprintertech/across-relayer/protocol/across"
)

type GeneralChainConfig struct {
	Name     string  `mapstructure:"name"`
	Id       *uint64 `mapstructure:"id"`
	Endpoint string  `mapstructure:"endpoint"`
}

func (c *GeneralChainConfig) Validate() error {
	// viper defaults to 0 for not specified ints
	if c.Id == nil {
		return fmt.Errorf("required field chain.Id empty for chain %s", c.Name)
	}
	if _, ok := across.SupportedChain(*c.Id); !ok {
		return fmt.Errorf("chain id %d is not supported", *c.Id)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	return nil
}

// ParseEnv falls back to the RPC_PROVIDER_<id> environment variable
// when no endpoint is configured.
func (c *GeneralChainConfig) ParseEnv() {
	if c.Endpoint != "" || c.Id == nil {
		return
	}

	c.Endpoint = os.Getenv(fmt.Sprintf("RPC_PROVIDER_%d", *c.Id))
}
