package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
)

type ConfigStoreContract struct {
	Contract
}

func NewConfigStoreContract(
	caller bind.ContractCaller,
	address common.Address,
) *ConfigStoreContract {
	return &ConfigStoreContract{
		Contract: NewContract(caller, nil, address, consts.ConfigStoreABI),
	}
}

// L1TokenConfig returns the raw JSON rate model configuration of the l1 token.
func (c *ConfigStoreContract) L1TokenConfig(ctx context.Context, blockNumber *big.Int, l1Token common.Address) (string, error) {
	res, err := c.CallContract(ctx, blockNumber, "l1TokenConfig", l1Token)
	if err != nil {
		return "", err
	}

	return *abi.ConvertType(res[0], new(string)).(*string), nil
}
