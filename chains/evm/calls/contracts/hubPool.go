// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
)

type HubPoolContract struct {
	Contract
}

func NewHubPoolContract(
	caller bind.ContractCaller,
	address common.Address,
) *HubPoolContract {
	return &HubPoolContract{
		Contract: NewContract(caller, nil, address, consts.HubPoolABI),
	}
}

// LiquidityUtilizationCurrent returns the pool utilization of the l1 token
// in 1e18 units.
func (c *HubPoolContract) LiquidityUtilizationCurrent(ctx context.Context, blockNumber *big.Int, l1Token common.Address) (*big.Int, error) {
	res, err := c.CallContract(ctx, blockNumber, "liquidityUtilizationCurrent", l1Token)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

// LiquidityUtilizationPostRelay returns the pool utilization of the l1 token
// after relaying amount.
func (c *HubPoolContract) LiquidityUtilizationPostRelay(
	ctx context.Context,
	blockNumber *big.Int,
	l1Token common.Address,
	amount *big.Int,
) (*big.Int, error) {
	res, err := c.CallContract(ctx, blockNumber, "liquidityUtilizationPostRelay", l1Token, amount)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}
