// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package contracts binds the HubPool, ConfigStore and ERC20 contracts.
// Calls go through go-ethereum's bound contract instead of sygma-core's
// contracts.Contract because every HubPool and ConfigStore read is pinned to
// a block, and sygma-core's CallContract takes neither a block nor a context.
package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Contract is a binding to a deployed contract. Contracts created without a
// transactor are read only.
type Contract struct {
	*bind.BoundContract
	address common.Address
	abi     abi.ABI
}

func NewContract(caller bind.ContractCaller, transactor bind.ContractTransactor, address common.Address, contractABI abi.ABI) Contract {
	return Contract{
		BoundContract: bind.NewBoundContract(address, contractABI, caller, transactor, nil),
		address:       address,
		abi:           contractABI,
	}
}

func (c *Contract) Address() common.Address {
	return c.address
}

// CallContract calls the contract method at the given block. The latest
// block is used if blockNumber is nil.
func (c *Contract) CallContract(ctx context.Context, blockNumber *big.Int, method string, args ...interface{}) ([]interface{}, error) {
	var res []interface{}
	err := c.Call(&bind.CallOpts{
		Context:     ctx,
		BlockNumber: blockNumber,
	}, &res, method, args...)
	if err != nil {
		return nil, err
	}

	return res, nil
}
