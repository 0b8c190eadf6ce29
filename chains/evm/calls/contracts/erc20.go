package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
)

type ERC20Contract struct {
	Contract
}

func NewERC20Contract(
	backend bind.ContractBackend,
	address common.Address,
) *ERC20Contract {
	return &ERC20Contract{
		Contract: NewContract(backend, backend, address, consts.ERC20ABI),
	}
}

func (c *ERC20Contract) Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error) {
	res, err := c.CallContract(ctx, nil, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *ERC20Contract) Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	return c.Transact(opts, "approve", spender, amount)
}
