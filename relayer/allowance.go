package relayer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"

	"github.com/sprintertech/across-relayer/config"
)

type TokenApprover interface {
	Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error)
	Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*types.Transaction, error)
}

type TransactClient interface {
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// AllowanceChecker makes sure the spoke pool of a destination chain can
// pull the relayer's tokens when filling.
type AllowanceChecker struct {
	client    TransactClient
	approver  func(token common.Address) TokenApprover
	owner     common.Address
	spokePool common.Address
	log       zerolog.Logger
}

func NewAllowanceChecker(
	client TransactClient,
	approver func(token common.Address) TokenApprover,
	owner common.Address,
	spokePool common.Address,
	log zerolog.Logger,
) *AllowanceChecker {
	return &AllowanceChecker{
		client:    client,
		approver:  approver,
		owner:     owner,
		spokePool: spokePool,
		log:       log,
	}
}

// Check fails on the first token without allowance unless autoApprove is
// set, in which case the missing allowance is approved.
func (c *AllowanceChecker) Check(ctx context.Context, tokens []config.SupportedToken, autoApprove bool) error {
	for _, token := range tokens {
		allowance, err := c.approver(token.Address).Allowance(ctx, c.owner, c.spokePool)
		if err != nil {
			return fmt.Errorf("failed fetching %s allowance: %w", token.Symbol, err)
		}
		if allowance.Sign() > 0 {
			c.log.Debug().Msgf("Allowance of %s for spoke pool %s: %s", token.Symbol, c.spokePool.Hex(), allowance)
			continue
		}

		if !autoApprove {
			return fmt.Errorf("spoke pool %s has no %s allowance", c.spokePool.Hex(), token.Symbol)
		}

		err = c.Approve(ctx, token)
		if err != nil {
			return err
		}
	}

	return nil
}

// Approve submits a max approval of the token for the spoke pool and waits for it to be mined.
func (c *AllowanceChecker) Approve(ctx context.Context, token config.SupportedToken) error {
	opts, err := c.client.TransactOpts(ctx)
	if err != nil {
		return err
	}

	tx, err := c.approver(token.Address).Approve(opts, c.spokePool, math.MaxBig256)
	if err != nil {
		return fmt.Errorf("failed approving %s: %w", token.Symbol, err)
	}
	c.log.Info().Msgf("Approving %s for spoke pool %s: %s", token.Symbol, c.spokePool.Hex(), tx.Hash().Hex())

	receipt, err := c.client.WaitMined(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed waiting for %s approval: %w", token.Symbol, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%s approval %s failed", token.Symbol, tx.Hash().Hex())
	}

	return nil
}
