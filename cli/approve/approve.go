package approve

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sprintertech/across-relayer/app"
	"github.com/sprintertech/across-relayer/chains/evm/calls/contracts"
	"github.com/sprintertech/across-relayer/chains/evm/client"
	"github.com/sprintertech/across-relayer/relayer"
)

var (
	ApproveCMD = &cobra.Command{
		Use:   "approve",
		Short: "Approve destination tokens",
		Long: "CLI approves the spoke pool of the destination chain to spend the " +
			"relayer's supported tokens that have no allowance",
		RunE: approveTokens,
	}
)

var (
	chainID uint64
	symbol  string
)

func init() {
	ApproveCMD.PersistentFlags().Uint64Var(&chainID, "chain-id", 0, "destination chain id")
	_ = ApproveCMD.MarkPersistentFlagRequired("chain-id")
	ApproveCMD.PersistentFlags().StringVar(&symbol, "symbol", "", "approve only the token with this symbol")
}

func approveTokens(cmd *cobra.Command, args []string) error {
	configuration, err := app.LoadConfig()
	if err != nil {
		return err
	}
	chains, err := app.NewChainTable(configuration)
	if err != nil {
		return err
	}

	destination, ok := chains.Destination(chainID)
	if !ok {
		return fmt.Errorf("chain %d is not a configured destination chain", chainID)
	}
	tokens := destination.SupportedTokens
	if symbol != "" {
		tokens = nil
		for _, t := range destination.SupportedTokens {
			if t.Symbol == symbol {
				tokens = append(tokens, t)
			}
		}
		if len(tokens) == 0 {
			return fmt.Errorf("token %s not supported on chain %d", symbol, chainID)
		}
	}

	signer, err := client.NewPrivateKeySigner(configuration.RelayerConfig.Key)
	if err != nil {
		return err
	}
	ctx := context.Background()
	c, err := client.NewEVMClient(ctx, destination.GeneralChainConfig.Endpoint, signer, client.PollingConfig{})
	if err != nil {
		return err
	}

	checker := relayer.NewAllowanceChecker(c, func(token common.Address) relayer.TokenApprover {
		return contracts.NewERC20Contract(c, token)
	}, signer.CommonAddress(), destination.SpokePool, log.Logger)
	err = checker.Check(ctx, tokens, true)
	if err != nil {
		return err
	}

	fmt.Printf("Spoke pool %s approved for %d tokens on chain %d\n", destination.SpokePool.Hex(), len(tokens), chainID)
	return nil
}
