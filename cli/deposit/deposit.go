package deposit

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/sprintertech/across-relayer/app"
	"github.com/sprintertech/across-relayer/chains/evm/client"
	"github.com/sprintertech/across-relayer/chains/evm/order"
	"github.com/sprintertech/across-relayer/protocol/across"
)

var (
	DepositCMD = &cobra.Command{
		Use:   "deposit",
		Short: "Check a deposit",
		Long: "CLI fetches the deposit from the source chain transaction and prints " +
			"whether the relayer would fill it with the current configuration",
		RunE: checkDeposit,
	}
)

var (
	chainID   uint64
	txHash    string
	depositID uint32
	relayer   string
)

func init() {
	DepositCMD.PersistentFlags().Uint64Var(&chainID, "chain-id", 0, "source chain id")
	_ = DepositCMD.MarkPersistentFlagRequired("chain-id")
	DepositCMD.PersistentFlags().StringVar(&txHash, "tx", "", "deposit transaction hash")
	_ = DepositCMD.MarkPersistentFlagRequired("tx")
	DepositCMD.PersistentFlags().Uint32Var(&depositID, "deposit-id", 0, "deposit id")
	_ = DepositCMD.MarkPersistentFlagRequired("deposit-id")
	DepositCMD.PersistentFlags().StringVar(&relayer, "relayer", "", "relayer address, defaults to the configured key address")
}

func checkDeposit(cmd *cobra.Command, args []string) error {
	configuration, err := app.LoadConfig()
	if err != nil {
		return err
	}
	chains, err := app.NewChainTable(configuration)
	if err != nil {
		return err
	}

	source, ok := chains.Source(chainID)
	if !ok {
		return fmt.Errorf("chain %d is not a configured source chain", chainID)
	}

	self := common.HexToAddress(relayer)
	if relayer == "" {
		signer, err := client.NewPrivateKeySigner(configuration.RelayerConfig.Key)
		if err != nil {
			return err
		}
		self = signer.CommonAddress()
	}

	ctx := context.Background()
	c, err := client.NewEVMClient(ctx, source.GeneralChainConfig.Endpoint, nil, client.PollingConfig{})
	if err != nil {
		return err
	}

	deposit, err := across.NewDepositFetcher(c, source.SpokePool).Deposit(ctx, common.HexToHash(txHash), depositID)
	if err != nil {
		return err
	}
	fmt.Printf("Deposit %d found in block %d\n", deposit.DepositId, deposit.BlockNumber)
	fmt.Printf("%+v\n", *deposit)

	fillOrder, rejection := order.Filter(*deposit, source, chains, self)
	if rejection != order.Accepted {
		fmt.Printf("Deposit rejected: %s\n", rejection)
		return nil
	}

	depth, ok := source.Confirmations.RequiredDepth(fillOrder.Amount())
	if !ok {
		fmt.Printf("Deposit accepted but no confirmation threshold matches amount %s\n", fillOrder.Amount())
		return nil
	}
	fmt.Printf("Deposit accepted for destination %d with %d confirmations\n", fillOrder.DestinationChainId, depth)
	return nil
}
