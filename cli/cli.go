// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sprintertech/across-relayer/app"
	"github.com/sprintertech/across-relayer/cli/approve"
	"github.com/sprintertech/across-relayer/cli/deposit"
	"github.com/sprintertech/across-relayer/config"
)

var (
	rootCMD = &cobra.Command{
		Use: "",
	}
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run relayer",
		Long:  "Watches source chains for deposits and fills them on destination chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)

func init() {
	config.BindFlags(rootCMD)
	rootCMD.PersistentFlags().String("name", "", "relayer name")
	_ = viper.BindPFlag("name", rootCMD.PersistentFlags().Lookup("name"))
}

func Execute() {
	rootCMD.AddCommand(runCMD, approve.ApproveCMD, deposit.DepositCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
