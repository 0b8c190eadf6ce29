// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sygmaprotocol/sygma-core/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/sprintertech/across-relayer/api"
	"github.com/sprintertech/across-relayer/api/handlers"
	"github.com/sprintertech/across-relayer/cache"
	"github.com/sprintertech/across-relayer/chains/evm"
	"github.com/sprintertech/across-relayer/chains/evm/calls/contracts"
	"github.com/sprintertech/across-relayer/chains/evm/client"
	"github.com/sprintertech/across-relayer/chains/evm/confirmations"
	"github.com/sprintertech/across-relayer/chains/evm/executor"
	"github.com/sprintertech/across-relayer/chains/evm/fee"
	"github.com/sprintertech/across-relayer/chains/evm/listener"
	"github.com/sprintertech/across-relayer/config"
	"github.com/sprintertech/across-relayer/metrics"
	"github.com/sprintertech/across-relayer/relayer"
)

const (
	METER_NAME = "relayer-metric-provider"
)

var Version string

// LoadConfig reads the configuration from the file set with the config flag
// or from the environment if the flag is set to "env".
func LoadConfig() (*config.Config, error) {
	configFlag := viper.GetString(config.ConfigFlagName)
	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV()
	}

	return config.GetConfigFromFile(configFlag)
}

// NewChainTable validates every configured source and destination chain.
func NewChainTable(configuration *config.Config) (*evm.ChainTable, error) {
	sources := make([]*evm.SourceChainConfig, 0, len(configuration.SourceChains))
	for _, chainConfig := range configuration.SourceChains {
		c, err := evm.NewSourceChainConfig(chainConfig)
		if err != nil {
			return nil, err
		}
		sources = append(sources, c)
	}

	destinations := make([]*evm.DestinationChainConfig, 0, len(configuration.DestinationChains))
	for _, chainConfig := range configuration.DestinationChains {
		c, err := evm.NewDestinationChainConfig(chainConfig, configuration.RelayerConfig.HomeChainId)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, c)
	}

	return evm.NewChainTable(sources, destinations)
}

func Run() error {
	configuration, err := LoadConfig()
	if err != nil {
		return err
	}
	relayerConfig := configuration.RelayerConfig

	observability.ConfigureLogger(relayerConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var meter metric.Meter
	if relayerConfig.OpenTelemetryCollectorURL != "" {
		mp, err := observability.InitMetricProvider(ctx, relayerConfig.OpenTelemetryCollectorURL)
		if err != nil {
			return err
		}
		defer func() {
			if err := mp.Shutdown(context.Background()); err != nil {
				log.Error().Msgf("Error shutting down meter provider: %v", err)
			}
		}()
		meter = mp.Meter(METER_NAME)
	} else {
		meter = otel.GetMeterProvider().Meter(METER_NAME)
	}

	relayerName := viper.GetString("name")
	relayerMetrics, err := metrics.NewRelayerMetrics(ctx, meter, relayerName, Version)
	if err != nil {
		return err
	}

	signer, err := client.NewPrivateKeySigner(relayerConfig.Key)
	if err != nil {
		return err
	}

	chains, err := NewChainTable(configuration)
	if err != nil {
		return err
	}

	homeClient, err := client.NewEVMClient(ctx, relayerConfig.HomeEndpoint, nil, client.PollingConfig{})
	if err != nil {
		return err
	}
	estimator := fee.NewEstimator(
		relayerConfig.HomeChainId,
		relayerConfig.AverageBlockTime,
		homeClient,
		contracts.NewHubPoolContract(homeClient, relayerConfig.HubPool),
		contracts.NewConfigStoreContract(homeClient, relayerConfig.ConfigStore),
		fee.RateCurveCalculator{},
		fee.DefaultGasTierTable(),
		chains,
		log.With().Str("component", "estimator").Logger(),
	)

	executors := make(map[uint64]relayer.Executor)
	for _, destination := range chains.Destinations() {
		id := *destination.GeneralChainConfig.Id
		l := log.With().Str("chain", destination.GeneralChainConfig.Name).Uint64("domainID", id).Logger()

		c, err := client.NewEVMClient(ctx, destination.GeneralChainConfig.Endpoint, signer, client.PollingConfig{})
		if err != nil {
			return err
		}

		checker := relayer.NewAllowanceChecker(c, func(token common.Address) relayer.TokenApprover {
			return contracts.NewERC20Contract(c, token)
		}, signer.CommonAddress(), destination.SpokePool, l)
		err = checker.Check(ctx, destination.SupportedTokens, relayerConfig.AutoApprove)
		if err != nil {
			return fmt.Errorf("allowance check on chain %d failed: %w", id, err)
		}

		log.Info().Uint64("chain", id).Msgf("Registering destination chain")
		executors[id] = executor.NewExecutor(c, id, destination.SpokePool, l)
	}

	gates := make(map[uint64]relayer.Gate)
	watchers := make([]*listener.ChainWatcher, 0)
	confirmationsByChain := make(map[uint64]map[string]uint64)
	depositCache := cache.NewDepositCache(ctx, cache.DEPOSIT_TTL)
	pipeline := relayer.NewPipeline(
		chains,
		gates,
		estimator,
		executors,
		signer.CommonAddress(),
		relayerConfig.Simulate,
		relayerMetrics,
		log.Logger,
	)
	for _, source := range chains.Sources() {
		id := *source.GeneralChainConfig.Id
		l := log.With().Str("chain", source.GeneralChainConfig.Name).Uint64("domainID", id).Logger()

		c, err := client.NewEVMClient(ctx, source.GeneralChainConfig.Endpoint, nil, client.PollingConfig{
			LogInterval:  source.PollingInterval,
			HeadInterval: source.BlockPollingInterval,
			BlockRange:   source.BlockRange.Uint64(),
		})
		if err != nil {
			return err
		}

		log.Info().Uint64("chain", id).Msgf("Registering source chain")
		gates[id] = confirmations.NewGate(c, source.Confirmations, l)
		confirmationsByChain[id] = source.Confirmations.Table()
		watchers = append(watchers, listener.NewChainWatcher(
			c,
			id,
			source.SpokePool,
			depositCache,
			pipeline,
			relayerConfig.ResubscribeInterval,
			relayerConfig.ResubscribeOverlap,
			l,
		))
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, watcher := range watchers {
		g.Go(func() error {
			return watcher.Watch(gCtx)
		})
	}

	if relayerConfig.ApiAddr != "" {
		go api.Serve(
			ctx,
			relayerConfig.ApiAddr,
			handlers.NewConfirmationsHandler(confirmationsByChain),
			handlers.NewTokensHandler(chains),
		)
	}

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf(
		"Started relayer: %s with address %s. Version: v%s. Simulate: %t",
		relayerName, signer.CommonAddress().Hex(), Version, relayerConfig.Simulate,
	)

	select {
	case sig := <-sysErr:
		log.Info().Msgf("terminating, got [%v] signal", sig)
	case <-gCtx.Done():
	}

	cancel()
	return g.Wait()
}
