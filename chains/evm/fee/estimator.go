package fee

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sprintertech/across-relayer/chains/evm"
	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
	"github.com/sprintertech/across-relayer/chains/evm/order"
)

const (
	FEE_MARKET_GAS_MULTIPLIER = 2
	LEGACY_GAS_MULTIPLIER     = 5
)

var ErrEstimation = errors.New("fee estimation failed")

// GasPolicy holds the gas parameters of a fill. Either GasPrice or the
// fee market fields are set.
type GasPolicy struct {
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	GasLimit             uint64
}

func (p GasPolicy) FeeMarket() bool {
	return p.MaxFeePerGas != nil
}

type HeaderReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

type UtilizationReader interface {
	LiquidityUtilizationCurrent(ctx context.Context, blockNumber *big.Int, l1Token common.Address) (*big.Int, error)
	LiquidityUtilizationPostRelay(ctx context.Context, blockNumber *big.Int, l1Token common.Address, amount *big.Int) (*big.Int, error)
}

type TokenConfigReader interface {
	L1TokenConfig(ctx context.Context, blockNumber *big.Int, l1Token common.Address) (string, error)
}

type DestinationRegistry interface {
	Destination(id uint64) (evm.DestinationChainConfig, bool)
}

type Estimator struct {
	homeChainID      uint64
	averageBlockTime time.Duration

	home         HeaderReader
	hubPool      UtilizationReader
	configStore  TokenConfigReader
	lpFees       LpFeeCalculator
	tiers        GasTierTable
	destinations DestinationRegistry

	log zerolog.Logger
}

func NewEstimator(
	homeChainID uint64,
	averageBlockTime time.Duration,
	home HeaderReader,
	hubPool UtilizationReader,
	configStore TokenConfigReader,
	lpFees LpFeeCalculator,
	tiers GasTierTable,
	destinations DestinationRegistry,
	log zerolog.Logger,
) *Estimator {
	return &Estimator{
		homeChainID:      homeChainID,
		averageBlockTime: averageBlockTime,
		home:             home,
		hubPool:          hubPool,
		configStore:      configStore,
		lpFees:           lpFees,
		tiers:            tiers,
		destinations:     destinations,
		log:              log,
	}
}

// Estimate derives the fill gas policy from the part of the relayer fee
// the order leaves after LP fees.
func (e *Estimator) Estimate(ctx context.Context, fillOrder order.NormalizedFillOrder) (GasPolicy, error) {
	destination, ok := e.destinations.Destination(fillOrder.DestinationChainId)
	if !ok {
		return GasPolicy{}, fmt.Errorf("%w: unknown destination chain %d", ErrEstimation, fillOrder.DestinationChainId)
	}

	if fillOrder.OriginChainID() == e.homeChainID {
		return e.policy(destination, destination.FallbackGasPrice), nil
	}

	relayerFee, err := e.relayerFee(ctx, fillOrder)
	if err != nil {
		return GasPolicy{}, fmt.Errorf("%w: %w", ErrEstimation, err)
	}
	if relayerFee.Sign() <= 0 {
		e.log.Debug().Msgf("Relayer fee %s not positive, using fallback gas price", relayerFee)
		return e.policy(destination, destination.FallbackGasPrice), nil
	}

	fraction, ok := e.tiers.Fraction(normalize(fillOrder.RelayData.OutputAmount, fillOrder.Token.Decimals))
	if !ok {
		e.log.Debug().Msgf("No gas tier for output amount %s, using fallback gas price", fillOrder.RelayData.OutputAmount)
		return e.policy(destination, destination.FallbackGasPrice), nil
	}

	gasPrice := GasPrice(relayerFee, fraction, consts.GAS_USED_PER_SPOKE_POOL_FILL)
	if destination.GasPriceDivisor > 1 {
		gasPrice = divCeil(gasPrice, new(big.Int).SetUint64(destination.GasPriceDivisor))
	}
	return e.policy(destination, gasPrice), nil
}

func (e *Estimator) policy(destination evm.DestinationChainConfig, gasPrice *big.Int) GasPolicy {
	if destination.FeeMarket {
		return GasPolicy{
			MaxFeePerGas:         gasPrice,
			MaxPriorityFeePerGas: gasPrice,
			GasLimit:             consts.GAS_USED_PER_SPOKE_POOL_FILL * FEE_MARKET_GAS_MULTIPLIER,
		}
	}

	return GasPolicy{
		GasPrice: gasPrice,
		GasLimit: consts.GAS_USED_PER_SPOKE_POOL_FILL * LEGACY_GAS_MULTIPLIER,
	}
}

// relayerFee returns inputAmount - outputAmount - lpFee with the LP fee
// priced at the home chain block closest to the order quote time.
func (e *Estimator) relayerFee(ctx context.Context, fillOrder order.NormalizedFillOrder) (*big.Int, error) {
	block, err := e.closestBlock(ctx, fillOrder.QuoteTimestamp)
	if err != nil {
		return nil, err
	}

	l1Token := fillOrder.Token.L1Token
	input := fillOrder.RelayData.InputAmount
	current, err := e.hubPool.LiquidityUtilizationCurrent(ctx, block, l1Token)
	if err != nil {
		return nil, err
	}
	postRelay, err := e.hubPool.LiquidityUtilizationPostRelay(ctx, block, l1Token, input)
	if err != nil {
		return nil, err
	}
	rawConfig, err := e.configStore.L1TokenConfig(ctx, block, l1Token)
	if err != nil {
		return nil, err
	}
	tokenConfig, err := ParseL1TokenConfig(rawConfig)
	if err != nil {
		return nil, err
	}

	model := tokenConfig.ModelFor(fillOrder.OriginChainID(), fillOrder.DestinationChainId)
	lpFeePct := e.lpFees.RealizedLpFeePct(model, current, postRelay)
	lpFee := mulDiv(input, lpFeePct, fixedPoint)

	relayerFee := new(big.Int).Sub(input, fillOrder.RelayData.OutputAmount)
	relayerFee.Sub(relayerFee, lpFee)
	e.log.Debug().Msgf("Relayer fee %s, lp fee %s at block %s", relayerFee, lpFee, block)
	return relayerFee, nil
}

// closestBlock estimates the home chain block mined at timestamp from the
// average block time.
func (e *Estimator) closestBlock(ctx context.Context, timestamp uint32) (*big.Int, error) {
	latest, err := e.home.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}

	if latest.Time <= uint64(timestamp) {
		return latest.Number, nil
	}

	offset := (latest.Time - uint64(timestamp)) / uint64(e.averageBlockTime.Seconds())
	block := new(big.Int).Sub(latest.Number, new(big.Int).SetUint64(offset))
	if block.Sign() < 0 {
		return big.NewInt(0), nil
	}
	return block, nil
}

// normalize scales amount to 18 decimals.
func normalize(amount *big.Int, decimals uint8) *big.Int {
	return decimal.NewFromBigInt(amount, 0).Shift(18 - int32(decimals)).BigInt()
}
