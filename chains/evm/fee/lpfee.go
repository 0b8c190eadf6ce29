package fee

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
)

const (
	WEEKS_PER_YEAR = 52
	POW_PRECISION  = 40
)

var (
	fixedPoint     = big.NewInt(params.Ether)
	weeklyExponent = decimal.NewFromInt(1).DivRound(decimal.NewFromInt(WEEKS_PER_YEAR), POW_PRECISION)
)

// LpFeeCalculator computes the realized LP fee percentage, in 1e18 units,
// of moving pool utilization from utilizationBefore to utilizationAfter.
type LpFeeCalculator interface {
	RealizedLpFeePct(model RateModel, utilizationBefore, utilizationAfter *big.Int) *big.Int
}

// RateCurveCalculator integrates the rate model curve over the utilization
// range of a relay and converts the resulting APY into a weekly fee.
type RateCurveCalculator struct{}

func (c RateCurveCalculator) RealizedLpFeePct(model RateModel, utilizationBefore, utilizationAfter *big.Int) *big.Int {
	apy := c.annualizedRate(model, utilizationBefore, utilizationAfter)
	return weeklyFee(apy)
}

func (c RateCurveCalculator) annualizedRate(model RateModel, before, after *big.Int) *big.Int {
	if before.Cmp(after) == 0 {
		return instantaneousRate(model, before)
	}

	area := new(big.Int).Sub(areaUnderCurve(model, after), areaUnderCurve(model, before))
	area.Mul(area, fixedPoint)
	return area.Div(area, new(big.Int).Sub(after, before))
}

func instantaneousRate(model RateModel, utilization *big.Int) *big.Int {
	beforeKink := minInt(utilization, model.UBar)
	beforeKink.Mul(beforeKink, model.R1)
	beforeKink.Div(beforeKink, model.UBar)

	rate := new(big.Int).Add(model.R0, beforeKink)

	excess := new(big.Int).Sub(utilization, model.UBar)
	remaining := new(big.Int).Sub(fixedPoint, model.UBar)
	if excess.Sign() > 0 && remaining.Sign() > 0 {
		excess.Mul(excess, model.R2)
		rate.Add(rate, excess.Div(excess, remaining))
	}
	return rate
}

func areaUnderCurve(model RateModel, utilization *big.Int) *big.Int {
	beforeKink := minInt(utilization, model.UBar)
	area := mulDiv(beforeKink, model.R0, fixedPoint)
	// triangle between R0 and the rate at the kink side
	triangle := new(big.Int).Sub(instantaneousRate(model, beforeKink), model.R0)
	triangle.Mul(triangle, beforeKink)
	area.Add(area, triangle.Div(triangle, new(big.Int).Mul(big.NewInt(2), fixedPoint)))

	afterKink := new(big.Int).Sub(utilization, model.UBar)
	if afterKink.Sign() <= 0 {
		return area
	}

	kinkRate := new(big.Int).Add(model.R0, model.R1)
	area.Add(area, mulDiv(afterKink, kinkRate, fixedPoint))
	triangle = new(big.Int).Sub(instantaneousRate(model, utilization), kinkRate)
	triangle.Mul(triangle, afterKink)
	return area.Add(area, triangle.Div(triangle, new(big.Int).Mul(big.NewInt(2), fixedPoint)))
}

// weeklyFee converts an APY into the fee of a one week loan, (1 + apy)^(1/52) - 1.
func weeklyFee(apy *big.Int) *big.Int {
	one := decimal.NewFromInt(1)
	weekly, err := decimal.NewFromBigInt(apy, -18).Add(one).PowWithPrecision(weeklyExponent, POW_PRECISION)
	if err != nil {
		// the base is not positive, the apy wipes out the whole loan
		return new(big.Int).Neg(fixedPoint)
	}
	return weekly.Sub(one).Shift(18).Floor().BigInt()
}

func minInt(x, y *big.Int) *big.Int {
	if x.Cmp(y) < 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Set(y)
}

func mulDiv(x, y, z *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Div(r, z)
}
