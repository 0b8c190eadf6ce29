package fee

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

const BPS_DENOMINATOR = 10_000

// GasTier allots FractionBps of the relayer fee to gas for output amounts
// strictly between Lower and Upper.
type GasTier struct {
	Lower       *big.Int
	Upper       *big.Int
	FractionBps uint64
}

func (t GasTier) contains(amount *big.Int) bool {
	return amount.Cmp(t.Lower) > 0 && amount.Cmp(t.Upper) < 0
}

type GasTierTable struct {
	tiers []GasTier
}

func NewGasTierTable(tiers []GasTier) GasTierTable {
	return GasTierTable{tiers: tiers}
}

func ether(numerator, denominator int64) *big.Int {
	wei := new(big.Int).Mul(big.NewInt(numerator), big.NewInt(params.Ether))
	return wei.Div(wei, big.NewInt(denominator))
}

// DefaultGasTierTable tiers output amounts, in 18 decimal units, by magnitude.
// Smaller fills spend a bigger share of the relayer fee on gas.
func DefaultGasTierTable() GasTierTable {
	return NewGasTierTable([]GasTier{
		{Lower: big.NewInt(0), Upper: ether(1, 10), FractionBps: 5000},
		{Lower: ether(1, 10), Upper: ether(4, 10), FractionBps: 3500},
		{Lower: ether(4, 10), Upper: ether(1, 1), FractionBps: 2500},
		{Lower: ether(1, 1), Upper: ether(5, 1), FractionBps: 1500},
		{Lower: ether(5, 1), Upper: ether(1_000_000, 1), FractionBps: 1000},
	})
}

// Fraction returns the gas fee fraction in bps of the tier containing amount.
// Amounts on a tier boundary belong to no tier.
func (t GasTierTable) Fraction(amount *big.Int) (uint64, bool) {
	for _, tier := range t.tiers {
		if tier.contains(amount) {
			return tier.FractionBps, true
		}
	}

	return 0, false
}

// GasPrice returns ceil(relayerFee * fraction / (gasUsed * BPS_DENOMINATOR)).
func GasPrice(relayerFee *big.Int, fractionBps uint64, gasUsed uint64) *big.Int {
	numerator := new(big.Int).Mul(relayerFee, new(big.Int).SetUint64(fractionBps))
	denominator := new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), big.NewInt(BPS_DENOMINATOR))
	return divCeil(numerator, denominator)
}

func divCeil(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}
