package fee

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// RateModel is the piecewise linear LP fee curve of an l1 token. All values
// are in 1e18 units.
type RateModel struct {
	UBar *big.Int
	R0   *big.Int
	R1   *big.Int
	R2   *big.Int
}

type rawRateModel struct {
	UBar decimal.Decimal `json:"UBar"`
	R0   decimal.Decimal `json:"R0"`
	R1   decimal.Decimal `json:"R1"`
	R2   decimal.Decimal `json:"R2"`
}

func (r rawRateModel) rateModel() RateModel {
	return RateModel{
		UBar: r.UBar.BigInt(),
		R0:   r.R0.BigInt(),
		R1:   r.R1.BigInt(),
		R2:   r.R2.BigInt(),
	}
}

// L1TokenConfig is the decoded configuration store entry of an l1 token.
type L1TokenConfig struct {
	RateModel RateModel
	// RouteRateModel overrides the rate model for "<origin>-<destination>" routes.
	RouteRateModel map[string]RateModel
}

type rawL1TokenConfig struct {
	RateModel      *rawRateModel           `json:"rateModel"`
	RouteRateModel map[string]rawRateModel `json:"routeRateModel"`
}

func ParseL1TokenConfig(raw string) (L1TokenConfig, error) {
	var c rawL1TokenConfig
	err := json.Unmarshal([]byte(raw), &c)
	if err != nil {
		return L1TokenConfig{}, err
	}
	if c.RateModel == nil {
		return L1TokenConfig{}, fmt.Errorf("rate model missing from l1 token config")
	}

	routes := make(map[string]RateModel, len(c.RouteRateModel))
	for route, model := range c.RouteRateModel {
		if !model.UBar.IsPositive() {
			return L1TokenConfig{}, fmt.Errorf("invalid UBar %s for route %s", model.UBar, route)
		}
		routes[route] = model.rateModel()
	}
	if !c.RateModel.UBar.IsPositive() {
		return L1TokenConfig{}, fmt.Errorf("invalid rate model UBar %s", c.RateModel.UBar)
	}

	return L1TokenConfig{
		RateModel:      c.RateModel.rateModel(),
		RouteRateModel: routes,
	}, nil
}

// ModelFor returns the route rate model if one is configured and the default
// rate model otherwise.
func (c L1TokenConfig) ModelFor(originChainID, destinationChainID uint64) RateModel {
	model, ok := c.RouteRateModel[fmt.Sprintf("%d-%d", originChainID, destinationChainID)]
	if ok {
		return model
	}

	return c.RateModel
}
