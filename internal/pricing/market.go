package pricing

import "fmt"

// MarketData is a snapshot of the market conditions an option is priced
// under. Immutable after construction; build one with NewMarketData.
type MarketData struct {
	Spot         float64 // current underlying price, strictly positive
	RiskFreeRate float64 // continuously-compounded annual rate, unconstrained
	Volatility   float64 // annualized, non-negative
}

// NewMarketData validates and builds a market snapshot.
// Spot must be strictly positive; volatility must be non-negative. The rate
// may be zero or negative (negative-rate regimes are valid inputs).
func NewMarketData(spot, riskFreeRate, volatility float64) (MarketData, error) {
	if spot <= 0 {
		return MarketData{}, fmt.Errorf("%w: spot must be positive, got %g", ErrInvalidArgument, spot)
	}
	if volatility < 0 {
		return MarketData{}, fmt.Errorf("%w: volatility must be non-negative, got %g", ErrInvalidArgument, volatility)
	}
	return MarketData{Spot: spot, RiskFreeRate: riskFreeRate, Volatility: volatility}, nil
}
