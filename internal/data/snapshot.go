package data

import (
	"fmt"
	"math"
	"time"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

// tradingDaysPerYear annualizes daily return statistics.
const tradingDaysPerYear = 252.0

// lookback is how much bar history feeds the realized-vol estimate.
const lookback = 365 * 24 * time.Hour

// RealizedVol estimates annualized volatility as the sample standard
// deviation of daily log returns, scaled by sqrt(252). At least three bars
// are required for a meaningful sample.
func RealizedVol(bars []Bar) (float64, error) {
	if len(bars) < 3 {
		return 0, fmt.Errorf("need at least 3 bars for realized vol, got %d", len(bars))
	}

	returns := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		if bars[i-1].Close <= 0 || bars[i].Close <= 0 {
			return 0, fmt.Errorf("non-positive close in bar series")
		}
		returns = append(returns, math.Log(bars[i].Close/bars[i-1].Close))
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance * tradingDaysPerYear), nil
}

// Snapshot builds a validated market snapshot for the symbol as of the given
// time: spot from the provider's last trade, volatility realized from the
// trailing year of daily bars, and the supplied risk-free rate.
func Snapshot(prov Provider, symbol string, riskFreeRate float64, asOf time.Time) (pricing.MarketData, error) {
	spot, err := prov.GetSpot(symbol)
	if err != nil {
		return pricing.MarketData{}, fmt.Errorf("snapshot %s: %w", symbol, err)
	}

	bars, err := prov.GetDailyBars(symbol, asOf.Add(-lookback), asOf)
	if err != nil {
		return pricing.MarketData{}, fmt.Errorf("snapshot %s: %w", symbol, err)
	}

	vol, err := RealizedVol(bars)
	if err != nil {
		return pricing.MarketData{}, fmt.Errorf("snapshot %s: %w", symbol, err)
	}

	logger.Infof("snapshot %s: spot=%.4f realized_vol=%.4f rate=%.4f", symbol, spot, vol, riskFreeRate)

	return pricing.NewMarketData(spot, riskFreeRate, vol)
}
