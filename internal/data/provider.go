// Package data assembles pricing snapshots from market data providers.
//
// A Provider supplies raw observations (last trade, daily bars) for an
// underlying symbol; Snapshot turns them into a validated
// pricing.MarketData, estimating volatility from the trailing bar history.
package data

import "time"

// Provider supplies market observations for an underlying symbol.
type Provider interface {
	// GetSpot returns the most recent traded price for the symbol.
	GetSpot(symbol string) (float64, error)

	// GetDailyBars returns daily OHLC bars between fromDate and toDate,
	// oldest first.
	GetDailyBars(symbol string, fromDate, toDate time.Time) ([]Bar, error)
}

// Bar is a simplified daily OHLC record.
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Vol   float64
}
