// Package pricing values European vanilla options.
//
// The package is three immutable value types (Option, MarketData,
// PricingResult) and a PricingModel capability. Inputs validate at
// construction, so a model never errors: given well-formed inputs every
// model call is a pure, bounded computation with no shared state, and the
// types are safe to price from multiple goroutines at once.
package pricing

import "fmt"

// PricingModel values an option under a market snapshot. Implementations
// must be stateless: both methods are pure functions of their arguments.
type PricingModel interface {
	// Name returns the registry name of the model (e.g. "black_scholes").
	Name() string

	// Price returns the fair value only; the result carries no Greeks.
	Price(opt Option, mkt MarketData) PricingResult

	// PriceWithGreeks returns the fair value plus the five sensitivities.
	PriceWithGreeks(opt Option, mkt MarketData) PricingResult
}

// ModelByName resolves a model name to an engine. Black-Scholes is the only
// model today; Heston or binomial-tree engines would register here.
func ModelByName(name string) (PricingModel, error) {
	switch name {
	case ModelBlackScholes:
		return BlackScholesModel{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported model %q (only %q is supported)", ErrInvalidArgument, name, ModelBlackScholes)
	}
}
