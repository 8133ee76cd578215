package pricing

// Greeks holds the five first-order sensitivities of an option price.
// Theta and rho are annualized (per year, not per day).
type Greeks struct {
	Delta float64 `json:"delta"` // dPrice/dSpot
	Gamma float64 `json:"gamma"` // dDelta/dSpot
	Vega  float64 `json:"vega"`  // dPrice/dVolatility
	Theta float64 `json:"theta"` // dPrice/dTime
	Rho   float64 `json:"rho"`   // dPrice/dRate
}

// PricingResult is the output of a pricing request. Greeks is nil unless the
// caller asked for sensitivities; a populated Greeks with all-zero fields
// (e.g. at expiration) still counts as "computed". Presence is the pointer,
// never a zero-value sentinel.
type PricingResult struct {
	Price  float64 `json:"price"`
	Greeks *Greeks `json:"greeks,omitempty"`
}

// HasGreeks reports whether sensitivities were computed for this result.
func (r PricingResult) HasGreeks() bool { return r.Greeks != nil }
