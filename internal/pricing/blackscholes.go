package pricing

import "math"

// ModelBlackScholes is the registry name of the Black-Scholes-Merton engine.
const ModelBlackScholes = "black_scholes"

const invSqrt2Pi = 0.3989422804014327 // 1 / sqrt(2*pi)

// BlackScholesModel prices European vanilla options with the closed-form
// Black-Scholes-Merton formula. The zero value is ready to use.
//
// Three regimes, checked in order:
//
//  1. At expiration (T == 0): intrinsic value. Delta is ±1 or 0 depending on
//     moneyness; all other Greeks are 0 (the model degenerates).
//  2. Zero volatility (sigma == 0, T > 0): the underlying is deterministic,
//     so the option is worth its discounted intrinsic value. Delta is ±1 or 0
//     against the discounted strike; gamma and vega are 0. Theta and rho are
//     also left at 0, matching the reference behavior rather than the
//     analytic limit.
//  3. Otherwise: the standard closed form via d1/d2.
type BlackScholesModel struct{}

func (BlackScholesModel) Name() string { return ModelBlackScholes }

// Price returns the fair value of the option without sensitivities.
func (BlackScholesModel) Price(opt Option, mkt MarketData) PricingResult {
	S, K := mkt.Spot, opt.Strike
	r, sigma, T := mkt.RiskFreeRate, mkt.Volatility, opt.TimeToExpiration

	if T == 0 {
		return PricingResult{Price: intrinsic(opt.IsCall(), S, K)}
	}
	if sigma == 0 {
		return PricingResult{Price: intrinsic(opt.IsCall(), S, K*math.Exp(-r*T))}
	}

	d1 := calcD1(S, K, r, sigma, T)
	d2 := calcD2(d1, sigma, T)
	if opt.IsCall() {
		return PricingResult{Price: callPrice(S, K, r, T, d1, d2)}
	}
	return PricingResult{Price: putPrice(S, K, r, T, d1, d2)}
}

// PriceWithGreeks returns the fair value plus delta, gamma, vega, theta and
// rho. Theta and rho are annualized.
func (BlackScholesModel) PriceWithGreeks(opt Option, mkt MarketData) PricingResult {
	S, K := mkt.Spot, opt.Strike
	r, sigma, T := mkt.RiskFreeRate, mkt.Volatility, opt.TimeToExpiration
	isCall := opt.IsCall()

	if T == 0 {
		g := &Greeks{Delta: digitalDelta(isCall, S, K)}
		return PricingResult{Price: intrinsic(isCall, S, K), Greeks: g}
	}
	if sigma == 0 {
		discountedStrike := K * math.Exp(-r*T)
		g := &Greeks{Delta: digitalDelta(isCall, S, discountedStrike)}
		return PricingResult{Price: intrinsic(isCall, S, discountedStrike), Greeks: g}
	}

	d1 := calcD1(S, K, r, sigma, T)
	d2 := calcD2(d1, sigma, T)

	res := PricingResult{Greeks: &Greeks{
		Delta: delta(isCall, d1),
		Gamma: gamma(S, sigma, T, d1),
		Vega:  vega(S, T, d1),
		Theta: theta(isCall, S, K, r, sigma, T, d1, d2),
		Rho:   rho(isCall, K, r, T, d2),
	}}
	if isCall {
		res.Price = callPrice(S, K, r, T, d1, d2)
	} else {
		res.Price = putPrice(S, K, r, T, d1, d2)
	}
	return res
}

// intrinsic is the exercise payoff against the given strike (possibly
// discounted by the caller), floored at zero.
func intrinsic(isCall bool, S, K float64) float64 {
	if isCall {
		return math.Max(S-K, 0)
	}
	return math.Max(K-S, 0)
}

// digitalDelta is the degenerate delta used by the expiry and zero-vol
// regimes: ±1 when the option finishes in the money, else 0.
func digitalDelta(isCall bool, S, K float64) float64 {
	if isCall {
		if S > K {
			return 1.0
		}
		return 0.0
	}
	if S < K {
		return -1.0
	}
	return 0.0
}

// calcD1 computes the first Black-Scholes auxiliary quantity. Degenerate
// inputs return 0 instead of a NaN/Inf; the regime checks in Price and
// PriceWithGreeks already intercept every case that would reach the guard.
func calcD1(S, K, r, sigma, T float64) float64 {
	if S <= 0 || K <= 0 || T <= 0 || sigma <= 0 {
		return 0.0
	}
	return (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
}

func calcD2(d1, sigma, T float64) float64 {
	return d1 - sigma*math.Sqrt(T)
}

func callPrice(S, K, r, T, d1, d2 float64) float64 {
	return S*normCDF(d1) - K*math.Exp(-r*T)*normCDF(d2)
}

func putPrice(S, K, r, T, d1, d2 float64) float64 {
	return K*math.Exp(-r*T)*normCDF(-d2) - S*normCDF(-d1)
}

func delta(isCall bool, d1 float64) float64 {
	if isCall {
		return normCDF(d1)
	}
	return normCDF(d1) - 1.0
}

func gamma(S, sigma, T, d1 float64) float64 {
	if S <= 0 || sigma <= 0 || T <= 0 {
		return 0.0
	}
	return normPDF(d1) / (S * sigma * math.Sqrt(T))
}

func vega(S, T, d1 float64) float64 {
	if S <= 0 || T <= 0 {
		return 0.0
	}
	return S * normPDF(d1) * math.Sqrt(T)
}

// theta is annualized; divide by 365 for a per-day decay figure.
func theta(isCall bool, S, K, r, sigma, T, d1, d2 float64) float64 {
	if T <= 0 {
		return 0.0
	}
	discount := math.Exp(-r * T)
	th := -S * normPDF(d1) * sigma / (2.0 * math.Sqrt(T))
	if isCall {
		th -= r * K * discount * normCDF(d2)
	} else {
		th += r * K * discount * normCDF(-d2)
	}
	return th
}

func rho(isCall bool, K, r, T, d2 float64) float64 {
	if T <= 0 {
		return 0.0
	}
	discount := math.Exp(-r * T)
	if isCall {
		return K * T * discount * normCDF(d2)
	}
	return -K * T * discount * normCDF(-d2)
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return invSqrt2Pi * math.Exp(-0.5*x*x)
}

// normCDF evaluates the distribution function N used by the closed form,
// 0.5*(1 + erf(x)), with the Abramowitz-Stegun 7.1.26 rational approximation
// of erf. Absolute error of the approximation is below 7.5e-8, well inside
// every tolerance this package promises.
func normCDF(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)

	return 0.5 * (1.0 + sign*y)
}
