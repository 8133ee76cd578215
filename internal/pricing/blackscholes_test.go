package pricing

import (
	"math"
	"testing"
)

func mustOption(t *testing.T, kind OptionKind, strike, tte float64) Option {
	t.Helper()
	opt, err := NewOption(kind, strike, tte)
	if err != nil {
		t.Fatalf("NewOption(%v, %g, %g): %v", kind, strike, tte, err)
	}
	return opt
}

func mustMarket(t *testing.T, spot, rate, vol float64) MarketData {
	t.Helper()
	mkt, err := NewMarketData(spot, rate, vol)
	if err != nil {
		t.Fatalf("NewMarketData(%g, %g, %g): %v", spot, rate, vol, err)
	}
	return mkt
}

func TestBlackScholesCallReferenceValue(t *testing.T) {
	model := BlackScholesModel{}
	opt := mustOption(t, Call, 105, 0.5)
	mkt := mustMarket(t, 100, 0.05, 0.20)

	res := model.Price(opt, mkt)
	if math.Abs(res.Price-6.86) > 0.01 {
		t.Fatalf("expected price ~6.86, got %f", res.Price)
	}
	if res.HasGreeks() {
		t.Fatalf("Price should not populate Greeks")
	}
}

func TestBlackScholesPutCallParity(t *testing.T) {
	model := BlackScholesModel{}

	cases := []struct {
		spot, strike, rate, vol, tte float64
	}{
		{100, 100, 0.05, 0.20, 0.5},
		{100, 105, 0.05, 0.20, 0.5},
		{110, 90, 0.03, 0.45, 1.5},
		{50, 80, -0.01, 0.30, 2.0},
		{120, 100, 0.00, 0.10, 0.25},
	}

	for _, c := range cases {
		call := mustOption(t, Call, c.strike, c.tte)
		put := mustOption(t, Put, c.strike, c.tte)
		mkt := mustMarket(t, c.spot, c.rate, c.vol)

		lhs := model.Price(call, mkt).Price - model.Price(put, mkt).Price
		rhs := c.spot - c.strike*math.Exp(-c.rate*c.tte)

		if math.Abs(lhs-rhs) > 0.01 {
			t.Fatalf("parity violated for %+v: C-P=%f, S-K*df=%f", c, lhs, rhs)
		}
	}
}

func TestAtExpirationIntrinsicValue(t *testing.T) {
	model := BlackScholesModel{}
	mkt := mustMarket(t, 110, 0.05, 0.20)

	call := model.Price(mustOption(t, Call, 100, 0), mkt)
	if math.Abs(call.Price-10.0) > 1e-4 {
		t.Fatalf("expected expired ITM call = 10.0, got %f", call.Price)
	}

	put := model.Price(mustOption(t, Put, 100, 0), mkt)
	if math.Abs(put.Price-0.0) > 1e-4 {
		t.Fatalf("expected expired OTM put = 0.0, got %f", put.Price)
	}
}

func TestZeroVolatilityDiscountedIntrinsic(t *testing.T) {
	model := BlackScholesModel{}
	mkt := mustMarket(t, 110, 0.05, 0)

	want := math.Max(110-100*math.Exp(-0.05*0.5), 0)
	call := model.Price(mustOption(t, Call, 100, 0.5), mkt)
	if math.Abs(call.Price-want) > 0.01 {
		t.Fatalf("expected zero-vol call = %f, got %f", want, call.Price)
	}

	put := model.Price(mustOption(t, Put, 100, 0.5), mkt)
	if put.Price != 0 {
		t.Fatalf("expected zero-vol OTM put = 0, got %f", put.Price)
	}
}

func TestPriceIncreasesWithVolatility(t *testing.T) {
	model := BlackScholesModel{}
	opt := mustOption(t, Call, 100, 0.5)

	low := model.Price(opt, mustMarket(t, 100, 0.05, 0.1)).Price
	high := model.Price(opt, mustMarket(t, 100, 0.05, 1.0)).Price

	if high <= low {
		t.Fatalf("expected higher vol to raise price: vol=0.1 -> %f, vol=1.0 -> %f", low, high)
	}
}

func TestPriceNonNegativeSweep(t *testing.T) {
	model := BlackScholesModel{}

	spots := []float64{80, 95, 100, 110, 130}
	strikes := []float64{80, 100, 120}
	vols := []float64{0, 0.1, 0.3, 0.6}
	ttes := []float64{0, 0.25, 1, 2}
	rates := []float64{-0.01, 0, 0.05}

	for _, kind := range []OptionKind{Call, Put} {
		for _, S := range spots {
			for _, K := range strikes {
				for _, vol := range vols {
					for _, tte := range ttes {
						for _, rate := range rates {
							opt := mustOption(t, kind, K, tte)
							mkt := mustMarket(t, S, rate, vol)
							res := model.PriceWithGreeks(opt, mkt)
							if res.Price < 0 {
								t.Fatalf("negative price %f for %s S=%g K=%g vol=%g T=%g r=%g",
									res.Price, kind, S, K, vol, tte, rate)
							}
						}
					}
				}
			}
		}
	}
}

func TestAtTheMoneyBounds(t *testing.T) {
	model := BlackScholesModel{}
	mkt := mustMarket(t, 100, 0.05, 0.20)

	call := model.Price(mustOption(t, Call, 100, 1.0), mkt).Price
	if call <= 5 || call >= 20 {
		t.Fatalf("ATM call price %f outside (5, 20)", call)
	}

	put := model.Price(mustOption(t, Put, 100, 1.0), mkt).Price
	if put <= 3 || put >= 15 {
		t.Fatalf("ATM put price %f outside (3, 15)", put)
	}
}

func TestGreeksGeneralRegime(t *testing.T) {
	model := BlackScholesModel{}
	mkt := mustMarket(t, 100, 0.05, 0.20)
	call := model.PriceWithGreeks(mustOption(t, Call, 100, 1.0), mkt)
	put := model.PriceWithGreeks(mustOption(t, Put, 100, 1.0), mkt)

	if !call.HasGreeks() || !put.HasGreeks() {
		t.Fatal("expected Greeks to be populated")
	}

	cg, pg := call.Greeks, put.Greeks

	if cg.Delta <= 0 || cg.Delta >= 1 {
		t.Fatalf("call delta %f outside (0, 1)", cg.Delta)
	}
	if pg.Delta <= -1 || pg.Delta >= 0 {
		t.Fatalf("put delta %f outside (-1, 0)", pg.Delta)
	}
	if math.Abs((cg.Delta-pg.Delta)-1.0) > 1e-12 {
		t.Fatalf("call delta - put delta should be 1, got %f", cg.Delta-pg.Delta)
	}
	if cg.Gamma <= 0 || cg.Gamma != pg.Gamma {
		t.Fatalf("gamma should be positive and shared: call %f put %f", cg.Gamma, pg.Gamma)
	}
	if cg.Vega <= 0 || cg.Vega != pg.Vega {
		t.Fatalf("vega should be positive and shared: call %f put %f", cg.Vega, pg.Vega)
	}
	if cg.Theta >= 0 {
		t.Fatalf("ATM call theta should be negative, got %f", cg.Theta)
	}
	if cg.Rho <= 0 {
		t.Fatalf("call rho should be positive, got %f", cg.Rho)
	}
	if pg.Rho >= 0 {
		t.Fatalf("put rho should be negative, got %f", pg.Rho)
	}
}

func TestGreeksAtExpiration(t *testing.T) {
	model := BlackScholesModel{}
	mkt := mustMarket(t, 110, 0.05, 0.20)

	itmCall := model.PriceWithGreeks(mustOption(t, Call, 100, 0), mkt)
	if g := itmCall.Greeks; g == nil || g.Delta != 1.0 {
		t.Fatalf("expired ITM call delta should be 1.0, got %+v", itmCall.Greeks)
	}
	otmCall := model.PriceWithGreeks(mustOption(t, Call, 120, 0), mkt)
	if g := otmCall.Greeks; g == nil || g.Delta != 0.0 {
		t.Fatalf("expired OTM call delta should be 0.0, got %+v", otmCall.Greeks)
	}
	itmPut := model.PriceWithGreeks(mustOption(t, Put, 120, 0), mkt)
	if g := itmPut.Greeks; g == nil || g.Delta != -1.0 {
		t.Fatalf("expired ITM put delta should be -1.0, got %+v", itmPut.Greeks)
	}

	g := itmCall.Greeks
	if g.Gamma != 0 || g.Vega != 0 || g.Theta != 0 || g.Rho != 0 {
		t.Fatalf("expired option should have zero gamma/vega/theta/rho, got %+v", g)
	}
}

func TestGreeksZeroVolatility(t *testing.T) {
	model := BlackScholesModel{}
	mkt := mustMarket(t, 100, 0.05, 0)

	// Discounted strike is 100*exp(-0.05) ~= 95.12, so spot 100 is past it.
	call := model.PriceWithGreeks(mustOption(t, Call, 100, 1.0), mkt)
	if g := call.Greeks; g == nil || g.Delta != 1.0 {
		t.Fatalf("zero-vol ITM-forward call delta should be 1.0, got %+v", call.Greeks)
	}
	put := model.PriceWithGreeks(mustOption(t, Put, 100, 1.0), mkt)
	if g := put.Greeks; g == nil || g.Delta != 0.0 {
		t.Fatalf("zero-vol OTM-forward put delta should be 0.0, got %+v", put.Greeks)
	}

	g := call.Greeks
	if g.Gamma != 0 || g.Vega != 0 || g.Theta != 0 || g.Rho != 0 {
		t.Fatalf("zero-vol gamma/vega/theta/rho should stay 0, got %+v", g)
	}
}

func TestNormCDFMatchesErf(t *testing.T) {
	for x := -6.0; x <= 6.0; x += 0.001 {
		want := 0.5 * (1.0 + math.Erf(x))
		got := normCDF(x)
		if math.Abs(got-want) > 7.5e-8 {
			t.Fatalf("normCDF(%f) = %.10f, want %.10f", x, got, want)
		}
	}
}

func TestD1DegenerateGuard(t *testing.T) {
	if d1 := calcD1(100, 100, 0.05, 0, 1); d1 != 0 {
		t.Fatalf("expected d1 guard to return 0 for zero vol, got %f", d1)
	}
	if d1 := calcD1(100, 100, 0.05, 0.2, 0); d1 != 0 {
		t.Fatalf("expected d1 guard to return 0 for zero time, got %f", d1)
	}
}
