// Package server exposes the pricing engine over HTTP for callers that
// prefer a JSON API to the command line.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

// PriceRequest is the body of a POST /price call. Fields mirror the CLI
// flags; an empty model means black_scholes.
type PriceRequest struct {
	Model    string  `json:"model,omitempty"`
	Type     string  `json:"type"`
	Spot     float64 `json:"spot"`
	Strike   float64 `json:"strike"`
	Rate     float64 `json:"rate"`
	Vol      float64 `json:"vol"`
	Maturity float64 `json:"maturity"`
	Greeks   bool    `json:"greeks,omitempty"`
}

// Handler returns the HTTP handler serving /price and /health.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/price", handlePrice)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

func handlePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Model == "" {
		req.Model = pricing.ModelBlackScholes
	}

	logger.Debugf("price request: %+v", req)

	model, err := pricing.ModelByName(req.Model)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	kind, err := pricing.ParseOptionKind(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	opt, err := pricing.NewOption(kind, req.Strike, req.Maturity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	mkt, err := pricing.NewMarketData(req.Spot, req.Rate, req.Vol)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var res pricing.PricingResult
	if req.Greeks {
		res = model.PriceWithGreeks(opt, mkt)
	} else {
		res = model.Price(opt, mkt)
	}

	rep := report.Report{
		Model:         model.Name(),
		OptionType:    kind.String(),
		Spot:          mkt.Spot,
		Strike:        opt.Strike,
		Rate:          mkt.RiskFreeRate,
		Volatility:    mkt.Volatility,
		MaturityYears: opt.TimeToExpiration,
		Result:        res,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rep)
}
