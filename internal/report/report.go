// Package report renders pricing results for people (fixed-precision text)
// and machines (JSON files).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Report pairs the inputs of a pricing request with its result.
type Report struct {
	Model         string                `json:"model"`
	OptionType    string                `json:"option_type"`
	Spot          float64               `json:"spot"`
	Strike        float64               `json:"strike"`
	Rate          float64               `json:"rate"`
	Volatility    float64               `json:"volatility"`
	MaturityYears float64               `json:"maturity_years"`
	Result        pricing.PricingResult `json:"result"`
}

// fixed6 renders a value with exactly six decimal digits.
func fixed6(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(6)
}

// Render writes the human-readable pricing report. All numeric values carry
// six decimal digits; Greeks appear only when they were computed.
func Render(w io.Writer, rep Report) {
	fmt.Fprintf(w, "\n=== Option Pricing Result ===\n")
	fmt.Fprintf(w, "Option Type: %s\n", rep.OptionType)
	fmt.Fprintf(w, "Spot Price: %s\n", fixed6(rep.Spot))
	fmt.Fprintf(w, "Strike Price: %s\n", fixed6(rep.Strike))
	fmt.Fprintf(w, "Risk-Free Rate: %s\n", fixed6(rep.Rate))
	fmt.Fprintf(w, "Volatility: %s\n", fixed6(rep.Volatility))
	fmt.Fprintf(w, "Time to Expiration: %s years\n", fixed6(rep.MaturityYears))
	fmt.Fprintf(w, "--------------------------------\n")
	fmt.Fprintf(w, "Option Price: %s\n", fixed6(rep.Result.Price))

	if rep.Result.HasGreeks() {
		g := rep.Result.Greeks
		fmt.Fprintf(w, "Delta: %s\n", fixed6(g.Delta))
		fmt.Fprintf(w, "Gamma: %s\n", fixed6(g.Gamma))
		fmt.Fprintf(w, "Vega: %s\n", fixed6(g.Vega))
		fmt.Fprintf(w, "Theta: %s\n", fixed6(g.Theta))
		fmt.Fprintf(w, "Rho: %s\n", fixed6(g.Rho))
	}

	fmt.Fprintf(w, "==============================\n\n")
}

// WriteJSON writes the report as indented JSON to <outdir>/result.json,
// creating the directory if needed.
func WriteJSON(rep Report, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", outdir, err)
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "result.json"), b, 0644)
}
