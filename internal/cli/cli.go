// Package cli implements the option-pricer command surface: flag parsing,
// input validation, dispatch to the pricing engine, and report output.
//
// Exit codes follow the usual convention: 0 on success (including --help),
// 1 on any parse or validation failure, with the error and usage text on
// stderr. The pricing report itself goes to stdout.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/contactkeval/option-pricer/internal/config"
	"github.com/contactkeval/option-pricer/internal/data"
	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
	"github.com/contactkeval/option-pricer/internal/server"
)

type options struct {
	model     string
	optType   string
	spot      float64
	strike    float64
	rate      float64
	vol       float64
	maturity  float64
	symbol    string
	greeks    bool
	jsonOut   string
	serve     bool
	port      string
	verbosity int
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: option-pricer [OPTIONS]
Options:
  --model MODEL          Pricing model (black_scholes)
  --type TYPE            Option type (call|put)
  --spot S               Spot price of underlying asset
  --strike K             Strike price
  --rate r               Risk-free rate (annual)
  --vol SIGMA            Volatility (annual)
  --maturity T           Time to expiration (years)
  --symbol TICKER        Fetch spot and volatility for this underlying
                         instead of --spot/--vol
  --greeks               Also report delta, gamma, vega, theta and rho
  --json-out DIR         Additionally write result.json to DIR
  --serve                Run as a REST server (POST /price)
  --port ADDR            REST listen address (default :8080)
  -v LEVEL               Log verbosity (0=error .. 3=trace)
  --help                 Show this help message

Example:
  option-pricer --model black_scholes --type call \
     --spot 100 --strike 105 --rate 0.05 --vol 0.2 --maturity 0.5
`)
}

// Run executes the tool with the given arguments and returns the process
// exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("option-pricer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	opts := &options{}
	fs.StringVar(&opts.model, "model", pricing.ModelBlackScholes, "pricing model")
	fs.StringVar(&opts.optType, "type", "call", "option type (call|put)")
	fs.Float64Var(&opts.spot, "spot", 0, "spot price of underlying asset")
	fs.Float64Var(&opts.strike, "strike", 0, "strike price")
	fs.Float64Var(&opts.rate, "rate", 0, "risk-free rate (annual)")
	fs.Float64Var(&opts.vol, "vol", 0, "volatility (annual)")
	fs.Float64Var(&opts.maturity, "maturity", 0, "time to expiration in years")
	fs.StringVar(&opts.symbol, "symbol", "", "fetch market data for this underlying")
	fs.BoolVar(&opts.greeks, "greeks", false, "also compute Greeks")
	fs.StringVar(&opts.jsonOut, "json-out", "", "directory for result.json")
	fs.BoolVar(&opts.serve, "serve", false, "run as REST server")
	fs.StringVar(&opts.port, "port", ":8080", "REST listen address")
	fs.IntVar(&opts.verbosity, "v", cfg.Verbosity, "log verbosity")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger.SetVerbosity(opts.verbosity)

	// In symbol mode an unspecified --rate falls back to the configured
	// default rather than zero.
	rateSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "rate" {
			rateSet = true
		}
	})
	if opts.symbol != "" && !rateSet {
		opts.rate = cfg.RiskFreeRate
	}

	if opts.serve {
		logger.Infof("starting REST server on %s", opts.port)
		if err := http.ListenAndServe(opts.port, server.Handler()); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	rep, err := execute(opts, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr)
		return 1
	}

	report.Render(stdout, rep)

	if opts.jsonOut != "" {
		if err := report.WriteJSON(rep, opts.jsonOut); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.Infof("wrote result.json to %s", opts.jsonOut)
	}

	return 0
}

// execute validates the request and prices it. Validation happens entirely
// in the constructors; the engine itself cannot fail.
func execute(opts *options, cfg config.Config) (report.Report, error) {
	model, err := pricing.ModelByName(opts.model)
	if err != nil {
		return report.Report{}, err
	}

	kind, err := pricing.ParseOptionKind(opts.optType)
	if err != nil {
		return report.Report{}, err
	}

	var mkt pricing.MarketData
	if opts.symbol != "" {
		mkt, err = data.Snapshot(chooseProvider(cfg), opts.symbol, opts.rate, time.Now())
	} else {
		mkt, err = pricing.NewMarketData(opts.spot, opts.rate, opts.vol)
	}
	if err != nil {
		return report.Report{}, err
	}

	opt, err := pricing.NewOption(kind, opts.strike, opts.maturity)
	if err != nil {
		return report.Report{}, err
	}

	var res pricing.PricingResult
	if opts.greeks {
		res = model.PriceWithGreeks(opt, mkt)
	} else {
		res = model.Price(opt, mkt)
	}

	return report.Report{
		Model:         model.Name(),
		OptionType:    kind.String(),
		Spot:          mkt.Spot,
		Strike:        opt.Strike,
		Rate:          mkt.RiskFreeRate,
		Volatility:    mkt.Volatility,
		MaturityYears: opt.TimeToExpiration,
		Result:        res,
	}, nil
}

func chooseProvider(cfg config.Config) data.Provider {
	if cfg.APIKey != "" {
		logger.Infof("massive provider enabled")
		return data.NewMassiveDataProvider(cfg.APIKey)
	}
	logger.Infof("synthetic provider enabled")
	return data.NewSyntheticProvider()
}
