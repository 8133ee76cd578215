package data

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/contactkeval/option-pricer/internal/logger"
)

// massiveDataProvider implements Provider against Massive's HTTP APIs.
type massiveDataProvider struct {
	// APIKey authenticates requests with Massive.
	APIKey string

	// Client is the HTTP client used for API requests.
	Client *http.Client

	// BaseURL is the root endpoint (e.g. https://api.massive.com);
	// overridable so tests can point at a fake server.
	BaseURL string
}

// massiveAgg is a single aggregate record in Massive's bar responses.
type massiveAgg struct {
	Open      float64 `json:"o"`
	Close     float64 `json:"c"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Volume    float64 `json:"v"`
	Timestamp int64   `json:"t"` // epoch millis
}

// massiveAggsResp models Massive's paginated aggregates response.
type massiveAggsResp struct {
	Ticker  string       `json:"ticker"`
	Results []massiveAgg `json:"results"`
	Status  string       `json:"status"`
	NextURL string       `json:"next_url"`
}

// NewMassiveDataProvider constructs a Massive-backed data provider with an
// HTTP client tuned for the API (timeouts, pooling, gzip left enabled for
// auto-decompression).
func NewMassiveDataProvider(apiKey string) *massiveDataProvider {
	logger.Infof("initializing Massive data provider")

	return &massiveDataProvider{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				DisableCompression:    false,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		BaseURL: "https://api.massive.com",
	}
}

// GetSpot returns the previous session's closing price for the symbol.
func (massiveDataProv *massiveDataProvider) GetSpot(symbol string) (float64, error) {
	url := fmt.Sprintf(
		"%s/v2/aggs/ticker/%s/prev?adjusted=true&apiKey=%s",
		massiveDataProv.BaseURL, symbol, massiveDataProv.APIKey,
	)

	logger.Debugf("spot request: %s", symbol)

	body, err := massiveDataProv.getJSON(url)
	if err != nil {
		return 0, fmt.Errorf("fetch spot for %s: %w", symbol, err)
	}

	var resp massiveAggsResp
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decode spot response: %w", err)
	}
	if len(resp.Results) == 0 {
		return 0, fmt.Errorf("no previous close for %s", symbol)
	}

	spot := resp.Results[len(resp.Results)-1].Close
	logger.Tracef("spot resolved: %s = %.4f", symbol, spot)
	return spot, nil
}

// GetDailyBars retrieves daily OHLC bars in [fromDate, toDate], following
// pagination via next_url.
func (massiveDataProv *massiveDataProvider) GetDailyBars(
	symbol string,
	fromDate, toDate time.Time,
) ([]Bar, error) {

	logger.Debugf(
		"fetching daily bars: %s from=%s to=%s",
		symbol,
		fromDate.Format("2006-01-02"),
		toDate.Format("2006-01-02"),
	)

	reqURL := fmt.Sprintf(
		"%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&limit=50000&apiKey=%s",
		massiveDataProv.BaseURL,
		symbol,
		fromDate.Format("2006-01-02"),
		toDate.Format("2006-01-02"),
		massiveDataProv.APIKey,
	)

	var out []Bar
	for reqURL != "" {
		body, err := massiveDataProv.getJSON(reqURL)
		if err != nil {
			return nil, fmt.Errorf("fetch bars for %s: %w", symbol, err)
		}

		var resp massiveAggsResp
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("decode bars response: %w", err)
		}

		logger.Tracef("bars page received: %d records", len(resp.Results))

		for _, r := range resp.Results {
			out = append(out, Bar{
				Date:  time.UnixMilli(r.Timestamp).UTC(),
				Open:  r.Open,
				High:  r.High,
				Low:   r.Low,
				Close: r.Close,
				Vol:   r.Volume,
			})
		}

		reqURL = resp.NextURL
	}

	return out, nil
}

// getJSON executes an authenticated GET with rate-limit handling and returns
// the response body. On HTTP 429 it sleeps until the next minute boundary
// and retries; any other status >= 400 is an error.
func (massiveDataProv *massiveDataProvider) getJSON(url string) ([]byte, error) {
	for {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+massiveDataProv.APIKey)
		req.Header.Set("Accept", "application/json")

		resp, err := massiveDataProv.Client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()

			sleepDuration := time.Until(
				time.Now().Truncate(time.Minute).Add(time.Minute),
			)
			logger.Infof("rate limit hit, sleeping for %s", sleepDuration)
			time.Sleep(sleepDuration)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			var dbg struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(body, &dbg)

			logger.Errorf("massive API error status=%d message=%s", resp.StatusCode, dbg.Message)
			return nil, fmt.Errorf("massive returned status %d: %s", resp.StatusCode, dbg.Message)
		}

		return body, nil
	}
}
