package data

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMassiveProvider_GetDailyBars_HTTPError(t *testing.T) {
	// fake server returning 500
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"internal error"}`))
	}))
	defer srv.Close()

	p := &massiveDataProvider{
		APIKey:  "test",
		Client:  srv.Client(),
		BaseURL: srv.URL,
	}

	fromDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	_, err := p.GetDailyBars("AAPL", fromDate, toDate)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestMassiveProvider_Pagination(t *testing.T) {
	var srv *httptest.Server
	callCount := 0

	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++

		if callCount == 1 {
			w.Write([]byte(`{
				"results": [
					{"t": 1735689600000, "o":1,"h":1,"l":1,"c":1,"v":100}
				],
				"next_url": "` + srv.URL + `/page2"
			}`))
			return
		}

		w.Write([]byte(`{
				"results": [
					{"t": 1735776000000, "o":1,"h":1,"l":1,"c":2,"v":100}
				]
			}`))
	}))
	defer srv.Close()

	p := &massiveDataProvider{
		APIKey:  "test",
		Client:  srv.Client(),
		BaseURL: srv.URL,
	}

	fromDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	bars, err := p.GetDailyBars("AAPL", fromDate, toDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[1].Close != 2 {
		t.Fatalf("expected second page bar close 2, got %f", bars[1].Close)
	}
}

func TestMassiveProvider_GetSpot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/prev") {
			t.Fatalf("expected prev-close request, got %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"ticker": "AAPL",
			"results": [
				{"t": 1735689600000, "o":180.1,"h":183.4,"l":179.8,"c":182.52,"v":100}
			]
		}`))
	}))
	defer srv.Close()

	p := &massiveDataProvider{
		APIKey:  "test",
		Client:  srv.Client(),
		BaseURL: srv.URL,
	}

	spot, err := p.GetSpot("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spot != 182.52 {
		t.Fatalf("expected spot 182.52, got %f", spot)
	}
}

func TestMassiveProvider_GetSpot_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ticker": "AAPL", "results": []}`))
	}))
	defer srv.Close()

	p := &massiveDataProvider{
		APIKey:  "test",
		Client:  srv.Client(),
		BaseURL: srv.URL,
	}

	if _, err := p.GetSpot("AAPL"); err == nil {
		t.Fatal("expected error for empty results, got nil")
	}
}
