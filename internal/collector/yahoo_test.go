package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const chartBody = `{"chart":{"result":[{"timestamp":[1756339200,1756425600,1756512000],
"indicators":{"quote":[{
"open":[98,null,99.5],
"high":[100,null,110],
"low":[92,null,90],
"close":[95,null,100],
"volume":[1000,null,2000]}]}}],"error":null}}`

func testYahoo(t *testing.T, handler http.HandlerFunc) *YahooFetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	f := NewYahooFetcher(2*time.Second, "")
	f.client.SetBaseURL(srv.URL)
	return f
}

func TestFetchDailyBars_ParsesAndSkipsNullBars(t *testing.T) {
	f := testYahoo(t, func(w http.ResponseWriter, req *http.Request) {
		if got := req.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("expected 1d interval, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartBody))
	})

	bars, err := f.FetchDailyBars(context.Background(), "NVDA", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars after null skip, got %d", len(bars))
	}
	if bars[0].Close != 95 || bars[1].Close != 100 {
		t.Errorf("unexpected closes: %v, %v", bars[0].Close, bars[1].Close)
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars must be in chronological order")
	}
}

func TestFetchDailyBars_TrimsToRequestedDays(t *testing.T) {
	f := testYahoo(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartBody))
	})

	bars, err := f.FetchDailyBars(context.Background(), "NVDA", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
	if bars[0].Close != 100 {
		t.Errorf("expected most recent bar kept, got close %v", bars[0].Close)
	}
}

func TestFetchDailyBars_RaggedQuoteArrays(t *testing.T) {
	// Malformed payload: open/high/low/volume shorter than timestamp/close.
	// Must parse without panicking so the symbol can be handled upstream.
	body := `{"chart":{"result":[{"timestamp":[1756339200,1756425600],
"indicators":{"quote":[{
"open":[98],
"high":[100],
"low":[92],
"close":[95,100],
"volume":[1000]}]}}],"error":null}}`
	f := testYahoo(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})

	bars, err := f.FetchDailyBars(context.Background(), "NVDA", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].High != 100 || bars[0].Close != 95 {
		t.Errorf("unexpected first bar: %+v", bars[0])
	}
	if bars[1].Close != 100 {
		t.Errorf("expected close 100 for truncated bar, got %v", bars[1].Close)
	}
	if bars[1].High != 0 || bars[1].Low != 0 || bars[1].Volume != 0 {
		t.Errorf("missing fields must read as zero, got %+v", bars[1])
	}
}

func TestFetchDailyBars_APIError(t *testing.T) {
	f := testYahoo(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
	})

	if _, err := f.FetchDailyBars(context.Background(), "NOPE", 10); err == nil {
		t.Fatal("expected error for chart api error")
	}
}

func TestFetchDailyBars_EmptyResult(t *testing.T) {
	f := testYahoo(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	})

	bars, err := f.FetchDailyBars(context.Background(), "EMPTY", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 0 {
		t.Errorf("expected no bars, got %d", len(bars))
	}
}

func TestFetchDailyBars_HTTPError(t *testing.T) {
	f := testYahoo(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	if _, err := f.FetchDailyBars(context.Background(), "NVDA", 10); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestYahooSymbolMapping(t *testing.T) {
	f := NewYahooFetcher(time.Second, "")
	if got := f.yahooSymbol("SPX500"); got != "^GSPC" {
		t.Errorf("expected ^GSPC, got %q", got)
	}
	if got := f.yahooSymbol("NVDA"); got != "NVDA" {
		t.Errorf("expected passthrough, got %q", got)
	}
}
