package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"candlecompare/api"
	"candlecompare/internal/candle"

	"go.uber.org/zap"
)

func newTestHandler() (*api.Handler, *candle.Board) {
	board := candle.NewBoard(60000, 100)
	return api.NewHandler(board, zap.NewNop()), board
}

func doGet(t *testing.T, h *api.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.Routes().ServeHTTP(w, req)
	return w
}

// go test -v --run TestGetMetricsEmpty
func TestGetMetricsEmpty(t *testing.T) {
	h, _ := newTestHandler()

	w := doGet(t, h, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var m candle.Metrics
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}
	if m.MatchedFraction != 0 || m.MeanPriceDeviationBps != 0 {
		t.Errorf("expected zeroed metrics for empty series, got %+v", m)
	}
}

// go test -v --run TestGetSeriesSnapshots
func TestGetSeriesSnapshots(t *testing.T) {
	h, board := newTestHandler()

	board.Aggregator().Ingest([]candle.Trade{
		{Timestamp: 61000, Price: 10, Size: 1},
	})
	board.Merger().Ingest([]candle.Candle{
		{BucketStart: 60000, Open: 10, High: 10.1, Low: 9.9, Close: 10.1, Volume: 1},
	})

	for _, path := range []string{"/series/exchange", "/series/index"} {
		w := doGet(t, h, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}

		var resp struct {
			Candles []candle.Candle `json:"candles"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: failed to decode: %v", path, err)
		}
		if len(resp.Candles) != 1 {
			t.Errorf("%s: expected 1 candle, got %d", path, len(resp.Candles))
		}
	}
}

// go test -v --run TestGetMetricsTracksSeries
func TestGetMetricsTracksSeries(t *testing.T) {
	h, board := newTestHandler()

	board.Aggregator().Ingest([]candle.Trade{
		{Timestamp: 61000, Price: 10, Size: 1},
		{Timestamp: 121000, Price: 11, Size: 1},
	})
	board.Merger().Ingest([]candle.Candle{
		{BucketStart: 60000, Close: 10.1},
	})

	var m candle.Metrics
	w := doGet(t, h, "/metrics")
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}
	if m.MatchedFraction != 0.5 {
		t.Errorf("expected matched fraction 0.5, got %v", m.MatchedFraction)
	}
	if m.MeanPriceDeviationBps < 99.999 || m.MeanPriceDeviationBps > 100.001 {
		t.Errorf("expected ~100 bps, got %v", m.MeanPriceDeviationBps)
	}
}

// go test -v --run TestHealthCheck
func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandler()

	w := doGet(t, h, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
