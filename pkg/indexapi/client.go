// Package indexapi provides a REST client for the indexing service, used to
// backfill recent candles at session start while the live subscription warms up.
package indexapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"candlecompare/internal/candle"
	"candlecompare/internal/feed/index"

	"go.uber.org/zap"
)

type Client struct {
	baseURL       string
	bucketWidthMs int64
	httpClient    *http.Client
	logger        *zap.Logger
}

// NewClient creates an index-service REST client. The bucket width is the
// session's candle interval; rows not aligned to it fail the decode boundary.
func NewClient(baseURL string, timeout time.Duration, bucketWidthMs int64, logger *zap.Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		bucketWidthMs: bucketWidthMs,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
	}
}

func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// GetCandles fetches pre-aggregated candles for the symbol over [start, end].
// Rows failing the strict decode boundary are dropped individually with a
// diagnostic; the remaining rows are returned.
func (c *Client) GetCandles(ctx context.Context, symbol string,
	start, end time.Time) ([]candle.Candle, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/market/candles?symbol=%s&start=%d&end=%d",
		c.baseURL,
		symbol,
		start.UnixMilli(),
		end.UnixMilli(),
	)

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("index service error: %s", body)
	}

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if envelope.Code != 0 {
		return nil, fmt.Errorf("index service returned code %d: %s", envelope.Code, envelope.Message)
	}

	// Decode result into CandlesResult
	var result CandlesResult
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	out := make([]candle.Candle, 0, len(result.Candles))
	for _, row := range result.Candles {
		decoded, err := index.DecodeCandle(row, c.bucketWidthMs)
		if err != nil {
			c.logger.Warn("dropped malformed backfill row",
				zap.String("symbol", symbol), zap.Int64("start", row.Start), zap.Error(err))
			continue
		}
		out = append(out, decoded)
	}
	return out, nil
}
