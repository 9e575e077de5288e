package indexapi

import (
	"encoding/json"

	"candlecompare/internal/feed/index"
)

// Envelope represents the standard response wrapper used across the
// indexing service's REST endpoints.
type Envelope struct {
	Code    int             `json:"code"`    // 0 means success; non-zero indicates an error code
	Message string          `json:"message"` // Human-readable message describing the result or error
	Result  json.RawMessage `json:"result"`  // Delay decoding // Main response payload (varies per endpoint)
	Time    int64           `json:"time"`    // Server timestamp (in milliseconds since epoch)
}

// CandlesResult is the payload of the candle history endpoint.
type CandlesResult struct {
	Symbol  string               `json:"symbol"`  // e.g., "BTCUSDT"
	Candles []index.CandleRecord `json:"candles"` // Candle rows, newest first
}
