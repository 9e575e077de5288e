package candle

// Trade represents a single execution report received from the exchange trade stream.
type Trade struct {
	Timestamp int64   `json:"timestamp"` // Execution time (in milliseconds since epoch)
	Price     float64 `json:"price"`     // Execution price (positive)
	Size      float64 `json:"size"`      // Executed quantity (positive)
	Side      string  `json:"side"`      // "Buy" or "Sell"
	TradeID   string  `json:"trade_id"`  // Opaque exchange identifier, display only
}

// Candle represents OHLCV statistics for one fixed-width time bucket.
// BucketStart is always an exact multiple of the configured bucket width.
type Candle struct {
	BucketStart int64   `json:"bucket_start"` // Bucket open time (in milliseconds since epoch)
	Open        float64 `json:"open"`         // First traded price in the bucket
	High        float64 `json:"high"`         // Highest traded price in the bucket
	Low         float64 `json:"low"`          // Lowest traded price in the bucket
	Close       float64 `json:"close"`        // Last traded price in the bucket
	Volume      float64 `json:"volume"`       // Total traded quantity in the bucket
}

// BucketStart truncates a millisecond timestamp down to its bucket boundary.
func BucketStart(timestampMs, bucketWidthMs int64) int64 {
	return (timestampMs / bucketWidthMs) * bucketWidthMs
}
