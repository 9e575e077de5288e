package index

// CandleMessage represents a subscription message from the indexing service
// carrying pre-aggregated candles. Batches may arrive out of order and may
// revise buckets that were already delivered.
type CandleMessage struct {
	Topic string         `json:"topic"` // Topic string of the subscription stream, e.g., "candle.1m.BTCUSDT"
	Data  []CandleRecord `json:"data"`  // Array of candle records
	Ts    int64          `json:"ts"`    // Timestamp (in milliseconds) when the message was generated
	Type  string         `json:"type"`  // Message type, e.g., "snapshot" or "update"
}

// CandleRecord is one pre-aggregated candle as delivered on the wire.
// Numeric fields arrive as strings and go through the strict decode boundary.
type CandleRecord struct {
	Start  int64  `json:"start"`  // Bucket open time (in milliseconds since epoch)
	Open   string `json:"open"`   // Opening price
	High   string `json:"high"`   // Highest price during the bucket
	Low    string `json:"low"`    // Lowest price during the bucket
	Close  string `json:"close"`  // Closing price
	Volume string `json:"volume"` // Traded quantity during the bucket
}
