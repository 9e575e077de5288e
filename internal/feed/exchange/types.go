package exchange

// TradeMessage represents a WebSocket message from the exchange public trade stream.
type TradeMessage struct {
	Topic string        `json:"topic"` // Topic string of the subscription stream, e.g., "publicTrade.BTCUSDT"
	Data  []TradeRecord `json:"data"`  // Array of execution reports
	Ts    int64         `json:"ts"`    // Timestamp (in milliseconds) when the message was generated
	Type  string        `json:"type"`  // Message type, e.g., "snapshot" or "delta"
}

// TradeRecord is a single execution report as delivered on the wire.
// Numeric fields arrive as strings and go through the strict decode boundary.
type TradeRecord struct {
	Timestamp int64  `json:"T"` // Execution time (in milliseconds since epoch)
	Symbol    string `json:"s"` // Trading symbol (e.g., "BTCUSDT")
	Side      string `json:"S"` // Taker side, "Buy" or "Sell"
	Size      string `json:"v"` // Executed quantity
	Price     string `json:"p"` // Execution price
	TradeID   string `json:"i"` // Exchange trade identifier
}
