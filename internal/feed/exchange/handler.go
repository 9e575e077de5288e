package exchange

import (
	"encoding/json"
	"strings"

	"candlecompare/internal/candle"
	"candlecompare/internal/feed"

	"go.uber.org/zap"
)

// MakeMessageHandler returns a function that handles incoming WebSocket
// messages from the exchange trade stream, decoding execution reports and
// folding them into the trade aggregator. A record that fails strict decode
// is dropped with a warning; the rest of the batch is still applied.
func MakeMessageHandler(logger *zap.Logger, agg *candle.TradeAggregator) func(msg []byte) {
	return func(msg []byte) {
		// Step 1: Extract topic string for early filtering
		var meta struct {
			Topic string `json:"topic"`
		}
		if err := json.Unmarshal(msg, &meta); err != nil {
			logger.Warn("failed to extract topic", zap.Error(err))
			return
		}
		if !isTradeTopic(meta.Topic) {
			return // Ignore non-trade messages (e.g., subscription responses)
		}

		// Step 2: Fully parse the trade message payload
		var parsed TradeMessage
		if err := json.Unmarshal(msg, &parsed); err != nil {
			logger.Warn("failed to parse trade payload", zap.Error(err))
			return
		}

		// Step 3: Strict per-record decode, then fold the batch in arrival order
		trades := make([]candle.Trade, 0, len(parsed.Data))
		for _, rec := range parsed.Data {
			trade, err := DecodeTrade(rec)
			if err != nil {
				logger.Warn("dropped malformed trade record",
					zap.String("trade_id", rec.TradeID), zap.Error(err))
				continue
			}
			trades = append(trades, trade)
		}
		agg.Ingest(trades)
	}
}

// DecodeTrade converts a wire record into an engine trade, enforcing the
// strict numeric boundary: the timestamp must be present and price and size
// must be positive finite numbers.
func DecodeTrade(rec TradeRecord) (candle.Trade, error) {
	timestamp, err := feed.ParseTimestamp("timestamp", rec.Timestamp)
	if err != nil {
		return candle.Trade{}, err
	}
	price, err := feed.ParsePositive("price", rec.Price)
	if err != nil {
		return candle.Trade{}, err
	}
	size, err := feed.ParsePositive("size", rec.Size)
	if err != nil {
		return candle.Trade{}, err
	}

	return candle.Trade{
		Timestamp: timestamp,
		Price:     price,
		Size:      size,
		Side:      rec.Side,
		TradeID:   rec.TradeID,
	}, nil
}

// isTradeTopic returns true if the topic string indicates a public trade stream.
func isTradeTopic(topic string) bool {
	return strings.HasPrefix(topic, "publicTrade.")
}
