package index

import (
	"encoding/json"
	"strings"

	"candlecompare/internal/candle"
	"candlecompare/internal/feed"

	"go.uber.org/zap"
)

// MakeMessageHandler returns a function that handles incoming subscription
// messages from the indexing service, decoding candle batches into the
// merger. A record missing a required numeric field aborts only that record,
// not the batch; an empty batch is a no-op.
func MakeMessageHandler(logger *zap.Logger, merger *candle.CandleMerger,
	bucketWidthMs int64) func(msg []byte) {
	return func(msg []byte) {
		var meta struct {
			Topic string `json:"topic"`
		}
		if err := json.Unmarshal(msg, &meta); err != nil {
			logger.Warn("failed to extract topic", zap.Error(err))
			return
		}
		if !isCandleTopic(meta.Topic) {
			return
		}

		var parsed CandleMessage
		if err := json.Unmarshal(msg, &parsed); err != nil {
			logger.Warn("failed to parse candle payload", zap.Error(err))
			return
		}

		batch := make([]candle.Candle, 0, len(parsed.Data))
		for _, rec := range parsed.Data {
			c, err := DecodeCandle(rec, bucketWidthMs)
			if err != nil {
				logger.Warn("dropped malformed candle record",
					zap.Int64("start", rec.Start), zap.Error(err))
				continue
			}
			batch = append(batch, c)
		}
		merger.Ingest(batch)
	}
}

// DecodeCandle converts a wire record into an engine candle, enforcing the
// strict numeric boundary on every price and volume field. The bucket
// timestamp must be present and an exact multiple of the bucket width;
// volume must not be negative.
func DecodeCandle(rec CandleRecord, bucketWidthMs int64) (candle.Candle, error) {
	start, err := feed.ParseBucketStart("start", rec.Start, bucketWidthMs)
	if err != nil {
		return candle.Candle{}, err
	}
	open, err := feed.ParseFinite("open", rec.Open)
	if err != nil {
		return candle.Candle{}, err
	}
	high, err := feed.ParseFinite("high", rec.High)
	if err != nil {
		return candle.Candle{}, err
	}
	low, err := feed.ParseFinite("low", rec.Low)
	if err != nil {
		return candle.Candle{}, err
	}
	closePrice, err := feed.ParseFinite("close", rec.Close)
	if err != nil {
		return candle.Candle{}, err
	}
	volume, err := feed.ParseFinite("volume", rec.Volume)
	if err != nil {
		return candle.Candle{}, err
	}
	if volume < 0 {
		return candle.Candle{}, &feed.MalformedRecordError{
			Field: "volume", Value: rec.Volume, Reason: "negative volume",
		}
	}

	return candle.Candle{
		BucketStart: start,
		Open:        open,
		High:        high,
		Low:         low,
		Close:       closePrice,
		Volume:      volume,
	}, nil
}

// isCandleTopic returns true if the topic string indicates a candle stream.
func isCandleTopic(topic string) bool {
	return strings.HasPrefix(topic, "candle.")
}
