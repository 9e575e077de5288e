package candle

import "sync"

// TradeAggregator folds a live trade stream into a bounded series of
// fixed-width OHLCV candles. It owns its series exclusively; all updates go
// through Ingest.
type TradeAggregator struct {
	mu            sync.Mutex
	bucketWidthMs int64
	series        *Series
	droppedLate   int64
}

// NewTradeAggregator creates an aggregator producing candles of the given
// bucket width, retaining at most maxLen candles.
func NewTradeAggregator(bucketWidthMs int64, maxLen int) *TradeAggregator {
	return &TradeAggregator{
		bucketWidthMs: bucketWidthMs,
		series:        NewSeries(maxLen),
	}
}

// Ingest applies a batch of trades left to right, preserving the
// update-in-place-or-append rule per element. Trades are expected in
// non-decreasing timestamp order within a session; a trade whose bucket
// precedes the current tail is dropped and counted, never merged back.
func (a *TradeAggregator) Ingest(trades []Trade) {
	if len(trades) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, t := range trades {
		start := BucketStart(t.Timestamp, a.bucketWidthMs)

		tail := a.series.Tail()
		if tail != nil && tail.BucketStart == start {
			if t.Price > tail.High {
				tail.High = t.Price
			}
			if t.Price < tail.Low {
				tail.Low = t.Price
			}
			tail.Close = t.Price
			tail.Volume += t.Size
			continue
		}
		if tail != nil && start < tail.BucketStart {
			// Late trade for an already-closed bucket. Only the tail is ever
			// updated, so the print is dropped rather than rewritten in.
			a.droppedLate++
			continue
		}

		a.series.Append(Candle{
			BucketStart: start,
			Open:        t.Price,
			High:        t.Price,
			Low:         t.Price,
			Close:       t.Price,
			Volume:      t.Size,
		})
	}
}

// Series returns a copy of the current candle series.
func (a *TradeAggregator) Series() []Candle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.series.Snapshot()
}

// DroppedLate returns how many trades were dropped for landing in a bucket
// older than the tail.
func (a *TradeAggregator) DroppedLate() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.droppedLate
}
