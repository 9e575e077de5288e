package candle

import "sync"

// CandleMerger maintains a bounded series of externally pre-aggregated
// candles keyed by bucket timestamp. Incoming records may arrive out of
// order and may revise buckets already held; the incoming record is
// authoritative and replaces the held one entirely. Re-ingesting an
// identical batch is a no-op.
type CandleMerger struct {
	mu     sync.Mutex
	series *Series
}

// NewCandleMerger creates a merger retaining at most maxLen candles.
func NewCandleMerger(maxLen int) *CandleMerger {
	return &CandleMerger{series: NewSeries(maxLen)}
}

// Ingest merges a batch of candle records by BucketStart (replace or insert),
// then restores ascending order and the retention bound. An empty batch
// leaves the series untouched.
func (m *CandleMerger) Ingest(batch []Candle) {
	if len(batch) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range batch {
		m.series.Upsert(c)
	}
	m.series.SortTruncate()
}

// Series returns a copy of the current candle series.
func (m *CandleMerger) Series() []Candle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.series.Snapshot()
}
