package candle

import "testing"

func testBatch() []Candle {
	return []Candle{
		{BucketStart: 60000, Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 5},
		{BucketStart: 120000, Open: 10.5, High: 12, Low: 10, Close: 11.5, Volume: 3},
		{BucketStart: 180000, Open: 11.5, High: 11.5, Low: 11, Close: 11, Volume: 2},
	}
}

// go test -v --run TestMergerInsertAndOrder
func TestMergerInsertAndOrder(t *testing.T) {
	m := NewCandleMerger(100)

	// Deliberately out of order; the merger restores ascending bucket order.
	batch := testBatch()
	m.Ingest([]Candle{batch[2], batch[0], batch[1]})

	series := m.Series()
	if len(series) != 3 {
		t.Fatalf("expected 3 candles, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i-1].BucketStart >= series[i].BucketStart {
			t.Errorf("series not ascending at %d: %d >= %d", i, series[i-1].BucketStart, series[i].BucketStart)
		}
	}
}

// go test -v --run TestMergerIdempotent
func TestMergerIdempotent(t *testing.T) {
	m := NewCandleMerger(100)

	m.Ingest(testBatch())
	first := m.Series()

	m.Ingest(testBatch())
	second := m.Series()

	if len(first) != len(second) {
		t.Fatalf("re-ingesting identical batch changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("candle %d changed on re-ingest: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// go test -v --run TestMergerReplaceByKey
func TestMergerReplaceByKey(t *testing.T) {
	m := NewCandleMerger(100)
	m.Ingest(testBatch())

	// Provider revises the still-open middle bucket; the revision is authoritative.
	revised := testBatch()
	revised[1].Close = 99
	revised[1].High = 99
	m.Ingest([]Candle{revised[1]})

	series := m.Series()
	if len(series) != 3 {
		t.Fatalf("replace must not grow the series: got %d", len(series))
	}
	if !floatEquals(series[1].Close, 99) {
		t.Errorf("expected revised close 99, got %v", series[1].Close)
	}
	if series[0] != testBatch()[0] || series[2] != testBatch()[2] {
		t.Errorf("replace touched unrelated entries: %+v / %+v", series[0], series[2])
	}
}

// go test -v --run TestMergerEmptyBatch
func TestMergerEmptyBatch(t *testing.T) {
	m := NewCandleMerger(100)
	m.Ingest(testBatch())

	before := m.Series()
	m.Ingest(nil)
	m.Ingest([]Candle{})
	after := m.Series()

	if len(before) != len(after) {
		t.Fatalf("empty batch mutated the series: %d vs %d", len(before), len(after))
	}
}

// go test -v --run TestMergerRetentionBound
func TestMergerRetentionBound(t *testing.T) {
	const maxLen = 100
	m := NewCandleMerger(maxLen)

	batch := make([]Candle, 0, 150)
	for i := 0; i < 150; i++ {
		batch = append(batch, Candle{BucketStart: int64(i) * 60000, Close: float64(i)})
	}
	m.Ingest(batch)

	series := m.Series()
	if len(series) != maxLen {
		t.Fatalf("expected series bounded to %d, got %d", maxLen, len(series))
	}
	if series[0].BucketStart != 50*60000 {
		t.Errorf("expected most recent %d entries kept, head at %d", maxLen, series[0].BucketStart)
	}
}
