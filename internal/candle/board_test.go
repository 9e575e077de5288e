package candle

import "testing"

// go test -v --run TestBoardSnapshots
func TestBoardSnapshots(t *testing.T) {
	board := NewBoard(60000, 100)

	board.Aggregator().Ingest([]Trade{
		{Timestamp: 61000, Price: 10, Size: 1},
		{Timestamp: 121000, Price: 11, Size: 1},
	})
	board.Merger().Ingest([]Candle{
		{BucketStart: 60000, Open: 10, High: 10.1, Low: 9.9, Close: 10.1, Volume: 1},
	})

	if got := len(board.ExchangeSeries()); got != 2 {
		t.Fatalf("expected 2 exchange candles, got %d", got)
	}
	if got := len(board.IndexSeries()); got != 1 {
		t.Fatalf("expected 1 index candle, got %d", got)
	}

	m := board.Metrics()
	if !floatEquals(m.MatchedFraction, 0.5) {
		t.Errorf("expected matched fraction 0.5, got %v", m.MatchedFraction)
	}

	// Metrics must track series changes with no memory of their own.
	board.Merger().Ingest([]Candle{
		{BucketStart: 120000, Open: 11, High: 11, Low: 11, Close: 11, Volume: 1},
	})
	m = board.Metrics()
	if !floatEquals(m.MatchedFraction, 1) {
		t.Errorf("expected matched fraction to follow series change, got %v", m.MatchedFraction)
	}
}

// go test -v --run TestBoardSnapshotIsolation
func TestBoardSnapshotIsolation(t *testing.T) {
	board := NewBoard(60000, 100)
	board.Aggregator().Ingest([]Trade{{Timestamp: 1000, Price: 5, Size: 1}})

	snap := board.ExchangeSeries()
	snap[0].Close = 999

	if got := board.ExchangeSeries()[0].Close; got != 5 {
		t.Errorf("snapshot mutation leaked into the series: close=%v", got)
	}
}
