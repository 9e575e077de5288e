package candle

// Board owns the two aggregation paths for one asset: trades from the
// exchange feed on one side, pre-aggregated candles from the indexing
// service on the other. The two series never share mutable state; metrics
// are recomputed from current snapshots on every call.
type Board struct {
	aggregator *TradeAggregator
	merger     *CandleMerger
}

// NewBoard creates a board with the given bucket width and per-series
// retention bound. Both values are fixed for the session.
func NewBoard(bucketWidthMs int64, maxSeriesLen int) *Board {
	return &Board{
		aggregator: NewTradeAggregator(bucketWidthMs, maxSeriesLen),
		merger:     NewCandleMerger(maxSeriesLen),
	}
}

// Aggregator returns the exchange-side trade aggregator.
func (b *Board) Aggregator() *TradeAggregator {
	return b.aggregator
}

// Merger returns the index-side candle merger.
func (b *Board) Merger() *CandleMerger {
	return b.merger
}

// ExchangeSeries returns a snapshot of the series built from raw trades.
func (b *Board) ExchangeSeries() []Candle {
	return b.aggregator.Series()
}

// IndexSeries returns a snapshot of the series merged from provider candles.
func (b *Board) IndexSeries() []Candle {
	return b.merger.Series()
}

// Metrics reconciles the two current snapshots.
func (b *Board) Metrics() Metrics {
	return Reconcile(b.aggregator.Series(), b.merger.Series())
}
