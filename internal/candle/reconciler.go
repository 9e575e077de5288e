package candle

// Metrics is a stateless agreement snapshot between two candle series.
type Metrics struct {
	// MatchedFraction is the fraction (0-1) of exchange-series buckets that
	// have a same-timestamp counterpart in the index series.
	MatchedFraction float64 `json:"matched_fraction"`

	// MeanPriceDeviationBps is the mean of |closeA-closeB|/closeA over
	// matched buckets, in basis points.
	MeanPriceDeviationBps float64 `json:"mean_price_deviation_bps"`

	// MatchedBuckets and ComparedBuckets expose the raw counts behind
	// MatchedFraction for display.
	MatchedBuckets  int `json:"matched_buckets"`
	ComparedBuckets int `json:"compared_buckets"`
}

// Reconcile computes agreement metrics between two candle series. It is a
// pure recomputation from the given snapshots and holds no state.
//
// A matched bucket whose series-A close is zero still counts toward
// MatchedFraction but contributes no deviation term, so a zero close can
// never produce a division fault.
func Reconcile(seriesA, seriesB []Candle) Metrics {
	if len(seriesA) == 0 || len(seriesB) == 0 {
		return Metrics{}
	}

	byBucket := make(map[int64]Candle, len(seriesB))
	for _, b := range seriesB {
		byBucket[b.BucketStart] = b
	}

	var (
		matched  int
		devSum   float64
		devCount int
	)
	for _, a := range seriesA {
		b, ok := byBucket[a.BucketStart]
		if !ok {
			continue
		}
		matched++
		if a.Close == 0 {
			continue
		}
		dev := a.Close - b.Close
		if dev < 0 {
			dev = -dev
		}
		devSum += dev / a.Close
		devCount++
	}

	m := Metrics{
		MatchedFraction: float64(matched) / float64(len(seriesA)),
		MatchedBuckets:  matched,
		ComparedBuckets: len(seriesA),
	}
	if devCount > 0 {
		m.MeanPriceDeviationBps = 10000 * devSum / float64(devCount)
	}
	return m
}
