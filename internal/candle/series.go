package candle

import "sort"

// Series is an ordered sequence of candles, unique by BucketStart, retained
// up to a fixed maximum length with the oldest entries evicted first.
// Series is not safe for concurrent use; each owner guards its own instance.
type Series struct {
	maxLen  int
	candles []Candle
}

func NewSeries(maxLen int) *Series {
	return &Series{
		maxLen:  maxLen,
		candles: make([]Candle, 0, maxLen),
	}
}

func (s *Series) Len() int {
	return len(s.candles)
}

// Tail returns a pointer to the most recent candle, or nil if the series is empty.
// The pointer stays valid only until the next mutation.
func (s *Series) Tail() *Candle {
	if len(s.candles) == 0 {
		return nil
	}
	return &s.candles[len(s.candles)-1]
}

// Append adds a candle at the end and evicts the oldest entries beyond the bound.
func (s *Series) Append(c Candle) {
	s.candles = append(s.candles, c)
	s.truncate()
}

// Upsert replaces the entry with the same BucketStart entirely, or inserts the
// candle if no such entry exists. Ordering is restored by SortTruncate.
func (s *Series) Upsert(c Candle) {
	for i := range s.candles {
		if s.candles[i].BucketStart == c.BucketStart {
			s.candles[i] = c
			return
		}
	}
	s.candles = append(s.candles, c)
}

// SortTruncate sorts the series ascending by BucketStart and keeps only the
// most recent maxLen entries.
func (s *Series) SortTruncate() {
	sort.Slice(s.candles, func(i, j int) bool {
		return s.candles[i].BucketStart < s.candles[j].BucketStart
	})
	s.truncate()
}

func (s *Series) truncate() {
	if len(s.candles) > s.maxLen {
		s.candles = append(s.candles[:0], s.candles[len(s.candles)-s.maxLen:]...)
	}
}

// Snapshot returns a copy of the current candles.
func (s *Series) Snapshot() []Candle {
	cp := make([]Candle, len(s.candles))
	copy(cp, s.candles)
	return cp
}
