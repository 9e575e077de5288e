// Package feed holds the strict decode boundary between raw feed payloads
// and the candle engine. Every numeric field is parsed and checked here so
// that no non-finite or missing value ever reaches an aggregator.
package feed

import (
	"fmt"
	"math"
	"strconv"
)

// MalformedRecordError reports a record field that failed strict decoding.
// The offending record is dropped and processing continues; this error is
// diagnostic, never fatal.
type MalformedRecordError struct {
	Field  string
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record field %q=%q: %s", e.Field, e.Value, e.Reason)
}

// ParseFinite parses a required numeric field, rejecting empty, non-numeric
// and non-finite values.
func ParseFinite(field, value string) (float64, error) {
	if value == "" {
		return 0, &MalformedRecordError{Field: field, Value: value, Reason: "missing required numeric field"}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &MalformedRecordError{Field: field, Value: value, Reason: "not a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &MalformedRecordError{Field: field, Value: value, Reason: "non-finite value"}
	}
	return f, nil
}

// ParsePositive parses a required numeric field that must be strictly
// positive, such as a trade price or size.
func ParsePositive(field, value string) (float64, error) {
	f, err := ParseFinite(field, value)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, &MalformedRecordError{Field: field, Value: value, Reason: "non-positive value"}
	}
	return f, nil
}

// ParseTimestamp validates a required epoch-millisecond field. A record
// missing its timestamp decodes to zero, so zero and negative values are
// rejected as missing.
func ParseTimestamp(field string, value int64) (int64, error) {
	if value <= 0 {
		return 0, &MalformedRecordError{
			Field:  field,
			Value:  strconv.FormatInt(value, 10),
			Reason: "missing required numeric field",
		}
	}
	return value, nil
}

// ParseBucketStart validates a bucket timestamp: present, positive, and an
// exact multiple of the bucket width.
func ParseBucketStart(field string, value, bucketWidthMs int64) (int64, error) {
	ts, err := ParseTimestamp(field, value)
	if err != nil {
		return 0, err
	}
	if ts%bucketWidthMs != 0 {
		return 0, &MalformedRecordError{
			Field:  field,
			Value:  strconv.FormatInt(value, 10),
			Reason: "not aligned to bucket width",
		}
	}
	return ts, nil
}
