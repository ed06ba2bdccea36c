package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseID parses a path segment as a record identifier.
// Identifiers are positive base-10 integers; anything else returns onInvalid.
func ParseID(raw string, onInvalid *Error) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, onInvalid
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, onInvalid
	}
	return id, nil
}

// ParseVoteIncrement validates a decoded inc_votes value.
// Accepts JSON integers (including integral floats like 10.0) that fit in an
// int; rejects absent values, strings, booleans, fractional numbers and
// out-of-range magnitudes.
func ParseVoteIncrement(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return intFromInt64(n)
	case float64:
		return intFromFloat(n)
	case interface {
		Int64() (int64, error)
		Float64() (float64, error)
	}:
		if i, err := n.Int64(); err == nil {
			return intFromInt64(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, ErrInvalidInput
		}
		return intFromFloat(f)
	default:
		return 0, ErrInvalidInput
	}
}

func intFromInt64(i int64) (int, error) {
	if i < math.MinInt || i > math.MaxInt {
		return 0, ErrInvalidInput
	}
	return int(i), nil
}

// intFromFloat converts an integral float. 2^63 itself is out of range for
// int64, hence the half-open upper bound.
func intFromFloat(f float64) (int, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, ErrInvalidInput
	}
	return intFromInt64(int64(f))
}
