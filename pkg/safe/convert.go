// Package safe provides checked conversions between Go integers and SQL BIGINT columns.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Int64 converts v to int64, failing for unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	switch value := any(v).(type) {
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	case uint64:
		if value > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	}
	return int64(v), nil
}

// Uint64 converts v to uint64, failing for negative values.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64s converts every element with Int64.
func Int64s[T Integer](vs []T) ([]int64, error) {
	out := make([]int64, len(vs))
	for i, v := range vs {
		c, err := Int64(v)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
