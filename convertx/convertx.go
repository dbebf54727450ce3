package convertx

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrOutOfRange = errors.New("convertx: value out of range")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ToUint64 widens i to uint64. Negative values are rejected.
func ToUint64[T Integer](i T) (uint64, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	return uint64(i), nil
}

// FromUint64 narrows u to T, failing if u does not survive the round trip.
func FromUint64[T Integer](u uint64) (T, error) {
	t := T(u)
	if t < 0 || uint64(t) != u {
		var zero T
		return zero, fmt.Errorf("%w: %d does not fit %T", ErrOutOfRange, u, zero)
	}
	return t, nil
}

func ToUint64s[T Integer](s []T) ([]uint64, error) {
	ret := make([]uint64, 0, len(s))
	for _, v := range s {
		u, err := ToUint64(v)
		if err != nil {
			return nil, err
		}
		ret = append(ret, u)
	}
	return ret, nil
}

func FromUint64s[T Integer](s []uint64) ([]T, error) {
	ret := make([]T, 0, len(s))
	for _, u := range s {
		v, err := FromUint64[T](u)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// ParseUint64s parses decimal strings, reporting the first argument that fails.
func ParseUint64s(ss []string) ([]uint64, error) {
	ret := make([]uint64, 0, len(ss))
	for _, s := range ss {
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		ret = append(ret, u)
	}
	return ret, nil
}
