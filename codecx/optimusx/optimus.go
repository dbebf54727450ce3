package optimusx

import (
	"fmt"

	"github.com/kanengo/kuid/codecx"
	"github.com/pjebs/optimus-go"
)

// MaxValue is the largest value optimus can permute.
const MaxValue = 1<<31 - 1

type Optimus struct {
	optimus.Optimus
}

// New derives the modular inverse of prime. prime must be a prime below 2^31.
func New(prime, random uint64) Optimus {
	return Optimus{Optimus: optimus.NewCalculated(prime, random)}
}

type scrambled struct {
	o     Optimus
	inner codecx.Codec
}

// Scramble permutes every value with o before inner encodes it, so
// consecutive inputs stop producing related hashids.
func Scramble(o Optimus, inner codecx.Codec) codecx.Codec {
	return scrambled{o: o, inner: inner}
}

func (s scrambled) Encode(values []uint64) (string, error) {
	permuted := make([]uint64, len(values))
	for i, v := range values {
		if v > MaxValue {
			return "", fmt.Errorf("%w: %d exceeds %d", codecx.ErrUnsupportedValue, v, uint64(MaxValue))
		}
		permuted[i] = s.o.Encode(v)
	}
	return s.inner.Encode(permuted)
}

func (s scrambled) Decode(hash string) ([]uint64, error) {
	values, err := s.inner.Decode(hash)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if v > MaxValue {
			return nil, fmt.Errorf("%w: %d exceeds %d", codecx.ErrUnsupportedValue, v, uint64(MaxValue))
		}
		values[i] = s.o.Decode(v)
	}
	return values, nil
}
