// Package codecx puts the hashid encoders behind one interface so callers can
// swap, memoise and batch them.
package codecx

import (
	"errors"

	"github.com/kanengo/kuid/hashidx"
)

// ErrUnsupportedValue is returned by codecs that accept a narrower range than uint64.
var ErrUnsupportedValue = errors.New("value not supported by codec")

type Codec interface {
	Encode(values []uint64) (string, error)
	Decode(hash string) ([]uint64, error)
}

type hashids struct {
	h *hashidx.HashID
}

// Hashids adapts h to Codec. Encode never fails.
func Hashids(h *hashidx.HashID) Codec {
	return hashids{h: h}
}

func (c hashids) Encode(values []uint64) (string, error) {
	return c.h.Encode(values), nil
}

func (c hashids) Decode(hash string) ([]uint64, error) {
	return c.h.Decode(hash)
}
