package codecx

import (
	"slices"

	"github.com/kanengo/kuid/cachex/lrux"
)

type cached struct {
	inner Codec
	lru   *lrux.LRU[string, []uint64]
}

// Cached memoises successful decodes of inner in an LRU of the given size.
// Failed decodes are not cached. Returned slices are owned by the caller.
func Cached(inner Codec, size int) Codec {
	return &cached{
		inner: inner,
		lru:   lrux.NewLRU[string, []uint64](size),
	}
}

func (c *cached) Encode(values []uint64) (string, error) {
	return c.inner.Encode(values)
}

func (c *cached) Decode(hash string) ([]uint64, error) {
	if values, ok := c.lru.Get(hash); ok {
		return slices.Clone(values), nil
	}

	values, err := c.inner.Decode(hash)
	if err != nil {
		return nil, err
	}
	c.lru.Set(hash, slices.Clone(values))
	return values, nil
}
