package codecx

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/kanengo/kuid/hashidx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCodec struct {
	Codec
	decodes atomic.Int32
}

func (c *countingCodec) Decode(hash string) ([]uint64, error) {
	c.decodes.Add(1)
	return c.Codec.Decode(hash)
}

func testCodec() Codec {
	return Hashids(hashidx.NewBuilder().Salt("this is my salt").MustBuild())
}

func TestHashids(t *testing.T) {
	c := testCodec()

	hash, err := c.Encode([]uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "laHquq", hash)

	values, err := c.Decode(hash)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, values)

	_, err = c.Decode("laHqur")
	assert.ErrorIs(t, err, hashidx.ErrMalformedHash)
}

func TestCached(t *testing.T) {
	inner := &countingCodec{Codec: testCodec()}
	c := Cached(inner, 8)

	for range 3 {
		values, err := c.Decode("laHquq")
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 2, 3}, values)
	}
	assert.Equal(t, int32(1), inner.decodes.Load())

	hash, err := c.Encode([]uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "laHquq", hash)
}

func TestCachedReturnsCopies(t *testing.T) {
	c := Cached(testCodec(), 8)

	values, err := c.Decode("laHquq")
	require.NoError(t, err)
	values[0] = 99

	values, err = c.Decode("laHquq")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, values)
}

func TestCachedSkipsErrors(t *testing.T) {
	inner := &countingCodec{Codec: testCodec()}
	c := Cached(inner, 8)

	for range 2 {
		_, err := c.Decode("laHqur")
		assert.True(t, errors.Is(err, hashidx.ErrMalformedHash))
	}
	assert.Equal(t, int32(2), inner.decodes.Load())
}
