package codecx

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kanengo/kuid/basex/recoveryx"
	"github.com/kanengo/kuid/hashidx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMany(t *testing.T) {
	inputs := [][]uint64{{1, 2, 3}, {1226198605112}, {}, {0}}
	want := []string{"laHquq", "4o6Z7KqxE", "", "5x"}

	results := EncodeMany(context.Background(), testCodec(), inputs, WithConcurrency(2))
	require.Len(t, results, len(inputs))
	for i, r := range results {
		got, err := r.Get()
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
	}
}

func TestDecodeMany(t *testing.T) {
	inputs := []string{"laHquq", "laHqur", "5x", "", "4o6Z7KqxE"}

	results := DecodeMany(context.Background(), testCodec(), inputs)
	require.Len(t, results, len(inputs))

	assert.Equal(t, []uint64{1, 2, 3}, results[0].Must())
	assert.ErrorIs(t, results[1].Err(), hashidx.ErrMalformedHash)
	assert.Equal(t, []uint64{0}, results[2].Must())
	assert.ErrorIs(t, results[3].Err(), hashidx.ErrMalformedHash)
	assert.Equal(t, []uint64{1226198605112}, results[4].Must())
}

type slowCodec struct {
	Codec
	running atomic.Int32
	peak    atomic.Int32
}

func (c *slowCodec) Decode(hash string) ([]uint64, error) {
	n := c.running.Add(1)
	defer c.running.Add(-1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	return c.Codec.Decode(hash)
}

func TestDecodeManyConcurrency(t *testing.T) {
	c := &slowCodec{Codec: testCodec()}
	inputs := make([]string, 32)
	for i := range inputs {
		inputs[i] = "laHquq"
	}

	results := DecodeMany(context.Background(), c, inputs, WithConcurrency(3))
	for _, r := range results {
		assert.True(t, r.Ok())
	}
	assert.LessOrEqual(t, c.peak.Load(), int32(3))
	assert.Positive(t, c.peak.Load())
}

type panicCodec struct {
	Codec
}

func (panicCodec) Decode(hash string) ([]uint64, error) {
	if hash == "boom" {
		panic("decoder exploded")
	}
	n, err := strconv.ParseUint(hash, 10, 64)
	return []uint64{n}, err
}

func TestDecodeManyPanic(t *testing.T) {
	results := DecodeMany(context.Background(), panicCodec{}, []string{"1", "boom", "3"})

	assert.Equal(t, []uint64{1}, results[0].Must())
	assert.ErrorIs(t, results[1].Err(), recoveryx.ErrPanic)
	assert.Equal(t, []uint64{3}, results[2].Must())
}

func TestDecodeManyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := DecodeMany(ctx, testCodec(), []string{"laHquq", "5x"})
	for _, r := range results {
		assert.True(t, errors.Is(r.Err(), context.Canceled))
	}
}

func TestEncodeManyEmpty(t *testing.T) {
	assert.Empty(t, EncodeMany(context.Background(), testCodec(), nil))
}
