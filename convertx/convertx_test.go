package convertx

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUint64(t *testing.T) {
	u, err := ToUint64(int64(42))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), u)

	u, err = ToUint64(uint8(255))
	require.NoError(t, err)
	assert.Equal(t, uint64(255), u)

	_, err = ToUint64(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFromUint64(t *testing.T) {
	i, err := FromUint64[int32](math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), i)

	_, err = FromUint64[int32](math.MaxInt32 + 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FromUint64[int64](math.MaxUint64)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FromUint64[uint8](256)
	assert.ErrorIs(t, err, ErrOutOfRange)

	u, err := FromUint64[uint64](math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u)
}

func TestSlices(t *testing.T) {
	us, err := ToUint64s([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, us)

	_, err = ToUint64s([]int{1, -2, 3})
	assert.ErrorIs(t, err, ErrOutOfRange)

	is, err := FromUint64s[int16](us)
	require.NoError(t, err)
	assert.Equal(t, []int16{1, 2, 3}, is)

	_, err = FromUint64s[int16]([]uint64{1, 1 << 20})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParseUint64s(t *testing.T) {
	us, err := ParseUint64s([]string{"0", "1226198605112", "18446744073709551615"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1226198605112, math.MaxUint64}, us)

	_, err = ParseUint64s([]string{"1", "-1"})
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ParseUint64s([]string{"18446744073709551616"})
	assert.ErrorIs(t, err, strconv.ErrRange)
}
