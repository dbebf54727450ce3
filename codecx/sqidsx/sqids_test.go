package sqidsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqids(t *testing.T) {
	type args struct {
		minLength int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "default", args: args{minLength: 0}, want: "86Rf07"},
		{name: "padded", args: args{minLength: 10}, want: "86Rf07xd4z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("", tt.args.minLength)
			require.NoError(t, err)

			id, err := s.Encode([]uint64{1, 2, 3})
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)

			values, err := s.Decode(id)
			require.NoError(t, err)
			assert.Equal(t, []uint64{1, 2, 3}, values)
		})
	}
}

func TestSqidsMalformed(t *testing.T) {
	s, err := New("", 0)
	require.NoError(t, err)

	for _, id := range []string{"", "*", "86Rf07*"} {
		_, err := s.Decode(id)
		assert.ErrorIs(t, err, ErrMalformedID, id)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New("", 256)
	assert.Error(t, err)

	_, err = New("", -1)
	assert.Error(t, err)

	_, err = New("ab", 0)
	assert.Error(t, err)
}
