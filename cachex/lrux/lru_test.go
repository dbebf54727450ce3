package lrux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU(t *testing.T) {
	var evicted []string
	l := NewLRU[string, int](2, WithOnEvict(func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	l.Set("a", 1)
	l.Set("b", 2)
	_, _ = l.Get("a")
	l.Set("c", 3)

	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, 2, l.Len())

	v, ok := l.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = l.Get("b")
	assert.False(t, ok)

	l.Del("a")
	_, ok = l.Get("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"b", "a"}, evicted)

	l.Purge()
	assert.Equal(t, 0, l.Len())
}

func TestLRUDefaultSize(t *testing.T) {
	type args struct {
		size int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{name: "zero", args: args{size: 0}, want: defaultLruSize},
		{name: "negative", args: args{size: -3}, want: defaultLruSize},
		{name: "explicit", args: args{size: 16}, want: 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLRU[int, int](tt.args.size).Size())
		})
	}
}
