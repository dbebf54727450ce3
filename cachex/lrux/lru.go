package lrux

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultLruSize = 1024 * 10
)

type lruOption[K comparable, V any] struct {
	size    int
	onEvict func(K, V)
}

// LRU is a fixed-size, concurrency-safe cache.
type LRU[K comparable, V any] struct {
	options *lruOption[K, V]
	c       *lru.Cache[K, V]
}

func WithOnEvict[K comparable, V any](fn func(K, V)) func(*lruOption[K, V]) {
	return func(o *lruOption[K, V]) {
		o.onEvict = fn
	}
}

// NewLRU creates a cache holding up to size entries. A non-positive size
// falls back to the default.
func NewLRU[K comparable, V any](size int, opts ...func(*lruOption[K, V])) *LRU[K, V] {
	options := &lruOption[K, V]{
		size: defaultLruSize,
	}

	for _, opt := range opts {
		opt(options)
	}

	if size > 0 {
		options.size = size
	}

	l := &LRU[K, V]{options: options}
	// only fails on a non-positive size.
	l.c, _ = lru.NewWithEvict[K, V](options.size, options.onEvict)

	return l
}

func (l *LRU[K, V]) Get(key K) (V, bool) {
	return l.c.Get(key)
}

func (l *LRU[K, V]) Set(key K, value V) {
	l.c.Add(key, value)
}

func (l *LRU[K, V]) Del(key K) {
	l.c.Remove(key)
}

func (l *LRU[K, V]) Len() int {
	return l.c.Len()
}

func (l *LRU[K, V]) Size() int {
	return l.options.size
}

func (l *LRU[K, V]) Purge() {
	l.c.Purge()
}
