package bytebuffer

import (
	"github.com/valyala/bytebufferpool"
)

type ByteBuffer = bytebufferpool.ByteBuffer

var (
	Get = bytebufferpool.Get

	Put = func(b *ByteBuffer) {
		if b != nil {
			bytebufferpool.Put(b)
		}
	}
)

// Prepend inserts c in front of the buffer contents.
func Prepend(b *ByteBuffer, c byte) {
	b.B = append(b.B, 0)
	copy(b.B[1:], b.B)
	b.B[0] = c
}

// Wrap rewrites the buffer as head ++ contents ++ tail.
func Wrap(b *ByteBuffer, head, tail []byte) {
	n := len(b.B)
	total := len(head) + n + len(tail)
	if cap(b.B) < total {
		grown := make([]byte, n, total)
		copy(grown, b.B)
		b.B = grown
	}
	b.B = b.B[:total]
	copy(b.B[len(head):], b.B[:n])
	copy(b.B, head)
	copy(b.B[len(head)+n:], tail)
}
