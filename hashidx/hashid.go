// Package hashidx encodes sequences of non-negative integers into short,
// salt-keyed strings and decodes them back.
//
// The output is compatible with the hashids family of libraries: the same
// salt, alphabet, separators and minimum length produce the same hashids.
// It obscures sequential identifiers; it is not encryption.
package hashidx

import (
	"bytes"
	"encoding/binary"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/kanengo/kuid/poolx/bytebuffer"
	"github.com/kanengo/kuid/poolx/slicepool"
)

// HashID is an immutable, fully derived configuration. It is safe for
// concurrent use: every call works on its own copy of the alphabet.
type HashID struct {
	alphabet   []byte
	separators []byte
	guards     []byte
	salt       []byte
	length     int
}

var defaultHashID = sync.OnceValue(func() *HashID {
	return NewBuilder().MustBuild()
})

// Default returns a shared HashID with the default alphabet, no salt and no
// minimum length. Its output is trivial to reverse.
func Default() *HashID {
	return defaultHashID()
}

// New builds a HashID with default options.
func New() *HashID {
	return NewBuilder().MustBuild()
}

func (h *HashID) Alphabet() string   { return string(h.alphabet) }
func (h *HashID) Separators() string { return string(h.separators) }
func (h *HashID) Guards() string     { return string(h.guards) }
func (h *HashID) Length() int        { return h.length }

// Fingerprint identifies the derived configuration. Two HashIDs with equal
// fingerprints produce the same hashids.
func (h *HashID) Fingerprint() uint64 {
	d := xxhash.New()
	var n [8]byte
	for _, part := range [][]byte{h.alphabet, h.separators, h.guards, h.salt} {
		binary.LittleEndian.PutUint64(n[:], uint64(len(part)))
		_, _ = d.Write(n[:])
		_, _ = d.Write(part)
	}
	binary.LittleEndian.PutUint64(n[:], uint64(h.length))
	_, _ = d.Write(n[:])
	return d.Sum64()
}

// Encode turns values into a hashid. An empty slice encodes to "".
func (h *HashID) Encode(values []uint64) string {
	if len(values) == 0 {
		return ""
	}

	nhash := numbersHash(values)
	alphabet := bytes.Clone(h.alphabet)
	key := make([]byte, 0, 1+len(h.salt)+len(alphabet))
	digits := make([]byte, 0, 64)

	buf := bytebuffer.Get()
	defer bytebuffer.Put(buf)

	lottery := alphabet[nhash%uint64(len(alphabet))]
	buf.B = append(buf.B, lottery)

	for i, value := range values {
		key = reshuffle(alphabet, key, lottery, h.salt)
		digits = appendDigits(digits[:0], value, alphabet)
		buf.B = append(buf.B, digits...)

		if i+1 < len(values) {
			if d := uint64(digits[0]) + uint64(i); d > 0 {
				value %= d
			}
			buf.B = append(buf.B, h.separators[value%uint64(len(h.separators))])
		}
	}

	if buf.Len() < h.length {
		guard := h.guards[(nhash+uint64(buf.B[0]))%uint64(len(h.guards))]
		bytebuffer.Prepend(buf, guard)

		if buf.Len() < h.length {
			guard = h.guards[(nhash+uint64(buf.B[2]))%uint64(len(h.guards))]
			buf.B = append(buf.B, guard)
		}
	}

	half := len(alphabet) / 2
	for buf.Len() < h.length {
		shuffle(alphabet, bytes.Clone(alphabet))
		bytebuffer.Wrap(buf, alphabet[half:], alphabet[:half])

		if excess := buf.Len() - h.length; excess > 0 {
			start := excess / 2
			buf.B = append(buf.B[:0], buf.B[start:start+h.length]...)
		}
	}

	return buf.String()
}

// Decode reverses Encode. Anything Encode would not have produced under this
// configuration, including a valid hashid with extra characters, is rejected.
func (h *HashID) Decode(hash string) ([]uint64, error) {
	payload := hash
	if i := indexAny(payload, h.guards); i >= 0 {
		payload = payload[i+1:]
	}
	if i := lastIndexAny(payload, h.guards); i >= 0 {
		payload = payload[:i]
	}

	if len(payload) < 2 {
		return nil, &DecodeError{Hash: hash, Err: ErrMalformedHash}
	}

	lottery := payload[0]
	alphabet := bytes.Clone(h.alphabet)
	key := make([]byte, 0, 1+len(h.salt)+len(alphabet))

	values := make([]uint64, 0, 4)
	segments := slicepool.Strings.Get(countAny(payload[1:], h.separators) + 1)
	defer slicepool.Strings.Put(segments)

	for _, segment := range splitAny(segments[:0], payload[1:], h.separators) {
		key = reshuffle(alphabet, key, lottery, h.salt)
		value, ok := unhash(segment, alphabet)
		if !ok {
			return nil, &DecodeError{Hash: hash, Err: ErrBadValue}
		}
		values = append(values, value)
	}

	if h.Encode(values) != hash {
		return nil, &DecodeError{Hash: hash, Err: ErrMalformedHash}
	}
	return values, nil
}

func numbersHash(values []uint64) uint64 {
	var nhash uint64
	for i, v := range values {
		nhash += v % uint64(i+100)
	}
	return nhash
}

// reshuffle applies the per-value shuffle keyed by lottery ++ salt ++ alphabet,
// cut to the alphabet length. key is scratch space and is returned for reuse.
func reshuffle(alphabet, key []byte, lottery byte, salt []byte) []byte {
	key = append(key[:0], lottery)
	key = append(key, salt...)
	key = append(key, alphabet...)
	shuffle(alphabet, key[:len(alphabet)])
	return key
}

// appendDigits appends value written in base len(alphabet), most significant digit first.
func appendDigits(dst []byte, value uint64, alphabet []byte) []byte {
	base := uint64(len(alphabet))
	start := len(dst)
	for {
		dst = append(dst, alphabet[value%base])
		value /= base
		if value == 0 {
			break
		}
	}
	slices.Reverse(dst[start:])
	return dst
}
