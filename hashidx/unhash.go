package hashidx

import (
	"bytes"

	"github.com/kanengo/kuid/mathx"
)

// unhash reads segment as a base len(alphabet) numeral. It fails on unknown
// characters and on any overflow of the accumulator.
func unhash(segment string, alphabet []byte) (uint64, bool) {
	base := uint64(len(alphabet))

	var acc uint64
	for i := 0; i < len(segment); i++ {
		pos := bytes.IndexByte(alphabet, segment[i])
		if pos < 0 {
			return 0, false
		}

		pow, ok := mathx.CheckedPow(base, uint(len(segment)-i-1))
		if !ok {
			return 0, false
		}
		term, ok := mathx.CheckedMul(uint64(pos), pow)
		if !ok {
			return 0, false
		}
		if acc, ok = mathx.CheckedAdd(acc, term); !ok {
			return 0, false
		}
	}
	return acc, true
}

func indexAny(s string, set []byte) int {
	for i := 0; i < len(s); i++ {
		if bytes.IndexByte(set, s[i]) >= 0 {
			return i
		}
	}
	return -1
}

func lastIndexAny(s string, set []byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if bytes.IndexByte(set, s[i]) >= 0 {
			return i
		}
	}
	return -1
}

// countAny reports how many bytes of s are in set.
func countAny(s string, set []byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if bytes.IndexByte(set, s[i]) >= 0 {
			n++
		}
	}
	return n
}

// splitAny appends to dst the segments of s around every byte in set,
// keeping empty segments.
func splitAny(dst []string, s string, set []byte) []string {
	segments := dst
	start := 0
	for i := 0; i < len(s); i++ {
		if bytes.IndexByte(set, s[i]) >= 0 {
			segments = append(segments, s[start:i])
			start = i + 1
		}
	}
	return append(segments, s[start:])
}
