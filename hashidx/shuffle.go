package hashidx

import "bytes"

// shuffle permutes values in place, keyed by salt. An empty salt leaves values untouched.
func shuffle(values, salt []byte) {
	if len(salt) == 0 {
		return
	}

	v, p := 0, 0
	for i := len(values) - 1; i > 0; i-- {
		v %= len(salt)
		n := int(salt[v])
		p += n
		j := (n + v + p) % i
		values[i], values[j] = values[j], values[i]
		v++
	}
}

// shuffled is shuffle on a copy.
func shuffled(values, salt []byte) []byte {
	ret := bytes.Clone(values)
	if ret == nil {
		ret = []byte{}
	}
	shuffle(ret, salt)
	return ret
}
