package hashidx

import (
	"strconv"
	"strings"

	"github.com/kanengo/kuid/slicex"
)

// hexChunkSize keeps "1" + chunk within 52 bits.
const hexChunkSize = 12

// EncodeHex encodes a hexadecimal string, without 0x prefix, in 12-digit chunks.
// Each chunk is prefixed with a 1 digit so leading zeros survive the round trip.
func (h *HashID) EncodeHex(hex string) (string, error) {
	values := make([]uint64, 0, (len(hex)+hexChunkSize-1)/hexChunkSize)
	for start := 0; start < len(hex); start += hexChunkSize {
		chunk := hex[start:min(start+hexChunkSize, len(hex))]
		v, err := strconv.ParseUint("1"+chunk, 16, 64)
		if err != nil {
			return "", &HexError{Chunk: chunk, Err: err}
		}
		values = append(values, v)
	}
	return h.Encode(values), nil
}

// DecodeHex reverses EncodeHex. The result is lowercase.
func (h *HashID) DecodeHex(hash string) (string, error) {
	values, err := h.Decode(hash)
	if err != nil {
		return "", err
	}

	chunks := slicex.Map(values, func(v uint64, _ int) string {
		return strconv.FormatUint(v, 16)[1:]
	})
	return strings.Join(chunks, ""), nil
}
