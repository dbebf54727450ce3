package hashidx

import "github.com/kanengo/kuid/convertx"

// EncodeInts encodes any integer slice. Negative values fail with convertx.ErrOutOfRange.
func EncodeInts[T convertx.Integer](h *HashID, values []T) (string, error) {
	us, err := convertx.ToUint64s(values)
	if err != nil {
		return "", err
	}
	return h.Encode(us), nil
}

// DecodeInts decodes into T, failing with convertx.ErrOutOfRange when a value does not fit.
func DecodeInts[T convertx.Integer](h *HashID, hash string) ([]T, error) {
	us, err := h.Decode(hash)
	if err != nil {
		return nil, err
	}
	return convertx.FromUint64s[T](us)
}
