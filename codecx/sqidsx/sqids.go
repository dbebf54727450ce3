package sqidsx

import (
	"errors"
	"fmt"

	"github.com/sqids/sqids-go"
)

var ErrMalformedID = errors.New("malformed sqid")

// Sqids satisfies codecx.Codec.
type Sqids struct {
	*sqids.Sqids
}

// New builds a sqids codec. An empty alphabet selects the sqids default.
func New(alphabet string, minLength int) (Sqids, error) {
	if minLength < 0 || minLength > 255 {
		return Sqids{}, fmt.Errorf("sqids min length %d out of range [0, 255]", minLength)
	}

	s, err := sqids.New(sqids.Options{
		Alphabet:  alphabet,
		MinLength: uint8(minLength),
	})
	if err != nil {
		return Sqids{}, fmt.Errorf("sqids: %w", err)
	}

	return Sqids{Sqids: s}, nil
}

// Decode only accepts ids that Encode would produce for the decoded values.
func (s Sqids) Decode(id string) ([]uint64, error) {
	values := s.Sqids.Decode(id)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}

	canonical, err := s.Encode(values)
	if err != nil || canonical != id {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return values, nil
}
