package hashidx

import (
	"errors"
	"fmt"
)

var (
	// ErrAlphabetLength is returned by Build when the alphabet has too few distinct characters.
	ErrAlphabetLength = errors.New("hashidx: alphabet does not contain enough unique characters")
	// ErrIllegalCharacter is returned by Build when the alphabet contains a space.
	ErrIllegalCharacter = errors.New("hashidx: alphabet contains an illegal character")

	ErrMalformedHash = errors.New("hashidx: malformed hashid")
	ErrBadValue      = errors.New("hashidx: found bad value")
	ErrHex           = errors.New("hashidx: failed to decode hex value")
)

type IllegalCharacterError struct {
	Char byte
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("%v (%q)", ErrIllegalCharacter, e.Char)
}

func (e *IllegalCharacterError) Unwrap() error {
	return ErrIllegalCharacter
}

// DecodeError reports which hashid failed and why. Err is ErrMalformedHash or ErrBadValue.
type DecodeError struct {
	Hash string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Hash)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HexError wraps the strconv failure for the offending chunk and matches ErrHex.
type HexError struct {
	Chunk string
	Err   error
}

func (e *HexError) Error() string {
	return fmt.Sprintf("%v: chunk %q: %v", ErrHex, e.Chunk, e.Err)
}

func (e *HexError) Unwrap() []error {
	return []error{ErrHex, e.Err}
}
