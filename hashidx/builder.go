package hashidx

import (
	"bytes"

	"github.com/kanengo/kuid/mathx"
	"github.com/kanengo/kuid/slicex"
)

const (
	DefaultAlphabet   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	DefaultSeparators = "cfhistuCFHISTU"

	minAlphabetLength = 16
	// a base-1 numeral never terminates, so anything shorter cannot encode.
	minWorkingAlphabet = 2

	separatorDiv = 3.5
	guardDiv     = 12.0
)

// Builder collects the options of a HashID. Every setter returns a modified copy,
// so a partially configured Builder can be shared and extended.
type Builder struct {
	salt       []byte
	alphabet   []byte
	separators []byte
	length     int

	customAlphabet   bool
	customSeparators bool
}

func NewBuilder() Builder {
	return Builder{}
}

// Salt keys every shuffle. Multi-byte UTF-8 characters are treated as their bytes.
func (b Builder) Salt(salt string) Builder {
	cp := b
	cp.salt = []byte(salt)
	return cp
}

func (b Builder) Alphabet(alphabet string) Builder {
	cp := b
	cp.alphabet = []byte(alphabet)
	cp.customAlphabet = true
	return cp
}

// Separators replaces the candidate separator set. Characters absent from the
// alphabet are ignored.
func (b Builder) Separators(separators string) Builder {
	cp := b
	cp.separators = []byte(separators)
	cp.customSeparators = true
	return cp
}

// Length sets the minimum hashid length. Hashids may still come out longer.
func (b Builder) Length(length int) Builder {
	cp := b
	cp.length = max(length, 0)
	return cp
}

func (b Builder) Build() (*HashID, error) {
	alphabet := []byte(DefaultAlphabet)
	if b.customAlphabet {
		var err error
		alphabet, err = uniqueAlphabet(b.alphabet)
		if err != nil {
			return nil, err
		}
	}

	candidates := []byte(DefaultSeparators)
	if b.customSeparators {
		candidates = b.separators
	}

	salt := bytes.Clone(b.salt)
	alphabet, separators := partitionSeparators(alphabet, candidates)
	separators = shuffled(separators, salt)
	alphabet, separators = balanceSeparators(alphabet, separators)
	alphabet = shuffled(alphabet, salt)
	alphabet, separators, guards := splitGuards(alphabet, separators)

	if len(alphabet) < minWorkingAlphabet {
		return nil, ErrAlphabetLength
	}

	return &HashID{
		alphabet:   alphabet,
		separators: separators,
		guards:     guards,
		salt:       salt,
		length:     b.length,
	}, nil
}

func (b Builder) MustBuild() *HashID {
	h, err := b.Build()
	if err != nil {
		panic(err)
	}
	return h
}

func uniqueAlphabet(alphabet []byte) ([]byte, error) {
	if bytes.IndexByte(alphabet, ' ') >= 0 {
		return nil, &IllegalCharacterError{Char: ' '}
	}

	unique := slicex.Unique(alphabet)
	if len(unique) < minAlphabetLength {
		return nil, ErrAlphabetLength
	}
	return unique, nil
}

// partitionSeparators keeps the candidates found in the alphabet and removes
// them from it, so the two sets are disjoint.
func partitionSeparators(alphabet, candidates []byte) ([]byte, []byte) {
	separators := slicex.Filter(candidates, func(c byte) bool {
		return bytes.IndexByte(alphabet, c) >= 0
	})
	rest := slicex.Filter(alphabet, func(c byte) bool {
		return bytes.IndexByte(separators, c) < 0
	})
	return rest, separators
}

// balanceSeparators keeps len(alphabet)/len(separators) at or below separatorDiv,
// borrowing from the front of the alphabet or truncating the separators.
func balanceSeparators(alphabet, separators []byte) ([]byte, []byte) {
	if len(separators) > 0 && float64(len(alphabet))/float64(len(separators)) <= separatorDiv {
		return alphabet, separators
	}

	n := mathx.CeilDiv(len(alphabet), separatorDiv)
	if n == 1 {
		n = 2
	}

	if n <= len(separators) {
		return alphabet, bytes.Clone(separators[:n])
	}

	diff := min(n-len(separators), len(alphabet))
	balanced := make([]byte, 0, len(separators)+diff)
	balanced = append(balanced, separators...)
	balanced = append(balanced, alphabet[:diff]...)
	return bytes.Clone(alphabet[diff:]), balanced
}

// splitGuards drains the guards from the front of the alphabet, or from the
// separators when the alphabet is nearly exhausted.
func splitGuards(alphabet, separators []byte) (rest, seps, guards []byte) {
	n := mathx.CeilDiv(len(alphabet), guardDiv)
	if len(alphabet) < 3 {
		n = min(n, len(separators))
		return alphabet, bytes.Clone(separators[n:]), bytes.Clone(separators[:n])
	}
	return bytes.Clone(alphabet[n:]), separators, bytes.Clone(alphabet[:n])
}
