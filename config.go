// SPDX-License-Identifier: MIT

package lzss

// Config is an Encoder's immutable-after-construction configuration.
type Config struct {
	// DictionaryBits is the number of bits used to encode a back-reference
	// offset on the wire, in [1, 30].
	DictionaryBits int
	// MatchBits is the number of bits used to encode a back-reference
	// length on the wire, in [1, 30].
	MatchBits int
	// DictionarySize is the dictionary capacity D, in [1, 2^DictionaryBits].
	DictionarySize int
	// MaxMatch is the look-ahead capacity L, in [1, 2^MatchBits].
	MaxMatch int
	// ExtendIntoInput allows a match starting in the dictionary to run past
	// the dictionary boundary into the look-ahead, enabling run-length
	// matches of highly repetitive data.
	ExtendIntoInput bool
}

// DefaultConfig returns a Config with an 8-bit dictionary index, an 8-bit
// match length, a full 256-byte dictionary and look-ahead, and
// ExtendIntoInput disabled.
func DefaultConfig() Config {
	return Config{
		DictionaryBits: 8,
		MatchBits:      8,
		DictionarySize: 1 << 8,
		MaxMatch:       1 << 8,
	}
}

// Validate checks the bounds from the Config doc comment, returning the
// first violated constraint as a sentinel error.
func (c Config) Validate() error {
	if c.DictionaryBits < 1 || c.DictionaryBits > 30 {
		return ErrInvalidDictionaryBits
	}
	if c.MatchBits < 1 || c.MatchBits > 30 {
		return ErrInvalidMatchBits
	}
	if c.DictionarySize < 1 || c.DictionarySize > 1<<uint(c.DictionaryBits) {
		return ErrInvalidDictionarySize
	}
	if c.MaxMatch < 1 || c.MaxMatch > 1<<uint(c.MatchBits) {
		return ErrInvalidMaxMatch
	}
	return nil
}

// literalCost is the bit cost of a Literal symbol: a tag bit plus a byte.
const literalCost = 1 + 8

// pairCost is the bit cost of a Pair symbol under this Config.
func (c Config) pairCost() int {
	return 1 + c.DictionaryBits + c.MatchBits
}
