package lzss

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// decodeForTest reconstructs the original byte stream from encoded output,
// given the same Config used to produce it. There is no decoder in the
// public API — this exists solely so _test.go files can check the
// encoder's own output self-consistently, as a small unexported helper that
// never leaves the test binary.
//
// It only handles ExtendIntoInput == false: with extension disabled, every
// Pair's dictionary window read never touches a byte this function hasn't
// already reconstructed, so the lock-step "fixed index, shifting window"
// trick below is exact.
func decodeForTest(encoded []byte, cfg Config) ([]byte, int, error) {
	br := bitio.NewReader(bytes.NewReader(encoded))

	tag, err := br.ReadBool()
	if err != nil {
		return nil, 0, fmt.Errorf("reading seed tag: %w", err)
	}
	if tag {
		return nil, 0, fmt.Errorf("first symbol must be a literal, got a pair tag")
	}
	seedBits, err := br.ReadBits(8)
	if err != nil {
		return nil, 0, fmt.Errorf("reading seed literal: %w", err)
	}
	seed := byte(seedBits)

	dict := make([]byte, cfg.DictionarySize)
	for i := range dict {
		dict[i] = seed
	}

	out := []byte{seed}
	symbols := 1

	for {
		tag, err := br.ReadBool()
		if err != nil {
			break // no bits left, or a real error either way: stop decoding
		}
		symbols++

		if !tag {
			bits, err := br.ReadBits(8)
			if err == io.EOF {
				// Fewer than 8 bits were left, so the zero tag bit just read
				// belongs to the final byte's zero padding, not to a literal.
				symbols--
				break
			}
			if err != nil {
				return nil, 0, fmt.Errorf("reading literal: %w", err)
			}
			b := byte(bits)
			out = append(out, b)
			dict = append(dict[1:], b)
			continue
		}

		pBits, err := br.ReadBits(uint8(cfg.DictionaryBits))
		if err != nil {
			return nil, 0, fmt.Errorf("reading pair offset: %w", err)
		}
		nBits, err := br.ReadBits(uint8(cfg.MatchBits))
		if err != nil {
			return nil, 0, fmt.Errorf("reading pair length: %w", err)
		}
		p, n := int(pBits), int(nBits)
		if n == 0 {
			// A length of 2^MatchBits does not fit in MatchBits bits and
			// reaches the wire as 0; no pair is ever emitted with length 0.
			n = 1 << uint(cfg.MatchBits)
		}
		if p+n > cfg.DictionarySize {
			return nil, 0, fmt.Errorf("pair (%d, %d) reaches past the dictionary; decodeForTest only supports extend_into_input=false", p, n)
		}

		for j := 0; j < n; j++ {
			b := dict[p]
			out = append(out, b)
			dict = append(dict[1:], b)
		}
	}

	return out, symbols, nil
}
