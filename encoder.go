// SPDX-License-Identifier: MIT

package lzss

import (
	"io"

	"github.com/kantfield/lzss/bitsink"
	"github.com/kantfield/lzss/match"
	"github.com/kantfield/lzss/window"
)

// Encode drives the LZSS pipeline: it reads from source, writes a headerless
// bit-packed stream to sink, and returns the number of bytes consumed from
// source and the number of bytes written to sink.
//
// Encode is generic over both the source's and the sink's static types so
// that a concrete *os.File (or any other concrete Reader/Writer) passed in
// by a caller is never boxed into an interface value along the hot path;
// only the small match.Window conversion below does that, and it's a
// pointer-sized, allocation-free conversion.
//
// cfg is validated before any byte is read. If source has no bytes at all,
// the seed-byte read fails and Encode returns that error (io.EOF) unwrapped
// — the minimum encodable input is one byte.
func Encode[R io.Reader, W io.Writer](source R, sink W, cfg Config) (bytesRead, bytesWritten int64, err error) {
	if err = cfg.Validate(); err != nil {
		return 0, 0, err
	}

	buf, err := window.New[R](source, cfg.DictionarySize, cfg.MaxMatch)
	if err != nil {
		return 0, 0, err
	}

	bw := bitsink.New[W](sink)

	// The seed literal: the dictionary was preloaded with the stream's
	// first byte, so position 0 holds it regardless of how much look-ahead
	// the source actually supplied.
	if err = writeSymbol(bw, cfg, literalSymbol(buf.Get(0))); err != nil {
		return 0, 0, err
	}

	// lastRead mirrors what Advance would have returned had the initial
	// look-ahead fill been one: it lets the loop-continuation test below
	// ("missing == L and no new bytes were read") apply uniformly to the
	// state right after construction, without special-casing the first
	// check.
	lastRead := buf.Lookahead() - buf.Missing()
	bytesRead = int64(lastRead) + 1

	for !(buf.Missing() == buf.Lookahead() && lastRead == 0) {
		start, length := match.Find(buf, cfg.ExtendIntoInput)

		var sym symbol
		var advanceBy int
		if cfg.pairCost() < 8*length {
			sym = pairSymbol(start, length)
			advanceBy = length
		} else {
			sym = literalSymbol(buf.Get(cfg.DictionarySize))
			advanceBy = 1
		}

		if err = writeSymbol(bw, cfg, sym); err != nil {
			return bytesRead, bytesWritten, err
		}

		lastRead, err = buf.Advance(advanceBy)
		if err != nil {
			return bytesRead, bytesWritten, err
		}
		bytesRead += int64(lastRead)
	}

	if _, err = bw.EndFlush(); err != nil {
		return bytesRead, bw.BytesWritten(), err
	}
	return bytesRead, bw.BytesWritten(), nil
}

// writeSymbol appends sym to bw in the order spec'd for the wire format: a
// tag bit, then either 8 literal bits or a dictionary_bits/match_bits pair.
func writeSymbol[W io.Writer](bw *bitsink.Writer[W], cfg Config, sym symbol) error {
	if sym.isPair {
		if err := bw.WriteBit(true); err != nil {
			return err
		}
		if err := bw.WriteFew(uint32(sym.start), cfg.DictionaryBits); err != nil {
			return err
		}
		return bw.WriteFew(uint32(sym.length), cfg.MatchBits)
	}

	if err := bw.WriteBit(false); err != nil {
		return err
	}
	return bw.WriteFew(uint32(sym.lit), 8)
}
