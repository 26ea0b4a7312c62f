// SPDX-License-Identifier: MIT

/*
Package lzss implements an LZSS (Lempel-Ziv-Storer-Szymanski) byte-stream
encoder: a sliding dictionary window, a longest-match search against that
window, and a bit-granular symbol writer that chooses between literals and
back-references on a cost-per-bit basis.

There is no decoder in this package; the wire format it produces is not
self-describing and requires the same Config on the decoding side.

# Encode

	cfg := lzss.DefaultConfig()
	read, written, err := lzss.Encode(source, sink, cfg)

Config.Validate reports configuration errors (out-of-range bit widths or
sizes) before any byte is read from source.
*/
package lzss
