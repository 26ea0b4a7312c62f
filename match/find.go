// Package match implements the LZSS encoder's longest-match search: a pure
// function over window state with no side effects and no allocation.
package match

// Window is the minimal surface Find needs from a *window.Buffer[R]. Both
// the dictionary and the look-ahead live in the same backing storage, so
// Find addresses them through one accessor (Get) with a plain integer
// offset rather than two distinct "view" types over the same data.
type Window interface {
	DictSize() int
	Valid() int
	Get(i int) byte
}

// Find returns the starting offset and length of the longest prefix of the
// look-ahead that also appears in the dictionary.
//
// start is in [0, D), length is in [1, V]. Either the match lies fully
// inside the dictionary (start+length <= D), or extendIntoInput is true and
// it may run past the dictionary boundary into the look-ahead
// (start+length <= D+V). If no length-1 match exists, Find returns (0, 0).
//
// Ties are broken by earliest start: scanning left to right, a strictly
// longer run is required to replace the current best, so among equal-length
// candidates the first (smallest start) one scanned wins.
func Find(w Window, extendIntoInput bool) (start, length int) {
	d := w.DictSize()
	v := w.Valid()
	if v < 1 {
		return 0, 0
	}

	upperBound := d
	if extendIntoInput {
		upperBound = d + v
	}

	bestStart, bestLength := 0, 0
	for s := 0; s < d; s++ {
		limit := upperBound - s
		if limit > v {
			limit = v
		}
		if limit <= bestLength {
			continue
		}

		j := 0
		for j < limit && w.Get(s+j) == w.Get(d+j) {
			j++
		}
		if j > bestLength {
			bestStart, bestLength = s, j
		}
	}

	return bestStart, bestLength
}
