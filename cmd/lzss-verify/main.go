// Command lzss-verify compares two files byte-for-byte in fixed-size
// chunks and reports the first point of difference. It has no dependency
// on the lzss package: it is a generic round-trip sanity tool, not part of
// the encoder's public surface.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const chunkSize = 1 << 20 // 1 MiB

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: lzss-verify <file-a> <file-b>")
		os.Exit(2)
	}

	n, err := compareFiles(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Files are identical, %d bytes.\n", n)
}

// compareFiles reports the first differing byte offset and values, a size
// mismatch with both counts, or success with the common length.
func compareFiles(pathA, pathB string) (int64, error) {
	fileA, err := os.Open(pathA)
	if err != nil {
		return 0, err
	}
	defer fileA.Close()

	fileB, err := os.Open(pathB)
	if err != nil {
		return 0, err
	}
	defer fileB.Close()

	var total int64
	bufA := make([]byte, chunkSize)
	bufB := make([]byte, chunkSize)

	for {
		nA, errA := io.ReadFull(fileA, bufA)
		nB, errB := io.ReadFull(fileB, bufB)

		if errA != nil && errA != io.EOF && errA != io.ErrUnexpectedEOF {
			return 0, errA
		}
		if errB != nil && errB != io.EOF && errB != io.ErrUnexpectedEOF {
			return 0, errB
		}

		if nA != nB {
			return 0, fmt.Errorf("files differ in size: %q has at least %d bytes, %q has at least %d bytes",
				pathA, total+int64(nA), pathB, total+int64(nB))
		}

		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			offset := firstDiff(bufA[:nA], bufB[:nB])
			return 0, fmt.Errorf("files differ at byte offset %d: %#02x != %#02x",
				total+int64(offset), bufA[offset], bufB[offset])
		}

		total += int64(nA)

		if nA < chunkSize {
			return total, nil
		}
	}
}

func firstDiff(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return len(a)
}
