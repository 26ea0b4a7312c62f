// Command lzss drives the lzss encoder from the command line: open the
// input, open (or create) the output, validate the dictionary/match-length
// flags, and report the bytes read/written on success. Argument parsing,
// file handling, and existence checks live here — they are deliberately
// kept out of the lzss package itself.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kantfield/lzss"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	dictionaryBits  int
	maxMatchBits    int
	dictionarySize  int
	maxMatchSize    int
	extendIntoInput bool
	verbose         bool
}

func newRootCmd() *cobra.Command {
	f := &flags{dictionaryBits: 8, maxMatchBits: 8}

	cmd := &cobra.Command{
		Use:   "lzss <input> <output>",
		Short: "Compress a file with a simple LZSS encoder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], f)
		},
		SilenceUsage: true,
	}

	flagSet := cmd.Flags()
	flagSet.IntVarP(&f.dictionaryBits, "dictionary-bits", "d", 8, "dictionary offset width in bits, [1, 30]")
	flagSet.IntVarP(&f.maxMatchBits, "max-match-bits", "m", 8, "match length width in bits, [1, 30]")
	flagSet.IntVar(&f.dictionarySize, "dictionary-size", 0, "dictionary capacity in bytes, default 2^dictionary-bits")
	flagSet.IntVar(&f.maxMatchSize, "max-match-size", 0, "look-ahead capacity in bytes, default 2^max-match-bits")
	flagSet.BoolVarP(&f.extendIntoInput, "extend-into-input", "e", false, "allow a match to run from the dictionary into the look-ahead")
	flagSet.BoolVarP(&f.verbose, "verbose", "v", false, "log timing and throughput at debug level")

	return cmd
}

func run(inputPath, outputPath string, f *flags) error {
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := validateFlags(f); err != nil {
		return err
	}

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file does not exist: %w", err)
	}
	if _, err := os.Stat(outputPath); err == nil {
		log.Warnf("output file %q already exists and will be overwritten", outputPath)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	cfg := lzss.Config{
		DictionaryBits:  f.dictionaryBits,
		MatchBits:       f.maxMatchBits,
		DictionarySize:  f.dictionarySize,
		MaxMatch:        f.maxMatchSize,
		ExtendIntoInput: f.extendIntoInput,
	}

	log.WithFields(logrus.Fields{
		"dictionary_bits": cfg.DictionaryBits,
		"match_bits":      cfg.MatchBits,
		"dictionary_size": cfg.DictionarySize,
		"max_match":       cfg.MaxMatch,
		"extend":          cfg.ExtendIntoInput,
	}).Debug("starting encode")

	start := time.Now()
	read, written, err := lzss.Encode[*os.File, *os.File](in, out, cfg)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"elapsed":          elapsed,
		"bytes_per_second": float64(read) / elapsed.Seconds(),
	}).Debug("finished encode")

	fmt.Printf("Compressed %d bytes into %d bytes.\n", read, written)
	return nil
}

func validateFlags(f *flags) error {
	if f.dictionaryBits < 1 || f.dictionaryBits > 30 {
		return fmt.Errorf("dictionary bits have to be in range [1..30]")
	}
	if f.maxMatchBits < 1 || f.maxMatchBits > 30 {
		return fmt.Errorf("max match bits have to be in range [1..30]")
	}

	maxDictionarySize := 1 << uint(f.dictionaryBits)
	if f.dictionarySize == 0 {
		f.dictionarySize = maxDictionarySize
	}
	if f.dictionarySize < 1 || f.dictionarySize > maxDictionarySize {
		return fmt.Errorf("dictionary size has to be in range [1..%d]", maxDictionarySize)
	}

	maxMaxMatchSize := 1 << uint(f.maxMatchBits)
	if f.maxMatchSize == 0 {
		f.maxMatchSize = maxMaxMatchSize
	}
	if f.maxMatchSize < 1 || f.maxMatchSize > maxMaxMatchSize {
		return fmt.Errorf("max match size has to be in range [1..%d]", maxMaxMatchSize)
	}

	return nil
}
