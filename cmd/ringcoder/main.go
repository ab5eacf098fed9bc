// ringcoder is a command-line front end for the adaptive binary
// arithmetic coder implemented by github.com/glorious-coding/ringcoder.
// It is a host-binding layer: a same-process CLI standing in for a
// foreign-language boundary, marshaling a byte buffer and a couple of
// integer lengths across to the core.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/glorious-coding/ringcoder"
	"github.com/glorious-coding/ringcoder/internal/bitio"
	"github.com/glorious-coding/ringcoder/internal/prob"
	"github.com/glorious-coding/ringcoder/internal/ring"
)

var (
	bitLength   int
	contextBits int
	outputPath  string
	explain     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringcoder",
	Short: "Adaptive binary arithmetic coder",
	Long: `ringcoder - adaptive binary arithmetic coding with a sliding-window context model.

Examples:
  ringcoder encode --bits 184 --context-bits 5 -o out.bin input.bin
  ringcoder decode --bits 184 --context-bits 5 -o out.bin input.bin.rc
  ringcoder encode --explain --bits 16 --context-bits 4 input.bin`,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&bitLength, "bits", "n", -1, "number of bits to encode/decode (default: 8*len(input) for encode)")
	rootCmd.PersistentFlags().IntVarP(&contextBits, "context-bits", "k", 8, "sliding context length in bits")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	encodeCmd.Flags().BoolVar(&explain, "explain", false, "print the reference oracle's running probability estimate for each coded bit to stderr")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode [input]",
	Short: "Compress a file with the binary arithmetic coder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncode(args[0])
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [input]",
	Short: "Decompress a file produced by 'ringcoder encode'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if bitLength < 0 {
			return errors.New("decode requires --bits (the original sequence_bit_length)")
		}
		return runDecode(args[0])
	},
}

func runEncode(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, "reading %q", inputPath)
	}

	n := bitLength
	if n < 0 {
		n = len(data) * 8
	}

	if explain {
		explainEncode(data, n, contextBits)
	}

	encoded, err := ringcoder.Encode(data, n, contextBits)
	if err != nil {
		return errors.Wrap(err, "encoding")
	}
	return writeOutput(encoded)
}

// explainEncode prints the reference oracle's running probability
// estimate for each bit that will be coded, without performing any
// actual coding: it only needs the context ring's bookkeeping, not the
// full CoderState.
func explainEncode(data []byte, n, contextLength int) {
	r := bitio.NewReader(data)
	ctx := ring.New(contextLength)
	for i := 0; i < n; i++ {
		bit := r.ReadBit()
		stats := prob.Explain(prob.Reference, ctx.CountOnes(), ctx.Capacity())
		fmt.Fprintf(os.Stderr, "bit %6d: value=%d p1=%d/%d count_ones=%d/%d\n",
			i, bit, stats.P1Fixed, prob.FixedScale, stats.CountOnes, stats.ContextLength)
		ctx.Push(bit)
	}
}

func runDecode(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, "reading %q", inputPath)
	}

	decoded, err := ringcoder.Decode(data, bitLength, contextBits)
	if err != nil {
		return errors.Wrap(err, "decoding")
	}
	return writeOutput(decoded)
}

func writeOutput(data []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "writing stdout")
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", outputPath)
	}
	return nil
}
