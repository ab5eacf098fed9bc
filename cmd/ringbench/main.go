// ringbench is an example utility that measures ringcoder's
// compression ratio across a handful of input classes and prints a
// Markdown report, optionally rendered to a standalone HTML page.
//
// It plays the same role as a `+build ignore` comparison tool that
// shells out to an external reference codec and prints a timing table,
// retargeted at ringcoder's own compression ratio instead of a
// third-party encoder's timing, since this repo has no external
// reference implementation to compare against.
package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	anchor "github.com/shurcooL/sanitized_anchor_name"
	"gopkg.in/russross/blackfriday.v2"

	"github.com/glorious-coding/ringcoder"
)

// sample is one input class measured by the report.
type sample struct {
	name string
	data []byte
}

func samples() ([]sample, error) {
	randomBytes := make([]byte, 1024)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, errors.Wrap(err, "generating random sample")
	}

	return []sample{
		{"all-zero (100 bytes)", bytes.Repeat([]byte{0x00}, 100)},
		{"all-one (100 bytes)", bytes.Repeat([]byte{0xFF}, 100)},
		{"ASCII phrase", []byte("Hello, Glorious Coding! Hello, Glorious Coding! Hello, Glorious Coding!")},
		{"cryptographic random (1024 bytes)", randomBytes},
	}, nil
}

const contextBits = 8

func main() {
	htmlOut := ""
	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--html" && i+1 < len(args) {
			htmlOut = args[i+1]
		}
	}

	report, err := runReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringbench: %+v\n", err)
		os.Exit(1)
	}

	fmt.Print(report)

	if htmlOut != "" {
		if err := writeHTMLReport(report, htmlOut); err != nil {
			fmt.Fprintf(os.Stderr, "ringbench: %+v\n", err)
			os.Exit(1)
		}
	}
}

func runReport() (string, error) {
	ss, err := samples()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintln(&b, "# ringcoder compression ratio report")
	fmt.Fprintln(&b)
	for _, s := range ss {
		fmt.Fprintf(&b, "- [%s](#%s)\n", s.name, anchor.Create(s.name))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "| Input | Bytes in | Bytes out | Ratio |")
	fmt.Fprintln(&b, "|---|---|---|---|")
	for _, s := range ss {
		n := len(s.data) * 8
		encoded, err := ringcoder.Encode(s.data, n, contextBits)
		if err != nil {
			return "", errors.Wrapf(err, "encoding %q", s.name)
		}
		ratio := float64(len(encoded)) / float64(len(s.data))
		fmt.Fprintf(&b, "| %s | %d | %d | %.3f |\n", s.name, len(s.data), len(encoded), ratio)
	}
	fmt.Fprintln(&b)
	for _, s := range ss {
		fmt.Fprintf(&b, "## %s\n\n", s.name)
		fmt.Fprintf(&b, "%d input bytes, context length %d bits.\n\n", len(s.data), contextBits)
	}

	return b.String(), nil
}

func writeHTMLReport(markdown, path string) error {
	html := blackfriday.Run([]byte(markdown),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.AutoHeadingIDs))
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", path)
	}
	return nil
}
