// Package suite reads perft suite files.
//
// A suite is a text file with one position per line, followed by the
// expected node counts per depth:
//
//	# comment
//	variant: shogi
//	lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1 ;D1 30 ;D2 900
//
// A variant line applies to every position below it; the default is chess.
// Files may be UTF-8 (with or without BOM) or Shift-JIS, which is common for
// shogi material.
package suite

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"variant-engine/variantmg"
)

var (
	ErrSyntax   = errors.New("suite syntax error")
	ErrEncoding = errors.New("suite encoding error")
	ErrMismatch = errors.New("perft mismatch")
)

// Expect is one expected perft result.
type Expect struct {
	Depth int
	Nodes uint64
}

// Case is a position together with its expected perft results.
type Case struct {
	Rules    variantmg.Rules
	Position string
	Expects  []Expect
	Line     int
}

// Decode returns the text of a suite file, converting from Shift-JIS when
// the data is not valid UTF-8.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: neither UTF-8 nor Shift-JIS", ErrEncoding)
	}
	return string(decoded), nil
}

// Load reads and parses a suite file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cases, err := Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse reads suite lines from r, which must already be UTF-8.
func Parse(r io.Reader) ([]Case, error) {
	var cases []Case
	rules := variantmg.Chess
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if name, ok := strings.CutPrefix(text, "variant:"); ok {
			v, err := variantmg.ParseRules(strings.TrimSpace(name))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
			}
			rules = v
			continue
		}
		c, err := parseCase(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
		}
		c.Rules = rules
		c.Line = line
		cases = append(cases, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseCase(text string) (Case, error) {
	fields := strings.Split(text, ";")
	c := Case{Position: strings.TrimSpace(fields[0])}
	if c.Position == "" {
		return c, errors.New("missing position")
	}
	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		parts := strings.Fields(f)
		if len(parts) != 2 || len(parts[0]) < 2 || parts[0][0] != 'D' {
			return c, fmt.Errorf("bad expectation %q", f)
		}
		depth, err := strconv.Atoi(parts[0][1:])
		if err != nil || depth < 0 {
			return c, fmt.Errorf("bad depth %q", parts[0])
		}
		nodes, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return c, fmt.Errorf("bad node count %q", parts[1])
		}
		c.Expects = append(c.Expects, Expect{Depth: depth, Nodes: nodes})
	}
	return c, nil
}

// Setup parses the case's position.
func (c Case) Setup() (variantmg.Position, error) {
	return variantmg.Setup(c.Rules, c.Position)
}

// Verify runs perft for every expectation up to maxDepth (all of them when
// maxDepth <= 0) and reports the first mismatch.
func (c Case) Verify(maxDepth int) error {
	pos, err := c.Setup()
	if err != nil {
		return fmt.Errorf("line %d: %w", c.Line, err)
	}
	for _, e := range c.Expects {
		if maxDepth > 0 && e.Depth > maxDepth {
			continue
		}
		if got := variantmg.Perft(pos, e.Depth); got != e.Nodes {
			return fmt.Errorf("%w: line %d depth %d: got %d want %d", ErrMismatch, c.Line, e.Depth, got, e.Nodes)
		}
	}
	return nil
}
