package worldmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// scanner reads the document line by line, tracking the 1-based line number
// for error reporting. All four grammar primitives below fail with ErrFormat;
// nothing above this layer interprets raw text.
type scanner struct {
	s    *bufio.Scanner
	line int
}

func newScanner(r io.Reader) *scanner {
	// Name and inventory lines have no length bound in the format.
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &scanner{s: s}
}

// readLine returns the next line. Running out of input mid-grammar is a
// format error, so callers never see an absent line.
func (sc *scanner) readLine() (string, error) {
	if !sc.s.Scan() {
		if err := sc.s.Err(); err != nil {
			return "", fmt.Errorf("line %d: read: %v: %w", sc.line+1, err, ErrFormat)
		}
		return "", fmt.Errorf("line %d: unexpected end of input: %w", sc.line+1, ErrFormat)
	}
	sc.line++
	return sc.s.Text(), nil
}

// atEnd verifies the document has no content left.
func (sc *scanner) atEnd() error {
	if sc.s.Scan() {
		return fmt.Errorf("line %d: trailing content after exits section: %w", sc.line+1, ErrFormat)
	}
	if err := sc.s.Err(); err != nil {
		return fmt.Errorf("read: %v: %w", err, ErrFormat)
	}
	return nil
}

// parseInt accepts exactly a signed decimal that fits in 32 bits.
func parseInt(token string) (int, error) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q: %w", token, ErrFormat)
	}
	return int(n), nil
}

// parseLabeledCounts parses comma-separated label:count pairs. Labels are
// lowercase a-z only, counts unsigned decimal, no spaces anywhere. The empty
// string is an empty mapping; duplicate labels fail. With exactlyOne set the
// result must hold exactly one pair.
func parseLabeledCounts(line string, exactlyOne bool) (map[string]int, error) {
	counts := make(map[string]int)
	if line == "" {
		if exactlyOne {
			return nil, fmt.Errorf("want exactly one label:count pair, got none: %w", ErrFormat)
		}
		return counts, nil
	}
	for _, pair := range strings.Split(line, ",") {
		label, value, ok := strings.Cut(pair, ":")
		if !ok || !isLowerWord(label) || !isDigits(value) {
			return nil, fmt.Errorf("bad label:count pair %q: %w", pair, ErrFormat)
		}
		n, err := parseInt(value)
		if err != nil {
			return nil, err
		}
		if _, dup := counts[label]; dup {
			return nil, fmt.Errorf("duplicate label %q: %w", label, ErrFormat)
		}
		counts[label] = n
	}
	if exactlyOne && len(counts) != 1 {
		return nil, fmt.Errorf("want exactly one label:count pair, got %d: %w", len(counts), ErrFormat)
	}
	return counts, nil
}

// parseNumberedRow splits "<id>" or "<id> <rest>". More than one space is a
// format error; a missing rest is the empty string, never absent.
func parseNumberedRow(line string) (int, string, error) {
	parts := strings.Split(line, " ")
	if len(parts) > 2 {
		return 0, "", fmt.Errorf("row %q: too many fields: %w", line, ErrFormat)
	}
	id, err := parseInt(parts[0])
	if err != nil {
		return 0, "", err
	}
	rest := ""
	if len(parts) == 2 {
		rest = parts[1]
	}
	return id, rest, nil
}

func isLowerWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
