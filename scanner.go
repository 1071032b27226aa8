// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package hjson

import (
	"bufio"
	"fmt"
	"io"
)

// EOF is the sentinel reported by Peek and Read when no further input is
// available. It is not a valid character.
const EOF rune = -1

// A Scanner is a single-rune lookahead cursor over a text source.  It tracks
// the line and column of the most recently consumed rune and provides the
// literal scanners for Hjson primitive values.
//
// A Scanner is owned by the single parse that created it, for that parse's
// whole lifetime. It is not safe for concurrent use.
type Scanner struct {
	r *bufio.Reader

	buf     rune // buffered lookahead rune, valid when hasPeek
	hasPeek bool

	line, col int  // position of the last consumed rune (line 1-based)
	nl        bool // a newline was consumed; advance line on the next read

	ioerr error // latched non-EOF read error, reported by Err
}

// NewScanner constructs a scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br, line: 1}
}

// Peek reports the next rune of the input without consuming it. Repeated
// calls of Peek without an intervening Read return the same rune.  At the end
// of the input Peek returns EOF.
func (s *Scanner) Peek() rune {
	if !s.hasPeek {
		s.buf = s.fetch()
		s.hasPeek = true
	}
	return s.buf
}

// Read consumes and returns the next rune of the input, or EOF.  Consuming a
// rune advances the column. The line number advances on the first read after
// a newline, not on the newline itself, so a position reported immediately
// after reading "\n" still names the line the newline ended.
func (s *Scanner) Read() rune {
	var ch rune
	if s.hasPeek {
		ch, s.hasPeek = s.buf, false
	} else {
		ch = s.fetch()
	}
	if ch == EOF {
		return EOF
	}
	if s.nl {
		s.line++
		s.col = 0
		s.nl = false
	}
	s.col++
	if ch == '\n' {
		s.nl = true
	}
	return ch
}

func (s *Scanner) fetch() rune {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF && s.ioerr == nil {
			s.ioerr = err
		}
		return EOF
	}
	return ch
}

// Err reports a read error from the underlying source, if one occurred.  The
// scanner presents such an error as end of input; Err recovers the cause.
func (s *Scanner) Err() error { return s.ioerr }

// Location reports the position of the most recently consumed rune.  Before
// the first read, the column is 0.
func (s *Scanner) Location() LineCol { return LineCol{Line: s.line, Column: s.col} }

// SkipWhitespace consumes spaces, tabs, carriage returns, and line feeds
// until the next rune is something else or the input is exhausted.  The
// stopping rune is not consumed.
func (s *Scanner) SkipWhitespace() {
	for isSpace(s.Peek()) {
		s.Read()
	}
}

// Expect consumes the next rune and reports a diagnostic if it is not want.
func (s *Scanner) Expect(want rune) error {
	if got := s.Read(); got != want {
		return s.Errorf("expected %q, found %s", want, runeLabel(got))
	}
	return nil
}

// ExpectString consumes the runes of lit in order. At the first mismatch it
// reports a diagnostic naming the rune found and its offset within lit.
func (s *Scanner) ExpectString(lit string) error {
	for i, want := range lit {
		if got := s.Read(); got != want {
			return s.Errorf("expected %q at offset %d of %q, found %s", want, i, lit, runeLabel(got))
		}
	}
	return nil
}

// Errorf constructs a diagnostic annotated with the scanner's current
// position. It does not interrupt scanning; the caller decides whether and
// how to propagate it.
func (s *Scanner) Errorf(format string, args ...any) *ScanError {
	return &ScanError{Message: fmt.Sprintf(format, args...), Line: s.line, Column: s.col}
}

func runeLabel(ch rune) string {
	if ch == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", ch)
}

func isSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' }
func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func hexValue(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'F':
		return int(ch - 'A' + 10)
	}
	return 0
}
