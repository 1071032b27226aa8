// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package hjson_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/hjson"
	"github.com/google/go-cmp/cmp"
)

func TestScanner_peekRead(t *testing.T) {
	s := hjson.NewScanner(strings.NewReader("ab"))
	for i := 0; i < 3; i++ {
		if got := s.Peek(); got != 'a' {
			t.Errorf("Peek %d: got %q, want 'a'", i+1, got)
		}
	}
	if got := s.Read(); got != 'a' {
		t.Errorf("Read: got %q, want 'a'", got)
	}
	if got := s.Read(); got != 'b' {
		t.Errorf("Read: got %q, want 'b'", got)
	}
	if got := s.Read(); got != hjson.EOF {
		t.Errorf("Read at end: got %q, want EOF", got)
	}
	if got := s.Peek(); got != hjson.EOF {
		t.Errorf("Peek at end: got %q, want EOF", got)
	}
}

func TestScanner_location(t *testing.T) {
	// The line advances lazily: the position reported after reading "\n"
	// still names the line the newline ended.
	s := hjson.NewScanner(strings.NewReader("ab\ncd"))

	want := []string{"1:1", "1:2", "1:3", "2:1", "2:2"}
	var got []string
	for range want {
		s.Read()
		got = append(got, s.Location().String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Positions: (-want, +got)\n%s", diff)
	}

	if got := s.Location(); got.Line != 2 || got.Column != 2 {
		t.Errorf("Location at end: got %v, want 2:2", got)
	}
}

func TestScanner_peekDoesNotAdvance(t *testing.T) {
	s := hjson.NewScanner(strings.NewReader("x\ny"))
	s.Read() // x
	s.Read() // newline

	// Arbitrary lookahead must not move the reported position.
	for i := 0; i < 5; i++ {
		s.Peek()
	}
	if got := s.Location().String(); got != "1:2" {
		t.Errorf("Location after Peek: got %s, want 1:2", got)
	}
	if got := s.Read(); got != 'y' {
		t.Errorf("Read: got %q, want 'y'", got)
	}
	if got := s.Location().String(); got != "2:1" {
		t.Errorf("Location: got %s, want 2:1", got)
	}
}

func TestScanner_skipWhitespace(t *testing.T) {
	tests := []struct {
		input string
		next  rune
		pos   string
	}{
		{"", hjson.EOF, "1:0"},
		{"   ", hjson.EOF, "1:3"},
		{"x", 'x', "1:0"},
		{"  x", 'x', "1:2"},
		{" \t\r\n x", 'x', "2:1"},
		{"\n\n\nx", 'x', "3:1"},
		{"\fx", '\f', "1:0"}, // form feed is not Hjson whitespace
		{"\vx", '\v', "1:0"}, // nor vertical tab
	}
	for _, test := range tests {
		s := hjson.NewScanner(strings.NewReader(test.input))
		s.SkipWhitespace()
		if got := s.Peek(); got != test.next {
			t.Errorf("Input %#q: next rune: got %q, want %q", test.input, got, test.next)
		}
		if got := s.Location().String(); got != test.pos {
			t.Errorf("Input %#q: position: got %s, want %s", test.input, got, test.pos)
		}
	}
}

func TestScanner_expect(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		s := hjson.NewScanner(strings.NewReader("{}"))
		if err := s.Expect('{'); err != nil {
			t.Errorf("Expect '{': unexpected error: %v", err)
		}
		if err := s.Expect('}'); err != nil {
			t.Errorf("Expect '}': unexpected error: %v", err)
		}
	})
	t.Run("Mismatch", func(t *testing.T) {
		s := hjson.NewScanner(strings.NewReader("ab\ncd"))
		s.Read()
		s.Read()
		s.Read() // consume "ab\n"
		err := s.Expect('x')
		const want = `expected 'x', found 'c'. At line 2, column 1`
		if err == nil || err.Error() != want {
			t.Errorf("Expect: got error %v, want %s", err, want)
		}
	})
	t.Run("EndOfInput", func(t *testing.T) {
		s := hjson.NewScanner(strings.NewReader(""))
		err := s.Expect('}')
		const want = `expected '}', found end of input. At line 1, column 0`
		if err == nil || err.Error() != want {
			t.Errorf("Expect: got error %v, want %s", err, want)
		}
	})
}

func TestScanner_expectString(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		s := hjson.NewScanner(strings.NewReader("null,"))
		if err := s.ExpectString("null"); err != nil {
			t.Errorf("ExpectString: unexpected error: %v", err)
		}
		if got := s.Peek(); got != ',' {
			t.Errorf("Next rune: got %q, want ','", got)
		}
	})
	t.Run("Mismatch", func(t *testing.T) {
		s := hjson.NewScanner(strings.NewReader("tree"))
		err := s.ExpectString("true")
		const want = `expected 'u' at offset 2 of "true", found 'e'. At line 1, column 3`
		if err == nil || err.Error() != want {
			t.Errorf("ExpectString: got error %v, want %s", err, want)
		}
	})
}

func TestScanner_errorf(t *testing.T) {
	s := hjson.NewScanner(strings.NewReader("ab"))
	s.Read()

	// Errorf reports but does not consume or raise.
	err := s.Errorf("unknown constant %q", "bogus")
	if got, want := err.Error(), `unknown constant "bogus". At line 1, column 1`; got != want {
		t.Errorf("Errorf: got %q, want %q", got, want)
	}
	if err.Line != 1 || err.Column != 1 {
		t.Errorf("Errorf position: got %d:%d, want 1:1", err.Line, err.Column)
	}
	if got := s.Read(); got != 'b' {
		t.Errorf("Read after Errorf: got %q, want 'b'", got)
	}
}

type failReader struct{ err error }

func (f failReader) Read([]byte) (int, error) { return 0, f.err }

func TestScanner_readError(t *testing.T) {
	bad := errors.New("bad source")
	s := hjson.NewScanner(failReader{err: bad})

	// A source failure is presented as end of input, with the cause latched.
	if got := s.Peek(); got != hjson.EOF {
		t.Errorf("Peek: got %q, want EOF", got)
	}
	if got := s.Read(); got != hjson.EOF {
		t.Errorf("Read: got %q, want EOF", got)
	}
	if !errors.Is(s.Err(), bad) {
		t.Errorf("Err: got %v, want %v", s.Err(), bad)
	}
}
