// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package hjson_test

import (
	"strings"
	"testing"

	"github.com/creachadair/hjson"
)

func scanString(t *testing.T, input string) string {
	t.Helper()
	s := hjson.NewScanner(strings.NewReader(input))
	got, err := s.ReadString()
	if err != nil {
		t.Fatalf("ReadString(%#q): unexpected error: %v", input, err)
	}
	return got
}

func TestReadString(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a b c"`, "a b c"},
		{`"ab\nc"`, "ab\nc"},
		{`"\"\\\/"`, `"\/`},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"a\tb c\n"`, "a\tb c\n"},
		{`"A"`, "A"},
		{`"ABC"`, "ABC"},
		{`"é"`, "é"},
		{`"é"`, "é"},
		{`" "`, " "},

		// Unlike strict JSON, raw control characters are preserved.
		{"\"a\tb\"", "a\tb"},
		{"\"a\nb\"", "a\nb"},
		{"\"a\x01b\"", "a\x01b"},

		// Non-ASCII body text passes through undisturbed.
		{`"päivää"`, "päivää"},
	}
	for _, test := range tests {
		if got := scanString(t, test.input); got != test.want {
			t.Errorf("Input %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestReadString_laxUnicodeEscape(t *testing.T) {
	// A rune that is not a hex digit inside \uXXXX contributes zero to the
	// accumulator instead of failing. Pinned: the reference scanner behaves
	// this way, intentionally or not.
	tests := []struct {
		input, want string
	}{
		{`"\uzzzz"`, "\x00"},
		{`"\u00zz"`, "\x00"},
		{`"\u004z"`, "@"},
		{`"\u0z41"`, "A"},
		{`"\u--41"`, "A"},
	}
	for _, test := range tests {
		if got := scanString(t, test.input); got != test.want {
			t.Errorf("Input %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestReadString_surrogateHalves(t *testing.T) {
	// Each \uXXXX escape decodes to exactly one UTF-16 code unit with no
	// pairing performed. An unpaired half renders as one U+FFFD in the
	// returned string, so a surrogate pair becomes two adjacent code units.
	got := scanString(t, "\"\\ud83d\\ude00\"")
	if want := "\ufffd\ufffd"; got != want {
		t.Errorf("Surrogate pair: got %#q, want %#q", got, want)
	}
}

func TestReadString_position(t *testing.T) {
	// On success the cursor rests one rune past the closing quote.
	s := hjson.NewScanner(strings.NewReader(`"ab":`))
	if _, err := s.ReadString(); err != nil {
		t.Fatalf("ReadString: unexpected error: %v", err)
	}
	if got := s.Peek(); got != ':' {
		t.Errorf("Next rune: got %q, want ':'", got)
	}
	if got := s.Location().String(); got != "1:4" {
		t.Errorf("Location: got %s, want 1:4", got)
	}
}

func TestReadString_errors(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`"abc`, "string is not closed. At line 1, column 4"},
		{`"`, "string is not closed. At line 1, column 1"},
		{`"ab\`, "string is not closed. At line 1, column 4"},
		{"\"a\nb", "string is not closed. At line 2, column 1"},
		{`"\u00`, "incomplete unicode character escape. At line 1, column 5"},
		{`"\u`, "incomplete unicode character escape. At line 1, column 3"},
		{`"\q"`, "unexpected escape character. At line 1, column 3"},
		{`"\x41"`, "unexpected escape character. At line 1, column 3"},
		{`x`, `expected '"', found 'x'. At line 1, column 1`},
	}
	for _, test := range tests {
		s := hjson.NewScanner(strings.NewReader(test.input))
		got, err := s.ReadString()
		if err == nil {
			t.Errorf("Input %#q: got %#q, want error", test.input, got)
			continue
		}
		if got := err.Error(); got != test.want {
			t.Errorf("Input %#q: got error %q, want %q", test.input, got, test.want)
		}
	}
}
