// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape implements string quoting for the Hjson writer: JSON-style
// escaping for quoted strings, and the predicates that decide when a string
// or object key can be rendered without quotes.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a double-quoted string literal, quotation marks
// included. Control characters and quote/backslash are escaped; everything
// else passes through as UTF-8.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					buf = append(buf, '\\', b)
				} else {
					buf = append(buf, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else if r == '\\' || r == '"' {
				buf = append(buf, '\\', byte(r))
			} else {
				buf = append(buf, byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		switch r {
		case '\ufffd': // replacement rune
			buf = append(buf, `\ufffd`...)
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			var rbuf [6]byte
			n := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:n]...)
		}

		src = src.SliceFrom(n)
	}
	return append(buf, '"')
}

// CanBeQuoteless reports whether s can be rendered as a quoteless string and
// read back unchanged. The decision here is purely character-level; the
// writer separately quotes text that would re-read as a number, keyword, or
// comment line.
func CanBeQuoteless(s mem.RO) bool {
	if s.Len() == 0 {
		return false
	}
	switch first, _ := mem.DecodeRune(s); first {
	case '"', '\'', '#', '{', '}', '[', ']', ',', ':', ' ', '\t':
		return false
	}
	if b := s.At(s.Len() - 1); b == ' ' || b == '\t' {
		return false // trailing whitespace is trimmed on re-read
	}
	if s.Len() >= 2 && s.At(0) == '/' && (s.At(1) == '/' || s.At(1) == '*') {
		return false // would re-read as a comment
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i) < ' ' {
			return false
		}
	}
	return true
}

// IsKeyName reports whether s can be rendered as an unquoted object key.
func IsKeyName(s mem.RO) bool {
	if s.Len() == 0 {
		return false
	}
	if s.At(0) == '#' {
		return false // reads back as a comment, dropping the member
	}
	if s.Len() >= 2 && s.At(0) == '/' && (s.At(1) == '/' || s.At(1) == '*') {
		return false
	}
	rest := s
	for rest.Len() != 0 {
		r, n := mem.DecodeRune(rest)
		switch r {
		case '{', '}', '[', ']', ',', ':', '"', '\'':
			return false
		}
		if r <= ' ' {
			return false
		}
		rest = rest.SliceFrom(n)
	}
	return true
}

// CanBeMultiline reports whether s is suited to a triple-quoted multiline
// block: it spans lines, contains no other control characters, and does not
// itself contain the closing delimiter.
func CanBeMultiline(s mem.RO) bool {
	sawLF := false
	for i := 0; i < s.Len(); i++ {
		switch b := s.At(i); {
		case b == '\n':
			sawLF = true
		case b < ' ':
			return false
		case b == '\'' && i+2 < s.Len() && s.At(i+1) == '\'' && s.At(i+2) == '\'':
			return false
		}
	}
	return sawLF
}
