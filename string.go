// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package hjson

import "strings"

// ReadString consumes a quoted string literal and returns its decoded
// contents. The cursor must be positioned at the opening quote; on success
// it is left one rune past the closing quote.
//
// Escape decoding follows the Hjson reference scanner: each \uXXXX escape
// yields exactly one UTF-16 code unit, surrogate halves are not combined,
// and a rune that is not a hex digit inside the escape contributes zero to
// the accumulator rather than failing. Unlike strict JSON, raw control
// characters in the body are preserved verbatim.
func (s *Scanner) ReadString() (string, error) {
	if err := s.Expect('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		switch ch := s.Read(); ch {
		case EOF:
			return "", s.Errorf("string is not closed")
		case '"':
			return sb.String(), nil
		case '\\':
			if err := s.readEscape(&sb); err != nil {
				return "", err
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

func (s *Scanner) readEscape(sb *strings.Builder) error {
	switch ch := s.Read(); ch {
	case '"', '\\', '/':
		sb.WriteRune(ch)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		var acc uint16
		for i := 0; i < 4; i++ {
			ch := s.Read()
			if ch == EOF {
				return s.Errorf("incomplete unicode character escape")
			}
			// A rune that is not a hex digit shifts in a zero; the
			// reference scanner does not validate the digits.
			acc = acc*16 + uint16(hexValue(ch))
		}
		sb.WriteRune(rune(acc))
	case EOF:
		return s.Errorf("string is not closed")
	default:
		return s.Errorf("unexpected escape character")
	}
	return nil
}
