// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package hjson implements the lexical core of the Hjson text format.
//
// # Scanning
//
// The Scanner type is a single-rune lookahead cursor over a text source,
// carrying the line and column of the most recently consumed rune. Grammar
// readers drive it with Peek, Read, SkipWhitespace, and Expect, and call the
// literal scanners to decode primitive values:
//
//	s := hjson.NewScanner(input)
//	s.SkipWhitespace()
//	switch ch := s.Peek(); {
//	case ch == '"':
//	   str, err := s.ReadString()
//	   ...
//	case ch == '-' || ch >= '0' && ch <= '9':
//	   num, err := s.ReadNumber()
//	   ...
//	}
//
// Peek and Read report the EOF sentinel at the end of the input and never
// fail; a read error from the underlying source is latched and recovered
// with Err.
//
// # Numbers
//
// ReadNumber enforces the JSON numeric grammar and returns the narrowest
// faithful representation: Int32 for values in signed 32-bit range, Int64
// for the rest of the signed 64-bit range, and Decimal (an exact unscaled
// magnitude, byte-wide scale, and sign) for everything with a fraction, an
// exponent, or more than 64 bits of integer.
//
// # Diagnostics
//
// Every scanner failure is a *ScanError carrying a message and the 1-based
// line and column at which the offending rune was consumed or expected.
// Failures are fatal to the parse in progress; callers may wrap them with
// context but must not alter their position data.
//
// The grammar-level reader for Hjson documents, and the writer that renders
// value trees back to text, live in the ast subpackage.
package hjson
