// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package hjson

import "fmt"

// A LineCol describes the line number and column of a position in source
// text.  Lines are 1-based. The column counts the runes consumed on the
// line, so the first rune of a line is column 1; column 0 means nothing has
// been consumed on the line yet.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A ScanError describes a lexical failure and the position at which it was
// detected.  Scanner failures are unconditionally fatal to the parse that
// produced them; no recovery is attempted at this layer.
type ScanError struct {
	Message string
	Line    int
	Column  int
}

// Error satisfies the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s. At line %d, column %d", e.Message, e.Line, e.Column)
}
