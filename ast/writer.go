// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/hjson/internal/escape"
	"go4.org/mem"
)

// WriterOptions carry the settings for rendering values as Hjson text.
// A nil or zero WriterOptions is ready for use with default settings.
type WriterOptions struct {
	// Indent is the indentation unit. If empty, two spaces are used.
	Indent string

	// Inline renders containers on a single line with comma separators.
	Inline bool

	// QuoteAlways renders every string and key in quoted form.
	QuoteAlways bool

	// MultilineStrings renders strings spanning lines as '''...''' blocks
	// where the content permits it.
	MultilineStrings bool

	// Comments renders the comments attached to values.
	Comments bool

	// EmitRootBraces surrounds a root object with braces. By default the
	// braces of a non-empty root object are omitted.
	EmitRootBraces bool

	// HexIntegers renders integer values in hexadecimal. Hexadecimal forms
	// re-read as quoteless strings, so this trades re-readability for
	// presentation.
	HexIntegers bool
}

// Write renders v to w as Hjson text using the settings from o, which may
// be nil for defaults.
func Write(w io.Writer, v Value, o *WriterOptions) error {
	e := newEmitter(o, false)
	if e.opts.Comments && v != nil {
		// Containers place their own comments; only comments ahead of the
		// root value need placing here.
		e.comments(v.Comments().Before, 0)
	}
	e.value(v, 0, true)
	_, err := io.WriteString(w, e.sb.String())
	return err
}

// Format renders v as Hjson text using the settings from o, which may be
// nil for defaults.
func Format(v Value, o *WriterOptions) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, v, o); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSON renders v to w as compact strict JSON. Comments are discarded.
func WriteJSON(w io.Writer, v Value) error {
	e := newEmitter(nil, true)
	e.value(v, 0, true)
	_, err := io.WriteString(w, e.sb.String())
	return err
}

// ToJSON renders v as compact strict JSON. Comments are discarded.
func ToJSON(v Value) (string, error) {
	var sb strings.Builder
	if err := WriteJSON(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type emitter struct {
	opts   WriterOptions
	strict bool
	sb     strings.Builder
}

func newEmitter(o *WriterOptions, strict bool) *emitter {
	e := &emitter{strict: strict}
	if o != nil {
		e.opts = *o
	}
	if e.opts.Indent == "" {
		e.opts.Indent = "  "
	}
	return e
}

func (e *emitter) value(v Value, depth int, isRoot bool) {
	switch t := v.(type) {
	case *Object:
		e.object(t, depth, isRoot)
	case *Array:
		e.array(t, depth)
	case *String:
		e.string(t.Value, depth)
	case *Number:
		e.number(t)
	case *Bool:
		if t.Value {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}
	case *Null:
		e.sb.WriteString("null")
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (e *emitter) object(o *Object, depth int, isRoot bool) {
	if e.strict || e.opts.Inline {
		e.sb.WriteByte('{')
		for i, m := range o.Members {
			if i > 0 {
				if e.strict {
					e.sb.WriteByte(',')
				} else {
					e.sb.WriteString(", ")
				}
			}
			e.key(m.Key)
			e.sb.WriteByte(':')
			if !e.strict {
				e.sb.WriteByte(' ')
			}
			e.value(m.Value, depth, false)
		}
		e.sb.WriteByte('}')
		return
	}

	braces := !isRoot || e.opts.EmitRootBraces || len(o.Members) == 0
	inner := depth
	if braces {
		e.sb.WriteByte('{')
		inner++
	}
	for i, m := range o.Members {
		if i > 0 || braces {
			e.sb.WriteByte('\n')
		}
		e.comments(m.Comments().Before, inner)
		e.indent(inner)
		e.key(m.Key)
		e.sb.WriteByte(':')
		if s, ok := m.Value.(*String); !ok || !e.useMultiline(s.Value) {
			e.sb.WriteByte(' ')
		}
		e.value(m.Value, inner, false)
		e.lineComment(m.Comments().Line)
	}
	body := len(o.Members) != 0
	if e.opts.Comments {
		for _, c := range o.Comments().End {
			e.sb.WriteByte('\n')
			e.indent(inner)
			e.sb.WriteString(c)
			body = true
		}
	}
	if braces {
		if body {
			e.sb.WriteByte('\n')
			e.indent(depth)
		}
		e.sb.WriteByte('}')
	}
}

func (e *emitter) array(a *Array, depth int) {
	if e.strict || e.opts.Inline {
		e.sb.WriteByte('[')
		for i, v := range a.Values {
			if i > 0 {
				if e.strict {
					e.sb.WriteByte(',')
				} else {
					e.sb.WriteString(", ")
				}
			}
			e.value(v, depth, false)
		}
		e.sb.WriteByte(']')
		return
	}

	e.sb.WriteByte('[')
	for _, v := range a.Values {
		e.sb.WriteByte('\n')
		e.comments(v.Comments().Before, depth+1)
		e.indent(depth + 1)
		e.value(v, depth+1, false)
		e.lineComment(v.Comments().Line)
	}
	body := len(a.Values) != 0
	if e.opts.Comments {
		for _, c := range a.Comments().End {
			e.sb.WriteByte('\n')
			e.indent(depth + 1)
			e.sb.WriteString(c)
			body = true
		}
	}
	if body {
		e.sb.WriteByte('\n')
		e.indent(depth)
	}
	e.sb.WriteByte(']')
}

// useMultiline reports whether s should render as a '''...''' block under
// the current settings.
func (e *emitter) useMultiline(s string) bool {
	return !e.strict && e.opts.MultilineStrings && !e.opts.Inline &&
		!e.opts.QuoteAlways && escape.CanBeMultiline(mem.S(s))
}

func (e *emitter) string(s string, depth int) {
	if e.strict {
		e.sb.Write(escape.Quote(mem.S(s)))
		return
	}
	if e.useMultiline(s) {
		e.multiline(s, depth)
		return
	}
	if !e.opts.QuoteAlways && !e.opts.Inline && quotelessSafe(s) {
		e.sb.WriteString(s)
		return
	}
	e.sb.Write(escape.Quote(mem.S(s)))
}

// quotelessSafe reports whether s renders quoteless and reads back as the
// same string. Text that would re-read as a keyword or number must keep
// its quotes: the reader checks for a completed literal at every
// punctuator and comment opener, not only at end of line, so any prefix of
// s ending at one of those positions disqualifies it too.
func quotelessSafe(s string) bool {
	if !escape.CanBeQuoteless(mem.S(s)) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ',' || c == '}' || c == ']' || c == '#',
			c == '/' && i+1 < len(s) && (s[i+1] == '/' || s[i+1] == '*'):
			if _, ok := literalValue(strings.TrimRight(s[:i], " \t")); ok {
				return false
			}
		}
	}
	_, isLit := literalValue(s)
	return !isLit
}

func (e *emitter) multiline(s string, depth int) {
	ind := strings.Repeat(e.opts.Indent, depth+1)
	e.sb.WriteByte('\n')
	e.sb.WriteString(ind)
	e.sb.WriteString("'''")
	for _, line := range strings.Split(s, "\n") {
		e.sb.WriteByte('\n')
		if line != "" {
			e.sb.WriteString(ind)
			e.sb.WriteString(line)
		}
	}
	e.sb.WriteByte('\n')
	e.sb.WriteString(ind)
	e.sb.WriteString("'''")
}

func (e *emitter) number(n *Number) {
	if !e.strict && e.opts.HexIntegers {
		if i, ok := n.Int64(); ok {
			if i < 0 {
				fmt.Fprintf(&e.sb, "-0x%x", uint64(-i))
			} else {
				fmt.Fprintf(&e.sb, "0x%x", i)
			}
			return
		}
	}
	e.sb.WriteString(n.Value.String())
}

func (e *emitter) key(k string) {
	if !e.strict && !e.opts.QuoteAlways && escape.IsKeyName(mem.S(k)) {
		e.sb.WriteString(k)
		return
	}
	e.sb.Write(escape.Quote(mem.S(k)))
}

func (e *emitter) comments(lines []string, depth int) {
	if !e.opts.Comments {
		return
	}
	for _, c := range lines {
		e.indent(depth)
		e.sb.WriteString(c)
		e.sb.WriteByte('\n')
	}
}

func (e *emitter) lineComment(text string) {
	if e.opts.Comments && text != "" {
		e.sb.WriteByte(' ')
		e.sb.WriteString(text)
	}
}

func (e *emitter) indent(n int) {
	for i := 0; i < n; i++ {
		e.sb.WriteString(e.opts.Indent)
	}
}
