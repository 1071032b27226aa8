// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/hjson"
	"go4.org/mem"
)

// ParseOptions control the construction of syntax trees from Hjson source.
// A zero ParseOptions is ready for use and discards comments.
type ParseOptions struct {
	// KeepComments, if true, attaches comment text to the values of the
	// resulting tree. Comments are recorded verbatim, markers included.
	KeepComments bool
}

// Parse constructs a syntax tree from the Hjson source in r, discarding
// comments. On failure it reports a position-annotated error.
func Parse(r io.Reader) (Value, error) { return ParseOptions{}.Parse(r) }

// ParseBytes constructs a syntax tree from the Hjson source in data,
// discarding comments.
func ParseBytes(data []byte) (Value, error) { return ParseOptions{}.ParseBytes(data) }

// Parse constructs a syntax tree from the Hjson source in r.
func (o ParseOptions) Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return o.ParseBytes(data)
}

// ParseBytes constructs a syntax tree from the Hjson source in data.
//
// A document whose root is not marked by "{" or "[" is first read as an
// object without braces. If that reading fails, the input is re-read from
// the beginning as a single root value, and the braceless error is reported
// if neither reading succeeds.
func (o ParseOptions) ParseBytes(data []byte) (Value, error) {
	p := &parser{sc: hjson.NewScanner(bytes.NewReader(data)), opts: o}
	p.white()
	if c := p.sc.Peek(); !p.slash && (c == '{' || c == '[') {
		v, err := p.value(false)
		if err != nil {
			return nil, err
		}
		return p.finish(v)
	}

	obj, oerr := p.object(true)
	if oerr == nil {
		if v, err := p.finish(obj); err == nil {
			return v, nil
		} else {
			oerr = err
		}
	}
	q := &parser{sc: hjson.NewScanner(bytes.NewReader(data)), opts: o}
	v, err := q.value(false)
	if err == nil {
		if v, err = q.finish(v); err == nil {
			return v, nil
		}
	}
	return nil, oerr
}

// A pendComment is a comment that has been scanned but not yet attached to
// a value, tagged with the line on which it began.
type pendComment struct {
	text string
	line int
}

type parser struct {
	sc   *hjson.Scanner
	opts ParseOptions

	// slash is set when white consumed a "/" that does not begin a comment.
	// The slash then belongs to the next quoteless token.
	slash bool

	pend []pendComment
}

// white skips whitespace and comments, and reports whether a line break was
// crossed. Comment text is buffered in p.pend when KeepComments is set.
func (p *parser) white() (sawEOL bool) {
	for !p.slash {
		switch c := p.sc.Peek(); c {
		case ' ', '\t', '\r':
			p.sc.Read()
		case '\n':
			p.sc.Read()
			sawEOL = true
		case '#':
			p.sc.Read()
			p.lineComment("#", p.sc.Location().Line)
		case '/':
			p.sc.Read()
			line := p.sc.Location().Line
			switch p.sc.Peek() {
			case '/':
				p.sc.Read()
				p.lineComment("//", line)
			case '*':
				p.sc.Read()
				if p.blockComment(line) {
					sawEOL = true
				}
			default:
				p.slash = true
				return sawEOL
			}
		default:
			return sawEOL
		}
	}
	return sawEOL
}

// lineComment consumes the remainder of a line comment whose marker has
// already been read. The terminating newline is left for the caller.
func (p *parser) lineComment(marker string, line int) {
	var sb strings.Builder
	sb.WriteString(marker)
	for {
		c := p.sc.Peek()
		if c == '\n' || c == '\r' || c == hjson.EOF {
			break
		}
		sb.WriteRune(p.sc.Read())
	}
	if p.opts.KeepComments {
		p.pend = append(p.pend, pendComment{text: sb.String(), line: line})
	}
}

// blockComment consumes a block comment whose "/*" marker has already been
// read, and reports whether the comment spanned a line break. An unclosed
// block comment silently ends at end of input.
func (p *parser) blockComment(line int) (sawEOL bool) {
	var sb strings.Builder
	sb.WriteString("/*")
	for {
		c := p.sc.Read()
		if c == hjson.EOF {
			break
		}
		if c == '\n' {
			sawEOL = true
		}
		if c == '*' && p.sc.Peek() == '/' {
			p.sc.Read()
			sb.WriteString("*/")
			break
		}
		sb.WriteRune(c)
	}
	if p.opts.KeepComments {
		p.pend = append(p.pend, pendComment{text: sb.String(), line: line})
	}
	return sawEOL
}

// takeComments removes and returns the buffered comment texts.
func (p *parser) takeComments() []string {
	if len(p.pend) == 0 {
		return nil
	}
	out := make([]string, len(p.pend))
	for i, pc := range p.pend {
		out[i] = pc.text
	}
	p.pend = nil
	return out
}

// attachLine moves a buffered comment that began on the given line into the
// Line slot of com. Comments on later lines stay buffered.
func (p *parser) attachLine(com *Comments, line int) {
	if len(p.pend) != 0 && p.pend[0].line == line {
		com.Line = p.pend[0].text
		p.pend = p.pend[1:]
	}
}

func label(c rune) string {
	if c == hjson.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", c)
}

// value parses a single value of any type. The nested flag reports whether
// the value occurs inside a container, where "," "}" "]" may terminate a
// quoteless literal.
func (p *parser) value(nested bool) (Value, error) {
	p.white()
	before := p.takeComments()
	v, err := p.bareValue(nested)
	if err != nil {
		return nil, err
	}
	if len(before) != 0 {
		v.Comments().Before = before
	}
	return v, nil
}

func (p *parser) bareValue(nested bool) (Value, error) {
	if p.slash {
		return p.tfnns("", nested)
	}
	switch c := p.sc.Peek(); c {
	case '{':
		return p.object(false)
	case '[':
		return p.array()
	case '"':
		s, err := p.sc.ReadString()
		if err != nil {
			return nil, err
		}
		return &String{Value: s}, nil
	case '\'':
		p.sc.Read()
		col := p.sc.Location().Column
		if p.sc.Peek() != '\'' {
			return p.tfnns("'", nested)
		}
		p.sc.Read()
		if p.sc.Peek() != '\'' {
			return p.tfnns("''", nested)
		}
		p.sc.Read()
		return p.mlString(col - 1)
	default:
		return p.tfnns("", nested)
	}
}

// object parses an object. When braceless is true no surrounding braces are
// expected and end of input closes the member list.
func (p *parser) object(braceless bool) (*Object, error) {
	obj := new(Object)
	if !braceless {
		if err := p.sc.Expect('{'); err != nil {
			return nil, err
		}
	}
	for {
		p.white()
		switch c := p.sc.Peek(); {
		case p.slash:
			// A pending slash begins the next key name.
		case c == hjson.EOF:
			if braceless {
				obj.com.End = p.takeComments()
				return obj, nil
			}
			return nil, p.sc.Errorf("object is not closed")
		case c == '}' && !braceless:
			p.sc.Read()
			obj.com.End = p.takeComments()
			return obj, nil
		}

		m := new(Member)
		m.com.Before = p.takeComments()
		key, err := p.keyName()
		if err != nil {
			return nil, err
		}
		m.Key = key
		p.white()
		if err := p.sc.Expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value(true)
		if err != nil {
			return nil, err
		}
		m.Value = v
		obj.Members = append(obj.Members, m)

		line := p.sc.Location().Line
		sawEOL := p.white()
		p.attachLine(&m.com, line)
		switch c := p.sc.Peek(); {
		case p.slash:
			if !sawEOL {
				return nil, p.sc.Errorf("expected ',' or a line break between object members")
			}
		case c == ',':
			p.sc.Read()
		case c == '}' && !braceless, c == hjson.EOF:
			// Close (or report) on the next pass so trailing comments
			// attach to End.
		default:
			if !sawEOL {
				return nil, p.sc.Errorf("expected ',' or a line break between object members")
			}
		}
	}
}

// keyName parses an object key, either a quoted string or a bare keyname.
func (p *parser) keyName() (string, error) {
	if !p.slash && p.sc.Peek() == '"' {
		return p.sc.ReadString()
	}
	var sb strings.Builder
	if p.slash {
		sb.WriteByte('/')
		p.slash = false
	}
	space := -1 // offset of the first interior space, if any
	for {
		switch c := p.sc.Peek(); {
		case c == ':':
			if sb.Len() == 0 {
				return "", p.sc.Errorf("found ':' with no preceding key name")
			} else if space >= 0 && space != sb.Len() {
				return "", p.sc.Errorf("found whitespace in a key name (quote the key to include spaces)")
			}
			return sb.String(), nil
		case c == hjson.EOF:
			return "", p.sc.Errorf("found end of input while scanning a key name")
		case c <= ' ':
			if space < 0 {
				space = sb.Len()
			}
			p.sc.Read()
		case c == '{' || c == '}' || c == '[' || c == ']' || c == ',':
			return "", p.sc.Errorf("found %s where a key name was expected (quote the key to include punctuation)", label(c))
		default:
			sb.WriteRune(p.sc.Read())
		}
	}
}

// array parses a bracketed array.
func (p *parser) array() (*Array, error) {
	arr := new(Array)
	if err := p.sc.Expect('['); err != nil {
		return nil, err
	}
	for {
		p.white()
		switch c := p.sc.Peek(); {
		case p.slash:
			// A pending slash begins the next element.
		case c == hjson.EOF:
			return nil, p.sc.Errorf("array is not closed")
		case c == ']':
			p.sc.Read()
			arr.com.End = p.takeComments()
			return arr, nil
		}

		v, err := p.value(true)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, v)

		line := p.sc.Location().Line
		sawEOL := p.white()
		p.attachLine(v.Comments(), line)
		switch c := p.sc.Peek(); {
		case p.slash:
			if !sawEOL {
				return nil, p.sc.Errorf("expected ',' or a line break between array elements")
			}
		case c == ',':
			p.sc.Read()
		case c == ']', c == hjson.EOF:
			// Close (or report) on the next pass.
		default:
			if !sawEOL {
				return nil, p.sc.Errorf("expected ',' or a line break between array elements")
			}
		}
	}
}

// tfnns parses a quoteless token: true, false, null, a number, or a string
// running to the end of the line. The prefix holds characters of the token
// that the caller already consumed.
func (p *parser) tfnns(prefix string, nested bool) (Value, error) {
	var sb strings.Builder
	if p.slash {
		sb.WriteByte('/')
		p.slash = false
	}
	sb.WriteString(prefix)
	if sb.Len() == 0 {
		switch c := p.sc.Peek(); c {
		case '{', '}', '[', ']', ',', ':':
			return nil, p.sc.Errorf("found %q when expecting a quoteless string (check your syntax)", c)
		case hjson.EOF:
			return nil, p.sc.Errorf("unexpected end of input")
		}
	}
	for {
		c := p.sc.Peek()
		eol := c == '\n' || c == '\r' || c == hjson.EOF
		mayEnd := eol || c == '#' || c == '/' || (nested && (c == ',' || c == '}' || c == ']'))
		if !mayEnd {
			sb.WriteRune(p.sc.Read())
			continue
		}

		text := strings.TrimRight(sb.String(), " \t")
		lit, isLit := literalValue(text)
		if eol {
			if isLit {
				return lit, nil
			}
			return &String{Value: text}, nil
		}
		if !isLit {
			// Punctuation joins a plain string, which runs to end of line.
			sb.WriteRune(p.sc.Read())
			continue
		}
		if c != '/' {
			return lit, nil
		}

		// Probe whether the slash begins a comment. If not, it joins the
		// token text and scanning continues.
		p.sc.Read()
		line := p.sc.Location().Line
		switch p.sc.Peek() {
		case '/':
			p.sc.Read()
			p.lineComment("//", line)
			return lit, nil
		case '*':
			p.sc.Read()
			p.blockComment(line)
			return lit, nil
		}
		sb.WriteByte('/')
	}
}

// literalValue reports the typed value of text when it is exactly a keyword
// or numeric literal.
func literalValue(text string) (Value, bool) {
	switch s := mem.S(text); {
	case s.Equal(mem.S("true")):
		return &Bool{Value: true}, true
	case s.Equal(mem.S("false")):
		return &Bool{Value: false}, true
	case s.Equal(mem.S("null")):
		return &Null{}, true
	}
	if len(text) != 0 && (text[0] == '-' || (text[0] >= '0' && text[0] <= '9')) {
		if n, err := scanNumberText(text); err == nil {
			return &Number{Value: n}, true
		}
	}
	return nil, false
}

// scanNumberText scans text as a complete numeric literal.
func scanNumberText(text string) (hjson.Number, error) {
	sc := hjson.NewScanner(strings.NewReader(text))
	n, err := sc.ReadNumber()
	if err != nil {
		return nil, err
	}
	if sc.Peek() != hjson.EOF {
		return nil, sc.Errorf("extra characters after a numeric literal")
	}
	return n, nil
}

// mlString parses a triple-quoted multiline string whose opening quotes
// have been consumed. The indent is the column offset of the opening
// quotes; that much leading whitespace is dropped from each line.
func (p *parser) mlString(indent int) (*String, error) {
	// A blank remainder of the opening line is not part of the value.
	for {
		c := p.sc.Peek()
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		p.sc.Read()
	}
	if p.sc.Peek() == '\n' {
		p.sc.Read()
		p.skipIndent(indent)
	}

	var sb strings.Builder
	triple := 0
	for {
		c := p.sc.Peek()
		if c == hjson.EOF {
			return nil, p.sc.Errorf("multiline string is not closed")
		}
		if c == '\'' {
			p.sc.Read()
			if triple++; triple == 3 {
				return &String{Value: strings.TrimSuffix(sb.String(), "\n")}, nil
			}
			continue
		}
		for ; triple > 0; triple-- {
			sb.WriteByte('\'')
		}
		switch c {
		case '\n':
			sb.WriteByte('\n')
			p.sc.Read()
			p.skipIndent(indent)
		case '\r':
			p.sc.Read()
		default:
			sb.WriteRune(p.sc.Read())
		}
	}
}

// skipIndent consumes up to indent characters of horizontal whitespace.
func (p *parser) skipIndent(indent int) {
	for ; indent > 0; indent-- {
		c := p.sc.Peek()
		if c == '\n' || c == hjson.EOF || c > ' ' {
			return
		}
		p.sc.Read()
	}
}

// finish verifies that only whitespace and comments remain after the root
// value, attaching any trailing comments to its End slot.
func (p *parser) finish(v Value) (Value, error) {
	p.white()
	if end := p.takeComments(); len(end) != 0 {
		v.Comments().End = end
	}
	if c := p.sc.Peek(); c != hjson.EOF || p.slash {
		return nil, p.sc.Errorf("found trailing characters after the root value")
	}
	if err := p.sc.Err(); err != nil {
		return nil, err
	}
	return v, nil
}
