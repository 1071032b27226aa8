// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for Hjson values, a reader that
// constructs trees from Hjson source, and a writer that renders trees back
// to Hjson or strict JSON text.
package ast

import (
	"github.com/creachadair/hjson"
)

// A Value is an arbitrary Hjson value. The concrete type is *Object,
// *Array, *String, *Number, *Bool, or *Null; a *Member occurs only inside
// the member list of an Object.
type Value interface {
	// Comments returns the comment record of the value. It carries no text
	// unless the value was parsed with KeepComments enabled.
	Comments() *Comments

	isValue()
}

// Comments records the comments attached to a value when parsing with
// KeepComments enabled. Before holds comments preceding the value, Line a
// trailing comment on the same line as the value, and End comments trailing
// inside a container (or after the root value of a document).
type Comments struct {
	Before []string
	Line   string
	End    []string
}

// IsEmpty reports whether c records no comment text.
func (c *Comments) IsEmpty() bool {
	return c == nil || (len(c.Before) == 0 && c.Line == "" && len(c.End) == 0)
}

type node struct{ com Comments }

func (n *node) Comments() *Comments { return &n.com }
func (*node) isValue()              {}

// An Object is an ordered collection of key-value members.
type Object struct {
	node
	Members []*Member
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	node
	Key   string
	Value Value
}

// An Array is an ordered sequence of values.
type Array struct {
	node
	Values []Value
}

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

// A String is a string value, fully decoded.
type String struct {
	node
	Value string
}

// A Number is a numeric value. Its variant is whatever the literal scanner
// selected: hjson.Int32, hjson.Int64, or *hjson.Decimal.
type Number struct {
	node
	Value hjson.Number
}

// Int64 reports the value of n as an int64, if its variant is integral.
func (n *Number) Int64() (int64, bool) {
	switch v := n.Value.(type) {
	case hjson.Int32:
		return int64(v), true
	case hjson.Int64:
		return int64(v), true
	}
	return 0, false
}

// Float64 reports the nearest float64 to the value of n.
func (n *Number) Float64() float64 {
	switch v := n.Value.(type) {
	case hjson.Int32:
		return float64(v)
	case hjson.Int64:
		return float64(v)
	case *hjson.Decimal:
		return v.Float64()
	}
	return 0
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	node
	Value bool
}

// Null represents the null constant.
type Null struct{ node }
