// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package hjson

import (
	"math/big"
	"strconv"
	"strings"
)

// A Number is the decoded value of a numeric literal. The concrete type is
// Int32, Int64, or *Decimal: integer literals take the narrowest integer
// type that holds them exactly, and everything else (a fractional part, an
// exponent, or an integer beyond 64 bits) becomes a Decimal.  A Number is
// immutable once returned by the scanner.
type Number interface {
	// String renders the value as a plain decimal literal with no exponent.
	// The rendering re-scans to an equal value.
	String() string

	isNumber()
}

// Int32 is a numeric literal that fits a signed 32-bit integer.
type Int32 int32

// Int64 is a numeric literal that fits a signed 64-bit integer but not a
// 32-bit one.
type Int64 int64

func (z Int32) String() string { return strconv.FormatInt(int64(z), 10) }
func (z Int64) String() string { return strconv.FormatInt(int64(z), 10) }

func (Int32) isNumber()    {}
func (Int64) isNumber()    {}
func (*Decimal) isNumber() {}

// A Decimal is an exact base-10 value: an unscaled integer magnitude, a
// decimal scale, and a sign. The represented value is
//
//	magnitude × 10^(-scale), negated when the sign is set
//
// The scale is a single byte. Fractional digits beyond scale 255 are
// consumed by the scanner but truncated out of the value.
type Decimal struct {
	mag   big.Int // unscaled magnitude, never negative
	scale uint8
	neg   bool
}

// NewDecimal constructs a Decimal from an unscaled magnitude, a scale, and a
// sign. The sign of mag is ignored; neg alone determines the sign of the
// value.
func NewDecimal(mag *big.Int, scale uint8, neg bool) *Decimal {
	d := &Decimal{scale: scale, neg: neg}
	d.mag.Abs(mag)
	return d
}

// Magnitude returns a copy of the unscaled magnitude of d.
func (d *Decimal) Magnitude() *big.Int { return new(big.Int).Set(&d.mag) }

// Scale reports the decimal scale of d.
func (d *Decimal) Scale() uint8 { return d.scale }

// Negative reports whether d is negative.
func (d *Decimal) Negative() bool { return d.neg }

// IsZero reports whether the magnitude of d is zero.
func (d *Decimal) IsZero() bool { return d.mag.Sign() == 0 }

// Equal reports whether d and e have identical representations.
// Representations are not normalized, so 1.50 and 1.5 are not equal.
func (d *Decimal) Equal(e *Decimal) bool {
	return d.scale == e.scale && d.neg == e.neg && d.mag.Cmp(&e.mag) == 0
}

// Float64 reports the nearest float64 to the value of d.
func (d *Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

func (d *Decimal) String() string {
	digits := d.mag.String()
	var sb strings.Builder
	if d.neg {
		sb.WriteByte('-')
	}
	sc := int(d.scale)
	switch {
	case sc == 0:
		sb.WriteString(digits)
	case len(digits) <= sc:
		sb.WriteString("0.")
		for i := len(digits); i < sc; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(digits)
	default:
		sb.WriteString(digits[:len(digits)-sc])
		sb.WriteByte('.')
		sb.WriteString(digits[len(digits)-sc:])
	}
	return sb.String()
}
