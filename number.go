// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package hjson

import (
	"math"
	"math/big"
	"strconv"
)

// The Decimal scale is stored in a single byte; fractional digits past this
// bound are consumed but do not contribute to the value.
const maxScale = 255

// Exponents accumulate saturating at this bound, which is far beyond any
// scale a byte-wide Decimal can express.
const maxExponent = 1 << 20

var ten = big.NewInt(10)

// ReadNumber consumes a maximal numeric literal from the input and returns
// its decoded value. The cursor must be positioned at a leading "-" or a
// digit. The grammar is that of JSON numbers: no extra leading zeroes, at
// least one digit after a decimal point, and at least one digit after an
// exponent marker or exponent sign.
//
// Integer literals with no fraction or exponent take the narrowest of Int32,
// Int64, or Decimal that represents them exactly. A fractional part or an
// exponent always produces a Decimal. Zero and positive exponents shift the
// decimal scale exactly; a negative exponent scales through a binary
// floating-point division, so its result inherits float64 rounding.
//
// On failure no value is returned, and the diagnostic carries the position
// at which the offending rune was consumed or expected.
func (s *Scanner) ReadNumber() (Number, error) {
	neg := false
	if s.Peek() == '-' {
		s.Read()
		neg = true
		if !isDigit(s.Peek()) {
			return nil, s.Errorf("extra negation")
		}
	}
	first := s.Read()
	if !isDigit(first) {
		return nil, s.Errorf("missing digits in numeric literal")
	}

	// Integer part. The accumulator is unbounded, so magnitude never
	// overflows during accumulation; narrowing happens only at selection.
	mag := big.NewInt(int64(first - '0'))
	if first == '0' && isDigit(s.Peek()) {
		return nil, s.Errorf("leading multiple zeros are not allowed")
	}
	var tmp big.Int
	for isDigit(s.Peek()) {
		mag.Mul(mag, ten)
		mag.Add(mag, tmp.SetInt64(int64(s.Read()-'0')))
	}

	// Fractional part. Digit i after the point contributes digit/10^i, kept
	// exactly by widening the magnitude and counting the scale.
	var scale int
	hasFrac := false
	if s.Peek() == '.' {
		s.Read()
		if !isDigit(s.Peek()) {
			return nil, s.Errorf("extra dot")
		}
		hasFrac = true
		for isDigit(s.Peek()) {
			d := int64(s.Read() - '0')
			if scale < maxScale {
				mag.Mul(mag, ten)
				mag.Add(mag, tmp.SetInt64(d))
				scale++
			}
		}
	}

	// Exponent.
	hasExp, expNeg := false, false
	var exp int
	if ch := s.Peek(); ch == 'e' || ch == 'E' {
		s.Read()
		if ch := s.Peek(); ch == '+' || ch == '-' {
			expNeg = ch == '-'
			s.Read()
		}
		if !isDigit(s.Peek()) {
			return nil, s.Errorf("incomplete exponent")
		}
		hasExp = true
		for isDigit(s.Peek()) {
			d := int(s.Read() - '0')
			if exp < maxExponent {
				exp = exp*10 + d
			}
		}
	}

	// A plain integer takes the narrowest type that holds it exactly.
	if !hasFrac && !hasExp {
		v := new(big.Int).Set(mag)
		if neg {
			v.Neg(v)
		}
		if v.IsInt64() {
			n := v.Int64()
			if n >= math.MinInt32 && n <= math.MaxInt32 {
				return Int32(n), nil
			}
			return Int64(n), nil
		}
		return NewDecimal(mag, 0, neg), nil
	}

	if hasExp && expNeg {
		// A negative exponent scales through a float64 division and the
		// quotient is re-read from its shortest decimal rendering.
		f := mantissaFloat(mag, scale) / math.Pow(10, float64(exp))
		if math.IsInf(f, 0) {
			return nil, s.Errorf("numeric literal out of range")
		}
		return decimalFromFloat(f, neg), nil
	}
	if hasExp && exp > 0 {
		// Zero and positive exponents shift the scale exactly.
		if exp >= scale {
			mag.Mul(mag, new(big.Int).Exp(ten, big.NewInt(int64(exp-scale)), nil))
			scale = 0
		} else {
			scale -= exp
		}
	}
	return NewDecimal(mag, uint8(scale), neg), nil
}

// mantissaFloat reports the nearest float64 to mag × 10^(-scale).
func mantissaFloat(mag *big.Int, scale int) float64 {
	f := new(big.Float).SetInt(mag)
	if scale > 0 {
		f.Quo(f, new(big.Float).SetInt(new(big.Int).Exp(ten, big.NewInt(int64(scale)), nil)))
	}
	v, _ := f.Float64()
	return v
}

// decimalFromFloat reconstructs a Decimal from the shortest decimal
// rendering of f, which must be finite. The magnitude of f is used; neg
// alone determines the sign.
func decimalFromFloat(f float64, neg bool) *Decimal {
	text := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)
	mag := new(big.Int)
	var tmp big.Int
	scale, frac := 0, false
	for _, ch := range text {
		if ch == '.' {
			frac = true
			continue
		}
		if frac && scale >= maxScale {
			break
		}
		mag.Mul(mag, ten)
		mag.Add(mag, tmp.SetInt64(int64(ch-'0')))
		if frac {
			scale++
		}
	}
	return NewDecimal(mag, uint8(scale), neg)
}
