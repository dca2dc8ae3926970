package logic

import (
	"strings"
)

// Mantissa is the mantissa part of the number being keyed in.
type Mantissa struct {
	precision int
	integer   string
	point     bool
	fraction  string
}

// Reset returns the mantissa to "0".
func (m *Mantissa) Reset() {
	m.integer = "0"
	m.point = false
	m.fraction = ""
}

// Append adds a digit. Digits beyond the precision are dropped.
func (m *Mantissa) Append(digit byte) {
	if len(m.integer)+len(m.fraction) >= m.precision {
		return
	}

	switch {
	case m.point:
		m.fraction += string(digit)
	case m.integer == "0":
		m.integer = string(digit)
	default:
		m.integer += string(digit)
	}
}

// Point starts the fraction. A second point is ignored.
func (m *Mantissa) Point() {
	m.point = true
}

// IsZero is true for "0", "0." and "0.000".
func (m *Mantissa) IsZero() bool {
	return m.integer == "0" && strings.Trim(m.fraction, "0") == ""
}

// SetOne replaces the mantissa with "1".
func (m *Mantissa) SetOne() {
	m.Reset()
	m.integer = "1"
}

// Text is the mantissa as displayed, including a trailing point.
func (m *Mantissa) Text() string {
	if !m.point {
		return m.integer
	}
	return m.integer + "." + m.fraction
}

// Exponent is the exponent part of the number being keyed in.
type Exponent struct {
	width    int
	active   bool
	negative bool
	digits   string
}

// Reset drops the exponent entirely.
func (e *Exponent) Reset() {
	e.active = false
	e.negative = false
	e.digits = ""
}

// Start begins exponent entry with all zero digits.
func (e *Exponent) Start() {
	e.active = true
	e.negative = false
	e.digits = strings.Repeat("0", e.width)
}

// Shift pushes a digit in on the right, dropping the leftmost.
func (e *Exponent) Shift(digit byte) {
	e.digits = e.digits[1:] + string(digit)
}

// Negate flips the exponent sign.
func (e *Exponent) Negate() {
	e.negative = !e.negative
}

// Text is the exponent as displayed, empty when no exponent is entered.
func (e *Exponent) Text() string {
	if !e.active {
		return ""
	}
	if e.negative {
		return "-" + e.digits
	}
	return e.digits
}

// Number is the entry buffer of the interpreter.
type Number struct {
	Mantissa Mantissa
	Exponent Exponent
}

// NewNumber returns an entry buffer holding "0".
func NewNumber(precision, width int) (n Number) {
	n.Mantissa.precision = precision
	n.Exponent.width = width
	n.Reset()
	return
}

// Reset clears both the mantissa and the exponent.
func (n *Number) Reset() {
	n.Mantissa.Reset()
	n.Exponent.Reset()
}

// String is the number in a form the engine parses.
func (n *Number) String() string {
	text := strings.TrimSuffix(n.Mantissa.Text(), ".")
	exp := n.Exponent.Text()
	if exp != "" {
		text += "e" + exp
	}
	return text
}
