package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMantissa(t *testing.T) {
	table := [...]struct {
		name   string
		keys   string
		text   string
		isZero bool
	}{
		{name: "empty", keys: "", text: "0", isZero: true},
		{name: "zeros", keys: "000", text: "0", isZero: true},
		{name: "leading zero", keys: "05", text: "5"},
		{name: "integer", keys: "123", text: "123"},
		{name: "point", keys: "12.", text: "12."},
		{name: "fraction", keys: "12.5", text: "12.5"},
		{name: "bare point", keys: ".", text: "0.", isZero: true},
		{name: "zero fraction", keys: ".000", text: "0.000", isZero: true},
		{name: "small", keys: ".05", text: "0.05"},
		{name: "double point", keys: "1.2.3", text: "1.23"},
		{name: "integer limit", keys: "123456789", text: "12345678"},
		{name: "fraction limit", keys: "0.12345678", text: "0.1234567"},
		{name: "mixed limit", keys: "1234.56789", text: "1234.5678"},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			n := NewNumber(8, 2)
			for _, key := range []byte(entry.keys) {
				if key == '.' {
					n.Mantissa.Point()
				} else {
					n.Mantissa.Append(key)
				}
			}

			assert.Equal(entry.text, n.Mantissa.Text())
			assert.Equal(entry.isZero, n.Mantissa.IsZero())
		})
	}
}

func TestMantissa_SetOne(t *testing.T) {
	assert := assert.New(t)

	n := NewNumber(8, 2)
	n.Mantissa.Point()
	n.Mantissa.Append('0')
	n.Mantissa.SetOne()

	assert.Equal("1", n.Mantissa.Text())
	assert.False(n.Mantissa.IsZero())

	n.Mantissa.Append('5')
	assert.Equal("15", n.Mantissa.Text())
}

func TestExponent(t *testing.T) {
	assert := assert.New(t)

	n := NewNumber(8, 2)
	assert.Equal("", n.Exponent.Text())

	n.Exponent.Start()
	assert.Equal("00", n.Exponent.Text())

	n.Exponent.Shift('1')
	assert.Equal("01", n.Exponent.Text())

	n.Exponent.Shift('2')
	assert.Equal("12", n.Exponent.Text())

	n.Exponent.Shift('3')
	assert.Equal("23", n.Exponent.Text())

	n.Exponent.Negate()
	assert.Equal("-23", n.Exponent.Text())

	n.Exponent.Negate()
	assert.Equal("23", n.Exponent.Text())

	n.Exponent.Negate()
	n.Exponent.Start()
	assert.Equal("00", n.Exponent.Text())

	n.Exponent.Reset()
	assert.Equal("", n.Exponent.Text())
}

func TestExponent_Width(t *testing.T) {
	assert := assert.New(t)

	n := NewNumber(8, 3)
	n.Exponent.Start()
	assert.Equal("000", n.Exponent.Text())

	for _, digit := range []byte("1234") {
		n.Exponent.Shift(digit)
	}
	assert.Equal("234", n.Exponent.Text())
}

func TestNumber_String(t *testing.T) {
	assert := assert.New(t)

	n := NewNumber(8, 2)
	assert.Equal("0", n.String())

	n.Mantissa.Append('1')
	n.Mantissa.Append('2')
	n.Mantissa.Point()
	assert.Equal("12", n.String())

	n.Mantissa.Append('5')
	assert.Equal("12.5", n.String())

	n.Exponent.Start()
	assert.Equal("12.5e00", n.String())

	n.Exponent.Shift('7')
	n.Exponent.Negate()
	assert.Equal("12.5e-07", n.String())

	n.Reset()
	assert.Equal("0", n.String())
	assert.Equal("", n.Exponent.Text())
}
