package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Format(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()

	table := [](struct {
		value    string
		expected string
	}){
		{"0", "0"},
		{"-0", "0"},
		{"0.000", "0"},
		{"7", "7"},
		{"-7", "-7"},
		{"10", "10"},
		{"1.50", "1.5"},
		{"123000", "123000"},
		{"1234.5678", "1234.5678"},
		{"12345678", "12345678"},
		{"99999999", "99999999"},
		{"100000000", "1e+8"},
		{"123456780", "1.2345678e+8"},
		{"5E12", "5e+12"},
		{"1", "1"},
		{"0.5", "5e-1"},
		{"0.125", "1.25e-1"},
		{"-0.001", "-1e-3"},
		{"-2.5e-10", "-2.5e-10"},
		{"9.9999999e99", "9.9999999e+99"},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, cfg.Format(mustDecimal(t, entry.value)), entry.value)
	}
}

func TestConfig_Format_Thresholds(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.ExpPos = 3
	cfg.ExpNeg = -3

	assert.Equal("999", cfg.Format(mustDecimal(t, "999")))
	assert.Equal("1e+3", cfg.Format(mustDecimal(t, "1000")))
	assert.Equal("1.5e-3", cfg.Format(mustDecimal(t, "0.0015")))
	assert.Equal("0.015", cfg.Format(mustDecimal(t, "0.015")))
	assert.Equal("0.15", cfg.Format(mustDecimal(t, "0.15")))
}
