package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage("en-US")

	tag := SetLanguage("en-US")
	base, _ := tag.Base()
	assert.Equal("en", base.String())
	assert.Equal("Range Error", From("Range Error"))
	assert.Equal("key null not recognized", From("key %v not recognized", "null"))

	tag = SetLanguage("de-DE")
	base, _ = tag.Base()
	assert.Equal("de", base.String())
	assert.Equal("Bereichsfehler", From("Range Error"))
	assert.Equal("Taste null nicht erkannt", From("key %v not recognized", "null"))

	// Untranslated keys pass through.
	assert.Equal("no such message", From("no such message"))
}

func TestError(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage("en-US")

	err := Error("value out of range")

	SetLanguage("en-US")
	assert.Equal("value out of range", err.Error())

	SetLanguage("de-DE")
	assert.Equal("Wert außerhalb des Bereichs", err.Error())
	assert.Equal("Bereich: Wert außerhalb des Bereichs", From("Bereich: %v", err))

	var target error = Error("value out of range")
	assert.True(err == target)
}

func TestSetLanguage_Fallback(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage("en-US")

	tag := SetLanguage("xx-YY")
	base, _ := tag.Base()
	assert.Equal("en", base.String())
	assert.Equal("Unknown Error", From("Unknown Error"))

	tag = SetLanguage()
	base, _ = tag.Base()
	assert.Equal("en", base.String())
}
