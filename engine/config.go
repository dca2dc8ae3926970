package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	PRECISION       = 8   // Significant digits of every value.
	EXPONENT_DIGITS = 2   // Width of the exponent entry field.
	MIN_E_VALUE     = -99 // Smallest adjusted exponent, below it values underflow to zero.
	MAX_E_VALUE     = 99  // Largest adjusted exponent, above it values are out of range.
	TO_EXP_POS      = PRECISION
	TO_EXP_NEG      = -1
)

// traps are the decimal conditions that reject an operation.
const traps = apd.SystemOverflow |
	apd.SystemUnderflow |
	apd.Overflow |
	apd.DivisionUndefined |
	apd.DivisionByZero |
	apd.DivisionImpossible |
	apd.InvalidOperation

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the numeric configuration of an Engine.
// It is copied into the engine and never modified afterwards.
type Config struct {
	Precision      uint32 `yaml:"precision" validate:"min=1,max=34"`     // Significant digits.
	ExponentDigits int    `yaml:"exponent_digits" validate:"min=1,max=4"` // Exponent entry width.
	MinExponent    int32  `yaml:"min_exponent" validate:"max=-1"`        // Underflow bound.
	MaxExponent    int32  `yaml:"max_exponent" validate:"min=1"`         // Overflow bound.
	ExpPos         int32  `yaml:"exp_pos" validate:"min=1"`              // Exponential notation at or above 10^ExpPos.
	ExpNeg         int32  `yaml:"exp_neg" validate:"max=0"`              // Exponential notation at or below 10^ExpNeg.
}

// DefaultConfig returns the calculator's standard configuration.
func DefaultConfig() Config {
	return Config{
		Precision:      PRECISION,
		ExponentDigits: EXPONENT_DIGITS,
		MinExponent:    MIN_E_VALUE,
		MaxExponent:    MAX_E_VALUE,
		ExpPos:         TO_EXP_POS,
		ExpNeg:         TO_EXP_NEG,
	}
}

// LoadConfig reads a YAML configuration. Omitted keys keep their default.
func LoadConfig(r io.Reader) (cfg Config, err error) {
	cfg = DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(&cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConfig, err)
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks the configuration bounds.
func (cfg Config) Validate() (err error) {
	err = validate.Struct(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if cfg.ExpNeg >= cfg.ExpPos {
		return fmt.Errorf("%w: exp_neg %d not below exp_pos %d", ErrConfig, cfg.ExpNeg, cfg.ExpPos)
	}

	return
}

// context creates the arithmetic context for the configuration.
func (cfg Config) context() *apd.Context {
	return &apd.Context{
		Precision:   cfg.Precision,
		Rounding:    apd.RoundHalfUp,
		MaxExponent: cfg.MaxExponent,
		MinExponent: cfg.MinExponent,
		Traps:       traps,
	}
}
