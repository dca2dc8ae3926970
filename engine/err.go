package engine

import (
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/ezrec/rpncalc/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrRange      error = translate.Error("value out of range")
	ErrDecimal    error = translate.Error("invalid decimal")
	ErrMemorySlot error = translate.Error("memory slot invalid")

	// Configuration errors
	ErrConfig error = translate.Error("configuration invalid")
)

// rangeConditions are the decimal conditions reported as ErrRange.
const rangeConditions = apd.Overflow |
	apd.DivisionByZero |
	apd.DivisionUndefined |
	apd.DivisionImpossible |
	apd.SystemOverflow |
	apd.SystemUnderflow

// ErrArithmetic is a rejected engine operation.
type ErrArithmetic struct {
	Op        string        // Operation name.
	Condition apd.Condition // Decimal conditions raised, if any.
	Err       error         // ErrRange or ErrDecimal.
}

// exponentOutOfRange is the decimal error text for an exponent outside the
// representable range, raised with no condition set.
const exponentOutOfRange = "exponent out of range"

// outOfRange reports whether a decimal error that carries no condition
// names one of the range conditions.
func outOfRange(cause error) bool {
	if cause == nil {
		return false
	}

	text := cause.Error()
	if strings.Contains(text, exponentOutOfRange) {
		return true
	}

	for bit := apd.Condition(1); bit != 0 && bit <= rangeConditions; bit <<= 1 {
		name := bit.String()
		if rangeConditions&bit != 0 && name != "" && strings.Contains(text, name) {
			return true
		}
	}

	return false
}

func newErrArithmetic(op string, cond apd.Condition, cause error) *ErrArithmetic {
	err := ErrDecimal
	if cond&rangeConditions != 0 || outOfRange(cause) {
		err = ErrRange
	}

	return &ErrArithmetic{Op: op, Condition: cond, Err: err}
}

func (err *ErrArithmetic) Error() string {
	if err.Condition.String() != "" {
		return f("%v: %v (%v)", err.Op, err.Err, err.Condition.String())
	}
	return f("%v: %v", err.Op, err.Err)
}

func (err *ErrArithmetic) Unwrap() error {
	return err.Err
}

// ErrSlot is a memory slot index out of range.
type ErrSlot int

func (es ErrSlot) Error() string {
	return f("memory slot m%v invalid", int(es))
}

func (es ErrSlot) Is(err error) bool {
	return err == ErrMemorySlot
}
