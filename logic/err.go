package logic

import (
	"errors"
	"fmt"

	"github.com/ezrec/rpncalc/engine"
	"github.com/ezrec/rpncalc/translate"
)

var f = translate.From

var (
	// Interpreter errors
	ErrKeyUnknown error = translate.Error("key unknown")
	ErrPanic      error = translate.Error("operation failed")
)

// ErrKey is a key code with no handler.
type ErrKey OpCode

func (ek ErrKey) Error() string {
	return f("key %v not recognized", OpCode(ek).String())
}

func (ek ErrKey) Is(err error) bool {
	return err == ErrKeyUnknown
}

// ErrKeyName is a key name that ParseOpCode does not know.
type ErrKeyName string

func (ekn ErrKeyName) Error() string {
	return f("'%v' is not a key name", string(ekn))
}

func (ekn ErrKeyName) Is(err error) bool {
	return err == ErrKeyUnknown
}

// ErrorKind classifies a failure reported to the host.
type ErrorKind int

//go:generate go tool stringer -linecomment -type=ErrorKind
const (
	KIND_UNKNOWN     = ErrorKind(0) // Unknown Error
	KIND_RANGE       = ErrorKind(1) // Range Error
	KIND_DECIMAL     = ErrorKind(2) // Decimal Error
	KIND_OPERATIONAL = ErrorKind(3) // Operational Error
)

// Error is the error record delivered by the error signal.
type Error struct {
	Kind    ErrorKind `yaml:"-"`
	Type    string    `yaml:"type"`
	Message string    `yaml:"message"`
}

func (e Error) String() string {
	return fmt.Sprintf("%v: %v", e.Type, e.Message)
}

// Classify converts an error into the record signalled to the host.
func Classify(err error) (record Error) {
	switch {
	case errors.Is(err, engine.ErrRange):
		record.Kind = KIND_RANGE
	case errors.Is(err, engine.ErrDecimal):
		record.Kind = KIND_DECIMAL
	case errors.Is(err, ErrKeyUnknown), errors.Is(err, engine.ErrMemorySlot):
		record.Kind = KIND_OPERATIONAL
	default:
		record.Kind = KIND_UNKNOWN
	}

	record.Type = record.Kind.String()
	if record.Kind == KIND_UNKNOWN {
		record.Message = f("unexpected failure: %v", err)
	} else {
		record.Message = err.Error()
	}

	return
}

// errPanic wraps a recovered panic value.
type errPanic struct {
	Op    OpCode
	Value any
}

func (ep *errPanic) Error() string {
	return f("%v: %v", ep.Op.String(), fmt.Sprint(ep.Value))
}

func (ep *errPanic) Unwrap() error {
	return ErrPanic
}
