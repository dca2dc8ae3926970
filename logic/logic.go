// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package logic

import (
	"log/slog"
	"strings"

	"github.com/ezrec/rpncalc/engine"
)

// DISPLAY_ERROR is the mantissa text shown after a failure.
const DISPLAY_ERROR = "ERROR"

// State of the entry buffer.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_MANTISSA = State(0) // mantissa
	STATE_EXPONENT = State(1) // exponent
)

type operator func(eng *engine.Engine) error

func store(slot int) operator {
	return func(eng *engine.Engine) error { return eng.Store(slot) }
}

func recall(slot int) operator {
	return func(eng *engine.Engine) error { return eng.Recall(slot) }
}

func stack(fn func(eng *engine.Engine)) operator {
	return func(eng *engine.Engine) error {
		fn(eng)
		return nil
	}
}

// Operator keys, applied to the engine once any entry is committed.
var operators = map[OpCode]operator{
	OP_SIGN:       stack((*engine.Engine).Negate),
	OP_PUSH:       stack((*engine.Engine).Push),
	OP_SWAP:       stack((*engine.Engine).Swap),
	OP_BACK_X:     stack((*engine.Engine).BackX),
	OP_CIRCULATE:  stack((*engine.Engine).Circulate),
	OP_PLUS:       (*engine.Engine).Add,
	OP_MINUS:      (*engine.Engine).Subtract,
	OP_MULTIPLY:   (*engine.Engine).Multiply,
	OP_DIVIDE:     (*engine.Engine).Divide,
	OP_POWER:      (*engine.Engine).Power,
	OP_SQRT:       (*engine.Engine).Sqrt,
	OP_SQUARE:     (*engine.Engine).Square,
	OP_RECIPROCAL: (*engine.Engine).Reciprocal,
	OP_LN:         (*engine.Engine).Ln,
	OP_LOG:        (*engine.Engine).Log10,
	OP_EXP:        (*engine.Engine).Exp,
	OP_STORE_0:    store(0),
	OP_STORE_1:    store(1),
	OP_STORE_2:    store(2),
	OP_STORE_3:    store(3),
	OP_RECALL_0:   recall(0),
	OP_RECALL_1:   recall(1),
	OP_RECALL_2:   recall(2),
	OP_RECALL_3:   recall(3),
}

// Interpreter turns key codes into entry buffer edits and engine operations,
// and reports the result through its signals.
type Interpreter struct {
	Verbose bool // If set, enables verbose logging.

	engine  *engine.Engine
	state   State
	number  Number
	signals signals
}

// NewInterpreter creates an interpreter driving an engine.
func NewInterpreter(eng *engine.Engine) (li *Interpreter) {
	config := eng.Config()

	li = &Interpreter{
		engine: eng,
		state:  STATE_MANTISSA,
		number: NewNumber(int(config.Precision), config.ExponentDigits),
	}

	return
}

// Engine returns the engine being driven.
func (li *Interpreter) Engine() *engine.Engine {
	return li.engine
}

// State returns the entry state.
func (li *Interpreter) State() State {
	return li.state
}

// Entry returns the mantissa and exponent text of the entry buffer.
func (li *Interpreter) Entry() (mantissa string, exponent string) {
	return li.number.Mantissa.Text(), li.number.Exponent.Text()
}

// Reset clears the engine and the entry buffer, and synchronizes.
func (li *Interpreter) Reset() {
	li.engine.Reset()
	li.number.Reset()
	li.state = STATE_MANTISSA
	li.Synchronize()
	emit(li.signals.memory, li.engine.Memory())
}

func (li *Interpreter) logf(msg string, args ...any) {
	if li.Verbose {
		slog.Debug(msg, append([]any{"component", "logic"}, args...)...)
	}
}

// Synchronize emits the entry buffer and the registers.
func (li *Interpreter) Synchronize() {
	emit(li.signals.mantissa, li.number.Mantissa.Text())
	emit(li.signals.exponent, li.number.Exponent.Text())
	emit(li.signals.registers, li.engine.Registers())
}

// KeyPressed handles a single key code.
// Failures are never returned; they are reported by the error signal.
func (li *Interpreter) KeyPressed(op OpCode) {
	li.logf("key", "op", op, "state", li.state)

	emit(li.signals.key, op)

	var handled bool
	var err error

	switch li.state {
	case STATE_MANTISSA:
		handled, err = li.processMantissa(op)
	case STATE_EXPONENT:
		handled, err = li.processExponent(op)
	}

	if !handled && err == nil {
		handled, err = li.processControls(op)
	}

	if !handled && err == nil {
		handled, err = li.processOperators(op)
	}

	if !handled && err == nil {
		err = ErrKey(op)
	}

	if err != nil {
		li.fail(err)
	}
}

// enter updates the engine X register from the entry buffer.
func (li *Interpreter) enter() (err error) {
	err = li.engine.SetX(li.number.String())
	if err != nil {
		li.logf("entry rejected", "number", li.number.String())
	}
	return
}

func (li *Interpreter) processMantissa(op OpCode) (handled bool, err error) {
	if digit, ok := op.Digit(); ok {
		li.number.Mantissa.Append(digit)
	} else if op == OP_POINT {
		li.number.Mantissa.Point()
	} else {
		return
	}

	handled = true
	err = li.enter()
	if err != nil {
		return
	}

	emit(li.signals.mantissa, li.number.Mantissa.Text())
	emit(li.signals.registers, li.engine.Registers())

	return
}

func (li *Interpreter) processExponent(op OpCode) (handled bool, err error) {
	if digit, ok := op.Digit(); ok {
		li.number.Exponent.Shift(digit)
	} else if op == OP_SIGN {
		li.number.Exponent.Negate()
	} else {
		return
	}

	handled = true
	err = li.enter()
	if err != nil {
		return
	}

	emit(li.signals.exponent, li.number.Exponent.Text())
	emit(li.signals.registers, li.engine.Registers())

	return
}

func (li *Interpreter) processControls(op OpCode) (handled bool, err error) {
	switch op {
	case OP_ENTER_E:
		handled = true
		if li.number.Mantissa.IsZero() {
			li.number.Mantissa.SetOne()
		}
		li.number.Exponent.Start()
		err = li.enter()
		if err != nil {
			return
		}
		li.Synchronize()
		li.state = STATE_EXPONENT
	case OP_CLEAR_X:
		handled = true
		li.number.Reset()
		li.engine.ClearX()
		li.state = STATE_MANTISSA
		li.Synchronize()
	}

	return
}

// operate runs an operator, converting a panic into an error.
func (li *Interpreter) operate(op OpCode, fn operator) (err error) {
	defer func() {
		if value := recover(); value != nil {
			err = &errPanic{Op: op, Value: value}
		}
	}()

	err = fn(li.engine)

	return
}

func (li *Interpreter) processOperators(op OpCode) (handled bool, err error) {
	fn, ok := operators[op]
	if !ok {
		return
	}

	handled = true

	err = li.operate(op, fn)
	if err != nil {
		return
	}

	li.number.Reset()
	li.state = STATE_MANTISSA

	mantissa, exponent := SplitDisplay(li.engine.X())
	emit(li.signals.mantissa, mantissa)
	emit(li.signals.exponent, exponent)
	emit(li.signals.registers, li.engine.Registers())
	if op.IsMemory() {
		emit(li.signals.memory, li.engine.Memory())
	}

	li.logf("operator", "op", op, "x", li.engine.X())

	return
}

// fail reports an error, and returns to a clean mantissa entry.
func (li *Interpreter) fail(err error) {
	record := Classify(err)

	li.logf("error", "type", record.Type, "err", err)

	li.number.Reset()
	li.state = STATE_MANTISSA

	emit(li.signals.mantissa, DISPLAY_ERROR)
	emit(li.signals.exponent, "")
	emit(li.signals.registers, li.engine.Registers())
	emit(li.signals.failure, record)
}

// SplitDisplay splits a register value into mantissa and exponent text.
// A '+' exponent sign is not displayed.
func SplitDisplay(value string) (mantissa string, exponent string) {
	mantissa, exponent, _ = strings.Cut(value, "e")
	exponent = strings.TrimPrefix(exponent, "+")
	return
}
