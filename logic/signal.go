package logic

import (
	"github.com/ezrec/rpncalc/engine"
)

// SignalKind names an outbound signal.
type SignalKind int

//go:generate go tool stringer -linecomment -type=SignalKind
const (
	SIGNAL_MANTISSA  = SignalKind(0) // mantissa
	SIGNAL_EXPONENT  = SignalKind(1) // exponent
	SIGNAL_REGISTERS = SignalKind(2) // registers
	SIGNAL_MEMORY    = SignalKind(3) // memory
	SIGNAL_ERROR     = SignalKind(4) // error
)

// Listener receives every outbound signal of an Interpreter.
type Listener interface {
	Mantissa(text string)
	Exponent(text string)
	Registers(regs engine.Registers)
	Memory(mem engine.Memory)
	Error(record Error)
}

// signals holds the subscribers, called in subscription order.
type signals struct {
	key       []func(op OpCode)
	mantissa  []func(text string)
	exponent  []func(text string)
	registers []func(regs engine.Registers)
	memory    []func(mem engine.Memory)
	failure   []func(record Error)
}

func emit[T any](subscribers []func(T), value T) {
	for _, fn := range subscribers {
		fn(value)
	}
}

// OnKey subscribes to every key delivered, before it is handled.
func (li *Interpreter) OnKey(fn func(op OpCode)) {
	li.signals.key = append(li.signals.key, fn)
}

// OnMantissa subscribes to the mantissa display text.
func (li *Interpreter) OnMantissa(fn func(text string)) {
	li.signals.mantissa = append(li.signals.mantissa, fn)
}

// OnExponent subscribes to the exponent display text.
func (li *Interpreter) OnExponent(fn func(text string)) {
	li.signals.exponent = append(li.signals.exponent, fn)
}

// OnRegisters subscribes to the register snapshot.
func (li *Interpreter) OnRegisters(fn func(regs engine.Registers)) {
	li.signals.registers = append(li.signals.registers, fn)
}

// OnMemory subscribes to the memory snapshot.
func (li *Interpreter) OnMemory(fn func(mem engine.Memory)) {
	li.signals.memory = append(li.signals.memory, fn)
}

// OnError subscribes to error records.
func (li *Interpreter) OnError(fn func(record Error)) {
	li.signals.failure = append(li.signals.failure, fn)
}

// Subscribe attaches a Listener to all display signals.
func (li *Interpreter) Subscribe(listener Listener) {
	li.OnMantissa(listener.Mantissa)
	li.OnExponent(listener.Exponent)
	li.OnRegisters(listener.Registers)
	li.OnMemory(listener.Memory)
	li.OnError(listener.Error)
}
