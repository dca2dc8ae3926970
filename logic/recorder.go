package logic

import (
	"iter"

	"github.com/ezrec/rpncalc/engine"
)

// Signal is a single recorded signal.
type Signal struct {
	Kind      SignalKind
	Text      string           // Mantissa or exponent text.
	Registers engine.Registers // Register snapshot.
	Memory    engine.Memory    // Memory snapshot.
	Error     Error            // Error record.
}

// Recorder is a Listener that queues every signal, and keeps the
// most recent value of each.
type Recorder struct {
	Signals []Signal

	mantissa  string
	exponent  string
	registers engine.Registers
	memory    engine.Memory
	failure   *Error
}

var _ Listener = (*Recorder)(nil)

func (rec *Recorder) Mantissa(text string) {
	rec.mantissa = text
	rec.Signals = append(rec.Signals, Signal{Kind: SIGNAL_MANTISSA, Text: text})
}

func (rec *Recorder) Exponent(text string) {
	rec.exponent = text
	rec.Signals = append(rec.Signals, Signal{Kind: SIGNAL_EXPONENT, Text: text})
}

func (rec *Recorder) Registers(regs engine.Registers) {
	rec.registers = regs
	rec.Signals = append(rec.Signals, Signal{Kind: SIGNAL_REGISTERS, Registers: regs})
}

func (rec *Recorder) Memory(mem engine.Memory) {
	rec.memory = mem
	rec.Signals = append(rec.Signals, Signal{Kind: SIGNAL_MEMORY, Memory: mem})
}

func (rec *Recorder) Error(record Error) {
	rec.failure = &record
	rec.Signals = append(rec.Signals, Signal{Kind: SIGNAL_ERROR, Error: record})
}

// Next removes the oldest queued signal.
func (rec *Recorder) Next() (sig Signal, ok bool) {
	if len(rec.Signals) > 0 {
		ok = true
		sig = rec.Signals[0]
		rec.Signals = rec.Signals[1:]
	}
	return
}

// Drain removes all queued signals. The most recent values are kept.
func (rec *Recorder) Drain() iter.Seq[Signal] {
	return func(yield func(Signal) bool) {
		for {
			sig, ok := rec.Next()
			if !ok || !yield(sig) {
				return
			}
		}
	}
}

// Kinds lists the kinds of the queued signals, in order.
func (rec *Recorder) Kinds() (kinds []SignalKind) {
	for _, sig := range rec.Signals {
		kinds = append(kinds, sig.Kind)
	}
	return
}

// Display returns the most recent mantissa and exponent text.
func (rec *Recorder) Display() (mantissa string, exponent string) {
	return rec.mantissa, rec.exponent
}

// LastRegisters returns the most recent register snapshot.
func (rec *Recorder) LastRegisters() engine.Registers {
	return rec.registers
}

// LastMemory returns the most recent memory snapshot.
func (rec *Recorder) LastMemory() engine.Memory {
	return rec.memory
}

// LastError returns the most recent error record.
func (rec *Recorder) LastError() (record Error, ok bool) {
	if rec.failure != nil {
		record = *rec.failure
		ok = true
	}
	return
}

// Reset forgets all signals and values.
func (rec *Recorder) Reset() {
	*rec = Recorder{}
}
