// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/ezrec/rpncalc/internal"
)

const (
	MEMORY_SLOTS = 4 // Number of memory cells.
)

// Registers is a snapshot of the stack and last-x registers.
type Registers struct {
	X  string `yaml:"x"`
	Y  string `yaml:"y"`
	Z  string `yaml:"z"`
	T  string `yaml:"t"`
	X0 string `yaml:"x0"`
}

// All iterates over the registers in x, y, z, t, x0 order.
func (regs Registers) All() iter.Seq2[string, string] {
	return internal.IterPairs(
		[2]string{"x", regs.X},
		[2]string{"y", regs.Y},
		[2]string{"z", regs.Z},
		[2]string{"t", regs.T},
		[2]string{"x0", regs.X0},
	)
}

// Memory is a snapshot of the memory cells.
type Memory struct {
	M0 string `yaml:"m0"`
	M1 string `yaml:"m1"`
	M2 string `yaml:"m2"`
	M3 string `yaml:"m3"`
}

// All iterates over the memory cells in slot order.
func (mem Memory) All() iter.Seq2[string, string] {
	return internal.IterPairs(
		[2]string{"m0", mem.M0},
		[2]string{"m1", mem.M1},
		[2]string{"m2", mem.M2},
		[2]string{"m3", mem.M3},
	)
}

// Engine is the decimal register machine.
//
// Stored decimals are never mutated; every operation allocates its result,
// so registers may share values.
type Engine struct {
	Verbose bool // Set to enable verbose logging.

	config Config
	ctx    *apd.Context

	x, y, z, t *apd.Decimal // Stack registers.
	x0         *apd.Decimal // Last-x register.

	memory [MEMORY_SLOTS]*apd.Decimal // Memory cells.
}

// NewEngine creates an engine with all registers and memory at zero.
func NewEngine(config Config) (eng *Engine, err error) {
	err = config.Validate()
	if err != nil {
		return
	}

	eng = &Engine{
		config: config,
		ctx:    config.context(),
	}

	eng.Reset()

	return
}

// Reset clears all registers and memory cells.
func (eng *Engine) Reset() {
	eng.x, eng.y, eng.z, eng.t, eng.x0 = zero(), zero(), zero(), zero(), zero()
	for n := range eng.memory {
		eng.memory[n] = zero()
	}
}

// Config returns the engine configuration.
func (eng *Engine) Config() Config {
	return eng.config
}

func zero() *apd.Decimal {
	return apd.New(0, 0)
}

func (eng *Engine) logf(msg string, args ...any) {
	if eng.Verbose {
		slog.Debug(msg, append([]any{"component", "engine"}, args...)...)
	}
}

// bound checks a result against the configured exponent range.
// Results below MinExponent underflow to zero.
func (eng *Engine) bound(op string, d *apd.Decimal) (*apd.Decimal, error) {
	if d.Form != apd.Finite {
		return nil, &ErrArithmetic{Op: op, Err: ErrRange}
	}

	d.Reduce(d)
	if d.IsZero() {
		return zero(), nil
	}

	adjusted := int64(d.Exponent) + d.NumDigits() - 1
	switch {
	case adjusted > int64(eng.config.MaxExponent):
		return nil, &ErrArithmetic{Op: op, Condition: apd.Overflow, Err: ErrRange}
	case adjusted < int64(eng.config.MinExponent):
		return zero(), nil
	}

	return d, nil
}

// apply runs a decimal function into a new result and bounds it.
func (eng *Engine) apply(op string, fn func(d *apd.Decimal) (apd.Condition, error)) (result *apd.Decimal, err error) {
	result = new(apd.Decimal)
	cond, err := fn(result)
	if err != nil {
		return nil, newErrArithmetic(op, cond, err)
	}

	return eng.bound(op, result)
}

// SetX parses text into the x register.
// On failure x is cleared to zero and the error returned.
func (eng *Engine) SetX(text string) (err error) {
	// Parse unbounded, so that rounding into the context reports its
	// conditions.
	value, cond, err := apd.NewFromString(text)
	var d *apd.Decimal
	if err != nil {
		err = newErrArithmetic("set", cond, err)
	} else {
		d, err = eng.apply("set", func(d *apd.Decimal) (apd.Condition, error) {
			return eng.ctx.Round(d, value)
		})
	}

	if err != nil {
		eng.logf("set failed", "text", text, "err", err)
		eng.x = zero()
		return
	}

	eng.x = d
	return
}

// SetXDecimal rounds value into the x register.
// On failure x is cleared to zero and the error returned.
func (eng *Engine) SetXDecimal(value *apd.Decimal) (err error) {
	d, err := eng.apply("set", func(d *apd.Decimal) (apd.Condition, error) {
		return eng.ctx.Round(d, value)
	})
	if err != nil {
		eng.logf("set failed", "value", value.String(), "err", err)
		eng.x = zero()
		return
	}

	eng.x = d
	return
}

// X returns the formatted x register.
func (eng *Engine) X() string {
	return eng.config.Format(eng.x)
}

// Registers returns a snapshot of the registers.
func (eng *Engine) Registers() Registers {
	return Registers{
		X:  eng.config.Format(eng.x),
		Y:  eng.config.Format(eng.y),
		Z:  eng.config.Format(eng.z),
		T:  eng.config.Format(eng.t),
		X0: eng.config.Format(eng.x0),
	}
}

// Memory returns a snapshot of the memory cells.
func (eng *Engine) Memory() Memory {
	return Memory{
		M0: eng.config.Format(eng.memory[0]),
		M1: eng.config.Format(eng.memory[1]),
		M2: eng.config.Format(eng.memory[2]),
		M3: eng.config.Format(eng.memory[3]),
	}
}

// All iterates over the registers, then the memory cells.
func (eng *Engine) All() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(eng.Registers().All(), eng.Memory().All())
}

// String returns the engine state as a string.
func (eng *Engine) String() (text string) {
	for name, value := range eng.All() {
		text += fmt.Sprintf("% 3s: %v\n", name, value)
	}

	return
}

// Push lifts the stack: t <- z, z <- y, y <- x. x is unchanged.
func (eng *Engine) Push() {
	eng.t = eng.z
	eng.z = eng.y
	eng.y = eng.x
}

// pop drops the stack: x0 <- x, x <- y, y <- z, z <- t. t is unchanged.
func (eng *Engine) pop() {
	eng.x0 = eng.x
	eng.x = eng.y
	eng.y = eng.z
	eng.z = eng.t
}

// Swap exchanges x and y.
func (eng *Engine) Swap() {
	eng.x, eng.y = eng.y, eng.x
}

// Circulate rolls the stack down by one, x wrapping into t.
func (eng *Engine) Circulate() {
	eng.x, eng.y, eng.z, eng.t = eng.y, eng.z, eng.t, eng.x
}

// Negate changes the sign of x.
func (eng *Engine) Negate() {
	if eng.x.IsZero() {
		return
	}
	eng.x = new(apd.Decimal).Neg(eng.x)
}

// ClearX sets x to zero without moving the stack.
func (eng *Engine) ClearX() {
	eng.x = zero()
}

// BackX lifts the stack and recalls the last-x register into x.
func (eng *Engine) BackX() {
	eng.Push()
	eng.x = eng.x0
}

// unary replaces x with fn(x), saving the old x in x0.
func (eng *Engine) unary(op string, fn func(d, x *apd.Decimal) (apd.Condition, error)) (err error) {
	result, err := eng.apply(op, func(d *apd.Decimal) (apd.Condition, error) {
		return fn(d, eng.x)
	})
	if err != nil {
		eng.logf("op rejected", "op", op, "x", eng.X(), "err", err)
		return
	}

	eng.x0 = eng.x
	eng.x = result

	eng.logf("op", "op", op, "x", eng.X())
	return
}

// binary computes fn(y, x), drops the stack, and places the result in x.
func (eng *Engine) binary(op string, fn func(d, y, x *apd.Decimal) (apd.Condition, error)) (err error) {
	result, err := eng.apply(op, func(d *apd.Decimal) (apd.Condition, error) {
		return fn(d, eng.y, eng.x)
	})
	if err != nil {
		eng.logf("op rejected", "op", op, "y", eng.config.Format(eng.y), "x", eng.X(), "err", err)
		return
	}

	eng.pop()
	eng.x = result

	eng.logf("op", "op", op, "x", eng.X())
	return
}

// Add sets x to y + x.
func (eng *Engine) Add() error {
	return eng.binary("add", eng.ctx.Add)
}

// Subtract sets x to y - x.
func (eng *Engine) Subtract() error {
	return eng.binary("subtract", eng.ctx.Sub)
}

// Multiply sets x to y * x.
func (eng *Engine) Multiply() error {
	return eng.binary("multiply", eng.ctx.Mul)
}

// Divide sets x to y / x.
func (eng *Engine) Divide() error {
	return eng.binary("divide", eng.ctx.Quo)
}

// Power sets x to y raised to x.
func (eng *Engine) Power() error {
	return eng.binary("power", eng.ctx.Pow)
}

// Sqrt sets x to its square root.
func (eng *Engine) Sqrt() error {
	return eng.unary("sqrt", eng.ctx.Sqrt)
}

// Square sets x to x * x.
func (eng *Engine) Square() error {
	return eng.unary("square", func(d, x *apd.Decimal) (apd.Condition, error) {
		return eng.ctx.Mul(d, x, x)
	})
}

// Reciprocal sets x to 1 / x.
func (eng *Engine) Reciprocal() error {
	return eng.unary("reciprocal", func(d, x *apd.Decimal) (apd.Condition, error) {
		return eng.ctx.Quo(d, apd.New(1, 0), x)
	})
}

// Ln sets x to its natural logarithm.
func (eng *Engine) Ln() error {
	return eng.unary("ln", eng.ctx.Ln)
}

// Log10 sets x to its base 10 logarithm.
func (eng *Engine) Log10() error {
	return eng.unary("log10", eng.ctx.Log10)
}

// Exp sets x to e raised to x.
func (eng *Engine) Exp() error {
	return eng.unary("exp", eng.ctx.Exp)
}

func (eng *Engine) checkSlot(slot int) (err error) {
	if slot < 0 || slot >= MEMORY_SLOTS {
		err = ErrSlot(slot)
	}
	return
}

// Store copies x into a memory cell.
func (eng *Engine) Store(slot int) (err error) {
	err = eng.checkSlot(slot)
	if err != nil {
		return
	}

	eng.memory[slot] = eng.x
	return
}

// Recall lifts the stack and copies a memory cell into x.
func (eng *Engine) Recall(slot int) (err error) {
	err = eng.checkSlot(slot)
	if err != nil {
		return
	}

	eng.Push()
	eng.x = eng.memory[slot]
	return
}
