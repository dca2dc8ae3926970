// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script drives a calculator from Starlark programs.
//
// The predeclared names are:
//
//	key(k)          press a key, by code or name; returns the display
//	keys(k, ...)    press several keys; strings may hold many words
//	x()             the formatted x register
//	registers()     dict of the stack registers
//	memory()        dict of the memory cells
//	display()       the display text
//	last_error()    error record of the latest key call, or None
//	KEYS            dict of key name to key code
package script

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rpncalc/engine"
	"github.com/ezrec/rpncalc/logic"
	"github.com/ezrec/rpncalc/tape"
)

// Script state.
type Script struct {
	Verbose bool      // If set, enables verbose logging.
	Output  io.Writer // Destination of print(); os.Stdout if nil.

	li       *logic.Interpreter
	mantissa string
	exponent string
	failure  *logic.Error
}

var _ logic.Listener = (*Script)(nil)

// NewScript creates a script runner attached to an interpreter.
func NewScript(li *logic.Interpreter) (sc *Script) {
	sc = &Script{li: li}
	sc.mantissa, sc.exponent = li.Entry()
	li.Subscribe(sc)
	return
}

func (sc *Script) Mantissa(text string) {
	sc.mantissa = text
}

func (sc *Script) Exponent(text string) {
	sc.exponent = text
}

func (sc *Script) Registers(regs engine.Registers) {
}

func (sc *Script) Memory(mem engine.Memory) {
}

func (sc *Script) Error(record logic.Error) {
	sc.failure = &record
}

// Display returns the display text.
func (sc *Script) Display() string {
	if sc.exponent == "" {
		return sc.mantissa
	}
	return sc.mantissa + "e" + sc.exponent
}

func (sc *Script) output() io.Writer {
	if sc.Output == nil {
		return os.Stdout
	}
	return sc.Output
}

// opCodes converts a key argument to key codes.
func opCodes(value starlark.Value) (ops []logic.OpCode, err error) {
	switch v := value.(type) {
	case starlark.Int:
		n, ok := v.Int64()
		if !ok {
			err = ErrKeyValue(v.String())
			return
		}
		ops = []logic.OpCode{logic.OpCode(n)}
	case starlark.String:
		for _, word := range strings.Fields(string(v)) {
			var keys []logic.OpCode
			keys, err = tape.ParseWord(word)
			if err != nil {
				return
			}
			ops = append(ops, keys...)
		}
	default:
		err = ErrKeyValue(value.Type())
	}

	return
}

func (sc *Script) press(values ...starlark.Value) (err error) {
	var ops []logic.OpCode
	for _, value := range values {
		var keys []logic.OpCode
		keys, err = opCodes(value)
		if err != nil {
			return
		}
		ops = append(ops, keys...)
	}

	sc.failure = nil
	for _, op := range ops {
		sc.li.KeyPressed(op)
	}

	return
}

func (sc *Script) key(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var k starlark.Value
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &k)
	if err != nil {
		return
	}

	err = sc.press(k)
	if err != nil {
		err = fmt.Errorf("%v: %w", b.Name(), err)
		return
	}

	value = starlark.String(sc.Display())
	return
}

func (sc *Script) keys(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	if len(kwargs) != 0 {
		err = fmt.Errorf("%v: unexpected keyword arguments", b.Name())
		return
	}

	err = sc.press(args...)
	if err != nil {
		err = fmt.Errorf("%v: %w", b.Name(), err)
		return
	}

	value = starlark.String(sc.Display())
	return
}

func toDict(seq iter.Seq2[string, string]) *starlark.Dict {
	dict := starlark.NewDict(8)
	for name, value := range seq {
		_ = dict.SetKey(starlark.String(name), starlark.String(value))
	}
	return dict
}

func (sc *Script) predeclared() starlark.StringDict {
	noArgs := func(name string, fn func() starlark.Value) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return fn(), nil
		})
	}

	keyCodes := starlark.NewDict(64)
	for op := range logic.OpCodes() {
		_ = keyCodes.SetKey(starlark.String(op.String()), starlark.MakeInt(int(op)))
	}
	keyCodes.Freeze()

	return starlark.StringDict{
		"KEYS": keyCodes,
		"key":  starlark.NewBuiltin("key", sc.key),
		"keys": starlark.NewBuiltin("keys", sc.keys),
		"x": noArgs("x", func() starlark.Value {
			return starlark.String(sc.li.Engine().X())
		}),
		"registers": noArgs("registers", func() starlark.Value {
			return toDict(sc.li.Engine().Registers().All())
		}),
		"memory": noArgs("memory", func() starlark.Value {
			return toDict(sc.li.Engine().Memory().All())
		}),
		"display": noArgs("display", func() starlark.Value {
			return starlark.String(sc.Display())
		}),
		"last_error": noArgs("last_error", func() starlark.Value {
			if sc.failure == nil {
				return starlark.None
			}
			dict := starlark.NewDict(2)
			_ = dict.SetKey(starlark.String("type"), starlark.String(sc.failure.Type))
			_ = dict.SetKey(starlark.String("message"), starlark.String(sc.failure.Message))
			return dict
		}),
	}
}

// Exec runs a Starlark program, and returns its globals.
// src may be a string, []byte, or io.Reader; if nil, filename is read.
func (sc *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(sc.output(), msg)
		},
	}

	if sc.Verbose {
		slog.Debug("exec", "component", "script", "file", filename)
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}
	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, sc.predeclared())
	return
}
