package logic

import (
	"iter"
	"slices"
	"strings"
)

// OpCode is a key code delivered by the host.
// The key name of each code is its String().
type OpCode int

//go:generate go tool stringer -linecomment -type=OpCode
const (
	OP_ZERO    = OpCode(0)  // 0
	OP_ONE     = OpCode(1)  // 1
	OP_TWO     = OpCode(2)  // 2
	OP_THREE   = OpCode(3)  // 3
	OP_FOUR    = OpCode(4)  // 4
	OP_FIVE    = OpCode(5)  // 5
	OP_SIX     = OpCode(6)  // 6
	OP_SEVEN   = OpCode(7)  // 7
	OP_EIGHT   = OpCode(8)  // 8
	OP_NINE    = OpCode(9)  // 9
	OP_POINT   = OpCode(10) // .
	OP_SIGN    = OpCode(11) // chs
	OP_ENTER_E = OpCode(12) // eex

	OP_PUSH      = OpCode(20) // enter
	OP_SWAP      = OpCode(21) // swap
	OP_CLEAR_X   = OpCode(22) // clx
	OP_BACK_X    = OpCode(23) // lastx
	OP_CIRCULATE = OpCode(24) // roll

	OP_PLUS     = OpCode(30) // +
	OP_MINUS    = OpCode(31) // -
	OP_MULTIPLY = OpCode(32) // *
	OP_DIVIDE   = OpCode(33) // /
	OP_POWER    = OpCode(34) // pow

	OP_SQRT       = OpCode(40) // sqrt
	OP_SQUARE     = OpCode(41) // sq
	OP_RECIPROCAL = OpCode(42) // inv
	OP_LN         = OpCode(43) // ln
	OP_LOG        = OpCode(44) // log
	OP_EXP        = OpCode(45) // exp

	OP_STORE_0 = OpCode(50) // sto0
	OP_STORE_1 = OpCode(51) // sto1
	OP_STORE_2 = OpCode(52) // sto2
	OP_STORE_3 = OpCode(53) // sto3

	OP_RECALL_0 = OpCode(60) // rcl0
	OP_RECALL_1 = OpCode(61) // rcl1
	OP_RECALL_2 = OpCode(62) // rcl2
	OP_RECALL_3 = OpCode(63) // rcl3

	OP_NOP = OpCode(90) // nop

	OP_RESERVED_NULL = OpCode(9999) // null
)

var opCodes = []OpCode{
	OP_ZERO, OP_ONE, OP_TWO, OP_THREE, OP_FOUR,
	OP_FIVE, OP_SIX, OP_SEVEN, OP_EIGHT, OP_NINE,
	OP_POINT, OP_SIGN, OP_ENTER_E,
	OP_PUSH, OP_SWAP, OP_CLEAR_X, OP_BACK_X, OP_CIRCULATE,
	OP_PLUS, OP_MINUS, OP_MULTIPLY, OP_DIVIDE, OP_POWER,
	OP_SQRT, OP_SQUARE, OP_RECIPROCAL, OP_LN, OP_LOG, OP_EXP,
	OP_STORE_0, OP_STORE_1, OP_STORE_2, OP_STORE_3,
	OP_RECALL_0, OP_RECALL_1, OP_RECALL_2, OP_RECALL_3,
	OP_NOP,
	OP_RESERVED_NULL,
}

// Alternate key names.
var alias = map[string]OpCode{
	",":     OP_POINT,
	"neg":   OP_SIGN,
	"e":     OP_ENTER_E,
	"ent":   OP_PUSH,
	"x<>y":  OP_SWAP,
	"clear": OP_CLEAR_X,
	"add":   OP_PLUS,
	"sub":   OP_MINUS,
	"x":     OP_MULTIPLY,
	"mul":   OP_MULTIPLY,
	"div":   OP_DIVIDE,
	"^":     OP_POWER,
	"1/x":   OP_RECIPROCAL,
}

// OpCodes iterates over every defined key code.
func OpCodes() iter.Seq[OpCode] {
	return slices.Values(opCodes)
}

// ParseOpCode returns the key code for a key name or alias.
func ParseOpCode(name string) (op OpCode, err error) {
	name = strings.ToLower(name)

	op, ok := alias[name]
	if ok {
		return
	}

	for _, code := range opCodes {
		if code.String() == name {
			op = code
			return
		}
	}

	err = ErrKeyName(name)
	return
}

// IsValid returns true for the defined key codes.
func (op OpCode) IsValid() bool {
	return slices.Contains(opCodes, op)
}

// Digit returns the character of a digit key.
func (op OpCode) Digit() (digit byte, ok bool) {
	if op >= OP_ZERO && op <= OP_NINE {
		digit = '0' + byte(op)
		ok = true
	}
	return
}

// IsMemory returns true for the memory store and recall keys.
func (op OpCode) IsMemory() bool {
	return (op >= OP_STORE_0 && op <= OP_STORE_3) || (op >= OP_RECALL_0 && op <= OP_RECALL_3)
}
