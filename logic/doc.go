// Package logic is the key interpreter of the calculator.
//
// An Interpreter receives one OpCode at a time. Digit, point and sign
// keys edit the entry buffer, which is mirrored into the engine's x
// register after every keystroke. Control keys (eex, clx, nop) manage
// the buffer, and every other key is an operator applied to the engine.
//
// Results are reported only through signals, in a fixed order per key:
//
//	entry keystroke:  mantissa or exponent, registers
//	eex, clx:         mantissa, exponent, registers
//	operator:         mantissa, exponent, registers, memory (sto/rcl only)
//	failure:          mantissa ("ERROR"), exponent (""), registers, error
//
// KeyPressed never returns an error; failures are classified as
// "Range Error", "Decimal Error", "Operational Error" or "Unknown Error".
package logic
