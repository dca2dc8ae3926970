package tape

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/rpncalc/engine"
	"github.com/ezrec/rpncalc/logic"
)

// Tape feeds key names read from Input to an interpreter, and writes the
// display after each word to Output.
//
// Words are separated by whitespace, and '#' starts a comment to the end
// of the line. A word is a key name (see logic.ParseOpCode), or a plain
// number such as "12.5", which is keyed in digit by digit.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	li       *logic.Interpreter
	mantissa string
	exponent string
	failure  *logic.Error
}

var _ logic.Listener = (*Tape)(nil)

// Word is a single word from the tape input.
type Word struct {
	Line int
	Text string
	Keys []logic.OpCode
}

// ParseWord converts a word into its key codes.
func ParseWord(text string) (keys []logic.OpCode, err error) {
	op, err := logic.ParseOpCode(text)
	if err == nil {
		keys = []logic.OpCode{op}
		return
	}

	if strings.Trim(text, "0123456789.") != "" || strings.Count(text, ".") > 1 {
		return
	}

	err = nil
	for _, c := range []byte(text) {
		if c == '.' {
			keys = append(keys, logic.OP_POINT)
		} else {
			keys = append(keys, logic.OpCode(c-'0'))
		}
	}

	return
}

// Receive returns an iterator over the words of the input.
// Iteration stops after the first error.
func (tc *Tape) Receive() iter.Seq2[Word, error] {
	return func(yield func(word Word, err error) bool) {
		scanner := bufio.NewScanner(tc.Input)
		line := 0
		for scanner.Scan() {
			line++
			text, _, _ := strings.Cut(scanner.Text(), "#")
			for _, field := range strings.Fields(text) {
				keys, err := ParseWord(field)
				if err != nil {
					yield(Word{Line: line, Text: field}, &ErrWord{Line: line, Word: field, Err: err})
					return
				}
				if !yield(Word{Line: line, Text: field, Keys: keys}, nil) {
					return
				}
			}
		}

		if err := scanner.Err(); err != nil {
			yield(Word{Line: line}, err)
		}
	}
}

func (tc *Tape) Mantissa(text string) {
	tc.mantissa = text
}

func (tc *Tape) Exponent(text string) {
	tc.exponent = text
}

func (tc *Tape) Registers(regs engine.Registers) {
}

func (tc *Tape) Memory(mem engine.Memory) {
}

func (tc *Tape) Error(record logic.Error) {
	tc.failure = &record
}

// Display returns the display text: the mantissa, and the exponent if any.
func (tc *Tape) Display() string {
	if tc.exponent == "" {
		return tc.mantissa
	}
	return tc.mantissa + "e" + tc.exponent
}

// Run keys every word of the input into the interpreter.
// Calculator errors are written to Output; only tape errors are returned.
func (tc *Tape) Run(li *logic.Interpreter) (err error) {
	if tc.li != li {
		li.Subscribe(tc)
		tc.li = li
		mantissa, exponent := li.Entry()
		tc.mantissa, tc.exponent = mantissa, exponent
	}

	for word, werr := range tc.Receive() {
		if werr != nil {
			err = werr
			return
		}

		tc.failure = nil
		for _, op := range word.Keys {
			li.KeyPressed(op)
		}

		if tc.Output == nil {
			continue
		}

		if tc.failure != nil {
			_, err = fmt.Fprintf(tc.Output, "%v\t%v\t%v\n", word.Text, tc.Display(), tc.failure)
		} else {
			_, err = fmt.Fprintf(tc.Output, "%v\t%v\n", word.Text, tc.Display())
		}
		if err != nil {
			return
		}
	}

	return
}
