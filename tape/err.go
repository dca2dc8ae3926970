package tape

import (
	"github.com/ezrec/rpncalc/translate"
)

var f = translate.From

// ErrWord is a tape word that could not be parsed.
type ErrWord struct {
	Line int
	Word string
	Err  error
}

func (ew *ErrWord) Error() string {
	return f("line %v: %v", ew.Line, ew.Err)
}

func (ew *ErrWord) Unwrap() error {
	return ew.Err
}
