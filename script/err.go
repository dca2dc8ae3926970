package script

import (
	"github.com/ezrec/rpncalc/logic"
	"github.com/ezrec/rpncalc/translate"
)

var f = translate.From

// ErrKeyValue is a key argument that is neither a key code nor a key name.
type ErrKeyValue string

func (ekv ErrKeyValue) Error() string {
	return f("%v is not a key", string(ekv))
}

func (ekv ErrKeyValue) Is(err error) bool {
	return err == logic.ErrKeyUnknown
}
