package emulator

import (
	"errors"

	"github.com/ezrec/analytical/translate"
)

var f = translate.From

var (
	ErrCardLimit = errors.New(f("card limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Source string
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if len(err.Source) == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("%v:%d %v", err.Source, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
