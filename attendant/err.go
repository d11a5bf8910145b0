package attendant

import (
	"errors"

	"github.com/ezrec/analytical/card"
	"github.com/ezrec/analytical/translate"
)

var f = translate.From

var (
	// Library errors
	ErrNotFound       = errors.New(f("not found in library"))
	ErrLibraryMissing = errors.New(f("no library attached"))
	ErrIncludeDepth   = errors.New(f("inclusion nested too deeply"))

	// Decimal place errors
	ErrDecimalUnset    = errors.New(f("decimal places not set"))
	ErrDecimalRelative = errors.New(f("relative decimal places before absolute setting"))
	ErrDecimalRange    = errors.New(f("decimal places out of range"))

	// Cycle errors
	ErrCycleOpen     = errors.New(f("cycle not closed"))
	ErrCycleClose    = errors.New(f("cycle closed without start"))
	ErrCycleMismatch = errors.New(f("cycle closed by wrong card"))

	// Chain errors
	ErrNotExecutable = errors.New(f("card not executable after compilation"))
)

// ErrCompile locates the card that stopped compilation.
type ErrCompile struct {
	Card card.Card
	Err  error
}

func (err *ErrCompile) Error() string {
	return f("%v '%v' %v", err.Card.Position(), err.Card.String(), err.Err)
}

func (err *ErrCompile) Unwrap() error {
	return err.Err
}
