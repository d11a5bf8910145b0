package engine

import (
	"errors"

	"github.com/ezrec/analytical/card"
	"github.com/ezrec/analytical/translate"
)

var f = translate.From

var (
	// Signals
	ErrHalt = errors.New(f("halt"))

	// Store errors
	ErrAddressRange = errors.New(f("store address out of range"))
	ErrValueRange   = errors.New(f("value out of range"))

	// Reader errors
	ErrAdvanceRange = errors.New(f("advance past end of chain"))
	ErrReverseRange = errors.New(f("reverse past start of chain"))

	// Execution errors
	ErrNotExecutable = errors.New(f("card not executable"))
	ErrShiftRange    = errors.New(f("shift out of range"))
	ErrValueMissing  = errors.New(f("no value in mill"))
	ErrState         = errors.New(f("engine not runnable"))
)

// ErrExecute locates the card that stopped the engine.
type ErrExecute struct {
	Index int       // Position of the card in the mounted chain.
	Card  card.Card // The card itself.
	Err   error
}

func (err *ErrExecute) Error() string {
	return f("card %d '%v' %v", err.Index, err.Card.String(), err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
