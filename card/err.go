package card

import (
	"errors"

	"github.com/ezrec/analytical/translate"
)

var f = translate.From

var (
	ErrCardUnknown      = errors.New(f("card unknown"))
	ErrAttendantUnknown = errors.New(f("attendant request unknown"))
	ErrArgumentMissing  = errors.New(f("argument missing"))
	ErrAddressInvalid   = errors.New(f("store address invalid"))
	ErrCountInvalid     = errors.New(f("count invalid"))
)

// ErrSyntax locates a card that could not be parsed.
type ErrSyntax struct {
	Source string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	if len(err.Source) == 0 {
		return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
	}
	return f("%v:%d '%v' %v", err.Source, err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseNumber is a malformed numeric literal.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a compile time expression that did not yield an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
