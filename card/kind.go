package card

// Kind is the type tag of a card.
type Kind int

//go:generate go tool stringer -type=Kind
const (
	// Arithmetic selection.
	ADD      = Kind(0)
	SUBTRACT = Kind(1)
	MULTIPLY = Kind(2)
	DIVIDE   = Kind(3)

	// Shifts. LSHIFT and RSHIFT take their digit count from the decimal place setting.
	LSHIFT  = Kind(4)
	RSHIFT  = Kind(5)
	LSHIFTN = Kind(6)
	RSHIFTN = Kind(7)

	// Store transfers.
	LOAD       = Kind(8)
	LOADPRIME  = Kind(9)
	ZLOAD      = Kind(10)
	ZLOADPRIME = Kind(11)
	STORE      = Kind(12)
	STOREPRIME = Kind(13)
	NUMBER     = Kind(14)

	// Combinatorial cards.
	FORWARD   = Kind(15)
	BACKWARD  = Kind(16)
	CFORWARD  = Kind(17)
	CBACKWARD = Kind(18)

	// Cycle brackets, compiled away by the attendant.
	BACKSTART     = Kind(19) // (
	CBACKSTART    = Kind(20) // (?
	BACKEND       = Kind(21) // )
	FORWARDSTART  = Kind(22) // {
	CFORWARDSTART = Kind(23) // {?
	FORWARDEND    = Kind(24) // }
	ALTERNATION   = Kind(25) // }{

	// Actions.
	BELL  = Kind(26)
	HALT  = Kind(27)
	PRINT = Kind(28)

	// Curve drawing apparatus.
	DRAW = Kind(29)
	MOVE = Kind(30)
	SETX = Kind(31)
	SETY = Kind(32)

	// Attendant actions.
	ANNOTATE      = Kind(33)
	NEWLINE       = Kind(34)
	WRITECOLUMNS  = Kind(35)
	WRITEROWS     = Kind(36)
	WRITEPICTURE  = Kind(37)
	WRITEDECIMAL  = Kind(38)
	DECIMALEXPAND = Kind(39)

	// Inclusion.
	INCLUDE    = Kind(40)
	INCLUDELIB = Kind(41)

	// Debugging.
	COMMENT  = Kind(42)
	TRACEON  = Kind(43)
	TRACEOFF = Kind(44)
)

var kindArity = [...]int{
	ADD: 0, SUBTRACT: 0, MULTIPLY: 0, DIVIDE: 0,
	LSHIFT: 0, RSHIFT: 0, LSHIFTN: 1, RSHIFTN: 1,
	LOAD: 1, LOADPRIME: 1, ZLOAD: 1, ZLOADPRIME: 1, STORE: 1, STOREPRIME: 1, NUMBER: 2,
	FORWARD: 1, BACKWARD: 1, CFORWARD: 1, CBACKWARD: 1,
	BACKSTART: 0, CBACKSTART: 0, BACKEND: 0,
	FORWARDSTART: 0, CFORWARDSTART: 0, FORWARDEND: 0, ALTERNATION: 0,
	BELL: 0, HALT: 0, PRINT: 0,
	DRAW: 0, MOVE: 0, SETX: 0, SETY: 0,
	ANNOTATE: 1, NEWLINE: 0, WRITECOLUMNS: 0, WRITEROWS: 0,
	WRITEPICTURE: 1, WRITEDECIMAL: 0, DECIMALEXPAND: 1,
	INCLUDE: 1, INCLUDELIB: 1,
	COMMENT: 1, TRACEON: 0, TRACEOFF: 0,
}

// Valid returns true if the kind is a defined card kind.
func (kind Kind) Valid() bool {
	return kind >= 0 && int(kind) < len(kindArity)
}

// Arity returns the fixed number of arguments carried by cards of this kind.
func (kind Kind) Arity() int {
	if !kind.Valid() {
		return 0
	}
	return kindArity[kind]
}

// Structured returns true for the cycle bracket kinds.
func (kind Kind) Structured() bool {
	return kind >= BACKSTART && kind <= ALTERNATION
}

// Executable returns true if the kind may be mounted in the card reader.
// Structured, implicit shift, decimal and inclusion kinds must be
// compiled away by the attendant first.
func (kind Kind) Executable() bool {
	switch {
	case !kind.Valid():
		return false
	case kind.Structured():
		return false
	}

	switch kind {
	case LSHIFT, RSHIFT, WRITEDECIMAL, DECIMALEXPAND, INCLUDE, INCLUDELIB:
		return false
	}

	return true
}

// Prime returns true for the transfer kinds that address a prime axis.
func (kind Kind) Prime() bool {
	switch kind {
	case LOADPRIME, ZLOADPRIME, STOREPRIME:
		return true
	}
	return false
}
