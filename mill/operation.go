package mill

// Operation is the arithmetic operation selected in the mill.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_NONE     = Operation(0) // none
	OP_ADD      = Operation(1) // add
	OP_SUBTRACT = Operation(2) // subtract
	OP_MULTIPLY = Operation(3) // multiply
	OP_DIVIDE   = Operation(4) // divide
)
