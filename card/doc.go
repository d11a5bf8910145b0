// Package card implements the instruction cards of the Analytical Engine
// and the parser for their textual notation.
//
// A card is a kind tag plus a fixed number of string arguments. The
// notation is one card per line:
//
//	+ - * /              select the mill operation
//	N<addr> <value>      set a store column to a number
//	L<addr>[']           load a column into the mill ingress (prime axis)
//	Z<addr>[']           load and zero a column
//	S<addr>[']           store the mill egress (prime axis)
//	< > <n >n            shift by the decimal places, or by n digits
//	CF?n CF+n CB?n CB+n  conditional or unconditional relative jumps
//	( (? ) { {? } }{     cycles, compiled into jumps by the attendant
//	B P H                bell, print, halt
//	D+ D- DX DY          curve drawing apparatus
//	A ...                attendant requests
//	T1 T0                trace on and off
//
// Blank lines and lines starting with '.' or a space are comments.
// Text of the form $(expr) is evaluated as an integer expression before
// the line is parsed.
package card
