// Package mill implements the arithmetic unit of the Analytical Engine.
//
// The mill holds three ingress axes (two operands, plus the high order
// "prime" half of the first operand) and two egress axes (the result,
// plus its prime half). Every axis holds a signed decimal integer of 50
// digits. Selecting an operation and then transferring two operands in
// cranks the mill; the run-up lever is raised on overflow or on an
// unexpected change of sign, and the two causes cannot be told apart.
package mill
