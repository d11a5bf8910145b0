// Package engine executes compiled card chains.
//
// The engine reads cards one at a time from its card reader and
// dispatches each to the mill, the store, the attendant's report or the
// attached printers. Combinatorial cards move the reader's cursor
// relative to the last card read.
//
// A HALT card, or reading past the last card, stops the engine without
// error. Addressing outside the store or the chain, malformed arguments,
// and cards that should have been compiled away stop it with an
// ErrExecute.
package engine
