package engine

import (
	"fmt"
	"slices"

	"github.com/ezrec/analytical/card"
)

// Reader holds the mounted chain and the position of the last card read.
// The zero value is an empty reader positioned before the first card.
type Reader struct {
	cards []card.Card
	next  int // Index of the next card to read; the cursor is next-1.
}

// Mount replaces the chain and rewinds the reader.
func (rd *Reader) Mount(cards []card.Card) {
	rd.cards = slices.Clone(cards)
	rd.next = 0
}

// Rewind positions the reader before the first card.
func (rd *Reader) Rewind() {
	rd.next = 0
}

// Len returns the number of mounted cards.
func (rd *Reader) Len() int {
	return len(rd.cards)
}

// Cards returns the mounted chain.
func (rd *Reader) Cards() []card.Card {
	return slices.Clone(rd.cards)
}

// Cursor returns the index of the last card read, or -1 if none has been.
func (rd *Reader) Cursor() int {
	return rd.next - 1
}

// ReadAndAdvance returns the card after the cursor and moves the cursor
// onto it. ErrHalt is returned when no cards remain.
func (rd *Reader) ReadAndAdvance() (c card.Card, err error) {
	if rd.next >= len(rd.cards) {
		err = ErrHalt
		return
	}

	c = rd.cards[rd.next]
	rd.next++
	return
}

// Advance moves the cursor forward n cards. The cursor is unchanged on
// failure.
func (rd *Reader) Advance(n int) (err error) {
	if n < 0 || rd.Cursor()+n >= len(rd.cards) {
		err = fmt.Errorf("%w: %d from %d", ErrAdvanceRange, n, rd.Cursor())
		return
	}

	rd.next += n
	return
}

// Reverse moves the cursor back n cards, at most to before the first.
// The cursor is unchanged on failure.
func (rd *Reader) Reverse(n int) (err error) {
	if n < 0 || rd.Cursor()-n < -1 {
		err = fmt.Errorf("%w: %d from %d", ErrReverseRange, n, rd.Cursor())
		return
	}

	rd.next -= n
	return
}
