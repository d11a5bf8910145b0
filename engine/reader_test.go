package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/analytical/card"
)

func TestReader(t *testing.T) {
	assert := assert.New(t)

	var rd Reader
	assert.Equal(-1, rd.Cursor())
	_, err := rd.ReadAndAdvance()
	assert.ErrorIs(err, ErrHalt)

	rd.Mount([]card.Card{
		card.Make(card.PRINT),
		card.Make(card.BELL),
		card.Make(card.HALT),
	})
	assert.Equal(3, rd.Len())

	c, err := rd.ReadAndAdvance()
	assert.NoError(err)
	assert.Equal(card.PRINT, c.Kind)
	assert.Equal(0, rd.Cursor())

	c, err = rd.ReadAndAdvance()
	assert.NoError(err)
	assert.Equal(card.BELL, c.Kind)

	c, err = rd.ReadAndAdvance()
	assert.NoError(err)
	assert.Equal(card.HALT, c.Kind)
	assert.Equal(2, rd.Cursor())

	_, err = rd.ReadAndAdvance()
	assert.ErrorIs(err, ErrHalt)
	assert.Equal(2, rd.Cursor())

	rd.Rewind()
	assert.Equal(-1, rd.Cursor())
	assert.Equal(3, rd.Len())
}

func TestReaderAddressing(t *testing.T) {
	assert := assert.New(t)

	const size = 7

	cards := make([]card.Card, size)
	for n := range cards {
		cards[n] = card.Make(card.PRINT)
	}

	var rd Reader
	rd.Mount(cards)

	for cursor := -1; cursor < size; cursor++ {
		for n := range size + 2 {
			rd.Rewind()
			if cursor >= 0 {
				assert.NoError(rd.Advance(cursor + 1))
			}
			assert.Equal(cursor, rd.Cursor())

			err := rd.Advance(n)
			if cursor+n >= size {
				assert.ErrorIs(err, ErrAdvanceRange)
				assert.Equal(cursor, rd.Cursor())
				continue
			}
			assert.NoError(err)
			assert.Equal(cursor+n, rd.Cursor())

			assert.NoError(rd.Reverse(n))
			assert.Equal(cursor, rd.Cursor())
		}

		for n := range size + 2 {
			rd.Rewind()
			if cursor >= 0 {
				assert.NoError(rd.Advance(cursor + 1))
			}

			err := rd.Reverse(n)
			if cursor-n < -1 {
				assert.ErrorIs(err, ErrReverseRange)
				assert.Equal(cursor, rd.Cursor())
				continue
			}
			assert.NoError(err)
			assert.Equal(cursor-n, rd.Cursor())
		}
	}

	assert.ErrorIs(rd.Advance(-1), ErrAdvanceRange)
	assert.ErrorIs(rd.Reverse(-1), ErrReverseRange)
}

func TestReaderMountCopies(t *testing.T) {
	assert := assert.New(t)

	cards := []card.Card{card.Make(card.PRINT)}

	var rd Reader
	rd.Mount(cards)
	cards[0] = card.Make(card.HALT)

	c, err := rd.ReadAndAdvance()
	assert.NoError(err)
	assert.Equal(card.PRINT, c.Kind)
}
