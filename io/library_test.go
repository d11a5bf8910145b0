package io

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/analytical/attendant"
	"github.com/ezrec/analytical/card"
)

func chainText(cards []card.Card) []string {
	var lines []string
	for _, c := range cards {
		if c.Kind != card.COMMENT {
			lines = append(lines, c.String())
		}
	}
	return lines
}

func TestLibraryDefault(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()

	cards, err := lib.Find("square")
	assert.NoError(err)
	assert.Equal([]string{"*", "L1", "L1", "S2"}, chainText(cards))
	assert.Equal("default/square.ae", cards[0].Source)
	assert.Equal(1, cards[0].LineNo)

	for _, name := range []string{"abs", "factorial"} {
		cards, err = lib.Find(name)
		assert.NoError(err, name)
		assert.NotEmpty(cards, name)
	}

	_, err = lib.Find("cube")
	assert.ErrorIs(err, attendant.ErrNotFound)

	_, err = lib.Find("../square")
	assert.ErrorIs(err, ErrLibraryName)
	_, err = lib.Find("/square")
	assert.ErrorIs(err, ErrLibraryName)
}

func TestLibrarySearchOrder(t *testing.T) {
	assert := assert.New(t)

	first := fstest.MapFS{
		"square.ae":  &fstest.MapFile{Data: []byte("N2 4\n")},
		"cube":       &fstest.MapFile{Data: []byte("N2 8\n")},
		"dir/one.ae": &fstest.MapFile{Data: []byte("N2 1\n")},
	}
	second := fstest.MapFS{
		"cube.ae": &fstest.MapFile{Data: []byte("N2 27\n")},
		"dir.ae":  &fstest.MapFile{Data: []byte("N2 9\n")},
	}

	lib := NewLibrary()
	lib.AddFS("first", first)
	lib.AddFS("second", second)

	cards, err := lib.Find("square")
	assert.NoError(err)
	assert.Equal([]string{"N2 4"}, chainText(cards))
	assert.Equal("first/square.ae", cards[0].Source)

	// A later path with name.ae loses to an earlier path with name.
	cards, err = lib.Find("cube")
	assert.NoError(err)
	assert.Equal([]string{"N2 8"}, chainText(cards))

	// Directories are not chains.
	cards, err = lib.Find("dir")
	assert.NoError(err)
	assert.Equal([]string{"N2 9"}, chainText(cards))

	cards, err = lib.Find("dir/one")
	assert.NoError(err)
	assert.Equal([]string{"N2 1"}, chainText(cards))

	names := map[string]string{}
	for name, where := range lib.Names() {
		names[name] = where
	}
	assert.Equal("first", names["square"])
	assert.Equal("second", names["cube"])
	assert.Equal("second", names["dir"])
	assert.Equal("default", names["factorial"])
	assert.Equal("default", names["abs"])
	_, ok := names["dir/one"]
	assert.False(ok)
}

func TestLibraryCache(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"value.ae": &fstest.MapFile{Data: []byte("N0 1\n")},
	}

	lib := NewLibrary()
	lib.AddFS("test", fsys)

	cards, err := lib.Find("value")
	require.NoError(t, err)
	assert.Equal([]string{"N0 1"}, chainText(cards))

	// Altering the returned chain does not alter the cache.
	cards[0] = card.Make(card.HALT)

	fsys["value.ae"] = &fstest.MapFile{Data: []byte("N0 2\n")}
	cards, err = lib.Find("value")
	assert.NoError(err)
	assert.Equal([]string{"N0 1"}, chainText(cards))

	// Adding a path invalidates the cache.
	lib.AddFS("empty", fstest.MapFS{})
	cards, err = lib.Find("value")
	assert.NoError(err)
	assert.Equal([]string{"N0 2"}, chainText(cards))
}

func TestLibraryReadFile(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()
	lib.Root = fstest.MapFS{
		"prog/main.ae": &fstest.MapFile{Data: []byte(". main\nN0 $(BASE*2)\nH\n")},
		"bad.ae":       &fstest.MapFile{Data: []byte("N0 1\nQ\n")},
	}
	lib.Parser = &card.Parser{}
	require.NoError(t, lib.Parser.Predefine("BASE", "21"))

	cards, err := lib.ReadFile("prog/main.ae")
	assert.NoError(err)
	assert.Equal([]string{"N0 42", "H"}, chainText(cards))
	assert.Equal("prog/main.ae", cards[1].Source)
	assert.Equal(2, cards[1].LineNo)

	_, err = lib.ReadFile("missing.ae")
	assert.ErrorIs(err, attendant.ErrNotFound)

	_, err = lib.ReadFile("bad.ae")
	assert.ErrorIs(err, card.ErrCardUnknown)
	var serr *card.ErrSyntax
	if assert.ErrorAs(err, &serr) {
		assert.Equal(2, serr.LineNo)
	}
}

func TestLibraryAttendant(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()
	lib.AddFS("test", fstest.MapFS{
		"twice.ae": &fstest.MapFile{Data: []byte("A include from library cards for square\nA include from library cards for square\n")},
	})

	att := &attendant.Attendant{Library: lib, StripComments: true}

	p := &card.Parser{}
	cards, err := p.Parse("main.ae", strings.NewReader("A include from library cards for twice\nH\n"))
	require.NoError(t, err)

	chain, err := att.Compile(cards)
	assert.NoError(err)
	assert.Equal([]string{"*", "L1", "L1", "S2", "*", "L1", "L1", "S2", "H"}, chainText(chain))
}
