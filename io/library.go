package io

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.uber.org/zap"

	"github.com/ezrec/analytical/attendant"
	"github.com/ezrec/analytical/card"
	"github.com/ezrec/analytical/internal"
)

const (
	LIBRARY_EXT        = ".ae"     // Extension of card chain files.
	LIBRARY_DEFAULT    = "default" // Name of the embedded library.
	LIBRARY_CACHE_SIZE = 64        // Parsed chains kept in memory.
)

//go:embed library/*.ae
var defaultLibrary embed.FS

type libraryPath struct {
	name string
	fsys fs.FS
}

// Library resolves inclusion cards. Names are searched for in the added
// paths, in order, and then in the embedded default library.
type Library struct {
	Logger *zap.Logger  // Logger, or nil for none.
	Parser *card.Parser // Parser for chain files, or nil for a plain one.
	Root   fs.FS        // File system for ReadFile, or nil for the host.

	paths []libraryPath
	cache *simplelru.LRU[string, []card.Card]
}

var _ attendant.Library = (*Library)(nil)

// NewLibrary creates a library holding only the default chains.
func NewLibrary() (lib *Library) {
	lib = &Library{}
	return
}

func (lib *Library) logger() *zap.Logger {
	if lib.Logger == nil {
		return zap.NewNop()
	}
	return lib.Logger
}

// AddPath adds a host directory to the search list.
func (lib *Library) AddPath(dir string) {
	lib.AddFS(dir, os.DirFS(dir))
}

// AddFS adds a file system to the search list, under a descriptive name.
func (lib *Library) AddFS(name string, fsys fs.FS) {
	lib.paths = append(lib.paths, libraryPath{name: name, fsys: fsys})
	if lib.cache != nil {
		lib.cache.Purge()
	}
}

func (lib *Library) search() (paths []libraryPath) {
	paths = slices.Clone(lib.paths)

	sub, err := fs.Sub(defaultLibrary, "library")
	if err != nil {
		panic(err)
	}
	paths = append(paths, libraryPath{name: LIBRARY_DEFAULT, fsys: sub})

	return
}

// load parses a chain file, consulting the cache first.
func (lib *Library) load(key string, source string, read func() ([]byte, error)) (cards []card.Card, err error) {
	if lib.cache == nil {
		lib.cache, err = simplelru.NewLRU[string, []card.Card](LIBRARY_CACHE_SIZE, nil)
		if err != nil {
			return
		}
	}

	cached, ok := lib.cache.Get(key)
	if ok {
		lib.logger().Debug("library cached", zap.String("source", source))
		cards = slices.Clone(cached)
		return
	}

	data, err := read()
	if err != nil {
		return
	}

	parser := lib.Parser
	if parser == nil {
		parser = &card.Parser{}
	}

	cards, err = parser.Parse(source, bytes.NewReader(data))
	if err != nil {
		return
	}

	lib.logger().Debug("library load", zap.String("source", source), zap.Int("cards", len(cards)))
	lib.cache.Add(key, slices.Clone(cards))

	return
}

// Find returns the chain for a library name. Each search path is tried
// for name.ae, then name.
func (lib *Library) Find(name string) (cards []card.Card, err error) {
	if !fs.ValidPath(name) || strings.ContainsAny(name, `\`) {
		err = fmt.Errorf("%w: '%v'", ErrLibraryName, name)
		return
	}

	for n, lp := range lib.search() {
		for _, file := range []string{name + LIBRARY_EXT, name} {
			info, serr := fs.Stat(lp.fsys, file)
			if serr != nil || info.IsDir() {
				continue
			}

			key := fmt.Sprintf("%d:%v", n, file)
			source := path.Join(lp.name, file)
			cards, err = lib.load(key, source, func() ([]byte, error) {
				return fs.ReadFile(lp.fsys, file)
			})
			return
		}
	}

	err = fmt.Errorf("%w: '%v'", attendant.ErrNotFound, name)
	return
}

// ReadFile returns the chain stored in a file.
func (lib *Library) ReadFile(filename string) (cards []card.Card, err error) {
	read := func() ([]byte, error) {
		if lib.Root != nil {
			return fs.ReadFile(lib.Root, filename)
		}
		return os.ReadFile(filename)
	}

	cards, err = lib.load("file:"+filename, filename, read)
	if errors.Is(err, fs.ErrNotExist) {
		err = errors.Join(attendant.ErrNotFound, err)
	}

	return
}

// Names returns the library names visible through the search list,
// with the name of the path that supplies each.
func (lib *Library) Names() iter.Seq2[string, string] {
	var seqs []iter.Seq2[string, string]

	for _, lp := range lib.search() {
		seqs = append(seqs, func(yield func(string, string) bool) {
			files, err := fs.Glob(lp.fsys, "*"+LIBRARY_EXT)
			if err != nil {
				return
			}
			for _, file := range files {
				if !yield(strings.TrimSuffix(file, LIBRARY_EXT), lp.name) {
					return
				}
			}
		})
	}

	return internal.IterSeq2Unique(internal.IterSeq2Concat(seqs...))
}
