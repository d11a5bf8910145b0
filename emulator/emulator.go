// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	stdio "io"
	"iter"
	"maps"

	"go.uber.org/zap"

	"github.com/ezrec/analytical/attendant"
	"github.com/ezrec/analytical/card"
	"github.com/ezrec/analytical/engine"
	"github.com/ezrec/analytical/internal"
	"github.com/ezrec/analytical/io"
	"github.com/ezrec/analytical/mill"
)

var _emulator_defines = map[string]string{
	"STORE_SIZE": fmt.Sprintf("%v", engine.STORE_SIZE),
}

var _mill_defines = map[string]string{
	"DIGITS":             fmt.Sprintf("%v", mill.DIGITS),
	"MAX_SHIFT":          fmt.Sprintf("%v", mill.MAX_SHIFT),
	"MAX_DECIMAL_PLACES": fmt.Sprintf("%v", attendant.MAX_DECIMAL_PLACES),
}

// Emulator state. Engine + attendant + printing and curve apparatus.
type Emulator struct {
	Verbose        bool        // If set, enables verbose logging.
	Logger         *zap.Logger // Logger, or nil for none.
	MaxCards       int         // Cards executed before Run gives up, or 0 for no limit.
	*engine.Engine             // Reference to the engine simulation.

	Parser  *card.Parser      // Card parser, with the emulator's defines.
	Library *io.Library       // Library of card chains.
	Printer io.DecimalPrinter // Printing apparatus.
	Curve   io.CurveRecorder  // Curve drawing apparatus.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Engine:  engine.NewEngine(),
		Parser:  &card.Parser{},
		Library: io.NewLibrary(),
	}

	for name, value := range emu.Defines() {
		err := emu.Parser.Predefine(name, value)
		if err != nil {
			panic(err)
		}
	}

	emu.Library.Parser = emu.Parser
	emu.Engine.Attendant.Library = emu.Library
	emu.Engine.Printer = &emu.Printer
	emu.Engine.Curve = &emu.Curve

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), maps.All(_mill_defines))
}

func (emu *Emulator) logger() *zap.Logger {
	if emu.Logger == nil {
		return zap.NewNop()
	}
	return emu.Logger
}

// setup propagates the emulator settings to its components.
func (emu *Emulator) setup() {
	emu.Engine.Verbose = emu.Verbose
	emu.Engine.Logger = emu.Logger
	emu.Engine.Attendant.Verbose = emu.Verbose
	emu.Engine.Attendant.Logger = emu.Logger
	emu.Library.Logger = emu.Logger
}

// Compile runs the attendant over a raw card chain.
func (emu *Emulator) Compile(cards []card.Card) (chain []card.Card, err error) {
	emu.setup()
	return emu.Engine.Attendant.Compile(cards)
}

// mount compiles a chain and, only if that succeeds, mounts it.
func (emu *Emulator) mount(cards []card.Card) (err error) {
	chain, err := emu.Compile(cards)
	if err != nil {
		return
	}

	err = emu.Engine.Mount(chain)
	if err != nil {
		return
	}

	emu.Reset()
	if emu.Verbose {
		emu.logger().Debug("mounted", zap.Int("cards", len(chain)))
	}

	return
}

// Load parses, compiles and mounts a card chain.
func (emu *Emulator) Load(source string, input stdio.Reader) (err error) {
	cards, err := emu.Parser.Parse(source, input)
	if err != nil {
		return
	}

	return emu.mount(cards)
}

// LoadFile reads, compiles and mounts a card chain file.
func (emu *Emulator) LoadFile(filename string) (err error) {
	cards, err := emu.Library.ReadFile(filename)
	if err != nil {
		return
	}

	return emu.mount(cards)
}

// Reset the emulator state, keeping the mounted chain.
func (emu *Emulator) Reset() {
	emu.setup()
	emu.Engine.Reset()
	emu.Printer.Count = 0
}

// Report returns the attendant's report.
func (emu *Emulator) Report() string {
	return emu.Engine.Attendant.Report.String()
}

// Tick performs a single card of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.setup()

	done, err = emu.Engine.Tick()
	if err != nil {
		rerr := &ErrRuntime{Err: err}
		var xerr *engine.ErrExecute
		if errors.As(err, &xerr) {
			rerr.Source = xerr.Card.Source
			rerr.LineNo = xerr.Card.LineNo
		}
		err = rerr
	}

	return
}

// Run executes cards until the engine halts, fails, the card limit is
// reached or the context is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		if emu.MaxCards > 0 && emu.Engine.Cards >= emu.MaxCards {
			err = &ErrRuntime{Err: fmt.Errorf("%w: %d", ErrCardLimit, emu.MaxCards)}
			return
		}

		var done bool
		done, err = emu.Tick()
		if done {
			if err == nil && emu.Verbose {
				emu.logger().Debug("halted", zap.Int("cards", emu.Engine.Cards))
			}
			return
		}
	}
}
