package engine

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"go.uber.org/zap"

	"github.com/ezrec/analytical/attendant"
	"github.com/ezrec/analytical/card"
	"github.com/ezrec/analytical/mill"
)

// Printer renders a mill value as text, before any picture is applied.
type Printer interface {
	Print(value *big.Int) string
}

// CurvePrinter is the curve drawing apparatus.
type CurvePrinter interface {
	SetX(value *big.Int)
	SetY(value *big.Int)
	Draw()
	Move()
	Reset()
}

// Engine is the simulation context of the Analytical Engine.
type Engine struct {
	Verbose bool        // Set to log every card executed.
	Logger  *zap.Logger // Logger, or nil for none.
	Trace   bool        // Trace cards, toggled by T1 and T0.

	Mill      *mill.Mill
	Store     *Store
	Reader    Reader
	Attendant *attendant.Attendant

	Printer Printer      // Number printer, or nil for plain decimal.
	Curve   CurvePrinter // Curve printer, or nil for none.

	State State // Run state.
	Cards int   // Cards executed since reset.
}

// NewEngine creates an engine with an empty store, a reset mill and its
// own attendant.
func NewEngine() (eng *Engine) {
	eng = &Engine{
		Mill:      mill.NewMill(),
		Store:     NewStore(),
		Attendant: &attendant.Attendant{},
	}

	return
}

func (eng *Engine) logger() *zap.Logger {
	if eng.Logger == nil {
		return zap.NewNop()
	}
	return eng.Logger
}

// Mount mounts a compiled chain and resets the engine.
// Every card must be executable.
func (eng *Engine) Mount(cards []card.Card) (err error) {
	for n, c := range cards {
		if !c.Kind.Executable() {
			err = &ErrExecute{Index: n, Card: c, Err: ErrNotExecutable}
			return
		}
	}

	eng.Reader.Mount(cards)
	eng.Reset()

	return
}

// Reset the engine state.
//   - Clears the mill, the store and the attendant's report.
//   - Rewinds the reader, keeping the mounted chain.
//   - Resets the curve printer.
//   - Zeros the card counter.
func (eng *Engine) Reset() {
	if eng.Verbose {
		eng.logger().Debug("engine reset", zap.Int("cards", eng.Reader.Len()))
	}

	eng.Mill.Reset()
	eng.Store.Reset()
	eng.Reader.Rewind()
	eng.Attendant.Reset()
	if eng.Curve != nil {
		eng.Curve.Reset()
	}

	eng.Trace = false
	eng.State = STATE_READY
	eng.Cards = 0
}

// String returns the engine state as text.
func (eng *Engine) String() (text string) {
	text = fmt.Sprintf("state: %v\ncursor: %d/%d\ncards: %d\n", eng.State, eng.Reader.Cursor(), eng.Reader.Len(), eng.Cards)
	text += eng.Mill.String()
	return
}

// Run executes cards until the engine halts or fails.
func (eng *Engine) Run() (err error) {
	for {
		var done bool
		done, err = eng.Tick()
		if done {
			return
		}
	}
}

// Tick executes a single card. done is set once the engine has halted
// or failed; halting is not an error.
func (eng *Engine) Tick() (done bool, err error) {
	switch eng.State {
	case STATE_HALTED, STATE_ERRORED:
		done = true
		err = ErrState
		return
	}
	eng.State = STATE_RUNNING

	c, err := eng.Reader.ReadAndAdvance()
	if err == nil {
		index := eng.Reader.Cursor()
		err = eng.Execute(c)
		eng.Cards++
		if err != nil && !errors.Is(err, ErrHalt) {
			err = &ErrExecute{Index: index, Card: c, Err: err}
		}
	}

	switch {
	case err == nil:
		return
	case errors.Is(err, ErrHalt):
		eng.State = STATE_HALTED
		err = nil
	default:
		eng.State = STATE_ERRORED
	}

	done = true
	return
}

func address(arg string) (addr int, err error) {
	addr, err = strconv.Atoi(arg)
	if err != nil {
		err = fmt.Errorf("%w: '%v'", card.ErrAddressInvalid, arg)
	}
	return
}

func count(arg string) (n int, err error) {
	n, err = strconv.Atoi(arg)
	if err != nil || n < 0 {
		err = fmt.Errorf("%w: '%v'", card.ErrCountInvalid, arg)
	}
	return
}

func (eng *Engine) mostRecent() (value *big.Int, err error) {
	value, ok := eng.Mill.MostRecentValue()
	if !ok {
		err = ErrValueMissing
	}
	return
}

// Execute performs a single card. ErrHalt is returned for a HALT card.
func (eng *Engine) Execute(c card.Card) (err error) {
	if eng.Verbose {
		eng.logger().Debug("execute", zap.Int("index", eng.Reader.Cursor()), zap.Stringer("card", c))
	}
	if eng.Trace {
		eng.logger().Info("trace",
			zap.Int("index", eng.Reader.Cursor()),
			zap.Stringer("card", c),
			zap.Bool("run-up", eng.Mill.HasRunUp()),
		)
	}

	m := eng.Mill
	att := eng.Attendant

	switch c.Kind {
	case card.ADD:
		m.SetOperation(mill.OP_ADD)
	case card.SUBTRACT:
		m.SetOperation(mill.OP_SUBTRACT)
	case card.MULTIPLY:
		m.SetOperation(mill.OP_MULTIPLY)
	case card.DIVIDE:
		m.SetOperation(mill.OP_DIVIDE)
	case card.LOAD, card.LOADPRIME, card.ZLOAD, card.ZLOADPRIME:
		var addr int
		addr, err = address(c.Arg(0))
		if err != nil {
			return
		}
		var value *big.Int
		value, err = eng.Store.Get(addr)
		if err != nil {
			return
		}
		m.TransferIn(value, c.Kind.Prime())
		if c.Kind == card.ZLOAD || c.Kind == card.ZLOADPRIME {
			err = eng.Store.Put(addr, new(big.Int))
		}
	case card.STORE, card.STOREPRIME:
		var addr int
		addr, err = address(c.Arg(0))
		if err != nil {
			return
		}
		err = eng.Store.Put(addr, m.TransferOut(c.Kind.Prime()))
	case card.NUMBER:
		var addr int
		addr, err = address(c.Arg(0))
		if err != nil {
			return
		}
		value, ok := new(big.Int).SetString(c.Arg(1), 10)
		if !ok {
			err = card.ErrParseNumber(c.Arg(1))
			return
		}
		err = eng.Store.Put(addr, value)
	case card.LSHIFTN, card.RSHIFTN:
		var n int
		n, err = count(c.Arg(0))
		if err != nil {
			return
		}
		if !mill.ValidShift(n) {
			err = fmt.Errorf("%w: %d", ErrShiftRange, n)
			return
		}
		if c.Kind == card.LSHIFTN {
			m.LeftShift(n)
		} else {
			m.RightShift(n)
		}
	case card.FORWARD, card.BACKWARD, card.CFORWARD, card.CBACKWARD:
		var n int
		n, err = count(c.Arg(0))
		if err != nil {
			return
		}
		if (c.Kind == card.CFORWARD || c.Kind == card.CBACKWARD) && !m.HasRunUp() {
			return
		}
		if c.Kind == card.FORWARD || c.Kind == card.CFORWARD {
			err = eng.Reader.Advance(n)
		} else {
			err = eng.Reader.Reverse(n)
		}
	case card.BELL:
		att.Bell()
	case card.HALT:
		err = ErrHalt
	case card.PRINT:
		var value *big.Int
		value, err = eng.mostRecent()
		if err != nil {
			return
		}
		var text string
		if eng.Printer != nil {
			text = eng.Printer.Print(value)
		} else {
			text = value.String()
		}
		att.Print(text)
	case card.SETX, card.SETY:
		var value *big.Int
		value, err = eng.mostRecent()
		if err != nil {
			return
		}
		if eng.Curve == nil {
			return
		}
		if c.Kind == card.SETX {
			eng.Curve.SetX(value)
		} else {
			eng.Curve.SetY(value)
		}
	case card.DRAW:
		if eng.Curve != nil {
			eng.Curve.Draw()
		}
	case card.MOVE:
		if eng.Curve != nil {
			eng.Curve.Move()
		}
	case card.ANNOTATE:
		att.Report.Annotate(c.Arg(0))
	case card.NEWLINE:
		att.Report.NewLine()
	case card.WRITECOLUMNS:
		att.Report.WriteInRows = false
	case card.WRITEROWS:
		att.Report.WriteInRows = true
	case card.WRITEPICTURE:
		att.Report.Picture = c.Arg(0)
	case card.TRACEON:
		eng.Trace = true
	case card.TRACEOFF:
		eng.Trace = false
	case card.COMMENT:
		// pass
	default:
		err = fmt.Errorf("%w: %v", ErrNotExecutable, c.Kind)
	}

	return
}
