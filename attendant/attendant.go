package attendant

import (
	"go.uber.org/zap"

	"github.com/ezrec/analytical/card"
)

const (
	MAX_DECIMAL_PLACES = 50 // Largest decimal place setting.
	MAX_INCLUDE_DEPTH  = 16 // Deepest permitted nesting of included chains.
)

// Library supplies card chains named by inclusion cards.
type Library interface {
	// Find returns the chain registered under a library name.
	Find(name string) ([]card.Card, error)
	// ReadFile returns the chain stored at a path.
	ReadFile(path string) ([]card.Card, error)
}

// Attendant prepares card chains for the engine and keeps its report.
type Attendant struct {
	Verbose       bool        // If set, logs each compilation pass.
	Logger        *zap.Logger // Logger, or nil for none.
	StripComments bool        // Remove comment cards before mounting.
	Library       Library     // Source of included chains.
	OnBell        func()      // Called when the bell rings.

	Report Report // Printed output.
	Bells  int    // Bells rung since reset.
}

func (att *Attendant) logger() *zap.Logger {
	if att.Logger == nil {
		return zap.NewNop()
	}
	return att.Logger
}

// Reset clears the report.
func (att *Attendant) Reset() {
	att.Report.Reset()
	att.Bells = 0
}

// Compile runs the attendant's passes over a raw chain, producing a chain
// the engine can mount. The input is not modified.
func (att *Attendant) Compile(cards []card.Card) (chain []card.Card, err error) {
	log := att.logger()

	passes := []struct {
		name string
		pass func([]card.Card) ([]card.Card, error)
	}{
		{"include", func(cards []card.Card) ([]card.Card, error) { return att.Transclude(cards, 0) }},
		{"comments", att.Strip},
		{"decimal", att.ExpandDecimal},
		{"cycles", att.TranslateCycles},
		{"verify", verify},
	}

	chain = cards
	for _, step := range passes {
		chain, err = step.pass(chain)
		if err != nil {
			chain = nil
			return
		}
		if att.Verbose {
			log.Debug("attendant pass", zap.String("pass", step.name), zap.Int("cards", len(chain)))
		}
	}

	return
}

// Strip removes comment cards if StripComments is set.
func (att *Attendant) Strip(cards []card.Card) (out []card.Card, err error) {
	if !att.StripComments {
		out = cards
		return
	}

	out = make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if c.Kind != card.COMMENT {
			out = append(out, c)
		}
	}

	return
}

// verify ensures that only executable cards remain.
func verify(cards []card.Card) ([]card.Card, error) {
	for _, c := range cards {
		if !c.Kind.Executable() {
			return nil, &ErrCompile{Card: c, Err: ErrNotExecutable}
		}
	}
	return cards, nil
}

// marker replaces a card consumed by a pass, when comments are kept.
func (att *Attendant) marker(out []card.Card, c card.Card) []card.Card {
	if att.StripComments {
		return out
	}
	return append(out, card.MakeComment(". "+c.String()).At(c))
}
