package attendant

import (
	"go.uber.org/zap"

	"github.com/ezrec/analytical/card"
)

// Transclude replaces inclusion cards with the chains they name,
// bracketed by comment cards.
func (att *Attendant) Transclude(cards []card.Card, depth int) (out []card.Card, err error) {
	out = make([]card.Card, 0, len(cards))

	for _, c := range cards {
		if c.Kind != card.INCLUDE && c.Kind != card.INCLUDELIB {
			out = append(out, c)
			continue
		}

		if att.Library == nil {
			err = &ErrCompile{Card: c, Err: ErrLibraryMissing}
			return
		}
		if depth >= MAX_INCLUDE_DEPTH {
			err = &ErrCompile{Card: c, Err: ErrIncludeDepth}
			return
		}

		name := c.Arg(0)

		var included []card.Card
		if c.Kind == card.INCLUDE {
			included, err = att.Library.ReadFile(name)
		} else {
			included, err = att.Library.Find(name)
		}
		if err != nil {
			err = &ErrCompile{Card: c, Err: err}
			return
		}

		if att.Verbose {
			att.logger().Debug("include", zap.String("name", name), zap.Int("cards", len(included)), zap.Int("depth", depth))
		}

		included, err = att.Transclude(included, depth+1)
		if err != nil {
			return
		}

		out = append(out, card.MakeComment(". Start of included cards "+name).At(c))
		out = append(out, included...)
		out = append(out, card.MakeComment(". End of included cards "+name).At(c))
	}

	return
}
