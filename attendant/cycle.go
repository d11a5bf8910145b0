package attendant

import (
	"strconv"

	"github.com/ezrec/analytical/card"
)

// TranslateCycles replaces cycle brackets with combinatorial cards.
//
// Jump counts depend on whether the bracket cards are kept as comments.
// A backward jump lands on the first card of the cycle body; a forward
// jump lands on the first card after everything it skips.
//
//	( body )          body, [)], CB+n    n = len(body)+1, or +2 with comments
//	{ body }          CF+n, body, [}]    n = len(body), or +1 with comments
//	{ then }{ else }  CF+n, then, CF+m, [}{], else, [}]
//	                  n = len(then)+1, or +2 with comments
//	                  m = len(else), or +2 with comments
//
// The conditional forms (? and {? use CB? and CF? for the first jump.
func (att *Attendant) TranslateCycles(cards []card.Card) (out []card.Card, err error) {
	cy := &cycler{att: att, cards: cards}

	out, closer, err := cy.block()
	if err != nil {
		return
	}
	if closer != nil {
		out = nil
		err = &ErrCompile{Card: *closer, Err: ErrCycleClose}
	}

	return
}

type cycler struct {
	att   *Attendant
	cards []card.Card
	pos   int
}

// block translates cards up to a closing bracket or the end of the chain.
func (cy *cycler) block() (out []card.Card, closer *card.Card, err error) {
	for cy.pos < len(cy.cards) {
		c := cy.cards[cy.pos]
		cy.pos++

		var cycle []card.Card
		switch c.Kind {
		case card.BACKEND, card.FORWARDEND, card.ALTERNATION:
			closer = &c
			return
		case card.BACKSTART, card.CBACKSTART:
			cycle, err = cy.loop(c)
		case card.FORWARDSTART, card.CFORWARDSTART:
			cycle, err = cy.skip(c)
		default:
			cycle = []card.Card{c}
		}
		if err != nil {
			return
		}
		out = append(out, cycle...)
	}

	return
}

// close reads a bracket body and checks the card that ends it.
func (cy *cycler) close(open card.Card, allowed ...card.Kind) (body []card.Card, closer card.Card, err error) {
	body, end, err := cy.block()
	if err != nil {
		return
	}
	if end == nil {
		err = &ErrCompile{Card: open, Err: ErrCycleOpen}
		return
	}
	closer = *end

	for _, kind := range allowed {
		if closer.Kind == kind {
			return
		}
	}

	err = &ErrCompile{Card: closer, Err: ErrCycleMismatch}
	return
}

func (cy *cycler) loop(open card.Card) (out []card.Card, err error) {
	body, closer, err := cy.close(open, card.BACKEND)
	if err != nil {
		return
	}

	kind := card.BACKWARD
	if open.Kind == card.CBACKSTART {
		kind = card.CBACKWARD
	}

	count := len(body) + 1
	if !cy.att.StripComments {
		count++
	}

	out = cy.att.marker(out, open)
	out = append(out, body...)
	out = cy.att.marker(out, closer)
	out = append(out, card.Make(kind, strconv.Itoa(count)).At(closer))

	return
}

func (cy *cycler) skip(open card.Card) (out []card.Card, err error) {
	body, closer, err := cy.close(open, card.FORWARDEND, card.ALTERNATION)
	if err != nil {
		return
	}

	kind := card.FORWARD
	if open.Kind == card.CFORWARDSTART {
		kind = card.CFORWARD
	}

	comments := 0
	if !cy.att.StripComments {
		comments = 1
	}

	if closer.Kind == card.FORWARDEND {
		out = cy.att.marker(out, open)
		out = append(out, card.Make(kind, strconv.Itoa(len(body)+comments)).At(open))
		out = append(out, body...)
		out = cy.att.marker(out, closer)
		return
	}

	alternate, final, err := cy.close(closer, card.FORWARDEND)
	if err != nil {
		return
	}

	out = cy.att.marker(out, open)
	out = append(out, card.Make(kind, strconv.Itoa(len(body)+1+comments)).At(open))
	out = append(out, body...)
	out = append(out, card.Make(card.FORWARD, strconv.Itoa(len(alternate)+2*comments)).At(closer))
	out = cy.att.marker(out, closer)
	out = append(out, alternate...)
	out = cy.att.marker(out, final)

	return
}
