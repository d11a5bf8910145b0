package card

import (
	"fmt"
	"slices"
	"strings"
)

// Card is a single instruction of a card chain.
//
// Cards are values; the attendant builds new cards rather than
// modifying cards already in a chain.
type Card struct {
	Kind    Kind     // Instruction type.
	Args    []string // Arguments, exactly Kind.Arity() of them.
	Comment string   // Trailing commentary from the card text.
	Source  string   // Name of the chain the card was read from.
	LineNo  int      // Line number within Source, or 0 if generated.
}

// Make creates a card of the given kind. It panics if the number of
// arguments does not match the arity of the kind.
func Make(kind Kind, args ...string) Card {
	if !kind.Valid() {
		panic(fmt.Sprintf("card: invalid kind %d", int(kind)))
	}
	if len(args) != kind.Arity() {
		panic(fmt.Sprintf("card: %v takes %d arguments, given %d", kind, kind.Arity(), len(args)))
	}

	return Card{Kind: kind, Args: slices.Clone(args)}
}

// MakeComment creates a comment card.
func MakeComment(text string) Card {
	return Make(COMMENT, text)
}

// Arg returns the n'th argument, or the empty string.
func (c Card) Arg(n int) string {
	if n < 0 || n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// At returns a copy of the card located at the position of another card.
func (c Card) At(where Card) Card {
	c.Args = slices.Clone(c.Args)
	c.Source = where.Source
	c.LineNo = where.LineNo
	return c
}

// Position returns a human readable location of the card.
func (c Card) Position() string {
	switch {
	case c.LineNo == 0 && len(c.Source) == 0:
		return "-"
	case len(c.Source) == 0:
		return fmt.Sprintf("%d", c.LineNo)
	default:
		return fmt.Sprintf("%v:%d", c.Source, c.LineNo)
	}
}

// String renders the card in card notation.
func (c Card) String() (text string) {
	switch c.Kind {
	case ADD:
		text = "+"
	case SUBTRACT:
		text = "-"
	case MULTIPLY:
		text = "*"
	case DIVIDE:
		text = "/"
	case LSHIFT:
		text = "<"
	case RSHIFT:
		text = ">"
	case LSHIFTN:
		text = "<" + c.Arg(0)
	case RSHIFTN:
		text = ">" + c.Arg(0)
	case LOAD:
		text = "L" + c.Arg(0)
	case LOADPRIME:
		text = "L" + c.Arg(0) + "'"
	case ZLOAD:
		text = "Z" + c.Arg(0)
	case ZLOADPRIME:
		text = "Z" + c.Arg(0) + "'"
	case STORE:
		text = "S" + c.Arg(0)
	case STOREPRIME:
		text = "S" + c.Arg(0) + "'"
	case NUMBER:
		text = "N" + c.Arg(0) + " " + c.Arg(1)
	case FORWARD:
		text = "CF+" + c.Arg(0)
	case BACKWARD:
		text = "CB+" + c.Arg(0)
	case CFORWARD:
		text = "CF?" + c.Arg(0)
	case CBACKWARD:
		text = "CB?" + c.Arg(0)
	case BACKSTART:
		text = "("
	case CBACKSTART:
		text = "(?"
	case BACKEND:
		text = ")"
	case FORWARDSTART:
		text = "{"
	case CFORWARDSTART:
		text = "{?"
	case FORWARDEND:
		text = "}"
	case ALTERNATION:
		text = "}{"
	case BELL:
		text = "B"
	case HALT:
		text = "H"
	case PRINT:
		text = "P"
	case DRAW:
		text = "D+"
	case MOVE:
		text = "D-"
	case SETX:
		text = "DX"
	case SETY:
		text = "DY"
	case TRACEON:
		text = "T1"
	case TRACEOFF:
		text = "T0"
	case COMMENT:
		text = c.Arg(0)
		if len(text) != 0 && text[0] != '.' && text[0] != ' ' {
			text = ". " + text
		}
		return
	default:
		for _, attn := range attendantPhrases {
			if attn.kind == c.Kind {
				return "A " + attn.phrase + c.Arg(0)
			}
		}
		return fmt.Sprintf("%v%v", c.Kind, c.Args)
	}

	if len(c.Comment) != 0 {
		text += " " + c.Comment
	}

	return
}

// Chain renders a list of cards, one per line.
func Chain(cards []Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
