package attendant

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ezrec/analytical/card"
)

// ExpandDecimal resolves the decimal place setting into explicit cards.
//
// Numbers with a decimal point are scaled to integers, implicit shifts
// get an explicit digit count, and "write numbers with decimal point"
// becomes a picture.
func (att *Attendant) ExpandDecimal(cards []card.Card) (out []card.Card, err error) {
	out = make([]card.Card, 0, len(cards))
	places := -1

	for _, c := range cards {
		fail := func(e error) ([]card.Card, error) {
			return nil, &ErrCompile{Card: c, Err: e}
		}

		switch c.Kind {
		case card.DECIMALEXPAND:
			arg := c.Arg(0)
			var n int
			n, err = strconv.Atoi(arg)
			if err != nil {
				return fail(card.ErrParseNumber(arg))
			}
			if strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-") {
				if places < 0 {
					return fail(ErrDecimalRelative)
				}
				n += places
			}
			if n < 0 || n > MAX_DECIMAL_PLACES {
				return fail(ErrDecimalRange)
			}
			places = n
			out = att.marker(out, c)
		case card.WRITEDECIMAL:
			if places < 0 {
				return fail(ErrDecimalUnset)
			}
			out = append(out, card.Make(card.WRITEPICTURE, "9."+strings.Repeat("9", places)).At(c))
		case card.LSHIFT, card.RSHIFT:
			if places < 0 {
				return fail(ErrDecimalUnset)
			}
			kind := card.LSHIFTN
			if c.Kind == card.RSHIFT {
				kind = card.RSHIFTN
			}
			shift := card.Make(kind, strconv.Itoa(places)).At(c)
			shift.Comment = c.Comment
			out = append(out, shift)
		case card.NUMBER:
			value := c.Arg(1)
			if !card.IsNumber(value) {
				return fail(card.ErrParseNumber(value))
			}
			if !strings.Contains(value, ".") {
				out = append(out, c)
				continue
			}
			if places < 0 {
				return fail(ErrDecimalUnset)
			}
			number := card.Make(card.NUMBER, c.Arg(0), ScaleNumber(value, places)).At(c)
			number.Comment = c.Comment
			out = append(out, number)
		default:
			out = append(out, c)
		}
	}

	return
}

// ScaleNumber converts a decimal literal to an integer holding exactly
// places fractional digits, rounding half away from zero.
func ScaleNumber(literal string, places int) string {
	negative := strings.HasPrefix(literal, "-")
	body := strings.TrimLeft(literal, "+-")

	whole, frac, _ := strings.Cut(body, ".")

	round := false
	if len(frac) > places {
		round = frac[places] >= '5'
		frac = frac[:places]
	} else {
		frac += strings.Repeat("0", places-len(frac))
	}

	value, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		value = new(big.Int)
	}
	if round {
		value.Add(value, big.NewInt(1))
	}
	if negative {
		value.Neg(value)
	}

	return value.String()
}
