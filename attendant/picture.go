package attendant

import (
	"slices"
	"strings"
)

// EditToPicture formats a decimal number according to a picture.
//
// The picture is processed right to left, consuming digits from the right
// of the number:
//
//	9      a digit, or 0 when the digits are exhausted
//	#      a digit, or a space when the digits are exhausted
//	,      a comma while digits remain or a 9 is still to come, else a space
//	-      a minus sign if the number is negative, else a space
//	+ ±    a minus sign if the number is negative, else a plus sign
//
// Any other character is copied. Digits left over once the picture is
// exhausted are prefixed, and a negative number whose picture has no sign
// position is prefixed with a minus sign.
func EditToPicture(picture string, number string) string {
	negative := strings.HasPrefix(number, "-")
	digits := strings.TrimLeft(number, "+-")

	pic := []rune(picture)
	out := make([]rune, 0, len(pic))
	next := len(digits)
	signed := false

	for n := len(pic) - 1; n >= 0; n-- {
		ch := pic[n]
		switch ch {
		case '9':
			if next > 0 {
				next--
				ch = rune(digits[next])
			} else {
				ch = '0'
			}
		case '#':
			if next > 0 {
				next--
				ch = rune(digits[next])
			} else {
				ch = ' '
			}
		case ',':
			if next == 0 && !slices.Contains(pic[:n], '9') {
				ch = ' '
			}
		case '-':
			signed = true
			if !negative {
				ch = ' '
			}
		case '+', '±':
			signed = true
			if negative {
				ch = '-'
			} else {
				ch = '+'
			}
		}
		out = append(out, ch)
	}

	slices.Reverse(out)

	text := digits[:next] + string(out)
	if negative && !signed {
		text = "-" + text
	}

	return text
}
