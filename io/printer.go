package io

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// DecimalPrinter is the printing apparatus. Numbers are rendered in
// decimal, and each is also stamped on the output tape if one is fitted.
type DecimalPrinter struct {
	Output io.Writer // Output tape, or nil.
	Digits int       // Minimum digits printed, zero filled.

	Count int // Numbers printed.
}

// Print renders a value.
func (dp *DecimalPrinter) Print(value *big.Int) (text string) {
	digits := new(big.Int).Abs(value).String()
	if len(digits) < dp.Digits {
		digits = strings.Repeat("0", dp.Digits-len(digits)) + digits
	}

	text = digits
	if value.Sign() < 0 {
		text = "-" + digits
	}

	dp.Count++
	if dp.Output != nil {
		fmt.Fprintln(dp.Output, text)
	}

	return
}
