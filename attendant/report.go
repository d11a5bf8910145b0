package attendant

import (
	"strings"

	"go.uber.org/zap"
)

// Report is the printed output accumulated during a run.
type Report struct {
	Picture     string // Active number picture, or empty for plain numbers.
	WriteInRows bool   // Numbers are written across the line rather than down the page.

	text   strings.Builder
	number bool // Current line already holds a number.
}

// Reset clears the report and its formatting state.
func (rp *Report) Reset() {
	rp.text.Reset()
	rp.Picture = ""
	rp.WriteInRows = false
	rp.number = false
}

// String returns the report text.
func (rp *Report) String() string {
	return rp.text.String()
}

// Number writes a decimal number, edited to the active picture.
func (rp *Report) Number(number string) {
	if len(rp.Picture) != 0 {
		number = EditToPicture(rp.Picture, number)
	}

	if rp.number {
		if rp.WriteInRows {
			rp.text.WriteByte(' ')
		} else {
			rp.text.WriteByte('\n')
		}
	}

	rp.text.WriteString(number)
	rp.number = true
}

// Annotate writes text verbatim.
func (rp *Report) Annotate(text string) {
	rp.text.WriteString(text)
	if strings.HasSuffix(text, "\n") {
		rp.number = false
	}
}

// NewLine ends the current line.
func (rp *Report) NewLine() {
	rp.text.WriteByte('\n')
	rp.number = false
}

// Print writes a number to the attendant's report.
func (att *Attendant) Print(number string) {
	att.Report.Number(number)
	if att.Verbose {
		att.logger().Debug("print", zap.String("number", number))
	}
}

// Bell summons the attendant.
func (att *Attendant) Bell() {
	att.Bells++
	att.logger().Info("bell", zap.Int("count", att.Bells))
	if att.OnBell != nil {
		att.OnBell()
	}
}
