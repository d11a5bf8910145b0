package io

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// CurveStroke is a single pen movement.
type CurveStroke struct {
	X, Y *big.Int
	Pen  bool // Pen was down; a line was drawn.
}

// CurveRecorder is the curve drawing apparatus. Rather than drawing,
// it records each pen movement.
type CurveRecorder struct {
	Strokes []CurveStroke

	x, y *big.Int
}

func (cr *CurveRecorder) position() (x, y *big.Int) {
	x, y = new(big.Int), new(big.Int)
	if cr.x != nil {
		x.Set(cr.x)
	}
	if cr.y != nil {
		y.Set(cr.y)
	}
	return
}

// SetX sets the X co-ordinate of the next movement.
func (cr *CurveRecorder) SetX(value *big.Int) {
	cr.x = new(big.Int).Set(value)
}

// SetY sets the Y co-ordinate of the next movement.
func (cr *CurveRecorder) SetY(value *big.Int) {
	cr.y = new(big.Int).Set(value)
}

// Draw moves the pen, drawing a line.
func (cr *CurveRecorder) Draw() {
	x, y := cr.position()
	cr.Strokes = append(cr.Strokes, CurveStroke{X: x, Y: y, Pen: true})
}

// Move moves the pen without drawing.
func (cr *CurveRecorder) Move() {
	x, y := cr.position()
	cr.Strokes = append(cr.Strokes, CurveStroke{X: x, Y: y})
}

// Reset removes the strokes and returns the pen to the origin.
func (cr *CurveRecorder) Reset() {
	cr.Strokes = nil
	cr.x = nil
	cr.y = nil
}

// String returns the strokes as SVG path data.
func (cr *CurveRecorder) String() string {
	var parts []string
	for _, stroke := range cr.Strokes {
		op := "M"
		if stroke.Pen {
			op = "L"
		}
		parts = append(parts, fmt.Sprintf("%v %v %v", op, stroke.X, stroke.Y))
	}
	return strings.Join(parts, " ")
}

// WriteTo writes the strokes as an SVG document.
func (cr *CurveRecorder) WriteTo(w io.Writer) (n int64, err error) {
	written, err := fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\">\n<path fill=\"none\" stroke=\"black\" d=\"%v\"/>\n</svg>\n", cr.String())
	n = int64(written)
	return
}
