package mill

import (
	"fmt"
	"math/big"
)

const (
	DIGITS    = 50  // Decimal digits held by an axis.
	MAX_SHIFT = 100 // Largest permitted shift, in digits.
)

var (
	zero     = big.NewInt(0)
	one      = big.NewInt(1)
	ten      = big.NewInt(10)
	limit    = new(big.Int).Exp(ten, big.NewInt(DIGITS), nil)
	negLimit = new(big.Int).Neg(limit)
)

// Max returns 10^50, the exclusive upper bound of an axis.
func Max() *big.Int {
	return new(big.Int).Set(limit)
}

// Min returns -10^50, the inclusive lower bound of an axis.
func Min() *big.Int {
	return new(big.Int).Set(negLimit)
}

// ValidShift returns true if a shift of n digits is permitted.
func ValidShift(n int) bool {
	return n >= 0 && n <= MAX_SHIFT
}

// DivMod divides x by y rounding the quotient toward negative infinity;
// the remainder takes the sign of y.
func DivMod(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, one)
		r.Add(r, y)
	}
	return
}

// Mill is the simulation of the arithmetic unit.
type Mill struct {
	Ingress   [3]*big.Int // Operand 0, operand 1, prime of operand 0.
	Egress    [2]*big.Int // Result, prime of result.
	Operation Operation   // Pending operation.
	Axis      int         // Next ingress axis to fill.
	RunUp     bool        // Run-up lever.
	Cranks    int         // Operations performed since reset.

	mostRecent *big.Int
}

// NewMill creates a new, reset, mill.
func NewMill() (m *Mill) {
	m = &Mill{}
	m.Reset()
	return
}

// Reset clears every axis, the operation and the run-up lever.
func (m *Mill) Reset() {
	for n := range m.Ingress {
		m.Ingress[n] = new(big.Int)
	}
	for n := range m.Egress {
		m.Egress[n] = new(big.Int)
	}
	m.Operation = OP_NONE
	m.Axis = 0
	m.RunUp = false
	m.Cranks = 0
	m.mostRecent = nil
}

// SetOperation selects the operation performed by the next crank.
func (m *Mill) SetOperation(op Operation) {
	m.Operation = op
}

// HasRunUp returns the state of the run-up lever.
func (m *Mill) HasRunUp() bool {
	return m.RunUp
}

// MostRecentValue returns the value most recently moved through the mill.
func (m *Mill) MostRecentValue() (value *big.Int, ok bool) {
	if m.mostRecent == nil {
		return
	}
	return new(big.Int).Set(m.mostRecent), true
}

// TransferIn moves a value into the ingress axes.
//
// A prime transfer sets the prime axis of operand 0. Otherwise the
// operand axes are filled in turn; filling operand 0 clears its prime,
// and filling operand 1 cranks the mill.
func (m *Mill) TransferIn(value *big.Int, prime bool) {
	value = new(big.Int).Set(value)
	m.mostRecent = value

	if prime {
		m.Ingress[2] = value
		return
	}

	m.Ingress[m.Axis] = value
	if m.Axis == 0 {
		m.Ingress[2] = new(big.Int)
	}

	m.Axis = (m.Axis + 1) % 2
	if m.Axis == 0 {
		m.crank()
	}
}

// TransferOut returns the result, or its prime axis.
func (m *Mill) TransferOut(prime bool) (value *big.Int) {
	if prime {
		value = new(big.Int).Set(m.Egress[1])
	} else {
		value = new(big.Int).Set(m.Egress[0])
	}
	m.mostRecent = value
	return new(big.Int).Set(value)
}

// LeftShift multiplies operand 0, with its prime, by 10^n.
// n must satisfy ValidShift.
func (m *Mill) LeftShift(n int) {
	value := new(big.Int).Mul(m.Ingress[2], limit)
	value.Add(value, m.Ingress[0])
	value.Mul(value, new(big.Int).Exp(ten, big.NewInt(int64(n)), nil))

	m.Ingress[2], m.Ingress[0] = DivMod(value, limit)
	m.mostRecent = value
}

// RightShift divides the result, with its prime, by 10^n.
// n must satisfy ValidShift.
func (m *Mill) RightShift(n int) {
	value := new(big.Int).Mul(m.Egress[1], limit)
	value.Add(value, m.Egress[0])
	value, _ = DivMod(value, new(big.Int).Exp(ten, big.NewInt(int64(n)), nil))

	m.Egress[1], m.Egress[0] = DivMod(value, limit)
	m.mostRecent = value
}

// crank performs the pending operation.
func (m *Mill) crank() {
	m.RunUp = false

	a := m.Ingress[0]
	b := m.Ingress[1]

	switch m.Operation {
	case OP_NONE:
		return
	case OP_ADD:
		r := new(big.Int).Add(a, b)
		switch {
		case r.Cmp(limit) >= 0:
			m.RunUp = true
			r.Sub(r, limit)
		case r.Cmp(negLimit) < 0:
			m.RunUp = true
			r.Add(r, limit)
		case a.Sign() >= 0 && r.Sign() < 0:
			m.RunUp = true
		}
		m.setEgress(r, zero)
	case OP_SUBTRACT:
		r := new(big.Int).Sub(a, b)
		switch {
		case r.Cmp(negLimit) <= 0:
			m.RunUp = true
			r.Add(r, limit)
			r.Neg(r)
		case r.Cmp(limit) >= 0:
			m.RunUp = true
			r.Sub(r, limit)
		case a.Sign() >= 0 && r.Sign() < 0:
			m.RunUp = true
		}
		m.setEgress(r, zero)
	case OP_MULTIPLY:
		r := new(big.Int).Mul(a, b)
		if new(big.Int).Abs(r).Cmp(limit) >= 0 {
			hi, lo := DivMod(r, limit)
			m.setEgress(lo, hi)
		} else {
			m.setEgress(r, zero)
		}
	case OP_DIVIDE:
		if b.Sign() == 0 {
			m.RunUp = true
			m.setEgress(zero, zero)
			break
		}
		dividend := new(big.Int).Mul(m.Ingress[2], limit)
		dividend.Add(dividend, a)
		q, r := DivMod(dividend, b)
		if q.Cmp(limit) >= 0 || q.Cmp(negLimit) < 0 {
			m.RunUp = true
			m.setEgress(zero, zero)
			break
		}
		m.setEgress(r, q)
	}

	m.Cranks++
	m.mostRecent = m.Egress[0]
}

func (m *Mill) setEgress(value, prime *big.Int) {
	m.Egress[0] = new(big.Int).Set(value)
	m.Egress[1] = new(big.Int).Set(prime)
}

// String returns the current mill state as a string.
func (m *Mill) String() (text string) {
	text += fmt.Sprintf("% 9s: %v\n", "operation", m.Operation)
	for n, v := range m.Ingress {
		text += fmt.Sprintf("% 9s: %v\n", fmt.Sprintf("ingress%d", n), v)
	}
	for n, v := range m.Egress {
		text += fmt.Sprintf("% 9s: %v\n", fmt.Sprintf("egress%d", n), v)
	}
	text += fmt.Sprintf("% 9s: %v\n", "run-up", m.RunUp)
	return
}
