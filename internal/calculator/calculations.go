package calculator

import (
	"github.com/y-hirakaw/calc/internal/errors"
)

// Operation is one (a, operator, b) input to FromOperations.
type Operation struct {
	A        float64
	Operator Operator
	B        float64
}

// Calculations is an ordered, append-only history. Only ClearHistory
// removes entries. It is not safe for concurrent use.
type Calculations struct {
	history []*Calculation
}

// NewCalculations returns an empty history.
func NewCalculations() *Calculations {
	return &Calculations{}
}

// FromOperations performs every operation in order and returns the history
// holding them. The first failing operation aborts construction.
func FromOperations(ops []Operation) (*Calculations, error) {
	calcs := &Calculations{history: make([]*Calculation, 0, len(ops))}
	for _, op := range ops {
		calc := NewCalculation(op.A, op.B, op.Operator)
		if err := calc.Perform(); err != nil {
			return nil, err
		}
		calcs.AddCalculation(calc)
	}
	return calcs, nil
}

// AddCalculation appends calc.
func (c *Calculations) AddCalculation(calc *Calculation) {
	c.history = append(c.history, calc)
}

// GetLast returns the most recently added calculation.
func (c *Calculations) GetLast() (*Calculation, error) {
	if len(c.history) == 0 {
		return nil, errors.HistoryEmpty()
	}
	return c.history[len(c.history)-1], nil
}

// ClearHistory removes every entry.
func (c *Calculations) ClearHistory() {
	c.history = nil
}

// History returns the entries in insertion order. The slice is a copy.
func (c *Calculations) History() []*Calculation {
	out := make([]*Calculation, len(c.history))
	copy(out, c.history)
	return out
}

// Len returns the number of entries.
func (c *Calculations) Len() int {
	return len(c.history)
}
