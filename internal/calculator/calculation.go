package calculator

import (
	"fmt"

	"github.com/y-hirakaw/calc/internal/utils"
)

// Calculation is a single binary operation and, once performed, its result.
type Calculation struct {
	A        float64
	B        float64
	Operator Operator

	result    float64
	performed bool
}

// NewCalculation returns an unperformed calculation.
func NewCalculation(a, b float64, op Operator) *Calculation {
	return &Calculation{A: a, B: b, Operator: op}
}

// Perform computes and stores the result. Calling it again recomputes the
// same value. On error the stored result is left untouched.
func (c *Calculation) Perform() error {
	result, err := c.Operator.apply(c.A, c.B)
	if err != nil {
		return err
	}
	c.result = result
	c.performed = true
	return nil
}

// Result returns the stored result and whether Perform has succeeded.
func (c *Calculation) Result() (float64, bool) {
	return c.result, c.performed
}

// String renders "a op b = result"; the result is "?" until performed.
func (c *Calculation) String() string {
	result := "?"
	if c.performed {
		result = utils.FormatNumber(c.result)
	}
	return fmt.Sprintf("%s %s %s = %s",
		utils.FormatNumber(c.A), c.Operator, utils.FormatNumber(c.B), result)
}
