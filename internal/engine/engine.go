package engine

// Display sentinels.
const (
	Zero  = "0"
	Error = "Error"
)

// HandleToken returns the display that follows current after tok is pressed.
// It is pure and never fails: an expression that cannot be evaluated turns
// the display into Error.
func HandleToken(current string, tok Token) string {
	next, _ := step(current, tok)
	return next
}

func step(current string, tok Token) (string, error) {
	switch tok {
	case Clear:
		return Zero, nil
	case Delete:
		if len(current) > 1 {
			return current[:len(current)-1], nil
		}
		return Zero, nil
	case Equals:
		out, err := Compute(current)
		if err != nil {
			return Error, err
		}
		return out, nil
	}
	if current == Zero || current == Error || current == "" {
		return string(tok), nil
	}
	return current + string(tok), nil
}

// Calculator holds the display buffer of one session.
type Calculator struct {
	display string
	lastErr error
}

// NewCalculator returns a calculator showing Zero.
func NewCalculator() *Calculator {
	return &Calculator{display: Zero}
}

// Display returns the current display buffer.
func (c *Calculator) Display() string { return c.display }

// Press applies tok and returns the new display.
func (c *Calculator) Press(tok Token) string {
	c.display, c.lastErr = step(c.display, tok)
	return c.display
}

// Err returns the evaluation error behind the current Error display. It is
// nil unless the most recent Press was a failed "=".
func (c *Calculator) Err() error { return c.lastErr }

// Reset returns the calculator to Zero.
func (c *Calculator) Reset() {
	c.display = Zero
	c.lastErr = nil
}
