package game

import "math"

// Budget limits how many successor lists may be generated during one turn.
type Budget interface {
	Remaining() int
	// Consume takes one expansion and reports whether one was available
	Consume() bool
}

// Expansions is the turn budget owned by a controller.
type Expansions struct {
	remaining int
}

func NewExpansions(n int) *Expansions {
	e := &Expansions{}
	e.Reset(n)
	return e
}

func (e *Expansions) Reset(n int) {
	if n < 0 {
		n = 0
	}
	e.remaining = n
}

func (e *Expansions) Remaining() int {
	return e.remaining
}

func (e *Expansions) Consume() bool {
	if e.remaining <= 0 {
		return false
	}
	e.remaining--
	return true
}

type unlimited struct{}

// Unlimited returns a budget that never runs out
func Unlimited() Budget {
	return unlimited{}
}

func (unlimited) Remaining() int { return math.MaxInt }
func (unlimited) Consume() bool  { return true }
