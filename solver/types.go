package solver

import (
	"errors"
	"fmt"
)

// DefaultMaxStates is the exploration budget applied when no
// WithMaxStates option is given. Large enough to exhaust every board
// the generator emits in practice, small enough to bound a pathological
// search to well under a second.
const DefaultMaxStates = 100_000

var (
	// ErrNilBoard is returned by Solve(nil).
	ErrNilBoard = errors.New("solver: nil board")
	// ErrSolvedStart is returned when the start state is already solved;
	// proving solvability of a solved board is meaningless, and the
	// generator treats it as a usage bug upstream.
	ErrSolvedStart = errors.New("solver: start board is already solved")
	// ErrOptionViolation is returned when a With... option received an
	// invalid value.
	ErrOptionViolation = errors.New("solver: option violation")
)

// Options configure one Solve run.
type Options struct {
	// MaxStates caps how many distinct states may be expanded before
	// the search gives up unproven. Must be >= 1.
	MaxStates int

	// err records the first option violation; surfaced by Solve.
	err error
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{MaxStates: DefaultMaxStates}
}

// Option mutates Options in functional-options style.
type Option func(*Options)

// WithMaxStates overrides the exploration budget. Values below 1 are
// rejected via ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxStates must be >= 1, got %d", ErrOptionViolation, n)

			return
		}
		o.MaxStates = n
	}
}

// Result is the verdict of one Solve run.
type Result struct {
	// Solvable is true only when a solved state was actually reached.
	Solvable bool
	// Moves is the length of a shortest winning move sequence when
	// Solvable is true; 0 otherwise.
	Moves int
	// Explored counts the states expanded before the verdict.
	Explored int
	// Capped marks a search cut short by MaxStates. Solvable == false
	// with Capped == true means "not proven" (a false negative is
	// possible); with Capped == false it is a proof of unsolvability.
	Capped bool
}
