package solver

import (
	"github.com/katalvlaran/tilepaint/core"
)

// Solve runs a bounded breadth-first search over the forward-move state
// space of b and reports whether a solved state is reachable. The input
// board is never mutated; every successor is generated on a clone.
//
// Returns ErrNilBoard, ErrSolvedStart, or ErrOptionViolation for
// unusable input; an unproven verdict is a Result, never an error.
//
// Complexity: O(S · rows·cols), S ≤ Options.MaxStates.
func Solve(b *core.Board, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if b.Solved() {
		return nil, ErrSolvedStart
	}

	w := &walker{
		opts:    o,
		dirs:    core.OrthoOffsets(),
		visited: map[string]struct{}{b.Key(): {}},
		res:     &Result{},
	}
	w.queue = append(w.queue, state{board: b, depth: 0})

	return w.run()
}

// state is one node of the search: a board plus its move depth.
type state struct {
	board *core.Board
	depth int
}

// walker owns the frontier, the visited set, and the verdict of one
// Solve invocation. Everything here is local to a single call; solver
// runs share nothing.
type walker struct {
	opts    Options
	dirs    [4][2]int
	queue   []state
	visited map[string]struct{}
	res     *Result
}

// run drains the frontier until a solved successor is found, the budget
// is exhausted, or the reachable space is fully explored.
func (w *walker) run() (*Result, error) {
	for qi := 0; qi < len(w.queue); qi++ {
		if w.res.Explored >= w.opts.MaxStates {
			w.res.Capped = true

			return w.res, nil
		}
		w.res.Explored++
		if w.expand(w.queue[qi]) {
			return w.res, nil
		}
		// Release the expanded board; the frontier can hold thousands.
		w.queue[qi].board = nil
	}

	return w.res, nil
}

// expand enqueues every legal successor of cur, reporting true as soon
// as one of them is solved.
func (w *walker) expand(cur state) bool {
	b := cur.board
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			src, _ := b.TileAt(r, c)
			if !src.IsColored() || src.Dots < 1 {
				continue
			}
			for _, d := range w.dirs {
				nr, nc := r+d[0], c+d[1]
				dst, err := b.TileAt(nr, nc)
				if err != nil {
					continue // off the board
				}
				if dst.IsWall() || (dst.IsColored() && dst.Color == src.Color) {
					continue
				}
				next := b.Clone()
				if out, merr := next.MoveTile(r, c, nr, nc); merr != nil || !out.Mutated() {
					continue
				}
				if next.Solved() {
					w.res.Solvable = true
					w.res.Moves = cur.depth + 1

					return true
				}
				key := next.Key()
				if _, seen := w.visited[key]; seen {
					continue
				}
				w.visited[key] = struct{}{}
				w.queue = append(w.queue, state{board: next, depth: cur.depth + 1})
			}
		}
	}

	return false
}
