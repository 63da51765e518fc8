// Package solver decides whether a tilepaint board is solvable: whether
// some finite sequence of legal moves reaches a state where every
// colored cell matches the goal color.
//
// What it does:
//
//   - Breadth-first search over full board states. A state is the exact
//     content of every cell; states are deduplicated by core.Board.Key.
//   - Successors of a state are every legal MoveTile from every colored
//     cell with dots > 0 onto every orthogonal neighbor that is neither
//     a wall nor same-colored, each applied to a fresh clone.
//   - The first solved successor proves solvability; Result.Moves is
//     then the length of a shortest winning sequence.
//
// Why bounded:
//
//	The state space is exponential in the worst case, so exploration
//	stops after Options.MaxStates expansions. A capped run that found
//	no solution reports Solvable == false with Capped == true — "not
//	proven", a possible false negative the generator knowingly accepts.
//	An uncapped exhaustion (Capped == false) is a proof of
//	unsolvability.
//
// Errors:
//
//   - ErrNilBoard        — Solve(nil)
//   - ErrSolvedStart     — a solved start state proves nothing about play
//   - ErrOptionViolation — a With... option received an invalid value
//
// Complexity: O(S · rows·cols) time and O(S · rows·cols) memory, where
// S ≤ MaxStates is the number of expanded states.
package solver
