package solver_test

import (
	"fmt"

	"github.com/katalvlaran/tilepaint/core"
	"github.com/katalvlaran/tilepaint/solver"
)

// ExampleSolve proves the smallest board solvable in one paint.
// Scenario:
//
//   - 2x2 board, goal G: a dotted green source next to one blue cell
//   - BFS finds the single-move win immediately
func ExampleSolve() {
	b, _ := core.FromTiles(core.Green, [][]core.Tile{
		{core.Colored(core.Green, 1), core.Colored(core.Blue, 0)},
		{core.Empty(), core.Empty()},
	})

	res, _ := solver.Solve(b)
	fmt.Println("solvable:", res.Solvable)
	fmt.Println("moves:", res.Moves)

	// Output:
	// solvable: true
	// moves: 1
}
