// File: core/example_test.go
package core_test

import (
	"fmt"

	"github.com/katalvlaran/tilepaint/core"
)

// ExampleBoard_MoveTile plays the smallest possible game to a win.
// Scenario:
//
//   - 2x2 board, goal color G
//   - (0,0) holds G with 1 dot, (0,1) holds B, bottom row is empty
//   - one paint move from (0,0) onto (0,1) repaints B to G and
//     spends the dot — the board is solved
//
// Complexity: O(rows·cols) for the single flood fill.
func ExampleBoard_MoveTile() {
	b, _ := core.FromTiles(core.Green, [][]core.Tile{
		{core.Colored(core.Green, 1), core.Colored(core.Blue, 0)},
		{core.Empty(), core.Empty()},
	})

	out, _ := b.MoveTile(0, 0, 0, 1)
	fmt.Println("outcome:", out)
	fmt.Println("solved:", b.Solved())
	fmt.Println(b)

	// Output:
	// outcome: painted
	// solved: true
	// G G
	// _ _
}

// ExampleBoard_Key shows the row-major content encoding the solver uses
// to deduplicate states.
func ExampleBoard_Key() {
	b, _ := core.FromTiles(core.Blue, [][]core.Tile{
		{core.Colored(core.Blue, 2), core.Wall()},
		{core.Empty(), core.Colored(core.Red, 0)},
	})
	fmt.Println(b.Key())

	// Output:
	// B2,W,E,R0,
}
