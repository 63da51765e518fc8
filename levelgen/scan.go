package levelgen

import (
	"math"

	"github.com/katalvlaran/tilepaint/core"
)

// Read-only board scans shared by the mutations, the validator and the
// difficulty score. All of them visit cells in row-major order so the
// generator stays deterministic for a fixed seed.

// anchor returns the coordinates of the goal anchor: the first goal-colored
// cell in row-major order, falling back to the board center when no such
// cell exists yet.
func anchor(b *core.Board) (int, int) {
	goal := b.GoalColor()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if t, _ := b.TileAt(r, c); t.IsColored() && t.Color == goal {
				return r, c
			}
		}
	}
	return b.Rows() / 2, b.Cols() / 2
}

// goalCells lists every goal-colored cell in row-major order.
func goalCells(b *core.Board) [][2]int {
	var out [][2]int
	goal := b.GoalColor()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if t, _ := b.TileAt(r, c); t.IsColored() && t.Color == goal {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

// coloredCells lists colored cells in row-major order. When includeGoal is
// false, goal-colored cells are skipped.
func coloredCells(b *core.Board, includeGoal bool) [][2]int {
	var out [][2]int
	goal := b.GoalColor()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			t, _ := b.TileAt(r, c)
			if !t.IsColored() {
				continue
			}
			if !includeGoal && t.Color == goal {
				continue
			}
			out = append(out, [2]int{r, c})
		}
	}
	return out
}

// emptyCells lists empty cells in row-major order.
func emptyCells(b *core.Board) [][2]int {
	var out [][2]int
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if t, _ := b.TileAt(r, c); t.IsEmpty() {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

// adjacentEmpties lists the empty orthogonal neighbors of (r,c) in
// up/down/left/right order.
func adjacentEmpties(b *core.Board, r, c int) [][2]int {
	var out [][2]int
	for _, d := range core.OrthoOffsets() {
		nr, nc := r+d[0], c+d[1]
		if t, err := b.TileAt(nr, nc); err == nil && t.IsEmpty() {
			out = append(out, [2]int{nr, nc})
		}
	}
	return out
}

// component collects the orthogonally connected region of color-matching
// tiles containing (r,c). It returns nil when the seed cell does not match.
// Iterative frontier walk, same shape as the paint flood in core.
func component(b *core.Board, r, c int, color core.Color) [][2]int {
	if t, err := b.TileAt(r, c); err != nil || !t.IsColored() || t.Color != color {
		return nil
	}
	cols := b.Cols()
	visited := make([]bool, b.Rows()*cols)
	visited[r*cols+c] = true
	queue := [][2]int{{r, c}}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range core.OrthoOffsets() {
			nr, nc := cur[0]+d[0], cur[1]+d[1]
			t, err := b.TileAt(nr, nc)
			if err != nil || visited[nr*cols+nc] {
				continue
			}
			if t.IsColored() && t.Color == color {
				visited[nr*cols+nc] = true
				queue = append(queue, [2]int{nr, nc})
			}
		}
	}
	return queue
}

// manhattan returns |r1-r2| + |c1-c2|.
func manhattan(r1, c1, r2, c2 int) int {
	dr, dc := r1-r2, c1-c2
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// wallCap returns the wall budget for a board: floor(cells * MaxWallRatio).
func wallCap(b *core.Board) int {
	return int(math.Floor(float64(b.Rows()*b.Cols()) * MaxWallRatio))
}
