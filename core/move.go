package core

import "fmt"

// MoveTile applies one player action from (fromRow,fromCol) onto the
// orthogonally adjacent (toRow,toCol) and reports what happened.
//
// Usage errors (out-of-range coordinates, endpoints not exactly one
// orthogonal step apart) return a non-nil error and leave the board
// byte-for-byte unchanged. In-game no-ops (no dot to spend, wall
// destination, destination already source-colored) return their outcome
// with a nil error and also leave the board unchanged — controllers
// distinguish them from progress via MoveOutcome.Mutated.
//
// On MoveRelocated the source value moves into the empty destination and
// its dot count drops by one. On MovePainted the destination's whole
// 4-connected same-color region takes the source color, then the source
// dot count drops by one.
//
// Complexity: O(rows·cols) worst case (one flood fill), O(1) otherwise.
func (b *Board) MoveTile(fromRow, fromCol, toRow, toCol int) (MoveOutcome, error) {
	if !b.InBounds(fromRow, fromCol) {
		return MoveNoDots, fmt.Errorf("core: from (%d,%d): %w", fromRow, fromCol, ErrOutOfBounds)
	}
	if !b.InBounds(toRow, toCol) {
		return MoveNoDots, fmt.Errorf("core: to (%d,%d): %w", toRow, toCol, ErrOutOfBounds)
	}
	dr, dc := toRow-fromRow, toCol-fromCol
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr+dc != 1 {
		return MoveNoDots, fmt.Errorf("core: (%d,%d)->(%d,%d): %w",
			fromRow, fromCol, toRow, toCol, ErrNotAdjacent)
	}

	src := b.cells[fromRow][fromCol]
	if !src.IsColored() || src.Dots < 1 {
		return MoveNoDots, nil
	}
	dst := b.cells[toRow][toCol]
	switch {
	case dst.IsWall():
		return MoveWallBlocked, nil
	case dst.IsEmpty():
		src.Dots--
		b.cells[toRow][toCol] = src
		b.cells[fromRow][fromCol] = Empty()

		return MoveRelocated, nil
	case dst.Color == src.Color:
		// Painting your own color achieves nothing; the dot is kept.
		return MoveSameColor, nil
	default:
		b.floodPaint(toRow, toCol, dst.Color, src.Color)
		src.Dots--
		b.cells[fromRow][fromCol] = src

		return MovePainted, nil
	}
}

// floodPaint recolors the 4-connected component of cells colored from,
// starting at (startR,startC), to the color to. Dots on repainted cells
// are untouched. Breadth-first with an explicit frontier and visited
// set; never recurses, so stack depth is independent of board size.
func (b *Board) floodPaint(startR, startC int, from, to Color) {
	total := b.rows * b.cols
	visited := make([]bool, total)
	queue := make([]int, 0, total)

	start := startR*b.cols + startC
	visited[start] = true
	queue = append(queue, start)

	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		r, c := idx/b.cols, idx%b.cols

		t := b.cells[r][c]
		t.Color = to
		b.cells[r][c] = t

		for _, d := range orthoOffsets {
			nr, nc := r+d[0], c+d[1]
			if !b.InBounds(nr, nc) {
				continue
			}
			nidx := nr*b.cols + nc
			if visited[nidx] {
				continue
			}
			if nb := b.cells[nr][nc]; !nb.IsColored() || nb.Color != from {
				continue
			}
			visited[nidx] = true
			queue = append(queue, nidx)
		}
	}
}
