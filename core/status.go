package core

// Solved reports whether every Colored cell matches the goal color.
// Empty and Wall cells never affect the result; an all-Empty board is
// vacuously solved.
func (b *Board) Solved() bool {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if t := b.cells[r][c]; t.IsColored() && t.Color != b.goal {
				return false
			}
		}
	}

	return true
}

// GameOver reports whether play has ended: the board is solved, or no
// Colored cell retains a dot to spend. A board with dots left but no
// legal move is deliberately NOT game over under this definition;
// controllers that want to detect stuck positions ask HasLegalMove.
func (b *Board) GameOver() bool {
	return b.Solved() || !b.HasActiveDot()
}

// HasLegalMove reports whether some Colored cell with dots > 0 has an
// orthogonal neighbor it could act on: an Empty cell (relocate) or a
// differently colored cell (paint).
func (b *Board) HasLegalMove() bool {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			t := b.cells[r][c]
			if !t.IsColored() || t.Dots < 1 {
				continue
			}
			for _, d := range orthoOffsets {
				nr, nc := r+d[0], c+d[1]
				if !b.InBounds(nr, nc) {
					continue
				}
				nb := b.cells[nr][nc]
				if nb.IsEmpty() || (nb.IsColored() && nb.Color != t.Color) {
					return true
				}
			}
		}
	}

	return false
}
