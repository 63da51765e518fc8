package levelgen

import "github.com/katalvlaran/tilepaint/core"

// Per-feature weights of the difficulty score. Dots and spread are capped so
// a single feature cannot dominate the total.
const (
	wallWeight     = 4
	offColorWeight = 4
	dotScoreCap    = 15
	spreadCap      = 10
)

// DefaultTarget returns the difficulty score Generate drives toward when no
// explicit target is configured: max(15, rows*cols+6), so larger boards are
// pushed proportionally harder.
func DefaultTarget(rows, cols int) int {
	if t := rows*cols + 6; t > 15 {
		return t
	}
	return 15
}

// Difficulty scores a board: walls and off-color tiles weigh 4 each, total
// dots contribute up to 15, and the mean Manhattan distance from the goal
// anchor to the off-color tiles contributes up to 10. The score is what the
// mutation loop compares against the target and what Report.Difficulty
// echoes back.
func Difficulty(b *core.Board) int {
	score := b.WallCount() * wallWeight
	score += b.NonGoalCount() * offColorWeight

	if dots := b.TotalDots(); dots < dotScoreCap {
		score += dots
	} else {
		score += dotScoreCap
	}

	offColor := coloredCells(b, false)
	if len(offColor) > 0 {
		gr, gc := anchor(b)
		sum := 0
		for _, p := range offColor {
			sum += manhattan(gr, gc, p[0], p[1])
		}
		// Integer mean keeps the score stable for near-identical layouts.
		if mean := sum / len(offColor); mean < spreadCap {
			score += mean
		} else {
			score += spreadCap
		}
	}
	return score
}
