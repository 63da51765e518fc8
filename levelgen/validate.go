package levelgen

import "github.com/katalvlaran/tilepaint/core"

// The validator is a battery of named structural predicates. Every mutation
// candidate must pass all of them before it replaces the current board, so
// any board Generate returns satisfies the full battery. Failures are an
// internal steering signal for the mutation loop, never a caller-visible
// error.

// predicate pairs a stable name (used in debug logs and tests) with its check.
type predicate struct {
	name string
	fn   func(*core.Board) bool
}

// predicates lists the battery in evaluation order. The order matters only
// for which failure gets reported first; acceptance requires all of them.
var predicates = []predicate{
	{"dimensions", hasValidDimensions},
	{"single-goal", hasSingleGoalCell},
	{"open-cell", hasOpenCell},
	{"wall-budget", withinWallBudget},
	{"dot-budget", withinDotBudget},
	{"active-dot", hasActiveDot},
	{"goal-neighbor", goalHasOpenNeighbor},
	{"goal-reach", goalReachesEmpty},
	{"unsolved", isUnsolved},
	{"goal-paint", goalCanPaint},
	{"legal-move", hasLegalMove},
	{"paint-progress", paintLeavesProgress},
	{"off-color", hasOffColorTile},
}

// validateBoard runs the battery and returns the name of the first failing
// predicate, or "" when the board passes all of them.
func validateBoard(b *core.Board) string {
	for _, p := range predicates {
		if !p.fn(b) {
			return p.name
		}
	}
	return ""
}

// hasValidDimensions re-checks the core size bounds. A Board built through
// core constructors cannot violate them; the battery states the requirement
// anyway so validity does not depend on how the board was obtained.
func hasValidDimensions(b *core.Board) bool {
	rows, cols := b.Rows(), b.Cols()
	return rows >= core.MinSide && cols >= core.MinSide && rows*cols <= core.MaxCells
}

// hasSingleGoalCell requires exactly one goal-colored cell, the anchor the
// player paints outward from.
func hasSingleGoalCell(b *core.Board) bool {
	return len(goalCells(b)) == 1
}

// hasOpenCell requires at least one empty cell so relocation moves exist.
func hasOpenCell(b *core.Board) bool {
	return b.EmptyCount() >= 1
}

// withinWallBudget caps walls at MaxWallRatio of the board.
func withinWallBudget(b *core.Board) bool {
	return b.WallCount() <= wallCap(b)
}

// withinDotBudget bounds dots per tile and in total.
func withinDotBudget(b *core.Board) bool {
	total := 0
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			t, _ := b.TileAt(r, c)
			if !t.IsColored() {
				continue
			}
			if t.Dots < 0 || t.Dots > MaxDots {
				return false
			}
			total += t.Dots
		}
	}
	return total <= MaxTotalDots
}

// hasActiveDot requires at least one colored tile with a dot left to spend.
func hasActiveDot(b *core.Board) bool {
	return b.HasActiveDot()
}

// goalHasOpenNeighbor requires the anchor to touch at least one non-wall
// cell, otherwise it can never act.
func goalHasOpenNeighbor(b *core.Board) bool {
	gr, gc := anchor(b)
	for _, d := range core.OrthoOffsets() {
		if t, err := b.TileAt(gr+d[0], gc+d[1]); err == nil && !t.IsWall() {
			return true
		}
	}
	return false
}

// goalReachesEmpty requires a wall-free path from the anchor to some empty
// cell, so the board retains room to maneuver.
func goalReachesEmpty(b *core.Board) bool {
	gr, gc := anchor(b)
	cols := b.Cols()
	visited := make([]bool, b.Rows()*cols)
	visited[gr*cols+gc] = true
	queue := [][2]int{{gr, gc}}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if t, _ := b.TileAt(cur[0], cur[1]); t.IsEmpty() {
			return true
		}
		for _, d := range core.OrthoOffsets() {
			nr, nc := cur[0]+d[0], cur[1]+d[1]
			t, err := b.TileAt(nr, nc)
			if err != nil || t.IsWall() || visited[nr*cols+nc] {
				continue
			}
			visited[nr*cols+nc] = true
			queue = append(queue, [2]int{nr, nc})
		}
	}
	return false
}

// isUnsolved rejects boards that are already won.
func isUnsolved(b *core.Board) bool {
	return !b.Solved()
}

// goalCanPaint requires the anchor to have a dot and an adjacent off-color
// tile, so the opening paint move exists.
func goalCanPaint(b *core.Board) bool {
	gr, gc := anchor(b)
	goal, err := b.TileAt(gr, gc)
	if err != nil || !goal.IsColored() || goal.Dots < 1 {
		return false
	}
	for _, d := range core.OrthoOffsets() {
		if t, err := b.TileAt(gr+d[0], gc+d[1]); err == nil && t.IsColored() && t.Color != goal.Color {
			return true
		}
	}
	return false
}

// hasLegalMove requires at least one legal move somewhere on the board.
func hasLegalMove(b *core.Board) bool {
	return b.HasLegalMove()
}

// paintLeavesProgress replays the opening paint on a scratch clone and
// requires the position after it to still offer a legal move and an active
// dot. Each candidate neighbor is simulated with the real move rules, so the
// check can never drift from live play.
func paintLeavesProgress(b *core.Board) bool {
	gr, gc := anchor(b)
	goal, err := b.TileAt(gr, gc)
	if err != nil || !goal.IsColored() {
		return false
	}
	for _, d := range core.OrthoOffsets() {
		nr, nc := gr+d[0], gc+d[1]
		t, err := b.TileAt(nr, nc)
		if err != nil || !t.IsColored() || t.Color == goal.Color {
			continue
		}
		scratch := b.Clone()
		out, err := scratch.MoveTile(gr, gc, nr, nc)
		if err != nil || out != core.MovePainted {
			continue
		}
		if scratch.HasLegalMove() && scratch.HasActiveDot() {
			return true
		}
	}
	return false
}

// hasOffColorTile requires at least one colored tile that still needs
// painting, otherwise the board is trivially one relocation from stale.
func hasOffColorTile(b *core.Board) bool {
	return b.NonGoalCount() >= 1
}
