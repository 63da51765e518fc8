package levelgen

import (
	"fmt"

	"github.com/katalvlaran/tilepaint/core"
)

// template synthesizes the starting board for a generation run: a sparse
// scatter of dotted goal tiles, a burst of reverse paints to grow structure
// around them, then a coalescing pass that leaves exactly one goal-colored
// anchor. The result is playable raw material for the mutation loop, not a
// finished level.
func (g *generator) template() (*core.Board, error) {
	b, err := core.NewBoard(g.rows, g.cols, g.goal)
	if err != nil {
		return nil, fmt.Errorf("levelgen: building template: %w", err)
	}

	// Scatter a handful of goal tiles with small dot loads. Collisions with
	// already-placed tiles just burn an attempt, so placement stays cheap.
	want := g.rows * g.cols / 4
	if want < 3 {
		want = 3
	}
	span := 3
	if span > MaxDots {
		span = MaxDots
	}
	placed := 0
	for attempt := 0; attempt < want*3 && placed < want; attempt++ {
		r, c := g.rng.Intn(g.rows), g.rng.Intn(g.cols)
		if t, _ := b.TileAt(r, c); !t.IsEmpty() {
			continue
		}
		b.SetTile(r, c, core.Colored(g.goal, 1+g.rng.Intn(span)))
		placed++
	}

	// Un-paint in place a few times to grow off-color regions and walls of
	// dots around the scatter. Failed attempts are fine; they only cost rng.
	paints := templatePaintsMin + g.rng.Intn(templatePaintsSpan)
	for i := 0; i < paints; i++ {
		g.reversePaint(b)
	}

	g.coalesce(b)

	// A template with nothing left to paint would starve the mutation loop.
	// Coalescing guarantees off-color tiles whenever more than one goal tile
	// survived, so this only fires on degenerate rng draws.
	if b.Solved() {
		return nil, ErrTemplateSolved
	}
	return b, nil
}

// coalesce recolors every goal-colored cell except the row-major first one,
// so the single-goal predicate can hold. The recolored cells keep no dots;
// they become paint targets, not actors.
func (g *generator) coalesce(b *core.Board) {
	goals := goalCells(b)
	if len(goals) < 2 {
		return
	}
	for _, p := range goals[1:] {
		b.SetTile(p[0], p[1], core.Colored(g.pickNonGoalColor(), 0))
	}
}
