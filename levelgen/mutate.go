package levelgen

import "github.com/katalvlaran/tilepaint/core"

// Reverse mutations. Each one undoes a hypothetical player move (or adds an
// obstacle), so applying them to a solved board walks backwards through
// playable positions. Every mutation edits the board in place and reports
// whether it changed anything; callers apply them to clones and keep only
// candidates that pass the validator.

// Weighted selection bounds for applyRandomMutation, out of 100.
const (
	paintWeight    = 50 // 50% reverse paint
	relocateWeight = 80 // 30% reverse relocation, remaining 20% wall
)

// applyRandomMutation picks one mutation by weight and applies it.
func (g *generator) applyRandomMutation(b *core.Board) bool {
	switch pick := g.rng.Intn(100); {
	case pick < paintWeight:
		return g.reversePaint(b)
	case pick < relocateWeight:
		return g.reverseRelocate(b)
	default:
		return g.addWall(b)
	}
}

// reversePaint undoes a flood paint around the goal anchor: the anchor gains
// the dot the forward paint would spend, and one multi-cell goal-colored
// region collapses back to a single off-color region (dots reset, since the
// forward paint preserves whatever dots the region carries). When the board
// has no multi-cell region yet, the mutation bootstraps one by seeding an
// off-color tile next to the anchor and topping the anchor up to two dots.
func (g *generator) reversePaint(b *core.Board) bool {
	gr, gc := anchor(b)
	goal, err := b.TileAt(gr, gc)
	if err != nil || !goal.IsColored() {
		return false
	}
	if goal.Dots < MaxDots {
		goal.Dots++
		b.SetTile(gr, gc, goal)
	}

	for _, seed := range goalCells(b) {
		comp := component(b, seed[0], seed[1], b.GoalColor())
		if len(comp) < 2 {
			continue
		}
		other := g.pickNonGoalColor()
		for _, p := range comp {
			if p == seed {
				continue
			}
			b.SetTile(p[0], p[1], core.Colored(other, 0))
		}
		return true
	}

	// Bootstrap: no region to collapse, so create the makings of one.
	for _, d := range core.OrthoOffsets() {
		nr, nc := gr+d[0], gc+d[1]
		t, err := b.TileAt(nr, nc)
		if err != nil || !t.IsEmpty() {
			continue
		}
		b.SetTile(nr, nc, core.Colored(g.pickNonGoalColor(), 0))
		goal, _ = b.TileAt(gr, gc)
		if goal.Dots < 2 {
			goal.Dots = 2
			b.SetTile(gr, gc, goal)
		}
		return true
	}
	return false
}

// reverseRelocate undoes a relocation: a colored tile slides onto an adjacent
// empty cell and regains the dot the forward move would spend (capped at
// MaxDots), leaving its old cell empty. The starting tile is drawn at random;
// the scan rotates from it so a crowded board still finds a movable tile.
func (g *generator) reverseRelocate(b *core.Board) bool {
	movable := coloredCells(b, true)
	if len(movable) == 0 {
		return false
	}
	start := g.rng.Intn(len(movable))
	for k := range movable {
		from := movable[(start+k)%len(movable)]
		open := adjacentEmpties(b, from[0], from[1])
		if len(open) == 0 {
			continue
		}
		to := open[g.rng.Intn(len(open))]
		src, _ := b.TileAt(from[0], from[1])
		dots := src.Dots + 1
		if dots > MaxDots {
			dots = MaxDots
		}
		b.SetTile(to[0], to[1], core.Colored(src.Color, dots))
		b.SetTile(from[0], from[1], core.Empty())
		return true
	}
	return false
}

// addWall turns an empty cell into a wall, preferring cells more than one
// step from the anchor so the obstacle shapes the route without sealing the
// goal in. Fails once the wall budget is spent.
func (g *generator) addWall(b *core.Board) bool {
	open := emptyCells(b)
	if len(open) == 0 || b.WallCount() >= wallCap(b) {
		return false
	}
	gr, gc := anchor(b)
	var pool [][2]int
	for _, p := range open {
		if manhattan(gr, gc, p[0], p[1]) > 1 {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		pool = open
	}
	p := pool[g.rng.Intn(len(pool))]
	b.SetTile(p[0], p[1], core.Wall())
	return true
}

// addNonGoalTile drops a dotless off-color tile onto an empty cell,
// preferring cells that touch a non-wall neighbor so the new tile stays
// paintable. Used by the repair phase to restore an off-color presence.
func (g *generator) addNonGoalTile(b *core.Board) bool {
	open := emptyCells(b)
	if len(open) == 0 {
		return false
	}
	var pool [][2]int
	for _, p := range open {
		for _, d := range core.OrthoOffsets() {
			if t, err := b.TileAt(p[0]+d[0], p[1]+d[1]); err == nil && !t.IsWall() {
				pool = append(pool, p)
				break
			}
		}
	}
	if len(pool) == 0 {
		pool = open
	}
	p := pool[g.rng.Intn(len(pool))]
	b.SetTile(p[0], p[1], core.Colored(g.pickNonGoalColor(), 0))
	return true
}

// pickNonGoalColor draws a random palette color distinct from the goal.
func (g *generator) pickNonGoalColor() core.Color {
	others := make([]core.Color, 0, len(core.Palette())-1)
	for _, c := range core.Palette() {
		if c != g.goal {
			others = append(others, c)
		}
	}
	return others[g.rng.Intn(len(others))]
}
