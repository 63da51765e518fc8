package levelgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepaint/core"
)

func TestReversePaint_Bootstrap(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{ee, ee, ee},
		{ee, cg(1), ee},
		{ee, ee, ee},
	})
	g := newTestGen(3, 3, core.Green, 1)

	require.True(t, g.reversePaint(b))

	// Anchor gains the forward paint's dot and the first open neighbor
	// (scan order up, down, left, right) becomes the paint target.
	goal, err := b.TileAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Green, goal.Color)
	assert.Equal(t, 2, goal.Dots)

	seeded, err := b.TileAt(0, 1)
	require.NoError(t, err)
	assert.True(t, seeded.IsColored())
	assert.NotEqual(t, core.Green, seeded.Color)
	assert.Zero(t, seeded.Dots)
}

func TestReversePaint_CollapsesRegion(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(2), cg(1)},
		{ee, ee},
	})
	g := newTestGen(2, 2, core.Green, 3)

	require.True(t, g.reversePaint(b))

	anchorTile, err := b.TileAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Green, anchorTile.Color)
	assert.Equal(t, 3, anchorTile.Dots)

	collapsed, err := b.TileAt(0, 1)
	require.NoError(t, err)
	assert.True(t, collapsed.IsColored())
	assert.NotEqual(t, core.Green, collapsed.Color)
	assert.Zero(t, collapsed.Dots, "a forward paint would have preserved these dots, so the reverse resets them")

	assert.Len(t, goalCells(b), 1)
}

func TestReversePaint_RespectsDotCap(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(MaxDots), cg(0)},
		{ee, ee},
	})
	g := newTestGen(2, 2, core.Green, 5)

	require.True(t, g.reversePaint(b))

	goal, err := b.TileAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxDots, goal.Dots)
}

func TestReverseRelocate_SlidesAndRefunds(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(1), ee},
		{ee, ee},
	})
	g := newTestGen(2, 2, core.Green, 9)

	require.True(t, g.reverseRelocate(b))

	moved := coloredCells(b, true)
	require.Len(t, moved, 1)
	tile, err := b.TileAt(moved[0][0], moved[0][1])
	require.NoError(t, err)
	assert.Equal(t, core.Green, tile.Color)
	assert.Equal(t, 2, tile.Dots, "the forward move would spend one dot, so the reverse refunds it")

	origin, err := b.TileAt(0, 0)
	require.NoError(t, err)
	assert.True(t, origin.IsEmpty())
}

func TestReverseRelocate_NeedsEmptyNeighbor(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(1), cb(0)},
		{cb(0), cb(0)},
	})
	g := newTestGen(2, 2, core.Green, 11)
	before := b.Key()

	assert.False(t, g.reverseRelocate(b))
	assert.Equal(t, before, b.Key())
}

func TestAddWall_PrefersFarCells(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{ee, ee, ee, ee, ee},
		{ee, ee, ee, ee, ee},
		{ee, ee, cg(1), ee, ee},
		{ee, ee, ee, ee, ee},
		{ee, ee, ee, ee, ee},
	})
	g := newTestGen(5, 5, core.Green, 13)

	require.True(t, g.addWall(b))
	require.Equal(t, 1, b.WallCount())

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if tile, _ := b.TileAt(r, c); tile.IsWall() {
				assert.Greater(t, manhattan(2, 2, r, c), 1,
					"wall at (%d,%d) crowds the anchor", r, c)
			}
		}
	}
}

func TestAddWall_BudgetStopsIt(t *testing.T) {
	// floor(4 * 0.25) = 1 wall allowed, already present.
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(1), ww},
		{ee, ee},
	})
	g := newTestGen(2, 2, core.Green, 17)

	assert.False(t, g.addWall(b))
	assert.Equal(t, 1, b.WallCount())
}

func TestAddNonGoalTile_PlacesPaintTarget(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{ee, ee, ee},
		{ee, cg(1), ee},
		{ee, ee, ee},
	})
	g := newTestGen(3, 3, core.Green, 19)

	require.True(t, g.addNonGoalTile(b))
	require.Equal(t, 1, b.NonGoalCount())

	placed := coloredCells(b, false)
	require.Len(t, placed, 1)
	tile, err := b.TileAt(placed[0][0], placed[0][1])
	require.NoError(t, err)
	assert.Zero(t, tile.Dots)
}

func TestPickNonGoalColor_AvoidsGoal(t *testing.T) {
	g := newTestGen(3, 3, core.Blue, 23)
	for i := 0; i < 50; i++ {
		c := g.pickNonGoalColor()
		assert.True(t, c.Valid())
		assert.NotEqual(t, core.Blue, c)
	}
}

// TestTemplate_SingleAnchor checks the shape every template must have before
// the mutation loop takes over: one goal anchor, something left to paint,
// and room to move.
func TestTemplate_SingleAnchor(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g := newTestGen(4, 4, core.Green, seed)
		b, err := g.template()
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, 4, b.Rows())
		assert.Equal(t, 4, b.Cols())
		assert.Len(t, goalCells(b), 1, "seed %d board:\n%s", seed, b)
		assert.False(t, b.Solved())
		assert.GreaterOrEqual(t, b.NonGoalCount(), 1)
	}
}

func TestTemplate_Deterministic(t *testing.T) {
	b1, err := newTestGen(4, 4, core.Red, 77).template()
	require.NoError(t, err)
	b2, err := newTestGen(4, 4, core.Red, 77).template()
	require.NoError(t, err)
	assert.Equal(t, b1.Key(), b2.Key())
}
