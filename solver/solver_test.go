package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepaint/core"
	"github.com/katalvlaran/tilepaint/solver"
)

func mustBoard(t *testing.T, goal core.Color, rows [][]core.Tile) *core.Board {
	t.Helper()
	b, err := core.FromTiles(goal, rows)
	require.NoError(t, err)

	return b
}

var (
	ee = core.Empty()
	ww = core.Wall()
)

func cg(dots int) core.Tile { return core.Colored(core.Green, dots) }
func cb(dots int) core.Tile { return core.Colored(core.Blue, dots) }

func TestSolve_UsageErrors(t *testing.T) {
	t.Run("nil board", func(t *testing.T) {
		_, err := solver.Solve(nil)
		require.ErrorIs(t, err, solver.ErrNilBoard)
	})

	t.Run("already solved start", func(t *testing.T) {
		b := mustBoard(t, core.Green, [][]core.Tile{
			{cg(1), cg(0)},
			{ee, ee},
		})
		_, err := solver.Solve(b)
		require.ErrorIs(t, err, solver.ErrSolvedStart)
	})

	t.Run("bad option", func(t *testing.T) {
		b := mustBoard(t, core.Green, [][]core.Tile{
			{cg(1), cb(0)},
			{ee, ee},
		})
		_, err := solver.Solve(b, solver.WithMaxStates(0))
		require.ErrorIs(t, err, solver.ErrOptionViolation)
	})
}

func TestSolve_OneMoveWin(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(1), cb(0)},
		{ee, ee},
	})
	before := b.Key()

	res, err := solver.Solve(b)
	require.NoError(t, err)
	assert.True(t, res.Solvable)
	assert.Equal(t, 1, res.Moves)
	assert.False(t, res.Capped)
	assert.Equal(t, before, b.Key(), "the input board is never mutated")
}

func TestSolve_TwoPaints(t *testing.T) {
	// Two disjoint blue cells around a dotted green center: two paint
	// moves, no shorter sequence exists.
	b := mustBoard(t, core.Green, [][]core.Tile{
		{ee, cb(0), ee},
		{cb(0), cg(3), ee},
		{ee, ee, ee},
	})

	res, err := solver.Solve(b)
	require.NoError(t, err)
	assert.True(t, res.Solvable)
	assert.Equal(t, 2, res.Moves)
}

func TestSolve_WallDetour(t *testing.T) {
	// The wall forces the green tile to walk around the bottom row
	// before it can paint: three relocations plus one paint.
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(4), ww, cb(0)},
		{ee, ee, ee},
		{ee, ee, ee},
	})

	res, err := solver.Solve(b)
	require.NoError(t, err)
	assert.True(t, res.Solvable)
	assert.Equal(t, 4, res.Moves)
}

func TestSolve_ProvenUnsolvable(t *testing.T) {
	// One dot, one unreachable blue cell: the whole reachable space is
	// three states, exhausted without a cap.
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(1), ee},
		{ee, cb(0)},
	})

	res, err := solver.Solve(b)
	require.NoError(t, err)
	assert.False(t, res.Solvable)
	assert.False(t, res.Capped, "full exhaustion is a proof, not a cap")
	assert.Equal(t, 3, res.Explored)
}

func TestSolve_CapGivesUnproven(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{ee, cb(0), ee},
		{cb(0), cg(3), ee},
		{ee, ee, ee},
	})

	res, err := solver.Solve(b, solver.WithMaxStates(1))
	require.NoError(t, err)
	assert.False(t, res.Solvable)
	assert.True(t, res.Capped)
	assert.Equal(t, 1, res.Explored)
}

func TestSolve_Deterministic(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(4), ww, cb(0)},
		{ee, cb(0), ee},
		{ee, ee, ee},
	})

	first, err := solver.Solve(b)
	require.NoError(t, err)
	second, err := solver.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
