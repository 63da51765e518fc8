package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepaint/core"
)

func TestMoveTile_UsageErrors(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(2), cb(0), ee},
		{ee, ee, ee},
		{ee, ee, ee},
	})
	before := b.Key()

	cases := []struct {
		name                   string
		fromR, fromC, toR, toC int
		wantErr                error
	}{
		{"from out of range", -1, 0, 0, 0, core.ErrOutOfBounds},
		{"to out of range", 0, 0, 0, 3, core.ErrOutOfBounds},
		{"diagonal", 0, 0, 1, 1, core.ErrNotAdjacent},
		{"two steps", 0, 0, 0, 2, core.ErrNotAdjacent},
		{"same cell", 0, 0, 0, 0, core.ErrNotAdjacent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.MoveTile(tc.fromR, tc.fromC, tc.toR, tc.toC)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, before, b.Key(), "a rejected move must not mutate the board")
		})
	}
}

func TestMoveTile_RelocateToEmpty(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(2), ee},
		{ee, ee},
	})

	out, err := b.MoveTile(0, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, core.MoveRelocated, out)
	assert.True(t, out.Mutated())

	moved, err := b.TileAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, cg(1), moved, "dots drop by exactly one on relocate")

	vacated, err := b.TileAt(0, 0)
	require.NoError(t, err)
	assert.True(t, vacated.IsEmpty(), "the vacated cell becomes empty")
}

func TestMoveTile_NoOps(t *testing.T) {
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(0), cb(2), ww},
		{ee, cb(1), ee},
		{cg(3), ee, ee},
	})
	before := b.Key()

	t.Run("no dots on source", func(t *testing.T) {
		out, err := b.MoveTile(0, 0, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, core.MoveNoDots, out)
		assert.Equal(t, before, b.Key())
	})

	t.Run("empty source", func(t *testing.T) {
		out, err := b.MoveTile(1, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, core.MoveNoDots, out)
		assert.Equal(t, before, b.Key())
	})

	t.Run("wall destination", func(t *testing.T) {
		out, err := b.MoveTile(0, 1, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, core.MoveWallBlocked, out)
		assert.Equal(t, before, b.Key(), "wall destination spends nothing")
	})

	t.Run("same color destination keeps the dot", func(t *testing.T) {
		out, err := b.MoveTile(0, 1, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, core.MoveSameColor, out)
		assert.Equal(t, before, b.Key(), "painting your own color is a free no-op")
	})
}

func TestMoveTile_PaintRegion(t *testing.T) {
	// The blue component reachable from (0,0) is {(0,0),(0,1),(1,1)};
	// the blue cell at (2,0) touches only the green source and an empty
	// cell, so it must stay blue.
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cb(0), cb(3), ee},
		{cg(2), cb(0), ee},
		{cb(0), ee, ee},
	})

	out, err := b.MoveTile(1, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, core.MovePainted, out)

	for _, pos := range [][2]int{{0, 0}, {0, 1}, {1, 1}} {
		tile, err := b.TileAt(pos[0], pos[1])
		require.NoError(t, err)
		assert.Equalf(t, core.Green, tile.Color, "cell (%d,%d) joins the source color", pos[0], pos[1])
	}

	painted, err := b.TileAt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, painted.Dots, "repainting preserves dots on the region")

	isolated, err := b.TileAt(2, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Blue, isolated.Color, "a disconnected same-color cell stays untouched")

	src, err := b.TileAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, cg(1), src, "the source spends exactly one dot and stays put")
}

func TestMoveTile_PaintThenWin(t *testing.T) {
	// 2x2 scenario: one paint move solves the board.
	b := mustBoard(t, core.Green, [][]core.Tile{
		{cg(1), cb(0)},
		{ee, ee},
	})

	out, err := b.MoveTile(0, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, core.MovePainted, out)

	src, err := b.TileAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, src.Dots)

	assert.True(t, b.Solved())
	assert.True(t, b.GameOver())
}
