package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepaint/core"
)

// Shorthand tiles shared across the package tests.
var (
	ee = core.Empty()
	ww = core.Wall()
)

func cg(dots int) core.Tile { return core.Colored(core.Green, dots) }
func cb(dots int) core.Tile { return core.Colored(core.Blue, dots) }
func cr(dots int) core.Tile { return core.Colored(core.Red, dots) }

// mustBoard builds a board from explicit tile rows, failing the test on
// any construction error.
func mustBoard(t *testing.T, goal core.Color, rows [][]core.Tile) *core.Board {
	t.Helper()
	b, err := core.FromTiles(goal, rows)
	require.NoError(t, err)

	return b
}
