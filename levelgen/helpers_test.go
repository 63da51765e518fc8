package levelgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepaint/core"
)

// Shared fixtures for the white-box tests in this package.

var (
	ee = core.Empty()
	ww = core.Wall()
)

func cg(dots int) core.Tile { return core.Colored(core.Green, dots) }
func cb(dots int) core.Tile { return core.Colored(core.Blue, dots) }
func cy(dots int) core.Tile { return core.Colored(core.Yellow, dots) }

// mustBoard builds a board from explicit tile rows, failing the test on any
// construction error.
func mustBoard(t *testing.T, goal core.Color, rows [][]core.Tile) *core.Board {
	t.Helper()
	b, err := core.FromTiles(goal, rows)
	require.NoError(t, err)
	return b
}

// newTestGen wires a generator with a fixed seed so mutation draws are
// reproducible inside a test.
func newTestGen(rows, cols int, goal core.Color, seed int64) *generator {
	return &generator{
		rows:   rows,
		cols:   cols,
		goal:   goal,
		target: DefaultTarget(rows, cols),
		opts:   DefaultOptions(),
		rng:    rand.New(rand.NewSource(seed)),
		report: &Report{Seed: seed},
	}
}
