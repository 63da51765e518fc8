package levelgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepaint/core"
	"github.com/katalvlaran/tilepaint/levelgen"
	"github.com/katalvlaran/tilepaint/solver"
)

func TestGenerate_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
		goal core.Color
		opts []levelgen.Option
		want error
	}{
		{"rows below minimum", 1, 5, core.Green, nil, core.ErrDimensions},
		{"cols below minimum", 5, 1, core.Green, nil, core.ErrDimensions},
		{"too many cells", 8, 7, core.Green, nil, core.ErrDimensions},
		{"unknown goal color", 3, 3, core.Color("X"), nil, core.ErrUnknownColor},
		{"zero target difficulty", 3, 3, core.Green,
			[]levelgen.Option{levelgen.WithTargetDifficulty(0)}, levelgen.ErrOptionViolation},
		{"negative solver budget", 3, 3, core.Green,
			[]levelgen.Option{levelgen.WithMaxStates(-1)}, levelgen.ErrOptionViolation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board, rep, err := levelgen.Generate(tc.rows, tc.cols, tc.goal, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, board)
			assert.Nil(t, rep)
		})
	}
}

func TestGenerate_SeededBoards(t *testing.T) {
	sizes := []struct{ rows, cols int }{{3, 3}, {4, 4}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			board, rep, err := levelgen.Generate(sz.rows, sz.cols, core.Green, levelgen.WithSeed(seed))
			require.NoError(t, err, "%dx%d seed %d", sz.rows, sz.cols, seed)

			assert.Equal(t, sz.rows, board.Rows())
			assert.Equal(t, sz.cols, board.Cols())
			assert.Equal(t, core.Green, board.GoalColor())
			assert.False(t, board.Solved())

			assert.Equal(t, seed, rep.Seed)
			assert.Equal(t, levelgen.DefaultTarget(sz.rows, sz.cols), rep.Target)
			assert.GreaterOrEqual(t, rep.Attempts, 1)
			assert.Equal(t, levelgen.Difficulty(board), rep.Difficulty)

			if rep.Proven {
				res, err := solver.Solve(board)
				require.NoError(t, err)
				assert.True(t, res.Solvable)
				assert.Equal(t, rep.Moves, res.Moves)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	b1, r1, err := levelgen.Generate(4, 4, core.Blue, levelgen.WithSeed(99))
	require.NoError(t, err)
	b2, r2, err := levelgen.Generate(4, 4, core.Blue, levelgen.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, b1.Key(), b2.Key())
	assert.Equal(t, r1, r2)
}

func TestGenerate_WallClockSeed(t *testing.T) {
	board, rep, err := levelgen.Generate(3, 3, core.Red)
	require.NoError(t, err)
	require.NotNil(t, board)
	assert.NotZero(t, rep.Seed, "the effective seed must be reported so the run can be replayed")
}

// TestGenerate_FiveByFive drives the full pipeline at a mid-sized board with
// an explicit difficulty target.
func TestGenerate_FiveByFive(t *testing.T) {
	board, rep, err := levelgen.Generate(5, 5, core.Green,
		levelgen.WithSeed(42),
		levelgen.WithTargetDifficulty(20),
	)
	require.NoError(t, err)

	assert.Equal(t, 5, board.Rows())
	assert.Equal(t, 5, board.Cols())
	assert.Equal(t, core.Green, board.GoalColor())
	assert.Equal(t, 20, rep.Target)

	if rep.Proven {
		assert.GreaterOrEqual(t, rep.Moves, 1)
		res, err := solver.Solve(board)
		require.NoError(t, err)
		assert.True(t, res.Solvable)
	}
}
