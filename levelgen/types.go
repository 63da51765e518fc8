package levelgen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepaint/solver"
)

// Budgets every generated board must respect. The validator enforces them on
// each mutation candidate, so they hold for every board Generate returns.
const (
	// MaxDots is the largest dot count a single tile may carry.
	MaxDots = 5

	// MaxTotalDots caps the sum of dots across the whole board.
	MaxTotalDots = 20

	// MaxWallRatio caps walls as a fraction of total cells (floor applied).
	MaxWallRatio = 0.25
)

// Tuning knobs of the synthesis pipeline. They shape how hard the generator
// tries before falling back, not what a valid board looks like.
const (
	// maxRejects is the run of consecutive rejected mutations that triggers
	// a restart from a fresh template.
	maxRejects = 120

	// maxIterations bounds the mutation loop regardless of progress.
	maxIterations = 5000

	// minMutations is the smallest number of accepted mutations a board must
	// accumulate before the difficulty target alone can end the loop.
	minMutations = 1

	// repairRounds bounds how many times each repair strategy is retried.
	repairRounds = 100

	// solveRetries is how many times an unprovable candidate is thrown away
	// and resynthesized before being accepted without proof.
	solveRetries = 3

	// retryMutations is the number of mutation attempts applied to each
	// resynthesized candidate during the proof retry loop.
	retryMutations = 5

	// templatePaintsMin/templatePaintsSpan bound the reverse paints applied
	// while building a template: templatePaintsMin + rng.Intn(templatePaintsSpan).
	templatePaintsMin  = 3
	templatePaintsSpan = 6
)

var (
	// ErrTemplateSolved reports that template synthesis produced a board with
	// no off-color tiles, which leaves the mutation loop nothing to work on.
	ErrTemplateSolved = errors.New("levelgen: template is already solved")

	// ErrRepairFailed reports that every repair strategy was exhausted
	// without reaching a playable board.
	ErrRepairFailed = errors.New("levelgen: unable to repair board into a playable state")

	// ErrOptionViolation is returned (wrapped) when an Option carries an
	// invalid value.
	ErrOptionViolation = errors.New("levelgen: option violation")
)

// Options bundles the tunable parameters of Generate.
type Options struct {
	// Seed feeds the random source. Zero means "derive from the wall clock";
	// the effective value is echoed in Report.Seed either way.
	Seed int64

	// TargetDifficulty is the score the mutation loop drives toward.
	// Zero means "use DefaultTarget for the board's dimensions".
	TargetDifficulty int

	// MaxStates is the solver's exploration budget during the proof phase.
	// Zero means solver.DefaultMaxStates.
	MaxStates int

	// err accumulates the first Option violation for Generate to surface.
	err error
}

// DefaultOptions returns the baseline configuration: wall-clock seed,
// area-derived difficulty target, default solver budget.
func DefaultOptions() Options {
	return Options{
		Seed:             0,
		TargetDifficulty: 0,
		MaxStates:        solver.DefaultMaxStates,
	}
}

// Option mutates Options in Generate.
type Option func(*Options)

// WithSeed fixes the random source so runs are reproducible. Zero keeps the
// wall-clock default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithTargetDifficulty overrides the difficulty score the mutation loop must
// reach. d must be positive.
func WithTargetDifficulty(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: TargetDifficulty must be >= 1, got %d", ErrOptionViolation, d)
			return
		}
		o.TargetDifficulty = d
	}
}

// WithMaxStates caps the solver's exploration budget for the proof phase.
// n must be positive.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxStates must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Report describes how a board was synthesized. It accompanies every
// successful Generate call and marshals as-is on the level service.
type Report struct {
	// Seed is the random seed that produced the board. Replaying Generate
	// with the same dimensions, goal color and this seed yields an
	// identical board.
	Seed int64 `json:"seed"`

	// Difficulty is the final score of the returned board, Target the score
	// the mutation loop was driving toward.
	Difficulty int `json:"difficulty"`
	Target     int `json:"target"`

	// Mutations counts the accepted mutations behind the returned board;
	// Restarts counts template restarts forced by rejection storms.
	Mutations int `json:"mutations"`
	Restarts  int `json:"restarts"`

	// Attempts is the number of solver passes (1 plus resyntheses).
	Attempts int `json:"attempts"`

	// Proven reports whether the solver found a winning line. When true,
	// Moves is its length and Explored the states expanded to find it.
	// When false the board passed every structural check but the proof was
	// abandoned after the retry budget.
	Proven   bool `json:"proven"`
	Moves    int  `json:"moves"`
	Explored int  `json:"explored"`
}
