package levelgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilepaint/core"
	"github.com/katalvlaran/tilepaint/solver"
)

var log = logrus.New()

// phase enumerates the synthesis pipeline. Transitions are linear; the only
// loops are internal to a phase (template restarts inside Mutating, solver
// retries inside ProvingSolvable).
type phase uint8

const (
	phaseTemplate phase = iota
	phaseMutating
	phaseRepairing
	phaseProving
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseTemplate:
		return "template"
	case phaseMutating:
		return "mutating"
	case phaseRepairing:
		return "repairing"
	case phaseProving:
		return "proving-solvable"
	default:
		return "done"
	}
}

// generator holds the state of one synthesis run. All randomness flows
// through rng, so a fixed seed reproduces the run exactly.
type generator struct {
	rows, cols int
	goal       core.Color
	target     int
	opts       Options
	rng        *rand.Rand
	report     *Report
}

// Generate synthesizes a board of the given dimensions whose win condition
// is painting every colored tile the goal color. The returned Report records
// the seed, the difficulty reached, and whether the solver proved the board
// winnable. Invalid dimensions or goal colors surface as wrapped core
// errors; ErrTemplateSolved and ErrRepairFailed report synthesis dead ends.
func Generate(rows, cols int, goal core.Color, opts ...Option) (*core.Board, *Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}

	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	target := o.TargetDifficulty
	if target == 0 {
		target = DefaultTarget(rows, cols)
	}

	g := &generator{
		rows:   rows,
		cols:   cols,
		goal:   goal,
		target: target,
		opts:   o,
		rng:    rand.New(rand.NewSource(seed)),
		report: &Report{Seed: seed, Target: target},
	}
	b, err := g.run()
	if err != nil {
		return nil, nil, err
	}
	g.report.Difficulty = Difficulty(b)

	log.WithFields(logrus.Fields{
		"rows":       rows,
		"cols":       cols,
		"goal":       goal,
		"seed":       seed,
		"difficulty": g.report.Difficulty,
		"mutations":  g.report.Mutations,
		"proven":     g.report.Proven,
	}).Debug("board generated")
	return b, g.report, nil
}

// run drives the board through the pipeline phases in order.
func (g *generator) run() (*core.Board, error) {
	var (
		b   *core.Board
		err error
	)
	for ph := phaseTemplate; ph != phaseDone; {
		switch ph {
		case phaseTemplate:
			b, err = g.template()
			ph = phaseMutating
		case phaseMutating:
			b, err = g.mutate(b)
			ph = phaseRepairing
		case phaseRepairing:
			b, err = g.repair(b)
			ph = phaseProving
		case phaseProving:
			b, err = g.prove(b)
			ph = phaseDone
		}
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// mutate applies random reverse mutations until the board reaches the
// difficulty target with at least one accepted mutation, a rejection storm
// forces a fresh template, or the iteration guard trips. Candidates mutate a
// clone; the current board only advances when the candidate passes the full
// validator battery.
func (g *generator) mutate(b *core.Board) (*core.Board, error) {
	var (
		accepted int
		rejects  int
		err      error
	)
	for iter := 0; iter < maxIterations && (Difficulty(b) < g.target || accepted < minMutations); iter++ {
		cand := b.Clone()
		if g.applyRandomMutation(cand) && validateBoard(cand) == "" {
			b = cand
			accepted++
			rejects = 0
		} else {
			rejects++
		}
		if rejects >= maxRejects {
			if b, err = g.template(); err != nil {
				return nil, err
			}
			accepted, rejects = 0, 0
			g.report.Restarts++
			log.WithFields(logrus.Fields{
				"seed":     g.report.Seed,
				"restarts": g.report.Restarts,
			}).Debug("rejection storm, restarting from a fresh template")
		}
	}
	g.report.Mutations = accepted
	return b, nil
}

// repair returns the board untouched when it already passes the validator.
// Otherwise it retries the repair strategies in order, each on a fresh
// clone, and accepts the first candidate the validator passes. Exhausting
// every round is fatal: the caller gets ErrRepairFailed, never a degenerate
// board.
func (g *generator) repair(b *core.Board) (*core.Board, error) {
	if validateBoard(b) == "" {
		return b, nil
	}
	strategies := []func(*core.Board) bool{g.reversePaint, g.addNonGoalTile, g.reverseRelocate}
	for round := 0; round < repairRounds; round++ {
		for _, apply := range strategies {
			cand := b.Clone()
			if apply(cand) && validateBoard(cand) == "" {
				return cand, nil
			}
		}
	}
	return nil, ErrRepairFailed
}

// prove asks the solver for a winning line. An unprovable candidate is
// discarded and resynthesized up to solveRetries times; after that the last
// candidate is accepted unproven (it still passed every structural check)
// with Report.Proven left false.
func (g *generator) prove(b *core.Board) (*core.Board, error) {
	var sopts []solver.Option
	if g.opts.MaxStates > 0 {
		sopts = append(sopts, solver.WithMaxStates(g.opts.MaxStates))
	}
	for attempt := 1; ; attempt++ {
		g.report.Attempts = attempt
		res, err := solver.Solve(b, sopts...)
		if err != nil {
			return nil, fmt.Errorf("levelgen: proving candidate: %w", err)
		}
		g.report.Explored = res.Explored
		if res.Solvable {
			g.report.Proven = true
			g.report.Moves = res.Moves
			return b, nil
		}
		if attempt > solveRetries {
			log.WithFields(logrus.Fields{
				"seed":     g.report.Seed,
				"attempts": attempt,
				"explored": res.Explored,
				"capped":   res.Capped,
			}).Warn("accepting board without a solvability proof")
			return b, nil
		}
		if b, err = g.resynthesize(); err != nil {
			return nil, err
		}
	}
}

// resynthesize builds a replacement candidate for the proof retry loop: a
// fresh template, a short burst of validated mutations, then the usual
// repair pass. Short on purpose; retry candidates favor provability over
// difficulty.
func (g *generator) resynthesize() (*core.Board, error) {
	b, err := g.template()
	if err != nil {
		return nil, err
	}
	accepted := 0
	for i := 0; i < retryMutations; i++ {
		cand := b.Clone()
		if g.applyRandomMutation(cand) && validateBoard(cand) == "" {
			b = cand
			accepted++
		}
	}
	g.report.Mutations = accepted
	return g.repair(b)
}
