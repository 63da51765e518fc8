// tilepaint is the command-line front end of the paint-puzzle engine:
// level generation, solvability checks, terminal play, and the level
// service.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilepaint/config"
	"github.com/katalvlaran/tilepaint/core"
	"github.com/katalvlaran/tilepaint/levelgen"
	"github.com/katalvlaran/tilepaint/levelio"
	"github.com/katalvlaran/tilepaint/server"
	"github.com/katalvlaran/tilepaint/solver"
	"github.com/katalvlaran/tilepaint/tui"
)

const usage = `usage: tilepaint <command> [flags]

commands:
  gen    synthesize a level and print its JSON document
  solve  check a pack level for solvability
  play   play a level in the terminal
  serve  run the HTTP level service

run "tilepaint <command> -h" for the command's flags.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	switch os.Args[1] {
	case "gen":
		cmdGen(cfg, os.Args[2:])
	case "solve":
		cmdSolve(cfg, os.Args[2:])
	case "play":
		cmdPlay(cfg, os.Args[2:])
	case "serve":
		cmdServe(cfg, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "tilepaint: unknown command %q\n%s\n", os.Args[1], usage)
		os.Exit(2)
	}
}

// cmdGen synthesizes one level and writes the wire document to stdout as a
// single-level pack, ready to append to levels.json.
func cmdGen(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	rows := fs.Int("rows", cfg.Generator.Rows, "board rows")
	cols := fs.Int("cols", cfg.Generator.Cols, "board columns")
	goal := fs.String("goal", cfg.Generator.Goal, "goal color (G, B, R, Y or P)")
	seed := fs.Int64("seed", 0, "random seed (0 picks one and reports it)")
	target := fs.Int("target", cfg.Generator.TargetDifficulty, "difficulty target (0 uses the built-in default)")
	fs.Parse(args)

	var opts []levelgen.Option
	if *seed != 0 {
		opts = append(opts, levelgen.WithSeed(*seed))
	}
	if *target != 0 {
		opts = append(opts, levelgen.WithTargetDifficulty(*target))
	}

	board, rep, err := levelgen.Generate(*rows, *cols, core.Color(*goal), opts...)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"seed":       rep.Seed,
		"difficulty": rep.Difficulty,
		"mutations":  rep.Mutations,
		"proven":     rep.Proven,
		"explored":   rep.Explored,
	}).Info("level generated")

	if err := levelio.EncodeCollection(os.Stdout, []*levelio.Level{levelio.FromBoard(board)}); err != nil {
		log.Fatal(err)
	}
}

// cmdSolve loads one pack level and reports the solver's verdict.
func cmdSolve(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	path := fs.String("levels", cfg.Server.LevelsPath, "level pack file")
	n := fs.Int("n", 0, "level index within the pack")
	maxStates := fs.Int("max-states", solver.DefaultMaxStates, "state exploration cap")
	fs.Parse(args)

	board := loadPackLevel(*path, *n)
	res, err := solver.Solve(board, solver.WithMaxStates(*maxStates))
	if err != nil {
		log.Fatal(err)
	}
	switch {
	case res.Solvable:
		fmt.Printf("solvable in %d moves (%d states explored)\n", res.Moves, res.Explored)
	case res.Capped:
		fmt.Printf("not proven solvable within %d states\n", *maxStates)
		os.Exit(1)
	default:
		fmt.Printf("unsolvable (%d states exhausted)\n", res.Explored)
		os.Exit(1)
	}
}

// cmdPlay opens the terminal client on a pack level, or on a freshly
// generated board when -gen is given.
func cmdPlay(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	path := fs.String("levels", cfg.Server.LevelsPath, "level pack file")
	n := fs.Int("n", 0, "level index within the pack")
	gen := fs.Bool("gen", false, "generate a board instead of loading one")
	seed := fs.Int64("seed", 0, "random seed for -gen")
	fs.Parse(args)

	var board *core.Board
	if *gen {
		var opts []levelgen.Option
		if *seed != 0 {
			opts = append(opts, levelgen.WithSeed(*seed))
		}
		var err error
		board, _, err = levelgen.Generate(cfg.Generator.Rows, cfg.Generator.Cols, core.Color(cfg.Generator.Goal), opts...)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		board = loadPackLevel(*path, *n)
	}

	if err := tui.Run(cfg, board); err != nil {
		log.Fatal(err)
	}
}

// cmdServe runs the HTTP level service until the process dies.
func cmdServe(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	path := fs.String("levels", cfg.Server.LevelsPath, "level pack file")
	fs.Parse(args)

	levels, err := levelio.LoadFile(*path)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{"addr": *addr, "levels": len(levels)}).Info("serving")
	log.Fatalln(http.ListenAndServe(*addr, server.New(levels)))
}

func loadPackLevel(path string, n int) *core.Board {
	levels, err := levelio.LoadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if n < 0 || n >= len(levels) {
		log.Fatalf("level %d out of range, pack has %d", n, len(levels))
	}
	board, err := levels[n].Board()
	if err != nil {
		log.Fatal(err)
	}
	return board
}
