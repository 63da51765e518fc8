// Package tilepaint is a complete paint-puzzle engine: a board of colored,
// dotted, empty and wall tiles, a move simulator, a procedural level
// generator with a solvability proof, and the surfaces to play it all.
//
// 🚀 What is tilepaint?
//
//	A seed-reproducible puzzle toolkit that brings together:
//		• Core primitives: tiles, boards, the relocate/paint move engine
//		• Level synthesis: reverse mutations with rejection & restart
//		• Validation: a 13-predicate playability battery on every candidate
//		• Proofs: bounded breadth-first search over full board states
//		• Wire format: the JSON level document, packs, and text notation
//		• Surfaces: an HTTP/WebSocket level service and a terminal client
//
// ✨ Why choose tilepaint?
//
//   - Deterministic – every generated level replays from its seed
//   - Honest about limits – unproven boards are reported, never hidden
//   - Small surface – explicit errors, functional options, value types
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/     — Tile, Color, Board, MoveTile, win/loss queries
//	levelgen/ — template → mutate → repair → prove state machine
//	solver/   — bounded state-space BFS solvability verdicts
//	levelio/  — JSON wire format, level packs, text board notation
//	config/   — XDG user configuration for the client and service
//	server/   — REST generation/browsing + WebSocket play sessions
//	tui/      — tview/tcell terminal client
//
// Quick ASCII example (goal G, one move to win):
//
//	    G(1) B
//	    _    _
//
//	moving the G tile onto B floods B's region green and spends the dot.
//
//	go get github.com/katalvlaran/tilepaint
package tilepaint
