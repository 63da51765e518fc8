// Package core implements the tilepaint board model and the move/paint
// simulator that every other component replays: live play, level
// generation, and the solvability solver all mutate boards exclusively
// through MoveTile, so forward semantics cannot drift between them.
//
// The board B is a rows×cols grid of Tile values over a fixed five-color
// palette, with a single designated goal color:
//
//   - Tile is a tagged union: Empty, Wall, or Colored{color, dots}.
//     Dots are move credits; every successful action spends exactly one.
//   - MoveTile applies one player action between orthogonally adjacent
//     cells: relocate into an Empty cell, or flood-paint a differently
//     colored 4-connected region to the source color.
//   - Solved / GameOver / HasLegalMove answer the win, loss, and
//     progress questions controllers ask between moves.
//
// Why a value model?
//
//   - Tiles are plain values, so Clone is a row-by-row copy with no
//     shared mutable state — candidate boards in the generator and
//     successor states in the solver are always fully independent.
//   - Key encodes the full board content in row-major order, giving the
//     solver an exact dedup key and tests an exact equality probe.
//
// Flood fill is breadth-first with an explicit frontier and visited set;
// board size is capped (MaxCells) but the simulator never recurses.
//
// Errors:
//
//   - ErrDimensions    — rows/cols outside [MinSide, MaxCells] bounds
//   - ErrUnknownColor  — color symbol not in the palette
//   - ErrNonRectangular— tile rows of differing lengths
//   - ErrNegativeDots  — negative dot count on a colored tile
//   - ErrOutOfBounds   — coordinate outside the grid
//   - ErrNotAdjacent   — move endpoints not exactly one orthogonal step apart
//
// Complexity: MoveTile is O(rows·cols) worst case (one flood fill);
// every query is O(rows·cols) or cheaper; Clone and Key are O(rows·cols).
package core
