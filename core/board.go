package core

import (
	"fmt"
	"strconv"
	"strings"
)

// orthoOffsets enumerates the four orthogonal neighbor directions
// in row-major scan order: up, down, left, right.
var orthoOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// OrthoOffsets returns the four orthogonal {dRow,dCol} offsets in the
// engine's canonical order: up, down, left, right. Returned by value;
// callers iterating hot loops should hoist it into a local.
func OrthoOffsets() [4][2]int { return orthoOffsets }

// Board is a rows×cols grid of Tile values with one designated goal
// color. Dimensions and goal color are immutable after construction;
// cell content changes only through SetTile and MoveTile.
//
// Board is not safe for concurrent mutation; the engine's ownership
// model is single-threaded (one owner mutates a board at a time).
type Board struct {
	rows, cols int
	goal       Color
	cells      [][]Tile
}

// NewBoard returns an all-Empty rows×cols board with the given goal color.
//
// Complexity: O(rows·cols).
func NewBoard(rows, cols int, goal Color) (*Board, error) {
	if rows < MinSide || cols < MinSide || rows*cols > MaxCells {
		return nil, fmt.Errorf("core: %dx%d: %w", rows, cols, ErrDimensions)
	}
	if !goal.Valid() {
		return nil, fmt.Errorf("core: goal %q: %w", goal, ErrUnknownColor)
	}
	cells := make([][]Tile, rows)
	for r := range cells {
		cells[r] = make([]Tile, cols)
	}

	return &Board{rows: rows, cols: cols, goal: goal, cells: cells}, nil
}

// FromTiles builds a board from an existing rectangular tile grid.
// The grid is deep-copied; the caller keeps ownership of tiles.
// Every tile is validated (palette color, non-negative dots).
//
// Complexity: O(rows·cols).
func FromTiles(goal Color, tiles [][]Tile) (*Board, error) {
	rows := len(tiles)
	if rows == 0 {
		return nil, fmt.Errorf("core: empty grid: %w", ErrDimensions)
	}
	cols := len(tiles[0])
	for r, row := range tiles {
		if len(row) != cols {
			return nil, fmt.Errorf("core: row %d has %d cells, want %d: %w",
				r, len(row), cols, ErrNonRectangular)
		}
	}
	b, err := NewBoard(rows, cols, goal)
	if err != nil {
		return nil, err
	}
	for r, row := range tiles {
		for c, t := range row {
			if err = validateTile(t); err != nil {
				return nil, fmt.Errorf("core: tile (%d,%d): %w", r, c, err)
			}
			b.cells[r][c] = t
		}
	}

	return b, nil
}

func validateTile(t Tile) error {
	if !t.IsColored() {
		return nil
	}
	if !t.Color.Valid() {
		return ErrUnknownColor
	}
	if t.Dots < 0 {
		return ErrNegativeDots
	}

	return nil
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// GoalColor returns the color every colored cell must reach for a win.
func (b *Board) GoalColor() Color { return b.goal }

// InBounds reports whether (r,c) addresses a cell of the grid.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// TileAt returns the tile at (r,c), or ErrOutOfBounds.
func (b *Board) TileAt(r, c int) (Tile, error) {
	if !b.InBounds(r, c) {
		return Tile{}, fmt.Errorf("core: (%d,%d): %w", r, c, ErrOutOfBounds)
	}

	return b.cells[r][c], nil
}

// SetTile replaces the tile at (r,c) after validating it.
func (b *Board) SetTile(r, c int, t Tile) error {
	if !b.InBounds(r, c) {
		return fmt.Errorf("core: (%d,%d): %w", r, c, ErrOutOfBounds)
	}
	if err := validateTile(t); err != nil {
		return fmt.Errorf("core: tile (%d,%d): %w", r, c, err)
	}
	b.cells[r][c] = t

	return nil
}

// Clone returns a fully independent copy of the board. Tiles are plain
// values, so the row-by-row copy shares no mutable state with b;
// mutating the clone can never write through to the original.
//
// Complexity: O(rows·cols).
func (b *Board) Clone() *Board {
	cells := make([][]Tile, b.rows)
	for r := range cells {
		cells[r] = make([]Tile, b.cols)
		copy(cells[r], b.cells[r])
	}

	return &Board{rows: b.rows, cols: b.cols, goal: b.goal, cells: cells}
}

// Key encodes the full cell content in row-major order: "E," for Empty,
// "W," for Wall, "<color><dots>," for Colored. Two boards of the same
// dimensions have equal Keys iff every cell matches exactly, which makes
// Key both the solver's dedup key and an exact equality probe in tests.
//
// Complexity: O(rows·cols).
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(b.rows * b.cols * 3)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch t := b.cells[r][c]; t.Kind {
			case KindEmpty:
				sb.WriteString("E,")
			case KindWall:
				sb.WriteString("W,")
			default:
				sb.WriteString(string(t.Color))
				sb.WriteString(strconv.Itoa(t.Dots))
				sb.WriteByte(',')
			}
		}
	}

	return sb.String()
}

// String renders the board in the plain text notation the engine's
// tooling reads back: "_" empty, "|" wall, "G" or "G(2)" colored,
// cells separated by single spaces, rows by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch t := b.cells[r][c]; t.Kind {
			case KindEmpty:
				sb.WriteByte('_')
			case KindWall:
				sb.WriteByte('|')
			default:
				sb.WriteString(string(t.Color))
				if t.Dots > 0 {
					sb.WriteByte('(')
					sb.WriteString(strconv.Itoa(t.Dots))
					sb.WriteByte(')')
				}
			}
		}
	}

	return sb.String()
}

// WallCount returns the number of Wall cells.
func (b *Board) WallCount() int {
	return b.countKind(KindWall)
}

// EmptyCount returns the number of Empty cells.
func (b *Board) EmptyCount() int {
	return b.countKind(KindEmpty)
}

// ColoredCount returns the number of Colored cells of any color.
func (b *Board) ColoredCount() int {
	return b.countKind(KindColored)
}

func (b *Board) countKind(k TileKind) int {
	n := 0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c].Kind == k {
				n++
			}
		}
	}

	return n
}

// NonGoalCount returns the number of Colored cells whose color differs
// from the goal color.
func (b *Board) NonGoalCount() int {
	n := 0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if t := b.cells[r][c]; t.IsColored() && t.Color != b.goal {
				n++
			}
		}
	}

	return n
}

// TotalDots returns the sum of dot counts across all Colored cells.
func (b *Board) TotalDots() int {
	n := 0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if t := b.cells[r][c]; t.IsColored() {
				n += t.Dots
			}
		}
	}

	return n
}

// HasActiveDot reports whether any Colored cell retains dots > 0.
func (b *Board) HasActiveDot() bool {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if t := b.cells[r][c]; t.IsColored() && t.Dots > 0 {
				return true
			}
		}
	}

	return false
}
