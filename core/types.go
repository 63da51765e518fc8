package core

import "errors"

// Board size bounds. MinSide applies to both dimensions; MaxCells bounds
// the product, which also bounds every search the engine runs over cells.
const (
	MinSide  = 2
	MaxCells = 49
)

// Color is one symbol from the closed palette.
type Color string

// The palette. Every colored tile and every goal color is one of these.
const (
	Green  Color = "G"
	Blue   Color = "B"
	Red    Color = "R"
	Yellow Color = "Y"
	Purple Color = "P"
)

var palette = [...]Color{Green, Blue, Red, Yellow, Purple}

// Palette returns the closed color palette in canonical order.
// The slice is a fresh copy; callers may reorder it freely.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette[:])

	return out
}

// Valid reports whether c is a palette symbol.
func (c Color) Valid() bool {
	for _, p := range palette {
		if c == p {
			return true
		}
	}

	return false
}

// TileKind discriminates the three Tile variants.
type TileKind uint8

const (
	KindEmpty TileKind = iota
	KindWall
	KindColored
)

// Tile is one grid cell: Empty, Wall, or Colored{Color, Dots}.
// Color and Dots are meaningful only when Kind is KindColored.
// Tile is a value type; copying a Tile copies the whole cell.
type Tile struct {
	Kind  TileKind
	Color Color
	Dots  int
}

// Empty returns the empty tile.
func Empty() Tile { return Tile{Kind: KindEmpty} }

// Wall returns the wall tile.
func Wall() Tile { return Tile{Kind: KindWall} }

// Colored returns a colored tile carrying dots move credits.
func Colored(c Color, dots int) Tile {
	return Tile{Kind: KindColored, Color: c, Dots: dots}
}

// IsEmpty reports whether t is the Empty variant.
func (t Tile) IsEmpty() bool { return t.Kind == KindEmpty }

// IsWall reports whether t is the Wall variant.
func (t Tile) IsWall() bool { return t.Kind == KindWall }

// IsColored reports whether t is the Colored variant.
func (t Tile) IsColored() bool { return t.Kind == KindColored }

// MoveOutcome reports what a MoveTile call did. Only MoveRelocated and
// MovePainted mutate the board; the remaining outcomes are in-game
// no-ops that leave every cell untouched and spend no dot.
type MoveOutcome uint8

const (
	// MoveRelocated: the source tile moved into an empty destination.
	MoveRelocated MoveOutcome = iota
	// MovePainted: the destination's connected region took the source color.
	MovePainted
	// MoveNoDots: the source holds no dot to spend (or is not a colored tile).
	MoveNoDots
	// MoveWallBlocked: the destination is a wall.
	MoveWallBlocked
	// MoveSameColor: the destination already has the source's color.
	MoveSameColor
)

// Mutated reports whether the outcome changed the board.
func (o MoveOutcome) Mutated() bool {
	return o == MoveRelocated || o == MovePainted
}

// String names the outcome for logs and session messages.
func (o MoveOutcome) String() string {
	switch o {
	case MoveRelocated:
		return "relocated"
	case MovePainted:
		return "painted"
	case MoveNoDots:
		return "no-dots"
	case MoveWallBlocked:
		return "wall-blocked"
	case MoveSameColor:
		return "same-color"
	default:
		return "unknown"
	}
}

var (
	// ErrDimensions indicates rows/cols outside [MinSide..] or rows*cols > MaxCells.
	ErrDimensions = errors.New("core: board dimensions out of range")
	// ErrUnknownColor indicates a color symbol outside the palette.
	ErrUnknownColor = errors.New("core: color not in palette")
	// ErrNonRectangular indicates tile rows of differing lengths.
	ErrNonRectangular = errors.New("core: tile rows have differing lengths")
	// ErrNegativeDots indicates a colored tile with dots < 0.
	ErrNegativeDots = errors.New("core: negative dot count")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")
	// ErrNotAdjacent indicates move endpoints not one orthogonal step apart.
	ErrNotAdjacent = errors.New("core: cells are not orthogonally adjacent")
)
