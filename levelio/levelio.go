package levelio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tilepaint/core"
)

// Tile type tags on the wire. Colored cells carry no tag at all; their
// "color" field is the discriminator.
const (
	typeEmpty = "empty"
	typeWall  = "wall"
)

var (
	// ErrBadTile reports a tile object that fits none of the wire shapes.
	ErrBadTile = errors.New("levelio: unrecognized tile definition")

	// ErrShape reports a tiles grid that contradicts the declared rows/cols.
	ErrShape = errors.New("levelio: tiles grid does not match declared dimensions")
)

// TileDef is the wire form of a single cell.
type TileDef struct {
	Type  string `json:"type,omitempty"`
	Color string `json:"color,omitempty"`
	Dots  *int   `json:"dots,omitempty"`
}

// Level is the wire form of a board. Build one with FromBoard or by
// decoding JSON; turn it back into a playable board with Board.
type Level struct {
	GoalColor string       `json:"goalColor"`
	Rows      int          `json:"rows"`
	Cols      int          `json:"cols"`
	Tiles     [][]*TileDef `json:"tiles"`
}

// FromBoard captures a board into its wire form. Colored cells always carry
// an explicit dot count, zero included, so hand-edited packs stay unambiguous.
func FromBoard(b *core.Board) *Level {
	l := &Level{
		GoalColor: string(b.GoalColor()),
		Rows:      b.Rows(),
		Cols:      b.Cols(),
		Tiles:     make([][]*TileDef, b.Rows()),
	}
	for r := 0; r < b.Rows(); r++ {
		l.Tiles[r] = make([]*TileDef, b.Cols())
		for c := 0; c < b.Cols(); c++ {
			t, _ := b.TileAt(r, c)
			switch {
			case t.IsWall():
				l.Tiles[r][c] = &TileDef{Type: typeWall}
			case t.IsColored():
				dots := t.Dots
				l.Tiles[r][c] = &TileDef{Color: string(t.Color), Dots: &dots}
			default:
				l.Tiles[r][c] = &TileDef{Type: typeEmpty}
			}
		}
	}
	return l
}

// Board materializes the wire form into a live board, validating shape,
// palette, and dot counts on the way. Cell mapping: null reads as empty,
// "type" selects empty or wall, a bare "color" makes a colored cell with
// "dots" defaulting to 0. Anything else is ErrBadTile.
func (l *Level) Board() (*core.Board, error) {
	if len(l.Tiles) != l.Rows {
		return nil, fmt.Errorf("%w: declared %d rows, found %d", ErrShape, l.Rows, len(l.Tiles))
	}
	rows := make([][]core.Tile, l.Rows)
	for r, defRow := range l.Tiles {
		if len(defRow) != l.Cols {
			return nil, fmt.Errorf("%w: row %d declared %d cols, found %d", ErrShape, r, l.Cols, len(defRow))
		}
		rows[r] = make([]core.Tile, l.Cols)
		for c, def := range defRow {
			t, err := def.tile()
			if err != nil {
				return nil, fmt.Errorf("tile (%d,%d): %w", r, c, err)
			}
			rows[r][c] = t
		}
	}
	return core.FromTiles(core.Color(l.GoalColor), rows)
}

// tile maps one wire cell onto a core tile. nil receivers are legal; a null
// JSON cell means empty.
func (d *TileDef) tile() (core.Tile, error) {
	if d == nil {
		return core.Empty(), nil
	}
	switch d.Type {
	case typeEmpty:
		return core.Empty(), nil
	case typeWall:
		return core.Wall(), nil
	case "":
		if d.Color == "" {
			return core.Tile{}, ErrBadTile
		}
		dots := 0
		if d.Dots != nil {
			dots = *d.Dots
		}
		return core.Colored(core.Color(d.Color), dots), nil
	default:
		return core.Tile{}, fmt.Errorf("%w: type %q", ErrBadTile, d.Type)
	}
}

// DecodeCollection reads a level pack (a JSON array of levels) from r.
func DecodeCollection(r io.Reader) ([]*Level, error) {
	var levels []*Level
	if err := json.NewDecoder(r).Decode(&levels); err != nil {
		return nil, fmt.Errorf("levelio: decoding level pack: %w", err)
	}
	return levels, nil
}

// EncodeCollection writes a level pack to w, indented for hand editing.
func EncodeCollection(w io.Writer, levels []*Level) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(levels); err != nil {
		return fmt.Errorf("levelio: encoding level pack: %w", err)
	}
	return nil
}

// LoadFile reads a level pack from disk.
func LoadFile(path string) ([]*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levelio: opening level pack: %w", err)
	}
	defer f.Close()
	return DecodeCollection(f)
}
