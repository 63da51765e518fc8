package levelio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilepaint/core"
)

// ErrBadText reports malformed text notation.
var ErrBadText = errors.New("levelio: malformed board text")

// ParseText reads the text notation core.Board.String emits: one line per
// row, cells separated by whitespace, "_" for empty, "|" for wall, a
// palette letter with an optional "(n)" suffix for a colored cell. Blank
// lines are ignored, so raw string literals read naturally.
func ParseText(goal core.Color, text string) (*core.Board, error) {
	lines := strings.Split(text, "\n")
	var rows [][]core.Tile
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]core.Tile, 0, len(fields))
		for _, tok := range fields {
			t, err := parseToken(tok)
			if err != nil {
				return nil, err
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	return core.FromTiles(goal, rows)
}

// parseToken maps one cell token onto a tile. Color validity is left to the
// board constructor so unknown letters fail with core.ErrUnknownColor.
func parseToken(tok string) (core.Tile, error) {
	switch tok {
	case "_":
		return core.Empty(), nil
	case "|":
		return core.Wall(), nil
	}
	open := strings.IndexByte(tok, '(')
	if open < 0 {
		return core.Colored(core.Color(tok), 0), nil
	}
	if open == 0 || !strings.HasSuffix(tok, ")") {
		return core.Tile{}, fmt.Errorf("%w: token %q", ErrBadText, tok)
	}
	dots, err := strconv.Atoi(tok[open+1 : len(tok)-1])
	if err != nil {
		return core.Tile{}, fmt.Errorf("%w: token %q", ErrBadText, tok)
	}
	return core.Colored(core.Color(tok[:open]), dots), nil
}
