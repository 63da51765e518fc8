// Package tui specifies custom controls for tview to play the paint puzzle
// in the terminal.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/katalvlaran/tilepaint/config"
	"github.com/katalvlaran/tilepaint/core"
)

// BoardUI renders one board inside a tview.Box and drives it with a
// cursor/select interaction: move the cursor, press select on a dotted tile
// to pick it up, press select on an orthogonal neighbor to play the move.
type BoardUI struct {
	Box  *tview.Box
	hint *tview.TextView
	app  *tview.Application
	cfg  *config.Config

	board    *core.Board
	pristine *core.Board

	curR, curC int
	selR, selC int
	note       string
	moves      int

	tileColors map[core.Color]tcell.Color
	emptyColor tcell.Color
	wallColor  tcell.Color
	dotColor   tcell.Color
	cursorFG   tcell.Color
	cursorBG   tcell.Color
	selectedBG tcell.Color
}

// NewBoardUI builds the widget; call SetBoard before showing it.
func NewBoardUI(app *tview.Application, cfg *config.Config, hint *tview.TextView) *BoardUI {
	ui := &BoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		app:  app,
		selR: -1,
		selC: -1,
	}
	ui.SetConfig(cfg)
	ui.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if ui.board == nil {
			return x, y, 1, 1
		}
		rows, cols := ui.board.Rows(), ui.board.Cols()
		cellW := 1
		if ui.cfg.Theme.FullWidthCells {
			cellW = 2
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				first, second, style := ui.cell(r, c)
				screen.SetContent(x+1+c*cellW, y+1+r, first, nil, style)
				if cellW == 2 {
					screen.SetContent(x+1+c*cellW+1, y+1+r, second, nil, style)
				}
			}
		}
		return x, y, cols*cellW + 2, rows + 2
	})
	return ui
}

// SetConfig resolves the theme into tcell colors. Callable live; the next
// draw picks it up.
func (ui *BoardUI) SetConfig(cfg *config.Config) {
	colors := cfg.Theme.Colors
	ui.tileColors = map[core.Color]tcell.Color{
		core.Green:  tcell.PaletteColor(colors.Green),
		core.Blue:   tcell.PaletteColor(colors.Blue),
		core.Red:    tcell.PaletteColor(colors.Red),
		core.Yellow: tcell.PaletteColor(colors.Yellow),
		core.Purple: tcell.PaletteColor(colors.Purple),
	}
	ui.emptyColor = tcell.PaletteColor(colors.EmptyCell)
	ui.wallColor = tcell.PaletteColor(colors.Wall)
	ui.dotColor = tcell.PaletteColor(colors.DotFG)
	ui.cursorFG = tcell.PaletteColor(colors.CursorFG)
	ui.cursorBG = tcell.PaletteColor(colors.CursorBG)
	ui.selectedBG = tcell.PaletteColor(colors.SelectedBG)
	ui.cfg = cfg
}

// SetBoard installs a level. The original stays untouched; Restart clones it
// again, so replays always begin from the exact level as published.
func (ui *BoardUI) SetBoard(b *core.Board) {
	ui.pristine = b
	ui.board = b.Clone()
	ui.curR, ui.curC = 0, 0
	ui.selR, ui.selC = -1, -1
	ui.note = ""
	ui.moves = 0
	ui.refreshHint()
}

// Board exposes the live board for status displays.
func (ui *BoardUI) Board() *core.Board { return ui.board }

// Finished reports whether play is over (solved or out of dots).
func (ui *BoardUI) Finished() bool {
	return ui.board != nil && ui.board.GameOver()
}

// MoveCursor shifts the cursor by (dr,dc), clamped to the board.
func (ui *BoardUI) MoveCursor(dr, dc int) {
	if ui.board == nil {
		return
	}
	if ui.board.InBounds(ui.curR+dr, ui.curC+dc) {
		ui.curR += dr
		ui.curC += dc
	}
}

// Activate is the select action: first press picks up a dotted tile, second
// press plays it onto the cursor cell (or puts it back down).
func (ui *BoardUI) Activate() {
	if ui.board == nil || ui.Finished() {
		return
	}
	if ui.selR < 0 {
		t, err := ui.board.TileAt(ui.curR, ui.curC)
		if err != nil {
			return
		}
		if !t.IsColored() || t.Dots < 1 {
			ui.note = "that tile has nothing to spend"
			ui.refreshHint()
			return
		}
		ui.selR, ui.selC = ui.curR, ui.curC
		ui.note = ""
		ui.refreshHint()
		return
	}
	if ui.selR == ui.curR && ui.selC == ui.curC {
		ui.ResetSelection()
		return
	}
	out, err := ui.board.MoveTile(ui.selR, ui.selC, ui.curR, ui.curC)
	if err != nil {
		ui.note = err.Error()
	} else {
		ui.note = out.String()
		if out.Mutated() {
			ui.moves++
		}
	}
	ui.selR, ui.selC = -1, -1
	ui.refreshHint()
}

// ResetSelection puts a picked-up tile back down.
func (ui *BoardUI) ResetSelection() {
	ui.selR, ui.selC = -1, -1
	ui.note = ""
	ui.refreshHint()
}

// Selected reports whether a source tile is currently picked up.
func (ui *BoardUI) Selected() bool { return ui.selR >= 0 }

// Restart replays the level from its pristine state.
func (ui *BoardUI) Restart() {
	if ui.pristine == nil {
		return
	}
	ui.board = ui.pristine.Clone()
	ui.curR, ui.curC = 0, 0
	ui.selR, ui.selC = -1, -1
	ui.note = "board restored"
	ui.moves = 0
	ui.refreshHint()
}

// cell resolves the two runes and style for one grid cell.
func (ui *BoardUI) cell(r, c int) (rune, rune, tcell.Style) {
	t, _ := ui.board.TileAt(r, c)
	style := tcell.StyleDefault
	first, second := ' ', ' '
	switch {
	case t.IsWall():
		wall := ui.cfg.Theme.Symbols.Wall
		style = style.Foreground(ui.wallColor)
		first, second = wall, wall
	case t.IsColored():
		style = style.Background(ui.tileColors[t.Color]).Foreground(ui.dotColor)
		if ui.cfg.Theme.ShowDots && t.Dots > 0 {
			second = rune('0' + t.Dots%10)
		}
	default:
		style = style.Foreground(ui.emptyColor)
		first = ui.cfg.Theme.Symbols.EmptyCell
	}

	if r == ui.selR && c == ui.selC {
		style = style.Background(ui.selectedBG).Foreground(ui.cursorFG)
	}
	if r == ui.curR && c == ui.curC {
		if ui.cfg.Theme.DrawCursorBackground {
			style = style.Background(ui.cursorBG).Foreground(ui.cursorFG)
		} else {
			first = ui.cfg.Theme.Symbols.Cursor
		}
	}
	return first, second, style
}

func (ui *BoardUI) refreshHint() {
	if ui.hint == nil || ui.board == nil {
		return
	}

	banner := fmt.Sprintf("  Paint every tile %s\n", colorName(ui.board.GoalColor()))
	status := fmt.Sprintf("  moves: %d\n", ui.moves)
	if ui.note != "" {
		status += fmt.Sprintf("  ▸ %s\n", ui.note)
	}
	switch {
	case ui.board.Solved():
		status += "\n  ★ Solved! r replays, q quits\n"
	case ui.board.GameOver():
		status += "\n  ✖ Out of dots. r replays, q quits\n"
	case !ui.board.HasLegalMove():
		status += "\n  ◌ No legal move left; r replays\n"
	case ui.Selected():
		status += "\n  tile picked up; choose a neighbor\n"
	}
	controls := "\n  hjkl/↑↓←→ move   ⏎ select/play\n  r restart   q quit"
	ui.hint.SetText(banner + status + controls)
}

func colorName(c core.Color) string {
	switch c {
	case core.Green:
		return "green"
	case core.Blue:
		return "blue"
	case core.Red:
		return "red"
	case core.Yellow:
		return "yellow"
	case core.Purple:
		return "purple"
	default:
		return string(c)
	}
}
