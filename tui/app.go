package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/katalvlaran/tilepaint/config"
	"github.com/katalvlaran/tilepaint/core"
)

// Run opens the terminal client on one board and blocks until the player
// quits. Controls: hjkl or arrows move the cursor, Enter selects a tile and
// then plays it onto a neighbor, Esc puts a picked-up tile back down, r
// restarts the level, q quits.
func Run(cfg *config.Config, board *core.Board) error {
	app := tview.NewApplication()

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	ui := NewBoardUI(app, cfg, hint)
	ui.Box.SetBorder(true)
	ui.Box.SetTitle(" tilepaint ")
	ui.SetBoard(board)

	ui.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			ui.MoveCursor(-1, 0)
		case tcell.KeyDown:
			ui.MoveCursor(1, 0)
		case tcell.KeyLeft:
			ui.MoveCursor(0, -1)
		case tcell.KeyRight:
			ui.MoveCursor(0, 1)
		case tcell.KeyEnter:
			ui.Activate()
		case tcell.KeyEsc:
			ui.ResetSelection()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				ui.MoveCursor(0, -1)
			case 'j':
				ui.MoveCursor(1, 0)
			case 'k':
				ui.MoveCursor(-1, 0)
			case 'l':
				ui.MoveCursor(0, 1)
			case ' ':
				ui.Activate()
			case 'r':
				ui.Restart()
			case 'q':
				if ui.Selected() {
					ui.ResetSelection()
				} else {
					app.Stop()
				}
			}
		}
		return event
	})

	layout := tview.NewFlex().
		AddItem(ui.Box, board.Cols()*2+4, 0, true).
		AddItem(hint, 0, 1, false)

	return app.SetRoot(layout, true).SetFocus(ui.Box).Run()
}
