package server

import (
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilepaint/core"
	"github.com/katalvlaran/tilepaint/levelio"
)

// Client operations over the play socket.
const (
	opMove    = "move"
	opRestart = "restart"
)

// clientMsg is what the play socket reads: a move or a restart.
type clientMsg struct {
	Op      string `json:"op"`
	FromRow int    `json:"fromRow"`
	FromCol int    `json:"fromCol"`
	ToRow   int    `json:"toRow"`
	ToCol   int    `json:"toCol"`
}

// stateMsg is what the play socket writes after every operation (and once on
// connect): the full board plus derived status. Protocol errors ride along in
// Err with play continuing, so a misclick never kills the session.
type stateMsg struct {
	Level    *levelio.Level `json:"level"`
	Outcome  string         `json:"outcome,omitempty"`
	Err      string         `json:"error,omitempty"`
	Solved   bool           `json:"solved"`
	GameOver bool           `json:"gameOver"`
	HasMove  bool           `json:"hasMove"`
}

// session owns one live board per connection. The pristine copy never
// changes; restart clones it again, so replays always start from the exact
// published level.
type session struct {
	pristine *core.Board
	board    *core.Board
}

func newSession(board *core.Board) *session {
	return &session{pristine: board, board: board.Clone()}
}

// run speaks the play protocol until the peer goes away. Reads and writes
// alternate on one goroutine; the protocol is strictly request/response.
func (s *session) run(conn *websocket.Conn) {
	if err := conn.WriteJSON(s.state("", "")); err != nil {
		return
	}
	for {
		var msg clientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Debug("play session closed")
			return
		}
		var reply stateMsg
		switch msg.Op {
		case opMove:
			out, err := s.board.MoveTile(msg.FromRow, msg.FromCol, msg.ToRow, msg.ToCol)
			if err != nil {
				reply = s.state("", err.Error())
			} else {
				reply = s.state(out.String(), "")
			}
		case opRestart:
			s.board = s.pristine.Clone()
			reply = s.state("", "")
		default:
			reply = s.state("", fmt.Sprintf("unknown op %q", msg.Op))
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func (s *session) state(outcome, errMsg string) stateMsg {
	return stateMsg{
		Level:    levelio.FromBoard(s.board),
		Outcome:  outcome,
		Err:      errMsg,
		Solved:   s.board.Solved(),
		GameOver: s.board.GameOver(),
		HasMove:  s.board.HasLegalMove(),
	}
}
