// Package server exposes the engine over HTTP: level pack browsing, on-demand
// generation, and interactive play over a WebSocket.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilepaint/core"
	"github.com/katalvlaran/tilepaint/levelgen"
	"github.com/katalvlaran/tilepaint/levelio"
)

// Server serves a fixed level pack plus generated boards. Construct with New;
// the zero value has no routes.
type Server struct {
	router   *way.Router
	levels   []*levelio.Level
	upgrader websocket.Upgrader
}

// New wires a Server around an already-loaded level pack. The pack may be
// empty; generation works either way.
func New(levels []*levelio.Level) *Server {
	s := &Server{levels: levels}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// generateResponse is the body of a successful generation call.
type generateResponse struct {
	Level  *levelio.Level   `json:"level"`
	Report *levelgen.Report `json:"report"`
}

// handleGenerate synthesizes a board from query parameters: rows, cols,
// goal, and optional seed and target.
func (s *Server) handleGenerate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		rows, err := strconv.Atoi(q.Get("rows"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "rows must be an integer")
			return
		}
		cols, err := strconv.Atoi(q.Get("cols"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "cols must be an integer")
			return
		}
		goal := core.Color(q.Get("goal"))

		var opts []levelgen.Option
		if raw := q.Get("seed"); raw != "" {
			seed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "seed must be an integer")
				return
			}
			opts = append(opts, levelgen.WithSeed(seed))
		}
		if raw := q.Get("target"); raw != "" {
			target, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "target must be an integer")
				return
			}
			opts = append(opts, levelgen.WithTargetDifficulty(target))
		}

		board, rep, err := levelgen.Generate(rows, cols, goal, opts...)
		if err != nil {
			// Bad dimensions, colors and option values are the caller's to
			// fix; anything else is a synthesis dead end worth reporting.
			log.WithError(err).Warn("generate request failed")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, generateResponse{
			Level:  levelio.FromBoard(board),
			Report: rep,
		})
	}
}

// handleLevels lists the level pack.
func (s *Server) handleLevels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.levels)
	}
}

// handleLevel returns one pack level by zero-based index.
func (s *Server) handleLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lvl, ok := s.packLevel(way.Param(r.Context(), "n"))
		if !ok {
			writeError(w, http.StatusNotFound, "no such level")
			return
		}
		writeJSON(w, http.StatusOK, lvl)
	}
}

// handlePlay upgrades to a WebSocket and plays one pack level until the
// client disconnects.
func (s *Server) handlePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lvl, ok := s.packLevel(way.Param(r.Context(), "n"))
		if !ok {
			writeError(w, http.StatusNotFound, "no such level")
			return
		}
		board, err := lvl.Board()
		if err != nil {
			log.WithError(err).Error("level pack entry does not build")
			writeError(w, http.StatusInternalServerError, "level is corrupt")
			return
		}
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()
		newSession(board).run(conn)
	}
}

func (s *Server) packLevel(param string) (*levelio.Level, bool) {
	n, err := strconv.Atoi(param)
	if err != nil || n < 0 || n >= len(s.levels) {
		return nil, false
	}
	return s.levels[n], true
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("writing response body")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
