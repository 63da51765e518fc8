package server

import "github.com/matryer/way"

const (
	uriGenerate = "/api/levels/generate"
	uriLevels   = "/api/levels"
	uriLevel    = "/api/levels/:n"
	uriPlay     = "/api/play/:n"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("POST", uriGenerate, s.handleGenerate())
	s.router.HandleFunc("GET", uriLevels, s.handleLevels())
	s.router.HandleFunc("GET", uriLevel, s.handleLevel())
	s.router.HandleFunc("GET", uriPlay, s.handlePlay())
}
