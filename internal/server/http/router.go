package httpserver

import (
	"net/http"

	"negachess/internal/engine"
	"negachess/internal/server/game"
)

// 薄封装：Server 里用自己的 mux 挂上 API Handler
type Server struct {
	mux *http.ServeMux
	api *Handler
}

func NewServer(games *game.Manager, eng *engine.Engine) *Server {
	s := &Server{
		mux: http.NewServeMux(),
		api: NewHandler(games, eng),
	}
	s.mux.Handle("/api/", s.api)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s
}

func (s *Server) Handler() *Handler { return s.api }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
