package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"negachess/internal/chess"
	"negachess/internal/engine"
	"negachess/internal/server/game"
)

const defaultAiDepth = 3

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games  *game.Manager
	engine *engine.Engine
}

func NewHandler(games *game.Manager, eng *engine.Engine) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	if eng == nil {
		eng = engine.NewEngine()
	}
	return &Handler{games: games, engine: eng}
}

func (h *Handler) Engine() *engine.Engine { return h.engine }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	case "/api/ai_play":
		h.handleAiPlay(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空请求体就是普通新局
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	var start *chess.Position
	if req.FEN != "" {
		pos, err := chess.DecodeFEN(req.FEN)
		if err != nil {
			http.Error(w, "invalid position", http.StatusBadRequest)
			return
		}
		start = pos
	}
	g := h.games.NewGame(start)
	log.Printf("new game %s", g.ID)
	writeJSON(w, stateToDTO(*g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}
	mv, ok := dtoToMove(g.Pos, req.Move)
	if !ok {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}
	h.play(w, g.ID, mv)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}
	writeJSON(w, stateToDTO(g))
}

// handleAiMove 只思考不落子
func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var pos *chess.Position
	switch {
	case req.GameID != "":
		g, ok := h.lookup(w, req.GameID)
		if !ok {
			return
		}
		pos = g.Pos
	case req.Position != "":
		p, err := chess.DecodeFEN(req.Position)
		if err != nil {
			http.Error(w, "invalid position", http.StatusBadRequest)
			return
		}
		pos = p
	default:
		http.Error(w, "missing position", http.StatusBadRequest)
		return
	}

	resp, _ := h.think(r.Context(), pos, req)
	writeJSON(w, resp)
}

// handleAiPlay 搜索并落子
func (h *Handler) handleAiPlay(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}
	resp, res := h.think(r.Context(), g.Pos, req)
	if resp.Status != "ok" {
		writeJSON(w, resp)
		return
	}
	next, err := h.games.Play(g.ID, res.BestMove)
	if err != nil {
		log.Printf("ai_play %s: %v", g.ID, err)
		http.Error(w, "apply move failed", http.StatusInternalServerError)
		return
	}
	state := stateToDTO(next)
	resp.State = &state
	writeJSON(w, resp)
}

func (h *Handler) think(ctx context.Context, pos *chess.Position, req AiMoveRequest) (AiMoveResponse, engine.SearchResult) {
	depth := req.Depth
	if depth <= 0 {
		depth = defaultAiDepth
	}
	var limit time.Duration
	if req.TimeMs > 0 {
		limit = time.Duration(req.TimeMs) * time.Millisecond
	}

	res, err := h.engine.Search(ctx, pos, engine.SearchConfig{Depth: depth, TimeLimit: limit})
	switch {
	case errors.Is(err, engine.ErrGameOver):
		return AiMoveResponse{Status: "no_moves"}, res
	case errors.Is(err, engine.ErrSearchTimeout):
		log.Printf("ai search: %v", err)
		return AiMoveResponse{Status: "timeout"}, res
	case err != nil:
		log.Printf("ai search: %v", err)
		return AiMoveResponse{Status: "error"}, res
	}
	return AiMoveResponse{
		BestMove: moveToDTO(pos, res.BestMove),
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
		Status:   "ok",
	}, res
}

func (h *Handler) play(w http.ResponseWriter, id string, mv chess.Move) {
	next, err := h.games.Play(id, mv)
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, stateToDTO(next))
}

func (h *Handler) lookup(w http.ResponseWriter, id string) (game.GameState, bool) {
	g, err := h.games.Get(id)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return game.GameState{}, false
	}
	return g, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
