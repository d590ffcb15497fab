package httpserver

import (
	"strings"

	"negachess/internal/chess"
	"negachess/internal/notation"
	"negachess/internal/server/game"
)

// 前端用的招法结构：格子坐标 + 可选升变字母
type MoveDTO struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Promote string `json:"promote,omitempty"`
	SAN     string `json:"san,omitempty"`
}

type NewGameRequest struct {
	FEN string `json:"fen"` // 为空表示开局局面
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// AiMoveRequest 请求 AI 着法：有 game_id 时搜索该局，否则搜索 Position（FEN）
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	Depth    int    `json:"depth"`
	TimeMs   int64  `json:"time_ms"`
}

// StateResponse 所有对局接口的返回
type StateResponse struct {
	GameID     string    `json:"game_id,omitempty"`
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"` // 0=白 1=黑
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []string  `json:"history"`
	Status     string    `json:"status"`   // "ongoing" / "gameover"
	InCheck    bool      `json:"in_check"` // 仅供界面显示
}

type AiMoveResponse struct {
	BestMove MoveDTO        `json:"best_move"`
	Score    float64        `json:"score"`
	Depth    int            `json:"depth"`
	Nodes    int64          `json:"nodes"`
	TimeMs   int64          `json:"time_ms"`
	State    *StateResponse `json:"state,omitempty"` // 仅 /api/ai_play 设置
	Status   string         `json:"status"`          // "ok" / "no_moves" / "timeout"
}

func sideToInt(s chess.Side) int {
	switch s {
	case chess.White:
		return 0
	case chess.Black:
		return 1
	default:
		return -1
	}
}

func moveToDTO(pos *chess.Position, m chess.Move) MoveDTO {
	d := MoveDTO{
		From: strings.ToLower(m.From.String()),
		To:   strings.ToLower(m.To.String()),
		SAN:  notation.SAN(pos, m),
	}
	if m.Type == chess.MovePromotion {
		d.Promote = strings.ToLower(m.Promoted.Code())
	}
	return d
}

func movesToDTO(pos *chess.Position, ms []chess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(pos, m)
	}
	return out
}

// dtoToMove 找到前端所指的合法着法，升变未写字母按升后处理
func dtoToMove(pos *chess.Position, d MoveDTO) (chess.Move, bool) {
	from, ok := chess.ParseField(d.From)
	if !ok {
		return chess.Move{}, false
	}
	to, ok := chess.ParseField(d.To)
	if !ok {
		return chess.Move{}, false
	}
	promote := chess.Queen
	if d.Promote != "" {
		if promote, ok = chess.ParsePieceKind(d.Promote); !ok {
			return chess.Move{}, false
		}
	}
	for _, m := range pos.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.Type == chess.MovePromotion && m.Promoted != promote {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}

func stateToDTO(g game.GameState) StateResponse {
	return StateResponse{
		GameID:     g.ID,
		Position:   g.Pos.EncodeFEN(),
		ToMove:     sideToInt(g.Pos.SideToMove()),
		LegalMoves: movesToDTO(g.Pos, g.Pos.LegalMoves()),
		History:    notation.History(g.Start, g.History),
		Status:     g.Status(),
		InCheck:    g.Pos.InCheck(),
	}
}
