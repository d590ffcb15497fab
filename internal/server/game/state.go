package game

import (
	"time"

	"negachess/internal/chess"
)

type GameState struct {
	ID        string
	Start     *chess.Position
	Pos       *chess.Position
	History   []chess.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status 为 "ongoing" 或 "gameover"：无合法着法即终局，将死与逼和不作区分
func (g *GameState) Status() string {
	if g.Pos.IsGameOver() {
		return "gameover"
	}
	return "ongoing"
}
