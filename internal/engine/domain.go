package engine

import (
	"negachess/internal/chess"
	"negachess/internal/negamax"
)

// Chess 搜索用的领域：合法着法 + Apply
var Chess = negamax.NewAdapter(
	func(pos *chess.Position) []chess.Move { return pos.LegalMoves() },
	func(pos *chess.Position, mv chess.Move) (*chess.Position, error) { return pos.Apply(mv) },
)

// GameOver 每次搜索用的终局判断
func GameOver(pos *chess.Position) bool {
	return pos.IsGameOver()
}
