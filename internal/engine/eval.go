package engine

import "negachess/internal/chess"

// 子力价值。王的值很大只是为了子力和好读，合法对局中王不会被吃
var pieceValue = [...]float64{
	chess.NoKind: 0,
	chess.Pawn:   10,
	chess.Knight: 30,
	chess.Bishop: 30,
	chess.Rook:   50,
	chess.Queen:  90,
	chess.King:   900,
}

// MateScore 走棋方无合法着法时扣除的分
const MateScore = 1000

// 位置分表，白方视角，下标 [rank][file]，rank 0 为第一行
var whitePawnTable = [8][8]float64{
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{0.5, 1.0, 1.0, -2.0, -2.0, 1.0, 1.0, 0.5},
	{0.5, -0.5, -1.0, 0.0, 0.0, -1.0, -0.5, 0.5},
	{0.0, 0.0, 0.0, 2.5, 2.5, 0.0, 0.0, 0.0},
	{0.5, 0.5, 1.0, 2.5, 2.5, 1.0, 0.5, 0.5},
	{1.0, 1.0, 2.0, 3.0, 3.0, 2.0, 1.0, 1.0},
	{5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0},
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
}

var whiteKnightTable = [8][8]float64{
	{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
	{-4.0, -2.0, 0.0, 0.5, 0.5, 0.0, -2.0, -4.0},
	{-3.0, 0.5, 1.0, 1.5, 1.5, 1.0, 0.5, -3.0},
	{-3.0, 0.0, 1.5, 2.0, 2.0, 1.5, 0.0, -3.0},
	{-3.0, 0.5, 1.5, 2.0, 2.0, 1.5, 0.5, -3.0},
	{-3.0, 0.0, 1.0, 1.5, 1.5, 1.0, 0.0, -3.0},
	{-4.0, -2.0, 0.0, 0.0, 0.0, 0.0, -2.0, -4.0},
	{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
}

var whiteBishopTable = [8][8]float64{
	{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
	{-1.0, 0.5, 0.0, 0.0, 0.0, 0.0, 0.5, -1.0},
	{-1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, -1.0},
	{-1.0, 0.0, 1.0, 1.0, 1.0, 1.0, 0.0, -1.0},
	{-1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 0.5, -1.0},
	{-1.0, 0.0, 0.5, 1.0, 1.0, 0.5, 0.0, -1.0},
	{-1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -1.0},
	{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
}

// [side][kind] -> 表；黑方的表是白方表旋转 180 度
var pieceTables [2][chess.King + 1]*[8][8]float64

func init() {
	for kind, white := range map[chess.PieceKind]*[8][8]float64{
		chess.Pawn:   &whitePawnTable,
		chess.Knight: &whiteKnightTable,
		chess.Bishop: &whiteBishopTable,
	} {
		black := rotate(white)
		pieceTables[chess.White][kind] = white
		pieceTables[chess.Black][kind] = &black
	}
}

func rotate(table *[8][8]float64) [8][8]float64 {
	var out [8][8]float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			out[7-i][7-j] = table[i][j]
		}
	}
	return out
}

func positionalBonus(pc chess.Piece) float64 {
	if pc.Side != chess.White && pc.Side != chess.Black {
		return 0
	}
	table := pieceTables[pc.Side][pc.Kind]
	if table == nil {
		return 0
	}
	return table[pc.Field.Rank()][pc.Field.File()]
}

// Material 白方视角的子力加位置分
func Material(pos *chess.Position) float64 {
	score := 0.0
	for _, pc := range pos.Pieces() {
		score += float64(pc.Side.Direction()) * (pieceValue[pc.Kind] + positionalBonus(pc))
	}
	return score
}

// Evaluate 走棋方视角的评估（negamax 需要）：局面与其颜色互换、走棋方也互换的镜像得分相同。
// 终局扣分只算在无着法的一方
func Evaluate(pos *chess.Position) float64 {
	score := float64(pos.SideToMove().Direction()) * Material(pos)
	if pos.IsGameOver() {
		score -= MateScore
	}
	return score
}
