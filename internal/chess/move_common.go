package chess

var (
	kingDirs = [8][2]int{
		{0, +1}, {+1, +1}, {+1, 0}, {+1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, +1},
	}
	bishopDirs = [4][2]int{{+1, +1}, {+1, -1}, {-1, -1}, {-1, +1}}
	rookDirs   = [4][2]int{{0, +1}, {+1, 0}, {0, -1}, {-1, 0}}
	queenDirs  = kingDirs
)

// stepMove 尝试一步位移并追加着法；目标格为空时返回 true，滑行棋子据此继续走
func stepMove(p *Position, pc Piece, df, dr int, moves *[]Move) bool {
	to, ok := pc.Field.Offset(df, dr)
	if !ok {
		return false
	}
	dst := p.board[to]
	if dst.IsZero() {
		*moves = append(*moves, NewMove(pc.Field, to))
		return true
	}
	if pc.IsEnemy(dst) {
		if dst.Kind == King {
			*moves = append(*moves, NewCheck(pc.Field, to, dst))
		} else {
			*moves = append(*moves, NewCapture(pc.Field, to, dst))
		}
	}
	return false
}

func slideMoves(p *Position, pc Piece, dirs [][2]int, moves *[]Move) {
	for _, d := range dirs {
		for i := 1; i < Files; i++ {
			if !stepMove(p, pc, i*d[0], i*d[1], moves) {
				break
			}
		}
	}
}

// 王：八个方向各一步，无易位
func genKingMoves(p *Position, pc Piece, moves *[]Move) {
	for _, d := range kingDirs {
		stepMove(p, pc, d[0], d[1], moves)
	}
}

func genBishopMoves(p *Position, pc Piece, moves *[]Move) {
	slideMoves(p, pc, bishopDirs[:], moves)
}

func genRookMoves(p *Position, pc Piece, moves *[]Move) {
	slideMoves(p, pc, rookDirs[:], moves)
}

func genQueenMoves(p *Position, pc Piece, moves *[]Move) {
	slideMoves(p, pc, queenDirs[:], moves)
}

// defaultAfterMove 在目标格重建棋子
func defaultAfterMove(pc Piece, m Move) Piece {
	return pc.Kind.Of(pc.Side, m.To)
}
