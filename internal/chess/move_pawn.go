package chess

var promotionKinds = [4]PieceKind{Queen, Knight, Rook, Bishop}

func promotionRank(side Side) int {
	if side == White {
		return Ranks - 1
	}
	return 0
}

func homeRank(side Side) int {
	if side == White {
		return 1
	}
	return Ranks - 2
}

// genPawnMoves：单步、初始状态双步、斜吃；无吃过路兵
func genPawnMoves(p *Position, pc Piece, moves *[]Move) {
	dir := pc.Side.Direction()

	if one, ok := pc.Field.Offset(0, dir); ok && p.board[one].IsZero() {
		pawnMove(pc, one, Piece{}, moves)

		if pc.initial {
			if two, ok := pc.Field.Offset(0, 2*dir); ok && p.board[two].IsZero() {
				pawnMove(pc, two, Piece{}, moves)
			}
		}
	}

	for _, df := range [2]int{-1, +1} {
		to, ok := pc.Field.Offset(df, dir)
		if !ok {
			continue
		}
		dst := p.board[to]
		if !pc.IsEnemy(dst) {
			continue
		}
		if dst.Kind == King {
			// 底线也一样，保证合法性前瞻能看到
			*moves = append(*moves, NewCheck(pc.Field, to, dst))
			continue
		}
		pawnMove(pc, to, dst, moves)
	}
}

// pawnMove 追加普通走/吃，到底线时追加四种升变
func pawnMove(pc Piece, to Field, captured Piece, moves *[]Move) {
	if to.Rank() == promotionRank(pc.Side) {
		for _, k := range promotionKinds {
			*moves = append(*moves, NewPromotion(pc.Field, to, k, captured))
		}
		return
	}
	if captured.IsZero() {
		*moves = append(*moves, NewMove(pc.Field, to))
	} else {
		*moves = append(*moves, NewCapture(pc.Field, to, captured))
	}
}

// pawnAfterMove 底线升变（未指定则升后），否则永久去掉初始标记
func pawnAfterMove(pc Piece, m Move) Piece {
	if m.To.Rank() == promotionRank(pc.Side) {
		kind := m.Promoted
		if kind == NoKind || kind == Pawn || kind == King {
			kind = Queen
		}
		return kind.Of(pc.Side, m.To)
	}
	return Piece{Kind: Pawn, Side: pc.Side, Field: m.To}
}
