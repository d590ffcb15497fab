package chess

// canCaptureKing：by 方若此刻走棋，其伪合法着法中是否有 CHECK（能吃王）
func (p *Position) canCaptureKing(by Side) bool {
	var moves []Move
	for _, pc := range p.board {
		if pc.IsZero() || pc.Side != by {
			continue
		}
		moves = moves[:0]
		rules[pc.Kind].generate(p, pc, &moves)
		for _, mv := range moves {
			if mv.Type == MoveCheck {
				return true
			}
		}
	}
	return false
}

// InCheck 当前走棋方的王是否会被对方吃掉
func (p *Position) InCheck() bool {
	return p.canCaptureKing(p.sideToMove.Flip())
}

// KingExists 该方是否还有王在盘上
func (p *Position) KingExists(side Side) bool {
	for _, pc := range p.board {
		if pc.Kind == King && pc.Side == side {
			return true
		}
	}
	return false
}
