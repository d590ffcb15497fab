package chess

import "slices"

// 每种棋子的行为：伪合法着法生成 + 走后的棋子
type pieceRules struct {
	generate func(p *Position, pc Piece, moves *[]Move)
	after    func(pc Piece, m Move) Piece
}

var rules = [...]pieceRules{
	NoKind: {generate: func(*Position, Piece, *[]Move) {}, after: defaultAfterMove},
	Pawn:   {generate: genPawnMoves, after: pawnAfterMove},
	Knight: {generate: genKnightMoves, after: defaultAfterMove},
	Bishop: {generate: genBishopMoves, after: defaultAfterMove},
	Rook:   {generate: genRookMoves, after: defaultAfterMove},
	Queen:  {generate: genQueenMoves, after: defaultAfterMove},
	King:   {generate: genKingMoves, after: defaultAfterMove},
}

// PseudoLegalMovesForSide 不管走后己方王是否会被吃
func (p *Position) PseudoLegalMovesForSide(side Side) []Move {
	var moves []Move
	for _, pc := range p.board {
		if pc.IsZero() || pc.Side != side {
			continue
		}
		rules[pc.Kind].generate(p, pc, &moves)
	}
	return moves
}

func (p *Position) PseudoLegalMoves() []Move {
	return p.PseudoLegalMovesForSide(p.sideToMove)
}

// LegalMoves 当前走棋方的合法着法，按起点格顺序。
// 每个 Position 只算一次，返回副本
func (p *Position) LegalMoves() []Move {
	return slices.Clone(p.legalMoves())
}

func (p *Position) legalMoves() []Move {
	p.legalOnce.Do(func() {
		p.legal = p.generateLegalMoves()
	})
	return p.legal
}

// 伪合法着法走完后，对方没有吃王的着法，即为合法
func (p *Position) generateLegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	out := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		np, err := p.Apply(mv)
		if err != nil {
			continue
		}
		if np.canCaptureKing(np.sideToMove) {
			continue
		}
		out = append(out, mv)
	}
	return out
}

// IsGameOver 无合法着法即终局，不区分将死和逼和
func (p *Position) IsGameOver() bool {
	return len(p.legalMoves()) == 0
}
