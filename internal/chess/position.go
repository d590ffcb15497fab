package chess

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNoPiece        = errors.New("no piece")
	ErrWrongTurn      = errors.New("wrong turn")
	ErrIllegalCapture = errors.New("cannot capture own piece")
	ErrSquareOccupied = errors.New("square occupied")
	ErrOffBoard       = errors.New("field off board")
)

// Position = 棋盘 + 走棋方 + 半回合数，构造后不再修改，所有操作都返回新 Position。
//
// Equal 只比较棋盘：子力相同、走棋方不同的两个局面相等
type Position struct {
	board      [NumSquares]Piece
	sideToMove Side
	ply        int
	hash       uint64

	legalOnce sync.Once
	legal     []Move
}

func newPosition(board [NumSquares]Piece, side Side, ply int) *Position {
	p := &Position{
		board:      board,
		sideToMove: side,
		ply:        ply,
	}
	p.hash = p.CalculateHash()
	return p
}

// NewEmptyPosition 空棋盘，白方走，用于摆局
func NewEmptyPosition() *Position {
	return newPosition([NumSquares]Piece{}, White, 0)
}

func (p *Position) SideToMove() Side { return p.sideToMove }
func (p *Position) Ply() int         { return p.ply }

// PieceAt 返回 f 上的棋子，空格返回 false
func (p *Position) PieceAt(f Field) (Piece, bool) {
	if !f.Valid() {
		return Piece{}, false
	}
	pc := p.board[f]
	return pc, !pc.IsZero()
}

// Pieces 按格子顺序列出棋子，A1 在前
func (p *Position) Pieces() []Piece {
	out := make([]Piece, 0, 32)
	for _, pc := range p.board {
		if !pc.IsZero() {
			out = append(out, pc)
		}
	}
	return out
}

// Place 在空格上放一个新棋子。这样放的兵即使在原始行也不能双步
func (p *Position) Place(side Side, kind PieceKind, f Field) (*Position, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrOffBoard, f)
	}
	if kind < Pawn || kind > King || (side != White && side != Black) {
		return nil, fmt.Errorf("%w: cannot place %v %v", ErrNoPiece, side, kind)
	}
	if prev := p.board[f]; !prev.IsZero() {
		return nil, fmt.Errorf("%w: there is already %v in field %v", ErrSquareOccupied, prev, f)
	}
	board := p.board
	board[f] = kind.Of(side, f)
	return newPosition(board, p.sideToMove, p.ply), nil
}

// Remove 清空 f，空格也不报错
func (p *Position) Remove(f Field) *Position {
	board := p.board
	if f.Valid() {
		board[f] = Piece{}
	}
	return newPosition(board, p.sideToMove, p.ply)
}

// WithSideToMove 同一棋盘，换走棋方
func (p *Position) WithSideToMove(side Side) *Position {
	return newPosition(p.board, side, p.ply)
}

// Apply 执行 m。只检查结构（有子、轮到该方、不吃己方），合法性由调用方用 LegalMoves 保证
func (p *Position) Apply(m Move) (*Position, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrOffBoard, m)
	}
	pc := p.board[m.From]
	if pc.IsZero() {
		return nil, fmt.Errorf("%w in field %v", ErrNoPiece, m.From)
	}
	if pc.Side != p.sideToMove {
		return nil, fmt.Errorf("%w: it's %v's turn", ErrWrongTurn, p.sideToMove)
	}
	captured := p.board[m.To]
	if !captured.IsZero() && !pc.IsEnemy(captured) {
		return nil, fmt.Errorf("%w: cannot capture %v with %v", ErrIllegalCapture, captured, pc)
	}

	moved := rules[pc.Kind].after(pc, m)

	np := &Position{
		board:      p.board,
		sideToMove: p.sideToMove.Flip(),
		ply:        p.ply + 1,
	}
	np.board[m.From] = Piece{}
	np.board[m.To] = moved

	// 增量 zobrist：移出起点、移出被吃子、放入走后棋子、翻转走棋方
	h := p.hash
	h ^= pieceHashKey(pc, m.From)
	if !captured.IsZero() {
		h ^= pieceHashKey(captured, m.To)
	}
	h ^= pieceHashKey(moved, m.To)
	h ^= zobristSide
	np.hash = h

	return np, nil
}

// Equal 只比较格子到棋子的映射（种类、颜色、格子）
func (p *Position) Equal(o *Position) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil {
		return false
	}
	for sq := range p.board {
		if !p.board[sq].Same(o.board[sq]) {
			return false
		}
	}
	return true
}

// Mirrored 棋盘旋转 180 度、交换颜色并交换走棋方，兵的初始状态保留
func (p *Position) Mirrored() *Position {
	var board [NumSquares]Piece
	for sq, pc := range p.board {
		if pc.IsZero() {
			continue
		}
		f := Field(sq).Mirror()
		pc.Side = pc.Side.Flip()
		pc.Field = f
		board[f] = pc
	}
	return newPosition(board, p.sideToMove.Flip(), p.ply)
}
