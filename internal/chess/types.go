package chess

import "strings"

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

// Direction 该方兵的前进方向，评估时也当作符号用
func (s Side) Direction() int {
	switch s {
	case White:
		return +1
	case Black:
		return -1
	}
	return 0
}

func (s Side) Flip() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	}
	return "NONE"
}

type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindCodes = [...]string{
	NoKind: ".",
	Pawn:   "P",
	Knight: "N",
	Bishop: "B",
	Rook:   "R",
	Queen:  "Q",
	King:   "K",
}

// Code FEN 和命令行用的大写字母
func (k PieceKind) Code() string {
	if k < NoKind || int(k) >= len(kindCodes) {
		return "?"
	}
	return kindCodes[k]
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "PAWN"
	case Knight:
		return "KNIGHT"
	case Bishop:
		return "BISHOP"
	case Rook:
		return "ROOK"
	case Queen:
		return "QUEEN"
	case King:
		return "KING"
	}
	return "NONE"
}

// ParsePieceKind 按字母查棋子种类，大小写均可；"H" 兼容旧写法，表示马
func ParsePieceKind(code string) (PieceKind, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "H" {
		return Knight, true
	}
	for k := Pawn; k <= King; k++ {
		if kindCodes[k] == code {
			return k, true
		}
	}
	return NoKind, false
}

// Of 在 f 上构造该种棋子。这样构造的兵没有初始状态；
// 只有 NewInitialPosition 和 DecodeFEN 给出可双步的兵
func (k PieceKind) Of(side Side, f Field) Piece {
	return Piece{Kind: k, Side: side, Field: f}
}

// Piece 不可变值，零值表示空格
type Piece struct {
	Kind  PieceKind
	Side  Side
	Field Field

	initial bool
}

func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Initial 兵是否仍可双步
func (p Piece) Initial() bool { return p.initial }

func (p Piece) IsEnemy(other Piece) bool {
	return !other.IsZero() && other.Side != p.Side
}

// Same 比较种类、颜色、格子，忽略兵的初始标记
func (p Piece) Same(other Piece) bool {
	return p.Kind == other.Kind && p.Side == other.Side && p.Field == other.Field
}

func (p Piece) String() string {
	if p.IsZero() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String() + " " + p.Field.String()
}

// Letter FEN 字母：白方大写，黑方小写
func (p Piece) Letter() string {
	if p.IsZero() {
		return "."
	}
	if p.Side == White {
		return p.Kind.Code()
	}
	return strings.ToLower(p.Kind.Code())
}

type MoveType int8

const (
	MoveQuiet MoveType = iota
	MoveCapture
	MoveCheck
	MovePromotion
)

func (t MoveType) String() string {
	switch t {
	case MoveQuiet:
		return "MOVE"
	case MoveCapture:
		return "CAPTURE"
	case MoveCheck:
		return "CHECK"
	case MovePromotion:
		return "PROMOTION"
	}
	return "UNKNOWN"
}

// Move 可以用 == 比较。
// 吃子和 CHECK 必有 Captured，升变可有可无；Promoted 只在升变时设置
type Move struct {
	Type     MoveType
	From     Field
	To       Field
	Promoted PieceKind
	Captured Piece
}

func NewMove(from, to Field) Move {
	return Move{Type: MoveQuiet, From: from, To: to}
}

func NewCapture(from, to Field, captured Piece) Move {
	return Move{Type: MoveCapture, From: from, To: to, Captured: captured}
}

// NewCheck 目标是对方王的吃子
func NewCheck(from, to Field, king Piece) Move {
	return Move{Type: MoveCheck, From: from, To: to, Captured: king}
}

func NewPromotion(from, to Field, promoted PieceKind, captured Piece) Move {
	return Move{Type: MovePromotion, From: from, To: to, Promoted: promoted, Captured: captured}
}

func (m Move) IsCapture() bool { return !m.Captured.IsZero() }

func (m Move) String() string {
	return m.From.String() + " to " + m.To.String()
}

// UCI 输出 e2e4 / e7e8q
func (m Move) UCI() string {
	s := strings.ToLower(m.From.String() + m.To.String())
	if m.Type == MovePromotion {
		s += strings.ToLower(m.Promoted.Code())
	}
	return s
}
