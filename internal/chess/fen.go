package chess

import (
	"errors"
	"strconv"
	"strings"
)

const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

var letterToKind = map[byte]PieceKind{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

// NewInitialPosition 标准开局，32 子，白方先走
func NewInitialPosition() *Position {
	pos, err := DecodeFEN(InitialFEN)
	if err != nil {
		panic("bad InitialFEN: " + err.Error())
	}
	return pos
}

// EncodeFEN 输出标准 FEN。不支持王车易位和吃过路兵，这两栏固定为 "-"，半回合计数固定为 0
func (p *Position) EncodeFEN() string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < Files; file++ {
			pc := p.board[indexOf(file, rank)]
			if pc.IsZero() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if p.sideToMove == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	sb.WriteString(" - - 0 ")
	sb.WriteString(strconv.Itoa(p.ply/2 + 1))
	return sb.String()
}

// DecodeFEN 解析棋盘、走棋方和回合数；易位、过路兵、半回合栏接受但忽略。
// 在原始行上的兵保留双步资格
func DecodeFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, ErrInvalidFEN
	}

	var b [NumSquares]Piece
	for i, row := range rows {
		rank := Ranks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= Files {
				return nil, ErrInvalidFEN
			}
			side := Black
			lower := ch
			if ch >= 'A' && ch <= 'Z' {
				side = White
				lower = ch + ('a' - 'A')
			}
			kind, ok := letterToKind[lower]
			if !ok {
				return nil, ErrInvalidFEN
			}
			f := indexOf(file, rank)
			pc := kind.Of(side, f)
			if kind == Pawn && rank == homeRank(side) {
				pc.initial = true
			}
			b[f] = pc
			file++
		}
		if file != Files {
			return nil, ErrInvalidFEN
		}
	}

	var side Side
	switch parts[1] {
	case "w", "W":
		side = White
	case "b", "B":
		side = Black
	default:
		return nil, ErrInvalidFEN
	}

	ply := 0
	if len(parts) >= 6 {
		full, err := strconv.Atoi(parts[5])
		if err != nil || full < 1 {
			return nil, ErrInvalidFEN
		}
		ply = (full - 1) * 2
	}
	if side == Black {
		ply++
	}
	return newPosition(b, side, ply), nil
}
