package chess

import "strings"

const (
	Files      = 8
	Ranks      = 8
	NumSquares = Files * Ranks
)

// Field 格子下标 rank*8+file，A1=0，H8=63
type Field int8

const NoField Field = -1

const (
	A1 Field = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

func indexOf(file, rank int) Field { return Field(rank*Files + file) }

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

// NewField (file, rank) 出界时返回 false
func NewField(file, rank int) (Field, bool) {
	if !onBoard(file, rank) {
		return NoField, false
	}
	return indexOf(file, rank), true
}

// ParseField 解析 "E4" 这样的两字符坐标，大小写均可
func ParseField(code string) (Field, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return NoField, false
	}
	file := int(code[0]) - 'A'
	rank := int(code[1]) - '1'
	return NewField(file, rank)
}

func (f Field) File() int { return int(f) % Files }
func (f Field) Rank() int { return int(f) / Files }

func (f Field) Valid() bool { return f >= 0 && f < NumSquares }

// Offset 平移 (df, dr)，出界返回 false
func (f Field) Offset(df, dr int) (Field, bool) {
	return NewField(f.File()+df, f.Rank()+dr)
}

// Mirror 棋盘旋转 180 度后的格子
func (f Field) Mirror() Field {
	return NumSquares - 1 - f
}

func (f Field) String() string {
	if !f.Valid() {
		return "-"
	}
	return string([]byte{byte('A' + f.File()), byte('1' + f.Rank())})
}
