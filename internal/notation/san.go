// Package notation 把引擎着法写成标准代数记谱（SAN）
package notation

import (
	notnil "github.com/notnil/chess"

	"negachess/internal/chess"
)

// SAN 把 pos 下的 mv 写成 "e4"、"Nf3"、"exd5"、"e8=Q+"。
// 库不接受的局面（缺王、非法摆局）或不认识的着法，退回 UCI 写法
func SAN(pos *chess.Position, mv chess.Move) string {
	if !pos.KingExists(chess.White) || !pos.KingExists(chess.Black) {
		return mv.UCI()
	}
	opt, err := notnil.FEN(pos.EncodeFEN())
	if err != nil {
		return mv.UCI()
	}
	p := notnil.NewGame(opt).Position()
	want := mv.UCI()
	for _, m := range p.ValidMoves() {
		if (notnil.UCINotation{}).Encode(p, m) == want {
			return notnil.AlgebraicNotation{}.Encode(p, m)
		}
	}
	return mv.UCI()
}

// History 把从 start 开始的对局逐步写成 SAN，遇到走不通的着法就停止
func History(start *chess.Position, moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	pos := start
	for _, mv := range moves {
		out = append(out, SAN(pos, mv))
		next, err := pos.Apply(mv)
		if err != nil {
			break
		}
		pos = next
	}
	return out
}
