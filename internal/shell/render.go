package shell

import (
	"strings"

	"negachess/internal/chess"
)

const fileLegend = "   a  b  c  d  e  f  g  h   \n"

// Render 画出棋盘，白方在下：白方大写，黑方小写
func Render(pos *chess.Position) string {
	var sb strings.Builder
	sb.WriteString(fileLegend)
	for rank := chess.Ranks - 1; rank >= 0; rank-- {
		label := string(rune('1' + rank))
		sb.WriteString(label)
		sb.WriteByte(' ')
		for file := 0; file < chess.Files; file++ {
			f, _ := chess.NewField(file, rank)
			sb.WriteByte('[')
			if pc, ok := pos.PieceAt(f); ok {
				sb.WriteString(pc.Letter())
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(']')
		}
		sb.WriteByte(' ')
		sb.WriteString(label)
		sb.WriteByte('\n')
	}
	sb.WriteString(fileLegend)
	return sb.String()
}
