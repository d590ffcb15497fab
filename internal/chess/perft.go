package chess

// Perft 统计给定深度合法着法树的叶子数
func Perft(p *Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := p.legalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, mv := range moves {
		child, err := p.Apply(mv)
		if err != nil {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}
