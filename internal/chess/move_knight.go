package chess

var knightJumps = [8][2]int{
	{+1, +2}, {+2, +1}, {+2, -1}, {+1, -2},
	{-1, -2}, {-2, -1}, {-2, +1}, {-1, +2},
}

func genKnightMoves(p *Position, pc Piece, moves *[]Move) {
	for _, j := range knightJumps {
		stepMove(p, pc, j[0], j[1], moves)
	}
}
