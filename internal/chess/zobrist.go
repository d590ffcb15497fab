package chess

import "sync"

const zobristPieceKinds = 7 // PieceKind 范围 [1..6]，0 为空格

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceKinds][NumSquares]uint64
	zobristSide   uint64

	// 尚可双步的兵另加一个键：同一盘面，兵能否双步会改变合法着法
	zobristInitialPawn [2][NumSquares]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for kind := 1; kind < zobristPieceKinds; kind++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][kind][sq] = next()
				}
			}
		}
		zobristSide = next()
		for side := 0; side < 2; side++ {
			for sq := 0; sq < NumSquares; sq++ {
				zobristInitialPawn[side][sq] = next()
			}
		}
	})
}

func pieceHashKey(pc Piece, sq Field) uint64 {
	if pc.IsZero() || !sq.Valid() {
		return 0
	}
	if pc.Side != White && pc.Side != Black {
		return 0
	}
	kind := int(pc.Kind)
	if kind <= 0 || kind >= zobristPieceKinds {
		return 0
	}
	key := zobristPieces[pc.Side][kind][sq]
	if pc.Kind == Pawn && pc.initial {
		key ^= zobristInitialPawn[pc.Side][sq]
	}
	return key
}

// CalculateHash 全量计算 Zobrist 哈希。与 Equal 不同，哈希包含走棋方和兵的初始标记
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range p.board {
		h ^= pieceHashKey(pc, Field(sq))
	}
	if p.sideToMove == Black {
		h ^= zobristSide
	}
	return h
}

// Hash 由 Apply 增量维护的 Zobrist 哈希
func (p *Position) Hash() uint64 { return p.hash }
