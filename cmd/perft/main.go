package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/sync/errgroup"

	"negachess/internal/chess"
)

type divideEntry struct {
	move  chess.Move
	nodes int64
}

func main() {
	fen := flag.String("fen", chess.InitialFEN, "position to count (castling and en-passant fields are ignored)")
	depth := flag.Int("depth", 4, "perft depth")
	concurrency := flag.Int("concurrency", 0, "parallel root moves, 0 for one per root move")
	divide := flag.Bool("divide", false, "print the node count below every root move")
	verify := flag.Bool("verify", false, "compare the legal moves of every node with dragontoothmg")
	flag.Parse()

	pos, err := chess.DecodeFEN(*fen)
	if err != nil {
		log.Fatalf("decode %q: %v", *fen, err)
	}
	if *depth < 1 {
		log.Fatalf("depth must be at least 1, got %d", *depth)
	}

	start := time.Now()
	if *verify {
		if err := oracleCheck(pos, 1); err != nil {
			log.Fatal(err)
		}
	}
	moves := pos.LegalMoves()
	entries := make([]divideEntry, len(moves))

	var g errgroup.Group
	if *concurrency > 0 {
		g.SetLimit(*concurrency)
	}
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			child, err := pos.Apply(mv)
			if err != nil {
				return fmt.Errorf("apply %v: %w", mv, err)
			}
			n := chess.Perft(child, *depth-1)
			entries[i] = divideEntry{move: mv, nodes: n}
			if *verify {
				if err := oracleCheck(child, *depth-1); err != nil {
					return fmt.Errorf("below %s: %w", mv.UCI(), err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	var total int64
	for _, e := range entries {
		total += e.nodes
	}
	if *divide {
		sort.Slice(entries, func(i, j int) bool { return entries[i].move.UCI() < entries[j].move.UCI() })
		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s: %d\n", e.move.UCI(), e.nodes)
		}
		fmt.Print(sb.String())
	}
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v (%.0f nodes/s)\n", *depth, total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	if *verify {
		log.Printf("every node above depth %d agrees with dragontoothmg", *depth)
	}
}

// oracleCheck 遍历 pos 下的着法树，逐个节点与 dragontoothmg 比较合法着法数。
// 节点以 EncodeFEN 的 FEN 交给对方，不含易位和过路兵，两边规则一致
func oracleCheck(pos *chess.Position, depth int) error {
	if depth <= 0 {
		return nil
	}
	fen := pos.EncodeFEN()
	b := dragontoothmg.ParseFen(fen)
	moves := pos.LegalMoves()
	if want := len(b.GenerateLegalMoves()); want != len(moves) {
		return fmt.Errorf("%s: %d legal moves, dragontoothmg %d", fen, len(moves), want)
	}
	for _, mv := range moves {
		child, err := pos.Apply(mv)
		if err != nil {
			return err
		}
		if err := oracleCheck(child, depth-1); err != nil {
			return err
		}
	}
	return nil
}
