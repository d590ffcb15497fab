package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"negachess/internal/chess"
	"negachess/internal/engine"
	"negachess/internal/notation"
	"negachess/internal/shell"
)

func main() {
	fen := flag.String("fen", chess.InitialFEN, "position to inspect")
	flag.Parse()

	pos, err := chess.DecodeFEN(*fen)
	if err != nil {
		log.Fatalf("decode %q: %v", *fen, err)
	}
	fmt.Print(shell.Render(pos))
	fmt.Println("FEN:", pos.EncodeFEN())
	fmt.Printf("Hash: %016x (recomputed %016x)\n", pos.Hash(), pos.CalculateHash())
	fmt.Println("Side to move:", pos.SideToMove(), "in check:", pos.InCheck())
	fmt.Println("Pseudo legal moves:", len(pos.PseudoLegalMoves()))

	legal := pos.LegalMoves()
	sans := make([]string, len(legal))
	for i, mv := range legal {
		sans[i] = notation.SAN(pos, mv)
	}
	fmt.Printf("Legal moves (%d): %s\n", len(legal), strings.Join(sans, " "))
	fmt.Printf("Material: %.1f  Evaluate: %.1f\n", engine.Material(pos), engine.Evaluate(pos))
}
