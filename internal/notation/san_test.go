package notation

import (
	"testing"

	notnil "github.com/notnil/chess"

	"negachess/internal/chess"
)

func find(t *testing.T, pos *chess.Position, uci string) chess.Move {
	t.Helper()
	for _, mv := range pos.LegalMoves() {
		if mv.UCI() == uci {
			return mv
		}
	}
	t.Fatalf("no legal move %s", uci)
	return chess.Move{}
}

func TestSANOfOpeningMoves(t *testing.T) {
	pos := chess.NewInitialPosition()
	tests := []struct {
		uci  string
		want string
	}{
		{"e2e4", "e4"},
		{"g1f3", "Nf3"},
		{"b1c3", "Nc3"},
		{"a2a3", "a3"},
	}
	for _, tt := range tests {
		if got := SAN(pos, find(t, pos, tt.uci)); got != tt.want {
			t.Fatalf("%s: got=%q want=%q", tt.uci, got, tt.want)
		}
	}
}

func TestSANCaptureAndMate(t *testing.T) {
	pos, err := chess.DecodeFEN("7k/Q7/6K1/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := SAN(pos, find(t, pos, "a7g7")); got != "Qg7#" {
		t.Fatalf("got=%q want=Qg7#", got)
	}

	pos, err = chess.DecodeFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := SAN(pos, find(t, pos, "e4d5")); got != "exd5" {
		t.Fatalf("got=%q want=exd5", got)
	}
}

func TestSANFallsBackWithoutKings(t *testing.T) {
	pos, err := chess.NewEmptyPosition().Place(chess.White, chess.Rook, chess.A1)
	if err != nil {
		t.Fatal(err)
	}
	if got := SAN(pos, find(t, pos, "a1a8")); got != "a1a8" {
		t.Fatalf("got=%q want=a1a8", got)
	}
}

func TestHistory(t *testing.T) {
	start := chess.NewInitialPosition()
	pos := start
	var moves []chess.Move
	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		mv := find(t, pos, uci)
		moves = append(moves, mv)
		next, err := pos.Apply(mv)
		if err != nil {
			t.Fatal(err)
		}
		pos = next
	}
	got := History(start, moves)
	want := []string{"e4", "e5", "Nf3", "Nc6"}
	if len(got) != len(want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got=%v want=%v", got, want)
		}
	}
}

func TestLegalMoveCountsMatchLibrary(t *testing.T) {
	fens := []string{
		chess.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
	}
	for _, fen := range fens {
		pos, err := chess.DecodeFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		opt, err := notnil.FEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		want := len(notnil.NewGame(opt).Position().ValidMoves())
		if got := len(pos.LegalMoves()); got != want {
			t.Fatalf("%s: got=%d want=%d", fen, got, want)
		}
	}
}
