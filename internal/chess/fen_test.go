package chess

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 12",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := DecodeFEN(fen)
		if err != nil {
			t.Fatalf("decode %q: %v", fen, err)
		}
		if got := pos.EncodeFEN(); got != fen {
			t.Fatalf("round trip: got=%q want=%q", got, fen)
		}
	}
}

func TestDecodeFENPly(t *testing.T) {
	pos, err := DecodeFEN("8/8/8/8/8/8/8/8 b - - 0 12")
	if err != nil {
		t.Fatal(err)
	}
	if pos.Ply() != 23 || pos.SideToMove() != Black {
		t.Fatalf("ply=%d side=%v", pos.Ply(), pos.SideToMove())
	}

	next, err := NewInitialPosition().Apply(NewMove(E2, E4))
	if err != nil {
		t.Fatal(err)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	if got := next.EncodeFEN(); got != want {
		t.Fatalf("after e4: got=%q want=%q", got, want)
	}
}

func TestDecodeFENHomeRankPawns(t *testing.T) {
	pos, err := DecodeFEN("4k3/3p4/8/8/8/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Field{D2, D7} {
		pc, _ := pos.PieceAt(f)
		if !pc.Initial() {
			t.Fatalf("pawn on %v should keep its double advance", f)
		}
	}
}

func TestDecodeFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 0",
	}
	for _, fen := range bad {
		if _, err := DecodeFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("DecodeFEN(%q): err=%v", fen, err)
		}
	}
}
