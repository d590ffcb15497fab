package chess

import (
	"errors"
	"slices"
	"testing"
)

func mustPlace(t *testing.T, p *Position, side Side, kind PieceKind, f Field) *Position {
	t.Helper()
	np, err := p.Place(side, kind, f)
	if err != nil {
		t.Fatalf("place %v %v %v: %v", side, kind, f, err)
	}
	return np
}

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	pos := NewInitialPosition()
	moves := pos.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("legal moves: got=%d want=20", len(moves))
	}
	pawns, knights := 0, 0
	for _, mv := range moves {
		pc, _ := pos.PieceAt(mv.From)
		switch pc.Kind {
		case Pawn:
			pawns++
		case Knight:
			knights++
		default:
			t.Errorf("unexpected mover %v", pc)
		}
	}
	if pawns != 16 || knights != 4 {
		t.Fatalf("pawn moves=%d knight moves=%d, want 16 and 4", pawns, knights)
	}
	if len(pos.Pieces()) != 32 {
		t.Fatalf("pieces: got=%d want=32", len(pos.Pieces()))
	}
}

func TestCheckmatedPositionIsGameOver(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, White, King, H1)
	pos = mustPlace(t, pos, Black, Bishop, E3)
	pos = mustPlace(t, pos, Black, Bishop, F3)
	pos = mustPlace(t, pos, Black, Queen, H3)

	if !pos.IsGameOver() {
		t.Fatalf("expected game over, legal moves: %v", pos.LegalMoves())
	}
	if n := len(pos.LegalMoves()); n != 0 {
		t.Fatalf("legal moves: got=%d want=0", n)
	}
	if !pos.InCheck() {
		t.Fatalf("white king on H1 should be in check")
	}
}

func TestPromoteThroughCapture(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, Black, Pawn, G8)
	pos = mustPlace(t, pos, White, Pawn, H7)

	want := NewPromotion(H7, G8, Queen, Pawn.Of(Black, G8))
	if !slices.Contains(pos.LegalMoves(), want) {
		t.Fatalf("missing %v (%v) in %v", want, want.Type, pos.LegalMoves())
	}

	promotions := 0
	for _, mv := range pos.LegalMoves() {
		if mv.Type == MovePromotion {
			promotions++
		}
	}
	if promotions != 8 {
		t.Fatalf("promotions: got=%d want=8 (4 by advance, 4 by capture)", promotions)
	}

	next, err := pos.Apply(want)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	pc, ok := next.PieceAt(G8)
	if !ok || pc.Kind != Queen || pc.Side != White {
		t.Fatalf("G8 after promotion: %v", pc)
	}
	if _, ok := next.PieceAt(H7); ok {
		t.Fatalf("H7 should be empty after promotion")
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	pos := NewInitialPosition()
	before := pos.LegalMoves()
	fen := pos.EncodeFEN()
	hash := pos.Hash()

	for _, mv := range before {
		next, err := pos.Apply(mv)
		if err != nil {
			t.Fatalf("apply %v: %v", mv, err)
		}
		if next.Equal(pos) {
			t.Fatalf("%v produced an equal board", mv)
		}
		if next.SideToMove() != Black || next.Ply() != 1 {
			t.Fatalf("%v: side=%v ply=%d", mv, next.SideToMove(), next.Ply())
		}
	}

	if !slices.Equal(before, pos.LegalMoves()) {
		t.Fatalf("legal moves changed after Apply")
	}
	if pos.EncodeFEN() != fen || pos.Hash() != hash {
		t.Fatalf("receiver changed: %s", pos.EncodeFEN())
	}
}

func TestLegalMovesReturnsCopy(t *testing.T) {
	pos := NewInitialPosition()
	moves := pos.LegalMoves()
	moves[0] = Move{}
	if pos.LegalMoves()[0] == (Move{}) {
		t.Fatalf("caller could overwrite the memoized list")
	}
}

func TestApplyRejectsRuleViolations(t *testing.T) {
	pos := NewInitialPosition()

	t.Run("WrongTurn", func(t *testing.T) {
		_, err := pos.Apply(NewMove(E7, E5))
		if !errors.Is(err, ErrWrongTurn) {
			t.Fatalf("got err=%v want ErrWrongTurn", err)
		}
		if pos.SideToMove() != White || pos.Ply() != 0 || !pos.Equal(NewInitialPosition()) {
			t.Fatalf("position changed after rejected move")
		}
	})

	t.Run("NoPiece", func(t *testing.T) {
		_, err := pos.Apply(NewMove(E4, E5))
		if !errors.Is(err, ErrNoPiece) {
			t.Fatalf("got err=%v want ErrNoPiece", err)
		}
	})

	t.Run("OwnPiece", func(t *testing.T) {
		own, _ := pos.PieceAt(B1)
		_, err := pos.Apply(NewCapture(A1, B1, own))
		if !errors.Is(err, ErrIllegalCapture) {
			t.Fatalf("got err=%v want ErrIllegalCapture", err)
		}
	})
}

func TestPlaceAndRemove(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, White, Rook, C2)

	if _, err := pos.Place(Black, Pawn, C2); !errors.Is(err, ErrSquareOccupied) {
		t.Fatalf("got err=%v want ErrSquareOccupied", err)
	}

	removed := pos.Remove(C2)
	if len(removed.Pieces()) != 0 {
		t.Fatalf("remove left %v", removed.Pieces())
	}
	if len(pos.Pieces()) != 1 {
		t.Fatalf("Remove changed the receiver")
	}
	if !removed.Remove(C2).Equal(removed) {
		t.Fatalf("removing from an empty square should be a no-op")
	}
}

func TestPlacedPawnHasNoDoubleAdvance(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, White, Pawn, E2)

	moves := pos.LegalMoves()
	if len(moves) != 1 || moves[0] != NewMove(E2, E3) {
		t.Fatalf("placed pawn moves: %v", moves)
	}

	initial := NewInitialPosition()
	if !slices.Contains(initial.LegalMoves(), NewMove(E2, E4)) {
		t.Fatalf("start position pawn should advance two squares")
	}

	// 兵走过一步后不能再双步
	next, _ := initial.Apply(NewMove(E2, E3))
	next, _ = next.Apply(NewMove(A7, A6))
	for _, mv := range next.LegalMoves() {
		if mv.From == E3 && mv.To == E5 {
			t.Fatalf("moved pawn kept its double advance")
		}
	}
}

func TestDoubleAdvanceNeedsEmptyPath(t *testing.T) {
	pos, err := DecodeFEN("4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, mv := range pos.LegalMoves() {
		if mv.From == E2 {
			t.Fatalf("blocked pawn generated %v", mv)
		}
	}
}

func TestKingCannotStepNextToKing(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, White, King, E1)
	pos = mustPlace(t, pos, Black, King, E3)

	for _, mv := range pos.LegalMoves() {
		if mv.To.Rank() == 1 {
			t.Fatalf("king walked into the other king: %v", mv)
		}
	}
	if n := len(pos.LegalMoves()); n != 2 {
		t.Fatalf("legal moves: got=%d want=2 (D1, F1)", n)
	}
}

func TestSliderStopsAtFirstPiece(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, White, Rook, A1)
	pos = mustPlace(t, pos, Black, Knight, A4)
	pos = mustPlace(t, pos, White, Bishop, D1)

	var up []Move
	for _, mv := range pos.PseudoLegalMoves() {
		if mv.From == A1 && mv.To.File() == 0 {
			up = append(up, mv)
		}
	}
	want := []Move{
		NewMove(A1, A2),
		NewMove(A1, A3),
		NewCapture(A1, A4, Knight.Of(Black, A4)),
	}
	if !slices.Equal(up, want) {
		t.Fatalf("rook file moves: got=%v want=%v", up, want)
	}
	for _, mv := range pos.PseudoLegalMoves() {
		if mv.From == A1 && (mv.To == D1 || mv.To == E1) {
			t.Fatalf("rook jumped over its own bishop: %v", mv)
		}
	}
}

func TestCaptureOfKingIsCheck(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, White, Knight, D4)
	pos = mustPlace(t, pos, Black, King, E6)
	pos = mustPlace(t, pos, Black, Pawn, F5)

	found := false
	for _, mv := range pos.PseudoLegalMoves() {
		if mv.To == E6 {
			found = true
			if mv.Type != MoveCheck || mv.Captured.Kind != King {
				t.Fatalf("king capture typed %v", mv.Type)
			}
		}
		if mv.To == F5 && mv.Type != MoveCapture {
			t.Fatalf("pawn capture typed %v", mv.Type)
		}
	}
	if !found {
		t.Fatalf("knight on D4 should reach E6")
	}
}

func TestPawnAttackOnKingCountsAsCheck(t *testing.T) {
	pos := NewEmptyPosition()
	pos = mustPlace(t, pos, White, King, A1)
	pos = mustPlace(t, pos, Black, King, E5)
	pos = mustPlace(t, pos, White, Pawn, D3)
	pos = pos.WithSideToMove(Black)

	for _, mv := range pos.LegalMoves() {
		if mv.To == E4 || mv.To == C4 {
			t.Fatalf("black king may not step onto a pawn-attacked square: %v", mv)
		}
	}
}

func TestEqualIgnoresSideToMove(t *testing.T) {
	a := NewInitialPosition()
	b := a.WithSideToMove(Black)
	if !a.Equal(b) {
		t.Fatalf("positions with the same pieces should be equal")
	}
	if a.Hash() == b.Hash() {
		t.Fatalf("hash should include side to move")
	}
}

func TestParseCodes(t *testing.T) {
	if f, ok := ParseField("E4"); !ok || f != E4 {
		t.Fatalf("ParseField(E4)=%v,%v", f, ok)
	}
	if f, ok := ParseField("h8"); !ok || f != H8 {
		t.Fatalf("ParseField(h8)=%v,%v", f, ok)
	}
	for _, bad := range []string{"", "I1", "A9", "A0", "E44"} {
		if _, ok := ParseField(bad); ok {
			t.Errorf("ParseField(%q) should fail", bad)
		}
	}
	if _, ok := NewField(8, 0); ok {
		t.Errorf("NewField(8,0) should fail")
	}
	if f, ok := NewField(4, 3); !ok || f != E4 || f.String() != "E4" {
		t.Errorf("NewField(4,3)=%v,%v", f, ok)
	}

	for code, want := range map[string]PieceKind{"Q": Queen, "n": Knight, "H": Knight, "p": Pawn, "K": King} {
		if k, ok := ParsePieceKind(code); !ok || k != want {
			t.Errorf("ParsePieceKind(%q)=%v,%v want %v", code, k, ok, want)
		}
	}
	if _, ok := ParsePieceKind("X"); ok {
		t.Errorf("ParsePieceKind(X) should fail")
	}
}
