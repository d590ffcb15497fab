package negamax

import (
	"context"
	"errors"
	"hash/fnv"
	"testing"
)

// nim：每次取 1..3 颗，面对空堆的一方输
func nimSearch() *NegaMax[int, int] {
	domain := NewAdapter(
		func(pile int) []int {
			var out []int
			for take := 1; take <= 3 && take <= pile; take++ {
				out = append(out, take)
			}
			return out
		},
		func(pile, take int) (int, error) { return pile - take, nil },
	)
	heuristic := func(pile int) float64 {
		if pile == 0 {
			return -1
		}
		return 0
	}
	return New[int, int](heuristic, domain)
}

func nimOver(pile int) bool { return pile == 0 }

// tree：状态即选择路径，叶子按路径哈希打分
const treeWidth = 4

func treeSearch() *NegaMax[string, byte] {
	domain := NewAdapter(
		func(path string) []byte {
			out := make([]byte, treeWidth)
			for i := range out {
				out[i] = byte('a' + i)
			}
			return out
		},
		func(path string, b byte) (string, error) { return path + string(b), nil },
	)
	heuristic := func(path string) float64 {
		h := fnv.New32a()
		h.Write([]byte(path))
		return float64(h.Sum32()%201) - 100
	}
	return New[string, byte](heuristic, domain)
}

func treeOver(path string) bool { return len(path) >= 7 }

func TestNimFindsWinningMove(t *testing.T) {
	n := nimSearch()
	for pile, want := range map[int]int{5: 1, 6: 2, 7: 3, 9: 1} {
		s := n.Search(pile, nimOver, pile)
		est, err := s.Next(context.Background())
		if err != nil {
			t.Fatalf("pile %d: %v", pile, err)
		}
		if est.Action != want || est.Score != 1 {
			t.Fatalf("pile %d: got take=%d score=%v, want take=%d score=1", pile, est.Action, est.Score, want)
		}
	}
}

func TestSearchIsExhaustedAtTerminalStart(t *testing.T) {
	s := nimSearch().Search(0, nimOver, 3)
	if s.HasNext() {
		t.Fatalf("terminal start should give an exhausted search")
	}
	if _, err := s.Next(context.Background()); !errors.Is(err, ErrExhausted) {
		t.Fatalf("got err=%v want ErrExhausted", err)
	}
}

func TestDepthGrowsBetweenEstimates(t *testing.T) {
	t.Run("DefaultStep", func(t *testing.T) {
		s := treeSearch().Search("", treeOver, 1)
		var depths []int
		for i := 0; i < 3 && s.HasNext(); i++ {
			est, err := s.Next(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			depths = append(depths, est.Depth)
		}
		want := []int{1, 3, 5}
		for i := range want {
			if depths[i] != want[i] {
				t.Fatalf("depths: got=%v want=%v", depths, want)
			}
		}
		if !s.HasNext() {
			t.Fatalf("non-terminal start must not exhaust")
		}
	})

	t.Run("CustomStep", func(t *testing.T) {
		s := treeSearch().Search("", treeOver, 2, WithDepthStep(1))
		prev := 0
		for i := 0; i < 4; i++ {
			est, err := s.Next(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if est.Depth <= prev {
				t.Fatalf("depth did not increase: %d after %d", est.Depth, prev)
			}
			prev = est.Depth
		}
		s.Restart()
		if s.Depth() != 2 {
			t.Fatalf("restart depth: got=%d want=2", s.Depth())
		}
	})

	t.Run("ClampsDepth", func(t *testing.T) {
		s := treeSearch().Search("", treeOver, 0)
		est, err := s.Next(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if est.Depth != 1 {
			t.Fatalf("depth: got=%d want=1", est.Depth)
		}
	})
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	n := treeSearch()
	for depth := 1; depth <= 6; depth++ {
		ab, err := n.Search("", treeOver, depth).Next(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		mm, err := n.Minimax(context.Background(), "", treeOver, depth)
		if err != nil {
			t.Fatal(err)
		}
		if ab.Action != mm.Action || ab.Score != mm.Score {
			t.Fatalf("depth %d: alpha-beta %c/%v, minimax %c/%v", depth, ab.Action, ab.Score, mm.Action, mm.Score)
		}
		if depth >= 3 && ab.Nodes >= mm.Nodes {
			t.Fatalf("depth %d: no pruning, %d nodes vs %d", depth, ab.Nodes, mm.Nodes)
		}
	}
}

func TestCancelledContextAbandonsSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := treeSearch().Search("", treeOver, 6)
	if _, err := s.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got err=%v want context.Canceled", err)
	}
	if s.Depth() != 6 {
		t.Fatalf("abandoned pass must not advance depth, got %d", s.Depth())
	}
	if _, err := s.Next(context.Background()); err != nil {
		t.Fatalf("search should be usable after a cancelled pass: %v", err)
	}
}

func TestNoActionsAtNonTerminalRoot(t *testing.T) {
	domain := NewAdapter(
		func(int) []int { return nil },
		func(s, a int) (int, error) { return s, nil },
	)
	n := New[int, int](func(int) float64 { return 0 }, domain)
	if _, err := n.Search(1, nil, 2).Next(context.Background()); !errors.Is(err, ErrNoActions) {
		t.Fatalf("got err=%v want ErrNoActions", err)
	}
}

func TestPerformErrorStopsSearch(t *testing.T) {
	boom := errors.New("boom")
	domain := NewAdapter(
		func(int) []int { return []int{1} },
		func(s, a int) (int, error) { return 0, boom },
	)
	n := New[int, int](func(int) float64 { return 0 }, domain)
	if _, err := n.Search(1, nil, 2).Next(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("got err=%v want boom", err)
	}
}
