package negamax

import (
	"context"
	"math"
)

// Minimax 不剪枝的穷举搜索。保留第一个严格最优的动作，与 Search 的平局规则相同，
// 同样深度下两者选出同一动作
func (n *NegaMax[S, A]) Minimax(ctx context.Context, start S, goal Goal[S], depth int) (Estimate[A], error) {
	var zero Estimate[A]
	if goal == nil {
		goal = func(S) bool { return false }
	}
	if goal(start) {
		return zero, ErrExhausted
	}
	if depth < 1 {
		depth = 1
	}
	actions := n.domain.Actions(start)
	if len(actions) == 0 {
		return zero, ErrNoActions
	}

	var nodes int64
	var rec func(state S, depth int) (float64, error)
	rec = func(state S, depth int) (float64, error) {
		nodes++
		if nodes&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if depth <= 0 || goal(state) {
			return n.heuristic(state), nil
		}
		acts := n.domain.Actions(state)
		if len(acts) == 0 {
			return n.heuristic(state), nil
		}
		best := math.Inf(-1)
		for _, a := range acts {
			child, err := n.domain.Perform(state, a)
			if err != nil {
				return 0, err
			}
			v, err := rec(child, depth-1)
			if err != nil {
				return 0, err
			}
			if -v > best {
				best = -v
			}
		}
		return best, nil
	}

	est := Estimate[A]{Depth: depth}
	found := false
	for _, a := range actions {
		child, err := n.domain.Perform(start, a)
		if err != nil {
			return zero, err
		}
		v, err := rec(child, depth-1)
		if err != nil {
			return zero, err
		}
		if !found || -v > est.Score {
			found = true
			est.Action = a
			est.Score = -v
		}
	}
	est.Nodes = nodes
	return est, nil
}
