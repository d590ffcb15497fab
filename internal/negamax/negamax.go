package negamax

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrExhausted 起始状态已终局时 Next 返回；对已耗尽的搜索继续取值属调用方错误
	ErrExhausted = errors.New("negamax: exhausted search")
	// ErrNoActions 起始状态非终局却没有动作
	ErrNoActions = errors.New("negamax: no actions in non-terminal state")
)

const (
	DefaultDepthStep = 2

	// 每隔这么多节点检查一次 context
	cancelCheckMask = 1023
)

// Heuristic 从当前走棋方视角打分，越大对下一步走棋方越好
type Heuristic[S any] func(S) float64

// Goal 终局时为 true
type Goal[S any] func(S) bool

// NegaMax 与具体领域无关的最佳动作搜索
type NegaMax[S, A any] struct {
	heuristic Heuristic[S]
	domain    Domain[S, A]
}

func New[S, A any](heuristic Heuristic[S], domain Domain[S, A]) *NegaMax[S, A] {
	if heuristic == nil {
		panic("negamax: nil heuristic")
	}
	if domain == nil {
		panic("negamax: nil domain")
	}
	return &NegaMax[S, A]{heuristic: heuristic, domain: domain}
}

// Estimate 搜索的一项结果：Depth 深度下的根节点最佳动作
type Estimate[A any] struct {
	Action A
	Score  float64
	Depth  int
	Nodes  int64
}

type Option func(*options)

type options struct {
	step int
}

// WithDepthStep 两次估计之间深度增加多少
func WithDepthStep(step int) Option {
	return func(o *options) {
		if step > 0 {
			o.step = step
		}
	}
}

// Search 惰性的迭代加深会话，每次 Next 做一次完整的 alpha-beta，比上一次更深
type Search[S, A any] struct {
	n         *NegaMax[S, A]
	start     S
	goal      Goal[S]
	initDepth int
	depth     int
	step      int
	completed bool
	nodes     int64
}

// Search 从 depth（至少 1）开始一个会话；goal(start) 成立时会话直接耗尽
func (n *NegaMax[S, A]) Search(start S, goal Goal[S], depth int, opts ...Option) *Search[S, A] {
	o := options{step: DefaultDepthStep}
	for _, opt := range opts {
		opt(&o)
	}
	if depth < 1 {
		depth = 1
	}
	if goal == nil {
		goal = func(S) bool { return false }
	}
	return &Search[S, A]{
		n:         n,
		start:     start,
		goal:      goal,
		initDepth: depth,
		depth:     depth,
		step:      o.step,
		completed: goal(start),
	}
}

func (s *Search[S, A]) HasNext() bool { return !s.completed }

// Depth 下一次 Next 的搜索深度
func (s *Search[S, A]) Depth() int { return s.depth }

// Restart 回到初始深度
func (s *Search[S, A]) Restart() {
	s.depth = s.initDepth
	s.nodes = 0
}

// Next 按当前深度搜索并返回根节点最佳动作。
// context 取消时放弃整轮搜索并返回 context 错误，不保留任何中间结果
func (s *Search[S, A]) Next(ctx context.Context) (Estimate[A], error) {
	var zero Estimate[A]
	if !s.HasNext() {
		return zero, ErrExhausted
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.nodes = 0
	action, score, err := s.root(ctx, s.depth)
	if err != nil {
		return zero, err
	}
	est := Estimate[A]{
		Action: action,
		Score:  score,
		Depth:  s.depth,
		Nodes:  s.nodes,
	}
	s.depth += s.step
	return est, nil
}

func (s *Search[S, A]) root(ctx context.Context, depth int) (A, float64, error) {
	var best A
	actions := s.n.domain.Actions(s.start)
	if len(actions) == 0 {
		return best, 0, ErrNoActions
	}

	alpha, beta := math.Inf(-1), math.Inf(+1)
	found := false
	for _, a := range actions {
		child, err := s.n.domain.Perform(s.start, a)
		if err != nil {
			return best, 0, err
		}
		v, err := s.negamax(ctx, child, depth-1, -beta, -alpha)
		if err != nil {
			return best, 0, err
		}
		score := -v
		if !found || score > alpha {
			found = true
			best = a
			alpha = score
		}
	}
	return best, alpha, nil
}

func (s *Search[S, A]) negamax(ctx context.Context, state S, depth int, alpha, beta float64) (float64, error) {
	s.nodes++
	if s.nodes&cancelCheckMask == 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}

	if depth <= 0 || s.goal(state) {
		return s.n.heuristic(state), nil
	}
	actions := s.n.domain.Actions(state)
	if len(actions) == 0 {
		return s.n.heuristic(state), nil
	}

	for _, a := range actions {
		child, err := s.n.domain.Perform(state, a)
		if err != nil {
			return 0, err
		}
		v, err := s.negamax(ctx, child, depth-1, -beta, -alpha)
		if err != nil {
			return 0, err
		}
		score := -v
		if score >= beta {
			return beta, nil
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha, nil
}
