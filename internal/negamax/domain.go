package negamax

// Domain 把双方轮流走的状态空间接到搜索上：某状态下有哪些动作、动作后的状态。
// 本身不带任何规则
type Domain[S, A any] interface {
	Actions(state S) []A
	Perform(state S, action A) (S, error)
}

// Adapter 用两个普通函数拼成的 Domain
type Adapter[S, A any] struct {
	actions func(S) []A
	perform func(S, A) (S, error)
}

// NewAdapter 任一函数为 nil 时 panic
func NewAdapter[S, A any](actions func(S) []A, perform func(S, A) (S, error)) *Adapter[S, A] {
	if actions == nil {
		panic("negamax: nil actions producer")
	}
	if perform == nil {
		panic("negamax: nil action performer")
	}
	return &Adapter[S, A]{actions: actions, perform: perform}
}

func (a *Adapter[S, A]) Actions(state S) []A {
	return a.actions(state)
}

func (a *Adapter[S, A]) Perform(state S, action A) (S, error) {
	return a.perform(state, action)
}
