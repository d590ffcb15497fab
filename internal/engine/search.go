package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"negachess/internal/chess"
	"negachess/internal/negamax"
)

var (
	// ErrSearchTimeout 第一轮估计完成前就超时
	ErrSearchTimeout = errors.New("engine: search timed out")
	// ErrGameOver 对已终局的局面搜索
	ErrGameOver = errors.New("engine: game is over")
)

const DefaultDepth = 2

// SearchConfig 一次 Engine.Search 的配置
type SearchConfig struct {
	Depth      int           // 第一轮深度（ply），<1 用 DefaultDepth
	Iterations int           // 取几轮估计，<1 为 1
	DepthStep  int           // 每轮增加的深度，<1 用 negamax.DefaultDepthStep
	TimeLimit  time.Duration // 0 表示不限制
}

type SearchResult struct {
	BestMove chess.Move
	Score    float64 // 走棋方视角
	Depth    int     // 已完成的最深一轮
	Nodes    int64   // 所有已完成轮次的节点数
	TimeUsed time.Duration
}

var defaultAlgorithm = negamax.New[*chess.Position, chess.Move](Evaluate, Chess)

// FindBestMove 用不带缓存的评估在 pos 上开一个迭代加深会话
func FindBestMove(pos *chess.Position, depth int, opts ...negamax.Option) *negamax.Search[*chess.Position, chess.Move] {
	return defaultAlgorithm.Search(pos, GameOver, depth, opts...)
}

// FindBestMove 同包级 FindBestMove，但用本引擎的评估缓存
func (e *Engine) FindBestMove(pos *chess.Position, depth int, opts ...negamax.Option) *negamax.Search[*chess.Position, chess.Move] {
	return e.algorithm.Search(pos, GameOver, depth, opts...)
}

// Search 从新会话取 cfg.Iterations 轮估计。超时或 ctx 结束时丢弃进行中的一轮，
// 返回已完成的最深一轮；一轮都没完成时返回 ErrSearchTimeout（超时）或 context 错误
func (e *Engine) Search(ctx context.Context, pos *chess.Position, cfg SearchConfig) (SearchResult, error) {
	start := time.Now()
	if pos.IsGameOver() {
		return SearchResult{}, ErrGameOver
	}

	depth := cfg.Depth
	if depth < 1 {
		depth = DefaultDepth
	}
	iterations := cfg.Iterations
	if iterations < 1 {
		iterations = 1
	}
	var opts []negamax.Option
	if cfg.DepthStep > 0 {
		opts = append(opts, negamax.WithDepthStep(cfg.DepthStep))
	}

	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	search := e.FindBestMove(pos, depth, opts...)
	var res SearchResult
	found := false
	for i := 0; i < iterations && search.HasNext(); i++ {
		est, err := search.Next(ctx)
		if err != nil {
			if found && ctx.Err() != nil {
				break
			}
			if errors.Is(err, context.DeadlineExceeded) && cfg.TimeLimit > 0 {
				return SearchResult{}, fmt.Errorf("%w after %s at depth %d", ErrSearchTimeout, time.Since(start).Round(time.Millisecond), search.Depth())
			}
			return SearchResult{}, err
		}
		found = true
		res.BestMove = est.Action
		res.Score = est.Score
		res.Depth = est.Depth
		res.Nodes += est.Nodes
	}
	res.TimeUsed = time.Since(start)
	return res, nil
}

// Minimax 不剪枝的参考搜索，自对弈用它核对剪枝没有改变选出的着法
func (e *Engine) Minimax(ctx context.Context, pos *chess.Position, depth int) (negamax.Estimate[chess.Move], error) {
	return e.algorithm.Minimax(ctx, pos, GameOver, depth)
}
