package engine

import (
	"sync"

	"negachess/internal/chess"
	"negachess/internal/negamax"
)

const evalCacheCap = 500_000

type evalCache struct {
	mu sync.RWMutex
	m  map[uint64]float64
}

// Engine 把通用搜索接到国际象棋上。一个 Engine 可供多个 goroutine 使用，
// 每个搜索会话本身是单线程的
type Engine struct {
	algorithm *negamax.NegaMax[*chess.Position, chess.Move]

	// 评估缓存，按 zobrist 哈希（含走棋方）索引
	cache *evalCache
}

func NewEngine() *Engine {
	e := &Engine{
		cache: &evalCache{
			m: make(map[uint64]float64, 1<<16),
		},
	}
	e.algorithm = negamax.New[*chess.Position, chess.Move](e.Evaluate, Chess)
	return e
}

// Evaluate 带缓存的包级 Evaluate
func (e *Engine) Evaluate(pos *chess.Position) float64 {
	key := pos.Hash()
	if v, ok := e.getEvalFromCache(key); ok {
		return v
	}
	v := Evaluate(pos)
	e.storeEvalCache(key, v)
	return v
}

func (e *Engine) getEvalFromCache(key uint64) (float64, bool) {
	if e.cache == nil {
		return 0, false
	}
	e.cache.mu.RLock()
	v, ok := e.cache.m[key]
	e.cache.mu.RUnlock()
	return v, ok
}

func (e *Engine) storeEvalCache(key uint64, score float64) {
	if e.cache == nil {
		return
	}
	e.cache.mu.Lock()
	if len(e.cache.m) > evalCacheCap {
		e.cache.m = make(map[uint64]float64, 1<<16)
	}
	e.cache.m[key] = score
	e.cache.mu.Unlock()
}
