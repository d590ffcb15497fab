package game

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"negachess/internal/chess"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 从 start 开一局，start 为 nil 时用开局局面
func (m *Manager) NewGame(start *chess.Position) *GameState {
	if start == nil {
		start = chess.NewInitialPosition()
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	g := &GameState{
		ID:        id,
		Start:     start,
		Pos:       start,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = g
	return g
}

// Get 返回对局快照，之后的着法不影响它
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	snap := *g
	snap.History = slices.Clone(g.History)
	return snap, nil
}

// Play 仅当 mv 是当前合法着法时落子
func (m *Manager) Play(id string, mv chess.Move) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	if !slices.Contains(g.Pos.LegalMoves(), mv) {
		return GameState{}, fmt.Errorf("%w: %v", ErrIllegalMove, mv)
	}
	next, err := g.Pos.Apply(mv)
	if err != nil {
		return GameState{}, err
	}
	g.Pos = next
	g.History = append(g.History, mv)
	g.UpdatedAt = time.Now()

	snap := *g
	snap.History = slices.Clone(g.History)
	return snap, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
