package main

import (
	"context"
	"errors"
	"fmt"

	"negachess/internal/chess"
	"negachess/internal/engine"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

type Result int

const (
	Draw Result = iota
	WhiteWins
	BlackWins
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "White"
	case BlackWins:
		return "Black"
	}
	return "Draw"
}

type GameRecord struct {
	Index  int
	White  string
	Black  string
	Result Result
	Moves  []chess.Move
	Start  *chess.Position
}

// playGame 下到一方无着法（判负）或达到 maxPlies（和棋）。
// verify 时每步都用同深度的不剪枝搜索核对
func playGame(ctx context.Context, e *engine.Engine, white, black PlayerConfig, maxPlies int, verify bool) (GameRecord, error) {
	pos := chess.NewInitialPosition()
	rec := GameRecord{White: white.Name, Black: black.Name, Start: pos}

	for ply := 0; ply < maxPlies; ply++ {
		cfg := white.Cfg
		if pos.SideToMove() == chess.Black {
			cfg = black.Cfg
		}

		res, err := e.Search(ctx, pos, cfg)
		if errors.Is(err, engine.ErrGameOver) {
			rec.Result = WhiteWins
			if pos.SideToMove() == chess.White {
				rec.Result = BlackWins
			}
			return rec, nil
		}
		if err != nil {
			return rec, fmt.Errorf("ply %d: %w", ply, err)
		}

		if verify && cfg.Iterations <= 1 {
			ref, err := e.Minimax(ctx, pos, res.Depth)
			if err != nil {
				return rec, fmt.Errorf("ply %d: minimax: %w", ply, err)
			}
			if ref.Action != res.BestMove {
				return rec, fmt.Errorf("ply %d: alpha-beta chose %v, minimax %v in %s",
					ply, res.BestMove, ref.Action, pos.EncodeFEN())
			}
		}

		next, err := pos.Apply(res.BestMove)
		if err != nil {
			return rec, fmt.Errorf("ply %d: apply %v: %w", ply, res.BestMove, err)
		}
		pos = next
		rec.Moves = append(rec.Moves, res.BestMove)
	}
	rec.Result = Draw
	return rec, nil
}
