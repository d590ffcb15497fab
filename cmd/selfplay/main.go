package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"negachess/internal/engine"
	"negachess/internal/notation"
)

func main() {
	totalGames := flag.Int("games", 4, "number of games to play")
	concurrency := flag.Int("concurrency", 2, "games played at the same time")
	depthA := flag.Int("depth-a", 2, "search depth of player A")
	depthB := flag.Int("depth-b", 3, "search depth of player B")
	timeout := flag.Duration("timeout", 30*time.Second, "time limit of one search, 0 for none")
	maxPlies := flag.Int("maxplies", 200, "plies before a game is scored as a draw")
	verify := flag.Bool("verify", false, "check every move against the unpruned search")
	printMoves := flag.Bool("moves", false, "print the moves of every game")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	playerA := PlayerConfig{
		Name: fmt.Sprintf("A (depth %d)", *depthA),
		Cfg:  engine.SearchConfig{Depth: *depthA, TimeLimit: *timeout},
	}
	playerB := PlayerConfig{
		Name: fmt.Sprintf("B (depth %d)", *depthB),
		Cfg:  engine.SearchConfig{Depth: *depthB, TimeLimit: *timeout},
	}

	e := engine.NewEngine()
	records := make([]GameRecord, *totalGames)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, *concurrency))
	start := time.Now()
	for i := range records {
		i := i
		white, black := playerA, playerB
		if i%2 == 1 {
			white, black = playerB, playerA
		}
		g.Go(func() error {
			rec, err := playGame(gctx, e, white, black, *maxPlies, *verify)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			rec.Index = i + 1
			records[i] = rec
			log.Printf("game %d: White [%s] vs Black [%s]: %v after %d plies",
				i+1, white.Name, black.Name, rec.Result, len(rec.Moves))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	wins := map[string]int{}
	draws := 0
	for _, rec := range records {
		switch rec.Result {
		case WhiteWins:
			wins[rec.White]++
		case BlackWins:
			wins[rec.Black]++
		default:
			draws++
		}
		if *printMoves {
			fmt.Printf("game %d: %s\n", rec.Index, strings.Join(notation.History(rec.Start, rec.Moves), " "))
		}
	}

	fmt.Printf("\n=== Final Score (%v) ===\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("%s: %d\n", playerA.Name, wins[playerA.Name])
	fmt.Printf("%s: %d\n", playerB.Name, wins[playerB.Name])
	fmt.Printf("Draws: %d\n", draws)
}
