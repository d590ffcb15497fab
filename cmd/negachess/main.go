package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"negachess/internal/engine"
	"negachess/internal/shell"
)

func main() {
	depth := flag.Int("depth", shell.DefaultDepth, "search depth (ply)")
	timeout := flag.Duration("timeout", shell.DefaultTimeout, "time limit of one search, 0 for none")
	fen := flag.String("fen", "", "start from this FEN instead of the initial position")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := shell.New(engine.NewEngine(), os.Stdout)
	sh.SetDepth(*depth)
	sh.SetTimeout(*timeout)
	if *fen != "" {
		if err := sh.Execute(ctx, "fen "+*fen); err != nil {
			log.Fatalf("load %q: %v", *fen, err)
		}
	}

	start := time.Now()
	if err := sh.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Printf("session ended after %v", time.Since(start).Round(time.Second))
}
