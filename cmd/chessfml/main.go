package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/daystram/chessfml/board"
	"github.com/daystram/chessfml/console"
	"github.com/daystram/chessfml/store"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	fenFlag = flag.String("fen", board.DefaultStartingPositionFEN, "starting position for movegen, step and perft modes")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft mode to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "fan perft root moves out across goroutines")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepSeed  = flag.Int64("step.seed", 1, "random mover seed in step and console modes")
	stepLimit = flag.Int("step.limit", 500, "max plies in step mode")

	storeDir = flag.String("store", "", "badger directory for saved positions, in memory when empty")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(context.Background())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(ctx context.Context) error {
	if *movegenRun {
		return movegen(*fenFlag, *movegenDraw)
	}
	if *stepRun {
		return step(*fenFlag, *stepSeed, *stepLimit)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, *fenFlag, *perftParallel)
	}
	return runConsole(ctx)
}

func runConsole(ctx context.Context) error {
	var opts []store.Option
	if *storeDir == "" {
		opts = append(opts, store.WithInMemory())
	}
	s, err := store.Open(*storeDir, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	return console.NewInterface(os.Stdin, os.Stdout,
		console.WithStore(s),
		console.WithSeed(*stepSeed),
		console.WithParallelPerft(*perftParallel),
	).Run(ctx)
}
