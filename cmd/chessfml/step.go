package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/chessfml/board"
)

// step plays uniformly random legal moves from fen until the game ends or
// limit plies have been played, timing each stage.
func step(fen string, seed int64, limit int) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
		timesState         []time.Duration
	)
	pb, pst, err := board.NewGame(board.WithFEN(fen))
	if err != nil {
		return err
	}
	b, st := *pb, *pst
	r := rand.New(rand.NewSource(seed))

	status := board.Evaluate(&b, &st)
stepLoop:
	for ply := 0; ply < limit && status.IsRunning(); ply++ {
		t1 := time.Now()
		mvs := board.AllLegalMoves(&b, &st)
		timesGenerateMoves = append(timesGenerateMoves, time.Since(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: status=%s", status)
		}
		mv := mvs[r.Intn(len(mvs))]
		mover := st.Turn

		t1 = time.Now()
		b, st = board.ApplyMove(b, st, mv)
		timesApply = append(timesApply, time.Since(t1))

		t1 = time.Now()
		status = board.Evaluate(&b, &st)
		timesState = append(timesState, time.Since(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mover, mv)
		fmt.Println(b.Draw(mv.From, mv.To))
		fmt.Println(board.CreateFEN(&b, &st))
		fmt.Println(st.DebugString())
		switch status {
		case board.StatusCheckmate, board.StatusStalemate:
			break stepLoop
		case board.StatusCheck:
			<-time.After(100 * time.Millisecond)
		default:
			<-time.After(10 * time.Millisecond)
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(status)
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}
