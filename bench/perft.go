package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessfml/board"
)

// Stats tallies the leaf moves of a perft run.
type Stats struct {
	Nodes, Captures, EnPassants, Castles, Promotions, Checks uint64
}

func (s *Stats) count(mv board.Move, child *board.GameState) {
	atomic.AddUint64(&s.Nodes, 1)
	if mv.IsCapture() {
		atomic.AddUint64(&s.Captures, 1)
	}
	if mv.IsEnPassant() {
		atomic.AddUint64(&s.EnPassants, 1)
	}
	if mv.IsCastling() {
		atomic.AddUint64(&s.Castles, 1)
	}
	if mv.IsPromotion() {
		atomic.AddUint64(&s.Promotions, 1)
	}
	if child.InCheck {
		atomic.AddUint64(&s.Checks, 1)
	}
}

func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	if depth < 0 {
		return fmt.Errorf("invalid depth %d", depth)
	}
	b, st, err := board.NewGame(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	var stats Stats
	start := time.Now()
	run(*b, *st, depth, true, verbose, out, &stats)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, stats.Nodes, int(float64(stats.Nodes)/elapsed.Seconds()),
			stats.Captures, stats.EnPassants, stats.Castles, stats.Promotions, stats.Checks, elapsed.Seconds())

	return nil
}

type perftFunc func(b board.Board, st board.GameState, d int, root, verbose bool, out chan string, stats *Stats) uint64

func runPerft(b board.Board, st board.GameState, d int, root, verbose bool, out chan string, stats *Stats) uint64 {
	if d == 0 {
		stats.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range board.AllLegalMoves(&b, &st) {
		var child uint64
		nb, nst := board.ApplyMove(b, st, mv)
		if d != 1 {
			child = runPerft(nb, nst, d-1, false, verbose, out, stats)
		} else {
			child = 1
			stats.count(mv, &nst)
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

// runPerftParallel fans the root moves out to one goroutine each; deeper
// levels run sequentially.
func runPerftParallel(b board.Board, st board.GameState, d int, root, verbose bool, out chan string, stats *Stats) uint64 {
	if d == 0 {
		atomic.AddUint64(&stats.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range board.AllLegalMoves(&b, &st) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			nb, nst := board.ApplyMove(b, st, mv)
			if d != 1 {
				var local Stats
				child = runPerft(nb, nst, d-1, false, false, nil, &local)
				stats.add(&local)
			} else {
				child = 1
				stats.count(mv, &nst)
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

func (s *Stats) add(o *Stats) {
	atomic.AddUint64(&s.Nodes, o.Nodes)
	atomic.AddUint64(&s.Captures, o.Captures)
	atomic.AddUint64(&s.EnPassants, o.EnPassants)
	atomic.AddUint64(&s.Castles, o.Castles)
	atomic.AddUint64(&s.Promotions, o.Promotions)
	atomic.AddUint64(&s.Checks, o.Checks)
}
