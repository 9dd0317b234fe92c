package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/daystram/chessfml/bench"
	"github.com/daystram/chessfml/board"
	"github.com/daystram/chessfml/position"
	"github.com/daystram/chessfml/store"
)

var defaultOptions = options{
	parallelPerft: true,
	seed:          1,
}

type options struct {
	parallelPerft bool
	seed          int64
	store         *store.Store
	logger        *log.Logger
}

type Option func(*options)

func WithParallelPerft(parallel bool) Option {
	return func(o *options) {
		o.parallelPerft = parallel
	}
}

// WithSeed seeds the random mover.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithStore enables the save and load commands.
func WithStore(s *store.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Interface reads one command per line from in and writes replies to out.
type Interface struct {
	in  io.Reader
	out io.Writer
	mu  sync.Mutex

	board   board.Board
	state   board.GameState
	rand    *rand.Rand
	options options
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) *Interface {
	o := defaultOptions
	for _, f := range opts {
		f(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return &Interface{
		in:      in,
		out:     out,
		rand:    rand.New(rand.NewSource(o.seed)),
		options: o,
	}
}

// Run processes commands until quit or the end of the input.
func (i *Interface) Run(ctx context.Context) error {
	i.reset(ctx)

	reader := bufio.NewReader(i.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		cmd = strings.TrimSpace(cmd)

		switch args := strings.Fields(cmd); {
		case len(args) == 0:
		case args[0] == "quit":
			return nil
		default:
			i.execute(ctx, args)
		}
		if eof {
			return nil
		}
	}
}

func (i *Interface) execute(ctx context.Context, args []string) {
	switch args[0] {
	case "position":
		i.commandPosition(ctx, args[1:])
	case "d":
		i.commandDraw(ctx)
	case "fen":
		i.println(board.CreateFEN(&i.board, &i.state))
	case "moves":
		i.commandMoves(ctx, args[1:])
	case "move":
		i.commandMove(ctx, args[1:])
	case "status":
		i.println(fmt.Sprintf("status %s", board.Evaluate(&i.board, &i.state)))
	case "random":
		i.commandRandom(ctx)
	case "go":
		i.commandGo(ctx, args[1:])
	case "save":
		i.commandSave(ctx, args[1:])
	case "load":
		i.commandLoad(ctx, args[1:])
	}
}

// commandPosition accepts "startpos" or "fen <fields...>", optionally followed
// by "moves <uci...>". A position that fails to load leaves the current one
// in place.
func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	var moves []string
	for idx, a := range args {
		if a == "moves" {
			args, moves = args[:idx], args[idx+1:]
			break
		}
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	b, st, err := board.NewGame(board.WithFEN(fen))
	if err != nil {
		i.printError(err)
		return
	}
	nb, nst := *b, *st
	for _, uci := range moves {
		nb, nst, err = playUCI(nb, nst, uci)
		if err != nil {
			i.printError(err)
			return
		}
	}
	i.board, i.state = nb, nst
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.board.Draw())
	i.println(board.CreateFEN(&i.board, &i.state))
}

func (i *Interface) commandMoves(_ context.Context, args []string) {
	var mvs []board.Move
	if len(args) > 0 {
		from, err := position.NewPosFromNotation(args[0])
		if err != nil {
			i.printError(err)
			return
		}
		if i.board[from].Side == i.state.Turn {
			mvs = board.LegalMoves(&i.board, &i.state, from)
		}
	} else {
		mvs = board.AllLegalMoves(&i.board, &i.state)
	}

	ucis := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		ucis = append(ucis, mv.UCI())
	}
	i.println(strings.Join(append([]string{"moves"}, ucis...), " "))
}

func (i *Interface) commandMove(_ context.Context, args []string) {
	if len(args) != 1 {
		return
	}
	b, st, err := playUCI(i.board, i.state, args[0])
	if err != nil {
		i.printError(err)
		return
	}
	i.board, i.state = b, st
	if status := board.Evaluate(&i.board, &i.state); status != board.StatusRunning {
		i.println(fmt.Sprintf("status %s", status))
	}
}

func (i *Interface) commandRandom(_ context.Context) {
	mvs := board.AllLegalMoves(&i.board, &i.state)
	if len(mvs) == 0 {
		i.println(fmt.Sprintf("status %s", board.Evaluate(&i.board, &i.state)))
		return
	}
	mv := mvs[i.rand.Intn(len(mvs))]
	i.board, i.state = board.ApplyMove(i.board, i.state, mv)
	i.println(fmt.Sprintf("move %s", mv.UCI()))
	if status := board.Evaluate(&i.board, &i.state); status != board.StatusRunning {
		i.println(fmt.Sprintf("status %s", status))
	}
}

func (i *Interface) commandGo(_ context.Context, args []string) {
	if len(args) != 2 || args[0] != "perft" {
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil {
		i.printError(err)
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	if err := bench.Perft(depth, board.CreateFEN(&i.board, &i.state), i.options.parallelPerft, true, out); err != nil {
		i.printError(err)
	}
	close(out)
	<-done
}

func (i *Interface) commandSave(_ context.Context, args []string) {
	if i.options.store == nil {
		i.printError(errNoStore)
		return
	}
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	name, err := i.options.store.Save(name, board.CreateFEN(&i.board, &i.state))
	if err != nil {
		i.options.logger.Println("save failed:", err)
		i.printError(err)
		return
	}
	i.println(fmt.Sprintf("saved %s", name))
}

func (i *Interface) commandLoad(ctx context.Context, args []string) {
	if i.options.store == nil {
		i.printError(errNoStore)
		return
	}
	if len(args) != 1 {
		return
	}
	fen, err := i.options.store.Load(args[0])
	if err != nil {
		if !errors.Is(err, store.ErrSlotNotFound) {
			i.options.logger.Println("load failed:", err)
		}
		i.printError(err)
		return
	}
	i.commandPosition(ctx, append([]string{"fen"}, strings.Fields(fen)...))
}

func (i *Interface) reset(ctx context.Context) {
	i.commandPosition(ctx, []string{"startpos"})
}

var errNoStore = errors.New("no store configured")

// playUCI applies uci to the position if it names a legal move.
func playUCI(b board.Board, st board.GameState, uci string) (board.Board, board.GameState, error) {
	from, to, promotion, err := board.ParseUCIMove(uci)
	if err != nil {
		return b, st, err
	}
	if b[from].IsEmpty() || b[from].Side != st.Turn {
		return b, st, fmt.Errorf("%w: %s", board.ErrInvalidMove, uci)
	}
	mv, ok := board.FindMove(board.LegalMoves(&b, &st, from), from, to, promotion)
	if !ok {
		return b, st, fmt.Errorf("%w: %s", board.ErrInvalidMove, uci)
	}
	nb, nst := board.ApplyMove(b, st, mv)
	return nb, nst, nil
}

func (i *Interface) printError(err error) {
	i.println(fmt.Sprintf("info string %v", err))
}

func (i *Interface) println(a ...any) {
	i.mu.Lock()
	defer i.mu.Unlock()
	fmt.Fprintln(i.out, a...)
}
