package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/daystram/chessfml/position"
)

func TestFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen     string
		wantErr bool
	}{
		{fen: DefaultStartingPositionFEN, wantErr: false},
		{fen: "r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10", wantErr: false},
		{fen: "r4rk1/1bpp1ppp/p2q4/2bPp3/8/1BPP1Q2/1P3PPP/R1B2RK1 b - - 2 15", wantErr: false},
		{fen: "8/5kBp/3p3P/5pb1/8/5P2/4R2K/3r4 b - - 8 52", wantErr: false},
		{fen: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", wantErr: false},
		{fen: "r4rk1/5ppp/p2p4/1bb1p3/BP6/2PP4/5PPP/R1B1R1K1 b - b3 0 20", wantErr: false},
		{fen: "r7/p4k2/4p2p/2B4N/4Pn2/2P2P2/PP2r1qP/R5K1 w - - 6 39", wantErr: false},
		{fen: "3r1b1r/5pp1/7p/3P3k/3B2Q1/7N/P3BPK1/1R6 b - - 0 34", wantErr: false},
		{fen: "R4k1r/1pNQ3p/4ppp1/8/3Pb1q1/5N2/5PPP/4KB1R b K - 5 22", wantErr: false},
		{fen: "1n2k2r/4pp1p/6p1/8/3b3P/8/5q2/r1K5 w k - 2 31", wantErr: false},
		{fen: "1rb1B2Q/pp3k2/3Q4/3p3p/1P6/8/P1P2PPP/R1B1K2R b KQ - 1 22", wantErr: false},
		{fen: "8/r7/8/kn6/8/8/3Q4/1K6 b - - 15 89", wantErr: false},
		{fen: "4B3/3P2k1/3r2P1/8/8/8/5K2/8 b - - 32 74", wantErr: false},
		{fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", wantErr: false},
		{fen: "8/8/8/8/8/8/8/8 w - - 0 1", wantErr: false},
		{fen: "", wantErr: true},
		{fen: "   ", wantErr: true},
		{fen: "invalid fen", wantErr: true},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K badside - - 1 38", wantErr: true},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b badcastlingrights - 1 38", wantErr: true},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - - -100 38", wantErr: true},
		{fen: "8/3Rn3/5Q2/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 1 -38", wantErr: true},
		{fen: "8/3Rn3/badboard/p5kp/2B1P3/2P3bP/PP3R2/7K b - - 1 38", wantErr: true},
		{fen: "8/8/8/8/8/8/8/8 w - - 1 0", wantErr: true},
		{fen: "7k/8/8/8/8/1/8/7K w - - 1 1", wantErr: true},
		{fen: "7k/8/8/8/8//8/7K w - - 1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/7K w - - 1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - e9 1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - e33 1 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - - 1x 1", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()

			var b Board
			st := NewGameState()
			err := ParseFEN(tt.fen, &b, &st)
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				} else if !errors.Is(err, ErrInvalidFEN) {
					t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidFEN)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if gotFEN := CreateFEN(&b, &st); gotFEN != tt.fen {
				t.Errorf("unexpected FEN: got=%s want=%s", gotFEN, tt.fen)
			}

			var bb Board
			stt := NewGameState()
			if err := ParseFEN(CreateFEN(&b, &st), &bb, &stt); err != nil {
				t.Fatal("unexpected error on reparse:", err)
			}
			if bb != b {
				t.Errorf("unexpected board after round trip:\n%s\nwant:\n%s", bb.Dump(), b.Dump())
			}
			if stt != st {
				t.Errorf("unexpected state after round trip: got=%+v want=%+v", stt, st)
			}
		})
	}
}

func TestParseFENStartingPosition(t *testing.T) {
	t.Parallel()
	var b Board
	st := NewGameState()
	if err := ParseFEN(DefaultStartingPositionFEN, &b, &st); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if st.Turn != SideWhite {
		t.Errorf("unexpected turn: got=%s want=%s", st.Turn, SideWhite)
	}
	if st.CastleRights != CastleRightsAll {
		t.Errorf("unexpected castle rights: got=%s want=%s", st.CastleRights, CastleRightsAll)
	}
	if st.HasEnPassant() {
		t.Errorf("unexpected en passant: got=%s want=-", st.EnPassant)
	}
	if st.HalfMoveClock != 0 || st.FullMoveNumber != 1 {
		t.Errorf("unexpected clocks: got=%d/%d want=0/1", st.HalfMoveClock, st.FullMoveNumber)
	}

	pawns := map[Side]int{}
	for _, p := range b {
		if p.Type == PiecePawn {
			pawns[p.Side]++
		}
		if p.Moved {
			t.Errorf("unexpected moved flag on %s", p.Pos)
		}
	}
	if pawns[SideWhite] != 8 || pawns[SideBlack] != 8 {
		t.Errorf("unexpected pawn count: got=%v want=8/8", pawns)
	}

	backRank := []PieceType{PieceRook, PieceKnight, PieceBishop, PieceQueen, PieceKing, PieceBishop, PieceKnight, PieceRook}
	for file, want := range backRank {
		if p := b[position.NewPos(0, position.Pos(file))]; !p.Is(want, SideBlack) {
			t.Errorf("unexpected piece on rank 8 file %d: got=%s want=Black %s", file, p, want)
		}
		if p := b[position.NewPos(7, position.Pos(file))]; !p.Is(want, SideWhite) {
			t.Errorf("unexpected piece on rank 1 file %d: got=%s want=White %s", file, p, want)
		}
	}
	for pos := position.Pos(16); pos < 48; pos++ {
		if !b[pos].IsEmpty() {
			t.Errorf("unexpected piece on %s: %s", pos, b[pos])
		}
	}
}

func TestParseFENOptionalFields(t *testing.T) {
	t.Parallel()
	var b Board
	st := GameState{
		Turn:           SideBlack,
		CastleRights:   CastleRightsAll,
		EnPassant:      position.MustPos("e3"),
		HalfMoveClock:  12,
		FullMoveNumber: 40,
	}
	if err := ParseFEN("4k3/8/8/8/8/8/8/4K3", &b, &st); err != nil {
		t.Fatal("unexpected error:", err)
	}
	want := GameState{
		Turn:           SideBlack, // absent active color leaves the turn alone
		CastleRights:   CastleRightsNone,
		EnPassant:      position.NoPos,
		HalfMoveClock:  0,
		FullMoveNumber: 1,
	}
	if st != want {
		t.Errorf("unexpected state: got=%+v want=%+v", st, want)
	}

	if err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w KQkqKK", &b, &st); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if st.CastleRights != CastleRightsAll {
		t.Errorf("unexpected castle rights: got=%s want=KQkq", st.CastleRights)
	}
}

func TestParseFENShortCircuit(t *testing.T) {
	t.Parallel()
	var b Board
	st := NewGameState()
	st.HalfMoveClock = 9
	err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w KX - 3 4", &b, &st)
	if err == nil {
		t.Fatal("error expected: got=nil")
	}
	if !strings.Contains(err.Error(), "'X'") {
		t.Errorf("unexpected error message: got=%q want offending character echoed", err)
	}
	if st.HalfMoveClock != 9 {
		t.Errorf("unexpected half move clock: got=%d want=9 (fields after the failure must not be touched)", st.HalfMoveClock)
	}
}

func TestValidateBoardSection(t *testing.T) {
	t.Parallel()
	tests := []struct {
		section string
		want    bool
	}{
		{section: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", want: true},
		{section: "8/8/8/8/8/8/8/8", want: true},
		{section: "4k3/8/8/8/8/8/8/4K3", want: true},
		{section: "r1b1k1nr/8/8/8/8/8/8/44", want: true},
		{section: "", want: false},
		{section: "8/8/8/8/8/8/8", want: false},
		{section: "8/8/8/8/8/8/8/8/8", want: false},
		{section: "8/8/8/8/8/8/8/7", want: false},
		{section: "8/8/8/8/8/8/8/9", want: false},
		{section: "8/8/8/8/8/8/8/08", want: false},
		{section: "8/8/8/8/8/8/8/xxxxxxxx", want: false},
		{section: "8/8/8/8/8/8/8/ppppppppp", want: false},
		{section: "8/8/8/8/8/8/8/4K4", want: false},
		{section: "8/8/8/8/8/8/8/8/", want: false},
		{section: "8/8/8/8 /8/8/8/8", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.section, func(t *testing.T) {
			t.Parallel()
			if got := ValidateBoardSection(tt.section); got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestDecodeBoard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		section string
		wantErr error
	}{
		{name: "ok", section: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{name: "ok without separators", section: "8888888k6K"},
		{name: "zero digit", section: "0/8/8/8/8/8/8/8", wantErr: ErrInvalidCharacter},
		{name: "nine digit", section: "9/8/8/8/8/8/8/8", wantErr: ErrInvalidCharacter},
		{name: "too short", section: "8/8/8/8/8/8/8", wantErr: ErrInvalidFormat},
		{name: "skip overflow", section: "8/8/8/8/8/8/8/6p2", wantErr: ErrInvalidFormat},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeBoard(tt.section)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
		})
	}
}

func TestDecodeBoardUnknownLetter(t *testing.T) {
	t.Parallel()
	b, err := DecodeBoard("X7/8/8/8/8/8/8/y7")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b[0]; !got.IsEmpty() || got.Side != SideWhite {
		t.Errorf("unexpected square a8: got=%+v want=empty White", got)
	}
	if got := b[56]; !got.IsEmpty() || got.Side != SideBlack {
		t.Errorf("unexpected square a1: got=%+v want=empty Black", got)
	}
	if ValidateBoardSection("X7/8/8/8/8/8/8/y7") {
		t.Error("unexpected validation success for unknown letters")
	}
}

func TestDecodeBoardPositions(t *testing.T) {
	t.Parallel()
	b, err := DecodeBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b[pos].Pos != pos {
			t.Errorf("unexpected piece position: got=%d want=%d", b[pos].Pos, pos)
		}
	}
	if got := b.KingPos(SideWhite); got != position.MustPos("e1") {
		t.Errorf("unexpected white king: got=%s want=e1", got)
	}
	if got := b.KingPos(SideBlack); got != position.MustPos("e8") {
		t.Errorf("unexpected black king: got=%s want=e8", got)
	}
}
