package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/chessfml/position"
)

var (
	ErrInvalidMove = errors.New("invalid move")
)

type MoveFlag uint8

const (
	MoveFlagNormal    MoveFlag = 0
	MoveFlagCapture   MoveFlag = 1 << 0
	MoveFlagEnPassant MoveFlag = 1 << 1
	MoveFlagCastling  MoveFlag = 1 << 2
	MoveFlagPromotion MoveFlag = 1 << 3
)

func (f MoveFlag) Has(flag MoveFlag) bool {
	return f&flag != 0
}

type Move struct {
	From, To  position.Pos
	Flags     MoveFlag
	Promotion PieceType
}

// Equal compares origin and destination only. The four promotion choices of
// one pawn move are all Equal; tell them apart through Promotion.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) IsCapture() bool {
	return m.Flags.Has(MoveFlagCapture)
}

func (m Move) IsEnPassant() bool {
	return m.Flags.Has(MoveFlagEnPassant)
}

func (m Move) IsCastling() bool {
	return m.Flags.Has(MoveFlagCastling)
}

func (m Move) IsPromotion() bool {
	return m.Flags.Has(MoveFlagPromotion)
}

func (m Move) String() string {
	nt := m.UCI()
	if m.IsCapture() {
		nt += " x"
	}
	if m.IsEnPassant() {
		nt += " e.p."
	}
	if m.IsCastling() {
		nt += " castle"
	}
	return nt
}

func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.IsPromotion() {
		nt += m.Promotion.SymbolFEN(SideBlack)
	}
	return nt
}

// ParseUCIMove splits long algebraic notation such as "e2e4" or "e7e8q".
// Promotion is PieceEmpty when no suffix is given.
func ParseUCIMove(s string) (position.Pos, position.Pos, PieceType, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return position.NoPos, position.NoPos, PieceEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := position.NewPosFromNotation(s[0:2])
	if err != nil {
		return position.NoPos, position.NoPos, PieceEmpty, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	to, err := position.NewPosFromNotation(s[2:4])
	if err != nil {
		return position.NoPos, position.NoPos, PieceEmpty, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	promotion := PieceEmpty
	if len(s) == 5 {
		t, ok := pieceTypeFromSymbol(s[4])
		if !ok || t == PiecePawn || t == PieceKing {
			return position.NoPos, position.NoPos, PieceEmpty, fmt.Errorf("%w: %q: bad promotion piece", ErrInvalidMove, s)
		}
		promotion = t
	}
	return from, to, promotion, nil
}

// FindMove picks the move in mvs matching from, to and, for promotions, the
// chosen piece (Queen when promotion is PieceEmpty).
func FindMove(mvs []Move, from, to position.Pos, promotion PieceType) (Move, bool) {
	for _, mv := range mvs {
		if mv.From != from || mv.To != to {
			continue
		}
		if !mv.IsPromotion() {
			return mv, true
		}
		want := promotion
		if want == PieceEmpty {
			want = PieceQueen
		}
		if mv.Promotion == want {
			return mv, true
		}
	}
	return Move{}, false
}
