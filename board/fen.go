package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chessfml/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// ParseFEN reads fen into b and st. Fields are consumed left to right and the
// first malformed field aborts the parse; b and st may be partially updated
// by then, so callers wanting to keep the previous position should parse into
// copies. Missing trailing fields are not errors: a missing active color keeps
// st.Turn, the remaining fields fall back to no castling, no en passant,
// halfmove 0 and fullmove 1.
func ParseFEN(fen string, b *Board, st *GameState) error {
	if b == nil || st == nil {
		return fmt.Errorf("%w: nil board or state", ErrInvalidFEN)
	}
	segments := strings.Fields(fen)
	if len(segments) == 0 {
		return fmt.Errorf("%w: missing sections", ErrInvalidFEN)
	}

	if !ValidateBoardSection(segments[0]) {
		return fmt.Errorf("%w: invalid board section", ErrInvalidFEN)
	}
	decoded, err := DecodeBoard(segments[0])
	if err != nil {
		return fmt.Errorf("%w: invalid board section: %v", ErrInvalidFEN, err)
	}
	*b = decoded

	if len(segments) > 1 {
		if err := parseActiveColor(segments[1], st); err != nil {
			return err
		}
	}

	st.CastleRights.Clear()
	if len(segments) > 2 {
		if err := parseCastleRights(segments[2], st); err != nil {
			return err
		}
	}

	st.EnPassant = position.NoPos
	if len(segments) > 3 {
		if err := parseEnPassant(segments[3], st); err != nil {
			return err
		}
	}

	st.HalfMoveClock = 0
	if len(segments) > 4 {
		halfMoveClock, err := strconv.ParseUint(segments[4], 10, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid half move clock (should be a non-negative integer)", ErrInvalidFEN)
		}
		st.HalfMoveClock = uint(halfMoveClock)
	}

	st.FullMoveNumber = 1
	if len(segments) > 5 {
		fullMoveNumber, err := strconv.ParseUint(segments[5], 10, 32)
		if err != nil || fullMoveNumber == 0 {
			return fmt.Errorf("%w: invalid full move number (should be a positive integer)", ErrInvalidFEN)
		}
		st.FullMoveNumber = uint(fullMoveNumber)
	}

	return nil
}

func parseActiveColor(segment string, st *GameState) error {
	switch segment {
	case "w":
		st.Turn = SideWhite
	case "b":
		st.Turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid active color (should be 'w' or 'b')", ErrInvalidFEN)
	}
	return nil
}

func parseCastleRights(segment string, st *GameState) error {
	if segment == "-" {
		return nil
	}
	for _, c := range segment {
		switch c {
		case 'K':
			st.CastleRights.Enable(SideWhite, CastleSideKing)
		case 'Q':
			st.CastleRights.Enable(SideWhite, CastleSideQueen)
		case 'k':
			st.CastleRights.Enable(SideBlack, CastleSideKing)
		case 'q':
			st.CastleRights.Enable(SideBlack, CastleSideQueen)
		default:
			return fmt.Errorf("%w: invalid castling rights character '%c'", ErrInvalidFEN, c)
		}
	}
	return nil
}

func parseEnPassant(segment string, st *GameState) error {
	if segment == "-" {
		return nil
	}
	if len(segment) != 2 {
		return fmt.Errorf("%w: invalid en passant target (should be algebraic notation like 'e3')", ErrInvalidFEN)
	}
	pos, err := position.NewPosFromNotation(segment)
	if err != nil {
		return fmt.Errorf("%w: invalid en passant target: %v", ErrInvalidFEN, err)
	}
	st.EnPassant = pos
	return nil
}

// ValidateBoardSection reports whether s is a well-formed FEN piece-placement
// field: eight '/'-separated ranks of exactly eight files each, using only the
// digits 1-8 and the letters PRNBQKprnbqk.
func ValidateBoardSection(s string) bool {
	rank, file := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '/':
			if file != int(Width) {
				return false
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			if _, ok := pieceTypeFromSymbol(c); !ok {
				return false
			}
			file++
		}
		if file > int(Width) {
			return false
		}
	}
	return rank == int(Height)-1 && file == int(Width)
}

func CreateFEN(b *Board, st *GameState) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(b.EncodeSection())
	_, _ = builder.WriteString(" " + st.Turn.FEN())
	_, _ = builder.WriteString(" " + st.CastleRights.String())
	_, _ = builder.WriteString(" " + st.EnPassant.String())
	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", st.HalfMoveClock, st.FullMoveNumber))
	return builder.String()
}

type gameConfig struct {
	fen string
}

type GameOption func(*gameConfig)

func WithFEN(fen string) GameOption {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

// NewGame loads a position (the starting position unless WithFEN is given)
// and refreshes InCheck for the side to move.
func NewGame(opts ...GameOption) (*Board, *GameState, error) {
	cfg := &gameConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	b, st := &Board{}, NewGameState()
	if err := ParseFEN(cfg.fen, b, &st); err != nil {
		return nil, nil, err
	}
	st.InCheck = IsInCheck(b, st.Turn)
	return b, &st, nil
}
