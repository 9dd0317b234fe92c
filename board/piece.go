package board

import "github.com/daystram/chessfml/position"

type PieceType uint8

const (
	PieceEmpty PieceType = iota
	PiecePawn
	PieceRook
	PieceKnight
	PieceBishop
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion, in the
// order promotion moves are generated.
var PawnPromoteCandidates = []PieceType{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p PieceType) String() string {
	return p.Name()
}

func (p PieceType) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceRook:
		return "Rook"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return "Empty"
	}
}

func (p PieceType) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceRook:
		sym = 'R'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p PieceType) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceRook:
			return "♖"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceRook:
			return "♜"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		}
	}
	return ""
}

// pieceTypeFromSymbol maps a case-insensitive FEN letter to its type.
func pieceTypeFromSymbol(c byte) (PieceType, bool) {
	switch c | 0x20 {
	case 'p':
		return PiecePawn, true
	case 'r':
		return PieceRook, true
	case 'n':
		return PieceKnight, true
	case 'b':
		return PieceBishop, true
	case 'q':
		return PieceQueen, true
	case 'k':
		return PieceKing, true
	default:
		return PieceEmpty, false
	}
}

// Piece occupies exactly one board cell. The zero value is an empty square.
type Piece struct {
	Type  PieceType
	Pos   position.Pos
	Side  Side
	Moved bool
}

func NewPiece(t PieceType, pos position.Pos, s Side) Piece {
	return Piece{Type: t, Pos: pos, Side: s}
}

func (p Piece) IsEmpty() bool {
	return p.Type == PieceEmpty
}

// IsEnemyOf reports whether p is an occupied square of the opposite side.
func (p Piece) IsEnemyOf(s Side) bool {
	return p.Type != PieceEmpty && p.Side != s
}

func (p Piece) Is(t PieceType, s Side) bool {
	return p.Type == t && p.Side == s
}

// Symbol returns the FEN letter, or '.' for an empty square.
func (p Piece) Symbol() string {
	if p.Type == PieceEmpty {
		return "."
	}
	return p.Type.SymbolFEN(p.Side)
}

func (p Piece) String() string {
	if p.Type == PieceEmpty {
		return "Empty"
	}
	return p.Side.String() + " " + p.Type.Name()
}
