package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessfml/position"
)

var (
	// ErrInvalidCharacter is returned by DecodeBoard for a digit outside 1-8.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidFormat is returned by DecodeBoard when the section does not fill exactly 64 squares.
	ErrInvalidFormat = errors.New("invalid format")
)

// Board holds one Piece per square; vacant squares hold the zero Piece.
// Index with position.Pos, rank 0 being the 8th rank.
type Board [TotalCells]Piece

// DecodeBoard fills a board from a FEN piece-placement field. '/' is skipped
// without checking rank boundaries; run ValidateBoardSection first for that.
func DecodeBoard(section string) (Board, error) {
	var b Board
	var idx position.Pos
	for i := 0; i < len(section); i++ {
		if idx >= TotalCells {
			break
		}
		c := section[i]
		if c == '/' {
			continue
		}
		if c >= '0' && c <= '9' {
			skip := position.Pos(c - '0')
			if skip < 1 || skip > Width {
				return Board{}, fmt.Errorf("%w: '%c'", ErrInvalidCharacter, c)
			}
			for ; skip > 0; skip-- {
				if idx >= TotalCells {
					return Board{}, fmt.Errorf("%w: skip out of bounds", ErrInvalidFormat)
				}
				b[idx] = Piece{Pos: idx}
				idx++
			}
			continue
		}
		s := SideBlack
		if c >= 'A' && c <= 'Z' {
			s = SideWhite
		}
		// Unknown letters land as an empty square carrying the inferred side.
		t, _ := pieceTypeFromSymbol(c)
		b[idx] = NewPiece(t, idx, s)
		idx++
	}
	if idx != TotalCells {
		return Board{}, fmt.Errorf("%w: %d squares filled", ErrInvalidFormat, idx)
	}
	return b, nil
}

// EncodeSection returns the FEN piece-placement field.
func (b *Board) EncodeSection() string {
	builder := strings.Builder{}
	for rank := position.Pos(0); rank < Height; rank++ {
		var skip uint8
		for file := position.Pos(0); file < Width; file++ {
			p := b[position.NewPos(rank, file)]
			if p.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_ = builder.WriteByte(skip + '0')
				skip = 0
			}
			_, _ = builder.WriteString(p.Symbol())
		}
		if skip != 0 {
			_ = builder.WriteByte(skip + '0')
		}
		if rank < Height-1 {
			_ = builder.WriteByte('/')
		}
	}
	return builder.String()
}

// Encode returns the full six-field FEN of b under st.
func (b *Board) Encode(st *GameState) string {
	return CreateFEN(b, st)
}

func (b *Board) At(pos position.Pos) Piece {
	return b[pos]
}

// Set places p on pos, keeping p.Pos in sync with its cell.
func (b *Board) Set(pos position.Pos, p Piece) {
	p.Pos = pos
	b[pos] = p
}

func (b *Board) Clear(pos position.Pos) {
	b[pos] = Piece{Pos: pos}
}

// move relocates the piece on from to to, overwriting whatever was there.
func (b *Board) move(from, to position.Pos) {
	b.Set(to, b[from])
	b.Clear(from)
}

// KingPos returns the square of s's king, or position.NoPos.
func (b *Board) KingPos(s Side) position.Pos {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b[pos].Is(PieceKing, s) {
			return pos
		}
	}
	return position.NoPos
}

func (b *Board) IsEmpty() bool {
	for _, p := range b {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for rank := position.Pos(0); rank < Height; rank++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", rank.NotationComponentRank()))
		for file := position.Pos(0); file < Width; file++ {
			p := b[position.NewPos(rank, file)]
			sym := p.Symbol()
			if p.IsEmpty() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for file := position.Pos(0); file < Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", file.NotationComponentFile()))
	}
	return builder.String()
}

var (
	colorLight     = color.New(color.FgHiBlack, color.BgHiWhite)
	colorDark      = color.New(color.FgHiBlack, color.BgGreen)
	colorHighlight = color.New(color.FgHiBlack, color.BgYellow)
	colorLabel     = color.New(color.Bold)
)

// Draw renders the board with colored squares. Squares in highlight (e.g.
// move destinations) are painted in a separate color.
func (b *Board) Draw(highlight ...position.Pos) string {
	marked := make(map[position.Pos]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	builder := strings.Builder{}
	for rank := position.Pos(0); rank < Height; rank++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", rank.NotationComponentRank()))
		for file := position.Pos(0); file < Width; file++ {
			pos := position.NewPos(rank, file)
			sym := b[pos].Type.SymbolUnicode(b[pos].Side)
			if b[pos].IsEmpty() {
				sym = " "
			}
			c := colorLight
			switch {
			case marked[pos]:
				c = colorHighlight
			case (rank+file)%2 == 1:
				c = colorDark
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for file := position.Pos(0); file < Width; file++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", file.NotationComponentFile()))
	}
	return builder.String()
}
