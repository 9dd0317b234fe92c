package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalSquares is the number of squares addressable by Pos.
	TotalSquares = MaxComponentScalar * MaxComponentScalar

	// NoPos marks the absence of a square.
	NoPos Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos indexes a square as rank*8+file. Rank 0 is the top row of a FEN board
// section (the 8th rank) and file 0 is the a-file.
type Pos int8

func NewPos(rank, file Pos) Pos {
	return rank*MaxComponentScalar + file
}

func NewPosFromNotation(n string) (Pos, error) {
	rank, file, err := notationToRankFile(n)
	if err != nil {
		return NoPos, err
	}
	return NewPos(rank, file), nil
}

// MustPos is like NewPosFromNotation but panics on bad notation.
func MustPos(n string) Pos {
	p, err := NewPosFromNotation(n)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return p.Notation()
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < TotalSquares
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return p.File().NotationComponentFile() + p.Rank().NotationComponentRank()
}

func (p Pos) Rank() Pos {
	return p / MaxComponentScalar
}

func (p Pos) File() Pos {
	return p % MaxComponentScalar
}

// Offset returns the square dRank ranks and dFile files away, and whether it
// is still on the board.
func (p Pos) Offset(dRank, dFile Pos) (Pos, bool) {
	rank, file := p.Rank()+dRank, p.File()+dFile
	if rank < 0 || rank >= MaxComponentScalar || file < 0 || file >= MaxComponentScalar {
		return NoPos, false
	}
	return NewPos(rank, file), true
}

func notationToRankFile(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	file, err := notationToFile(n[0])
	if err != nil {
		return 0, 0, err
	}
	rank, err := notationToRank(n[1])
	if err != nil {
		return 0, 0, err
	}
	return rank, file, nil
}

func notationToFile(c byte) (Pos, error) {
	if c < 'a' || c > 'h' {
		return 0, ErrInvalidNotation
	}
	return Pos(c - 'a'), nil
}

func notationToRank(c byte) (Pos, error) {
	if c < '1' || c > '8' {
		return 0, ErrInvalidNotation
	}
	return Pos('8' - c), nil
}

func (p Pos) NotationComponentFile() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentRank() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('8' - p))
}
