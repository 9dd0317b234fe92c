package board

import "github.com/daystram/chessfml/position"

type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	if s == SideWhite {
		return SideBlack
	}
	return SideWhite
}

// Forward is the rank delta of a pawn push. White advances toward rank 0.
func (s Side) Forward() position.Pos {
	if s == SideWhite {
		return -1
	}
	return 1
}

// FEN returns the active color letter.
func (s Side) FEN() string {
	if s == SideBlack {
		return "b"
	}
	return "w"
}
