package board

import (
	"fmt"

	"github.com/daystram/chessfml/position"
)

// GameState is the non-board half of a position. InCheck is not derived: it
// has to be refreshed with IsInCheck whenever the board or turn changes.
type GameState struct {
	Turn           Side
	CastleRights   CastleRights
	EnPassant      position.Pos
	HalfMoveClock  uint
	FullMoveNumber uint
	InCheck        bool
}

func NewGameState() GameState {
	return GameState{
		Turn:           SideWhite,
		CastleRights:   CastleRightsAll,
		EnPassant:      position.NoPos,
		HalfMoveClock:  0,
		FullMoveNumber: 1,
	}
}

func (st *GameState) NextTurn() {
	st.Turn = st.Turn.Opposite()
}

func (st *GameState) HasEnPassant() bool {
	return st.EnPassant.IsValid()
}

// UpdateMoveCounters must run before NextTurn: the full move number advances
// only when the side that just moved is Black.
func (st *GameState) UpdateMoveCounters(isCaptureOrPawnMove bool) {
	if isCaptureOrPawnMove {
		st.HalfMoveClock = 0
	} else {
		st.HalfMoveClock++
	}
	if st.Turn == SideBlack {
		st.FullMoveNumber++
	}
}

func (st GameState) DebugString() string {
	return fmt.Sprintf("turn: %s\ncast: %s\nenps: %s\nhalf: %4d\nfull: %4d\nchck: %v",
		st.Turn, st.CastleRights, st.EnPassant, st.HalfMoveClock, st.FullMoveNumber, st.InCheck)
}

type Status uint8

const (
	// StatusRunning is when the side to move has legal moves and is not in check.
	StatusRunning Status = iota

	// StatusCheck is when the side to move is in check but can respond.
	StatusCheck

	// StatusCheckmate is when the side to move is in check with no legal moves.
	StatusCheckmate

	// StatusStalemate is when the side to move has no legal moves and is not in check.
	StatusStalemate
)

func (s Status) IsRunning() bool {
	return s == StatusRunning || s == StatusCheck
}

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "StatusRunning"
	case StatusCheck:
		return "StatusCheck"
	case StatusCheckmate:
		return "StatusCheckmate"
	case StatusStalemate:
		return "StatusStalemate"
	default:
		return ""
	}
}
