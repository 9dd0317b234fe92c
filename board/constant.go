package board

import (
	"github.com/daystram/chessfml/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalSquares
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// (dRank, dFile) pairs.
	offsetKnight = [8][2]position.Pos{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	offsetKing = [8][2]position.Pos{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	directionLateral = [4][2]position.Pos{
		{-1, 0}, {0, -1}, {0, 1}, {1, 0},
	}
	directionDiagonal = [4][2]position.Pos{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}

	maskCastleRights = [2][2]CastleRights{
		SideWhite: {CastleSideKing: 0b0001, CastleSideQueen: 0b0010},
		SideBlack: {CastleSideKing: 0b0100, CastleSideQueen: 0b1000},
	}
	castleRightsOrder = [4]struct {
		side       Side
		castleSide CastleSide
		symbol     byte
	}{
		{SideWhite, CastleSideKing, 'K'},
		{SideWhite, CastleSideQueen, 'Q'},
		{SideBlack, CastleSideKing, 'k'},
		{SideBlack, CastleSideQueen, 'q'},
	}

	posCastling = [2][2]struct {
		kingFrom, kingTo position.Pos
		rookFrom, rookTo position.Pos
	}{
		SideWhite: {
			CastleSideKing:  {kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61},
			CastleSideQueen: {kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59},
		},
		SideBlack: {
			CastleSideKing:  {kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5},
			CastleSideQueen: {kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3},
		},
	}
)

// backRank is the rank a pawn of side s promotes on.
func backRank(s Side) position.Pos {
	if s == SideWhite {
		return 0
	}
	return Height - 1
}
