package board

import "github.com/daystram/chessfml/position"

type CastleSide uint8

const (
	CastleSideKing CastleSide = iota
	CastleSideQueen
)

func (c CastleSide) String() string {
	if c == CastleSideKing {
		return "0-0"
	}
	return "0-0-0"
}

// CastleRights holds four independent flags, one per (side, castle side).
type CastleRights uint8

const (
	CastleRightsNone CastleRights = 0
	CastleRightsAll  CastleRights = 0b1111
)

func (c *CastleRights) Enable(s Side, cs CastleSide) {
	*c |= maskCastleRights[s][cs]
}

func (c *CastleRights) Disable(s Side, cs CastleSide) {
	*c &^= maskCastleRights[s][cs]
}

// DisableSide drops both rights of s.
func (c *CastleRights) DisableSide(s Side) {
	c.Disable(s, CastleSideKing)
	c.Disable(s, CastleSideQueen)
}

func (c *CastleRights) Clear() {
	*c = CastleRightsNone
}

func (c CastleRights) IsAllowed(s Side, cs CastleSide) bool {
	return c&maskCastleRights[s][cs] != 0
}

// String returns the FEN castling field: present rights in KQkq order, or "-".
func (c CastleRights) String() string {
	if c == CastleRightsNone {
		return "-"
	}
	var sym []byte
	for _, r := range castleRightsOrder {
		if c.IsAllowed(r.side, r.castleSide) {
			sym = append(sym, r.symbol)
		}
	}
	return string(sym)
}

func castleRookCorner(s Side, cs CastleSide) position.Pos {
	return posCastling[s][cs].rookFrom
}
