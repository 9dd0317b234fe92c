package board

import (
	"github.com/daystram/chessfml/position"
)

// ApplyMove executes mv for the side to move and returns the resulting
// position; b and st are left untouched. mv is trusted to come from
// LegalMoves.
func ApplyMove(b Board, st GameState, mv Move) (Board, GameState) {
	mover := b[mv.From]
	s := mover.Side
	isCapture := mv.IsCapture() || !b[mv.To].IsEmpty()

	if mv.IsEnPassant() {
		if captured, ok := mv.To.Offset(-s.Forward(), 0); ok {
			b.Clear(captured)
		}
	}
	if mv.IsCastling() {
		c := posCastling[s][castleSideOf(mv)]
		b.move(c.rookFrom, c.rookTo)
		b[c.rookTo].Moved = true
	}
	if isCapture {
		// A rook taken on its corner takes the enemy right with it.
		revokeCornerRight(&st, s.Opposite(), mv.To)
	}

	if mv.IsPromotion() {
		mover.Type = mv.Promotion
	}
	mover.Moved = true
	b.Set(mv.To, mover)
	b.Clear(mv.From)

	st.EnPassant = position.NoPos
	if mover.Type == PiecePawn && abs(mv.To-mv.From) == 2*Width {
		st.EnPassant = (mv.From + mv.To) / 2
	}

	switch mover.Type {
	case PieceKing:
		st.CastleRights.DisableSide(s)
	case PieceRook:
		revokeCornerRight(&st, s, mv.From)
	}

	st.UpdateMoveCounters(isCapture || mover.Type == PiecePawn || mv.IsPromotion())
	st.NextTurn()
	st.InCheck = IsInCheck(&b, st.Turn)
	return b, st
}

// revokeCornerRight drops owner's castling right tied to the rook corner pos,
// if pos is one of them.
func revokeCornerRight(st *GameState, owner Side, pos position.Pos) {
	for _, cs := range [2]CastleSide{CastleSideKing, CastleSideQueen} {
		if castleRookCorner(owner, cs) == pos {
			st.CastleRights.Disable(owner, cs)
		}
	}
}
