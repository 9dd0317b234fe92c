package board

import (
	"golang.org/x/exp/slices"

	"github.com/daystram/chessfml/position"
)

type moveGenerator func(b *Board, st *GameState, from position.Pos) []Move

var pieceMoveGenerators = [PieceKing + 1]moveGenerator{
	PiecePawn:   genPawnMoves,
	PieceRook:   genRookMoves,
	PieceKnight: genKnightMoves,
	PieceBishop: genBishopMoves,
	PieceQueen:  genQueenMoves,
	PieceKing:   genKingMoves,
}

// PseudoLegalMoves generates the moves of the piece on from without checking
// whether they leave its own king attacked.
func PseudoLegalMoves(b *Board, st *GameState, from position.Pos) []Move {
	if !from.IsValid() {
		return nil
	}
	t := b[from].Type
	if int(t) >= len(pieceMoveGenerators) || pieceMoveGenerators[t] == nil {
		return nil
	}
	return pieceMoveGenerators[t](b, st, from)
}

// LegalMoves drops every pseudo-legal move that would leave the mover's king
// attacked. Each candidate is tried on a scratch copy of b; st is not touched.
func LegalMoves(b *Board, st *GameState, from position.Pos) []Move {
	mvs := PseudoLegalMoves(b, st, from)
	if len(mvs) == 0 {
		return mvs
	}
	s := b[from].Side
	legal := mvs[:0]
	for _, mv := range mvs {
		scratch := *b
		if mv.IsEnPassant() {
			if captured, ok := mv.To.Offset(-s.Forward(), 0); ok {
				scratch.Clear(captured)
			}
		}
		if mv.IsCastling() {
			c := posCastling[s][castleSideOf(mv)]
			scratch.move(c.rookFrom, c.rookTo)
		}
		scratch.move(mv.From, mv.To)
		if !IsInCheck(&scratch, s) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// AllLegalMoves collects the legal moves of every piece of the side to move.
func AllLegalMoves(b *Board, st *GameState) []Move {
	var mvs []Move
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if p := b[pos]; !p.IsEmpty() && p.Side == st.Turn {
			mvs = append(mvs, LegalMoves(b, st, pos)...)
		}
	}
	return mvs
}

func IsLegalMove(b *Board, st *GameState, from, to position.Pos) bool {
	return slices.IndexFunc(LegalMoves(b, st, from), func(mv Move) bool {
		return mv.To == to
	}) >= 0
}

func HasLegalMoves(b *Board, st *GameState) bool {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if p := b[pos]; !p.IsEmpty() && p.Side == st.Turn {
			if len(LegalMoves(b, st, pos)) != 0 {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether s's king is attacked. A board without that king
// is never in check.
func IsInCheck(b *Board, s Side) bool {
	king := b.KingPos(s)
	if king == position.NoPos {
		return false
	}
	return IsSquareAttacked(b, king, s.Opposite())
}

func IsCheckmate(b *Board, st *GameState) bool {
	return IsInCheck(b, st.Turn) && !HasLegalMoves(b, st)
}

func IsStalemate(b *Board, st *GameState) bool {
	return !IsInCheck(b, st.Turn) && !HasLegalMoves(b, st)
}

// Evaluate folds the check, checkmate and stalemate tests for the side to move.
func Evaluate(b *Board, st *GameState) Status {
	check := IsInCheck(b, st.Turn)
	switch {
	case HasLegalMoves(b, st):
		if check {
			return StatusCheck
		}
		return StatusRunning
	case check:
		return StatusCheckmate
	default:
		return StatusStalemate
	}
}

// IsSquareAttacked reports whether any piece of attacker could capture onto
// pos, regardless of whose turn it is. Tests run pawns, knights, king, then
// lateral and diagonal rays, returning on the first hit.
func IsSquareAttacked(b *Board, pos position.Pos, attacker Side) bool {
	fwd := attacker.Forward()
	for _, df := range [2]position.Pos{-1, 1} {
		if from, ok := pos.Offset(-fwd, df); ok && b[from].Is(PiecePawn, attacker) {
			return true
		}
	}
	for _, o := range offsetKnight {
		if from, ok := pos.Offset(o[0], o[1]); ok && b[from].Is(PieceKnight, attacker) {
			return true
		}
	}
	for _, o := range offsetKing {
		if from, ok := pos.Offset(o[0], o[1]); ok && b[from].Is(PieceKing, attacker) {
			return true
		}
	}
	if rayHits(b, pos, directionLateral[:], attacker, PieceRook) {
		return true
	}
	return rayHits(b, pos, directionDiagonal[:], attacker, PieceBishop)
}

// rayHits walks each direction from pos up to the first occupied square and
// reports whether it holds an attacker slider of type t or a queen.
func rayHits(b *Board, pos position.Pos, directions [][2]position.Pos, attacker Side, t PieceType) bool {
	for _, d := range directions {
		for i := position.Pos(1); i < Width; i++ {
			sq, ok := pos.Offset(d[0]*i, d[1]*i)
			if !ok {
				break
			}
			p := b[sq]
			if p.IsEmpty() {
				continue
			}
			if p.Side == attacker && (p.Type == t || p.Type == PieceQueen) {
				return true
			}
			break
		}
	}
	return false
}

func genPawnMoves(b *Board, st *GameState, from position.Pos) []Move {
	pawn := b[from]
	s := pawn.Side
	fwd := s.Forward()
	last := backRank(s)
	if from.Rank() == last {
		return nil
	}

	var mvs []Move
	appendPawnMove := func(to position.Pos, flags MoveFlag) {
		if to.Rank() != last {
			mvs = append(mvs, Move{From: from, To: to, Flags: flags})
			return
		}
		for _, prom := range PawnPromoteCandidates {
			mvs = append(mvs, Move{From: from, To: to, Flags: flags | MoveFlagPromotion, Promotion: prom})
		}
	}

	if to, ok := from.Offset(fwd, 0); ok && b[to].IsEmpty() {
		appendPawnMove(to, MoveFlagNormal)
		// Gated on the moved flag rather than the starting rank.
		if to.Rank() != last && !pawn.Moved {
			if to2, ok := from.Offset(2*fwd, 0); ok && b[to2].IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to2})
			}
		}
	}

	for _, df := range [2]position.Pos{-1, 1} {
		to, ok := from.Offset(fwd, df)
		if !ok {
			continue
		}
		if b[to].IsEnemyOf(s) {
			appendPawnMove(to, MoveFlagCapture)
		}
		if st.HasEnPassant() && to == st.EnPassant {
			mvs = append(mvs, Move{From: from, To: to, Flags: MoveFlagCapture | MoveFlagEnPassant})
		}
	}
	return mvs
}

func genKnightMoves(b *Board, _ *GameState, from position.Pos) []Move {
	return genStepMoves(b, from, offsetKnight[:], nil)
}

func genRookMoves(b *Board, _ *GameState, from position.Pos) []Move {
	return genSlidingMoves(b, from, directionLateral[:])
}

func genBishopMoves(b *Board, _ *GameState, from position.Pos) []Move {
	return genSlidingMoves(b, from, directionDiagonal[:])
}

func genQueenMoves(b *Board, _ *GameState, from position.Pos) []Move {
	return append(genSlidingMoves(b, from, directionLateral[:]), genSlidingMoves(b, from, directionDiagonal[:])...)
}

func genKingMoves(b *Board, st *GameState, from position.Pos) []Move {
	king := b[from]
	s := king.Side
	// Checked against the current board, so squares on the line of a slider
	// already attacking the king slip through here; LegalMoves catches those.
	notAttacked := func(to position.Pos) bool {
		return !IsSquareAttacked(b, to, s.Opposite())
	}
	mvs := genStepMoves(b, from, offsetKing[:], notAttacked)

	if king.Moved || st.InCheck {
		return mvs
	}
	for _, cs := range [2]CastleSide{CastleSideKing, CastleSideQueen} {
		if canCastle(b, st, from, s, cs) {
			mvs = append(mvs, Move{From: from, To: posCastling[s][cs].kingTo, Flags: MoveFlagCastling})
		}
	}
	return mvs
}

func canCastle(b *Board, st *GameState, from position.Pos, s Side, cs CastleSide) bool {
	c := posCastling[s][cs]
	if !st.CastleRights.IsAllowed(s, cs) || from != c.kingFrom {
		return false
	}
	step := position.Pos(1)
	if c.rookFrom < c.kingFrom {
		step = -1
	}
	for sq := c.kingFrom + step; sq != c.rookFrom; sq += step {
		if !b[sq].IsEmpty() {
			return false
		}
	}
	// Only the squares the king crosses, not the queenside b-file square.
	for sq := c.kingFrom + step; sq != c.kingTo+step; sq += step {
		if IsSquareAttacked(b, sq, s.Opposite()) {
			return false
		}
	}
	rook := b[c.rookFrom]
	return rook.Is(PieceRook, s) && !rook.Moved
}

// genStepMoves emits single-step moves to each on-board offset that is empty
// or holds an enemy, skipping destinations rejected by allow.
func genStepMoves(b *Board, from position.Pos, offsets [][2]position.Pos, allow func(position.Pos) bool) []Move {
	s := b[from].Side
	var mvs []Move
	for _, o := range offsets {
		to, ok := from.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if allow != nil && !allow(to) {
			continue
		}
		switch target := b[to]; {
		case target.IsEmpty():
			mvs = append(mvs, Move{From: from, To: to})
		case target.Side != s:
			mvs = append(mvs, Move{From: from, To: to, Flags: MoveFlagCapture})
		}
	}
	return mvs
}

func genSlidingMoves(b *Board, from position.Pos, directions [][2]position.Pos) []Move {
	s := b[from].Side
	var mvs []Move
	for _, d := range directions {
		for i := position.Pos(1); i < Width; i++ {
			to, ok := from.Offset(d[0]*i, d[1]*i)
			if !ok {
				break
			}
			target := b[to]
			if target.IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to})
				continue
			}
			if target.Side != s {
				mvs = append(mvs, Move{From: from, To: to, Flags: MoveFlagCapture})
			}
			break
		}
	}
	return mvs
}

func castleSideOf(mv Move) CastleSide {
	if mv.To > mv.From {
		return CastleSideKing
	}
	return CastleSideQueen
}
