package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ApplyMove performs the state transition for a validated (from, to) pair
// on the side to move. It updates the board, castling rights, en passant
// target, clocks, capture log and attack caches together, then flips the
// turn. Returns false if from does not hold a piece of the side to move or
// a promotion is still pending.
//
// ApplyMove does not verify legality; callers filter through the legality
// check first. With autoPromote set, a pawn reaching the last rank becomes
// a queen; otherwise the position freezes until ResolvePromotion.
func ApplyMove(pos *chess.Position, from, to chess.Square, autoPromote bool) bool {
	return applyMove(pos, from, to, autoPromote, true)
}

// applyMove is ApplyMove with the turn/promotion guard optionally
// bypassed for internal simulation.
func applyMove(pos *chess.Position, from, to chess.Square, autoPromote, enforceTurn bool) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	moving := pos.At(from)
	if moving.IsEmpty() {
		return false
	}
	if enforceTurn && (pos.PendingPromotion || moving.Side != pos.ToMove) {
		return false
	}

	mover := moving.Side

	pos.HalfmoveClock++

	// Destination occupant goes to the capture log before being
	// overwritten.
	captured := pos.At(to)
	if !captured.IsEmpty() {
		pos.HalfmoveClock = 0
		pos.Captured[mover] = append(pos.Captured[mover], captured)
	}

	freshEnPassant := false

	switch moving.Kind {
	case chess.King:
		if abs(to.File-from.File) == 2 {
			castleRook(pos, to)
		}
		pos.Castling[mover] = chess.CastlingRights{}

	case chess.Rook:
		clearRookRight(pos, mover, from)

	case chess.Pawn:
		pos.HalfmoveClock = 0
		if pos.HasEnPassant && to == pos.EnPassant && to.File != from.File && captured.IsEmpty() {
			// En passant: the bypassed pawn sits on the mover's own
			// rank, behind the target square.
			victim := chess.Square{Rank: from.Rank, File: to.File}
			pos.Captured[mover] = append(pos.Captured[mover], pos.At(victim))
			pos.Set(victim, chess.None)
		}
		if abs(to.Rank-from.Rank) == 2 {
			pos.EnPassant = chess.Square{Rank: (to.Rank + from.Rank) / 2, File: from.File}
			pos.HasEnPassant = true
			freshEnPassant = true
		}
		if to.Rank == promotionRank(mover) {
			if autoPromote {
				moving = chess.Piece{Kind: chess.Queen, Side: mover}
			} else {
				pos.PendingPromotion = true
				pos.PromotionSquare = to
			}
		}
	}

	// A rook captured on its original corner loses the right just like a
	// rook that moved away from it.
	if captured.Kind == chess.Rook {
		clearRookRight(pos, captured.Side, to)
	}

	pos.Set(to, moving)
	pos.Set(from, chess.None)

	RecomputeAttacks(pos)

	if mover == chess.Black {
		pos.MoveNumber++
	}
	if !freshEnPassant {
		pos.HasEnPassant = false
		pos.EnPassant = chess.Square{}
	}
	pos.ToMove = mover.Opposite()

	return true
}

// castleRook relocates the rook for a castling king that just committed
// to kingTo. The king itself moves through the regular relocation path.
func castleRook(pos *chess.Position, kingTo chess.Square) {
	rank := kingTo.Rank
	var rookFrom, rookTo chess.Square
	if kingTo.File == 6 {
		rookFrom = chess.Square{Rank: rank, File: 7}
		rookTo = chess.Square{Rank: rank, File: 5}
	} else {
		rookFrom = chess.Square{Rank: rank, File: 0}
		rookTo = chess.Square{Rank: rank, File: 3}
	}
	pos.Set(rookTo, pos.At(rookFrom))
	pos.Set(rookFrom, chess.None)
}

// clearRookRight drops the castling right for the wing whose corner is
// sq, if sq is one of the side's rook start squares.
func clearRookRight(pos *chess.Position, side chess.Colour, sq chess.Square) {
	if sq.Rank != backRank(side) {
		return
	}
	switch sq.File {
	case 0:
		pos.Castling[side].Queenside = false
	case 7:
		pos.Castling[side].Kingside = false
	}
}

// ResolvePromotion replaces the pawn on the pending promotion square with
// the chosen kind and unfreezes the position. Any piece kind is accepted,
// including Pawn and King; only the absence of a pending promotion or a
// non-kind is an error. A promotion event resolves at most once.
func ResolvePromotion(pos *chess.Position, kind chess.Kind) error {
	if !pos.PendingPromotion {
		return errors.ErrNoPendingPromotion
	}
	if kind == chess.NoPiece {
		return fmt.Errorf("cannot promote to %v", kind)
	}

	pawn := pos.At(pos.PromotionSquare)
	pos.Set(pos.PromotionSquare, chess.Piece{Kind: kind, Side: pawn.Side})
	pos.PendingPromotion = false
	pos.PromotionSquare = chess.Square{}

	RecomputeAttacks(pos)
	return nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
