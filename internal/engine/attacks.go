package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// AttackedSquares computes, from scratch, the set of squares the given
// side attacks: the union of attack-mode generation over every square
// occupied by that side. The set is consumed via membership tests only.
func AttackedSquares(pos *chess.Position, side chess.Colour) chess.SquareSet {
	attacked := make(chess.SquareSet)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{Rank: rank, File: file}
			piece := pos.At(sq)
			if piece.IsEmpty() || piece.Side != side {
				continue
			}
			for _, target := range attackSquares(pos, sq) {
				attacked.Add(target)
			}
		}
	}
	return attacked
}

// RecomputeAttacks refreshes both sides' attacked-square caches on the
// position. Called after every board mutation; there is no incremental
// update.
func RecomputeAttacks(pos *chess.Position) {
	pos.Attacked[chess.White] = AttackedSquares(pos, chess.White)
	pos.Attacked[chess.Black] = AttackedSquares(pos, chess.Black)
}

// IsInCheck reports whether the given side's king stands on a square
// attacked by the opponent, according to the cached attack sets.
func IsInCheck(pos *chess.Position, side chess.Colour) bool {
	king := kingSquare(pos, side)
	if !king.Valid() {
		return false
	}
	return pos.Attacked[side.Opposite()].Contains(king)
}

// kingSquare finds the side's king. Returns an invalid square if the board
// holds none, which only happens for hand-built test positions.
func kingSquare(pos *chess.Position, side chess.Colour) chess.Square {
	king := chess.Piece{Kind: chess.King, Side: side}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{Rank: rank, File: file}
			if pos.At(sq) == king {
				return sq
			}
		}
	}
	return chess.Square{Rank: -1, File: -1}
}
