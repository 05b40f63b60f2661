package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// IsLegal reports whether the pseudo-legal move from→to is fully legal:
// after playing it, the mover's own king must not stand in the opponent's
// attack set. The move is simulated on the position and reverted before
// returning, so no partial state escapes.
func IsLegal(pos *chess.Position, from, to chess.Square) bool {
	moving := pos.At(from)
	if moving.IsEmpty() {
		return false
	}

	snapshot := pos.Save()
	defer pos.Restore(snapshot)

	// The promotion choice cannot alter whether the mover's king is
	// attacked, so simulation always auto-promotes.
	if !applyMove(pos, from, to, true, false) {
		return false
	}

	king := kingSquare(pos, moving.Side)
	if !king.Valid() {
		return true
	}
	return !pos.Attacked[moving.Side.Opposite()].Contains(king)
}

// LegalMoves returns the fully legal destinations for the piece on from.
// Only the side to move has moves: an enemy piece, an empty square, or a
// position frozen on a pending promotion all yield an empty set. An
// off-board square is an error.
func LegalMoves(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	pseudo, err := PseudoLegalMoves(pos, from)
	if err != nil {
		return nil, err
	}
	if pos.PendingPromotion || pos.At(from).Side != pos.ToMove {
		return nil, nil
	}

	var legal []chess.Square
	for _, to := range pseudo {
		if IsLegal(pos, from, to) {
			legal = append(legal, to)
		}
	}
	return legal, nil
}

// AllLegalMoves maps every square holding a piece of the given side to its
// legal destinations. Squares whose piece has no legal move are present
// with an empty set.
func AllLegalMoves(pos *chess.Position, side chess.Colour) map[chess.Square][]chess.Square {
	moves := make(map[chess.Square][]chess.Square)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{Rank: rank, File: file}
			piece := pos.At(sq)
			if piece.IsEmpty() || piece.Side != side {
				continue
			}
			legal, _ := LegalMoves(pos, sq)
			moves[sq] = legal
		}
	}
	return moves
}
