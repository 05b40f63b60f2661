package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// GameState classifies a position.
type GameState int

const (
	InProgress GameState = iota
	// AwaitingPromotion freezes the game until the promotion choice is
	// resolved; it masks every other state.
	AwaitingPromotion
	WhiteWin
	BlackWin
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	names := []string{
		"in progress",
		"awaiting promotion",
		"White wins",
		"Black wins",
		"draw by stalemate",
		"draw by insufficient material",
		"draw by fifty-move rule",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// IsDraw reports whether the state is one of the draw outcomes.
func (s GameState) IsDraw() bool {
	return s == Stalemate || s == InsufficientMaterial || s == FiftyMoveRule
}

// GameOver reports whether the game has ended.
func (s GameState) GameOver() bool {
	return s != InProgress && s != AwaitingPromotion
}

// Winner returns the winning side for a decided game.
func (s GameState) Winner() (chess.Colour, bool) {
	switch s {
	case WhiteWin:
		return chess.White, true
	case BlackWin:
		return chess.Black, true
	}
	return chess.White, false
}

// The fifty-move rule triggers at 50 full moves without a capture or pawn
// move, i.e. 100 half-moves.
const fiftyMoveLimit = 100

// StateOf classifies the position. The checks form a strict priority
// list: a pending promotion masks game-over detection, and mate or
// stalemate is decided before the move-count-independent draws.
func StateOf(pos *chess.Position) GameState {
	if pos.PendingPromotion {
		return AwaitingPromotion
	}

	legalMoves := 0
	for _, destinations := range AllLegalMoves(pos, pos.ToMove) {
		legalMoves += len(destinations)
	}
	if legalMoves == 0 {
		if IsInCheck(pos, pos.ToMove) {
			if pos.ToMove == chess.White {
				return BlackWin
			}
			return WhiteWin
		}
		return Stalemate
	}

	if pos.HalfmoveClock >= fiftyMoveLimit {
		return FiftyMoveRule
	}

	if insufficientMaterial(pos, chess.White) && insufficientMaterial(pos, chess.Black) {
		return InsufficientMaterial
	}

	return InProgress
}

// insufficientMaterial reports whether the side's remaining pieces match
// the fixed no-mate table: lone king, king plus a single minor piece, or
// king plus two knights. Same-coloured-bishop endings and other finer
// cases are deliberately not special-cased.
func insufficientMaterial(pos *chess.Position, side chess.Colour) bool {
	var kinds []chess.Kind
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.At(chess.Square{Rank: rank, File: file})
			if piece.IsEmpty() || piece.Side != side || piece.Kind == chess.King {
				continue
			}
			// Any pawn, rook or queen is mating material.
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}
			kinds = append(kinds, piece.Kind)
		}
	}

	switch len(kinds) {
	case 0:
		return true
	case 1:
		return kinds[0] == chess.Bishop || kinds[0] == chess.Knight
	case 2:
		return kinds[0] == chess.Knight && kinds[1] == chess.Knight
	}
	return false
}
