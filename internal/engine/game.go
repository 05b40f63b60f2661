package engine

import (
	"slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Game is the engine-facing facade: a position plus an explicit history
// stack of snapshots, one per applied move, consumed by undo. The stack
// grows without bound; truncation is the caller's concern.
//
// A Game is single-threaded: callers sharing one across goroutines must
// serialise access externally.
type Game struct {
	pos     *chess.Position
	history []chess.Snapshot
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	return &Game{pos: NewInitialPosition()}
}

// NewGameFromFEN creates a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: pos}, nil
}

// Position exposes the underlying position for read-only consumers such
// as the board renderer.
func (g *Game) Position() *chess.Position {
	return g.pos
}

// FEN serialises the current position.
func (g *Game) FEN() string {
	return FormatFEN(g.pos)
}

// SideToMove returns the side with the next move.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.ToMove
}

// PieceAt returns the piece on the square, or the empty piece for a
// vacant one. An off-board square is an error.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, error) {
	if !sq.Valid() {
		return chess.None, errors.Wrapf(errors.ErrInvalidSquare, "%d,%d", sq.Rank, sq.File)
	}
	return g.pos.At(sq), nil
}

// Move plays from→to for the side to move. An illegal move is a normal
// negative result, not an error: it returns (false, nil) and leaves the
// game untouched. Errors are reserved for off-board squares. With
// autoPromote a pawn reaching the last rank becomes a queen; without it
// the game freezes in AwaitingPromotion until Promote is called.
func (g *Game) Move(from, to chess.Square, autoPromote bool) (bool, error) {
	legal, err := LegalMoves(g.pos, from)
	if err != nil {
		return false, err
	}
	if !to.Valid() {
		return false, errors.Wrapf(errors.ErrInvalidSquare, "%d,%d", to.Rank, to.File)
	}
	if !slices.Contains(legal, to) {
		return false, nil
	}

	snapshot := g.pos.Save()
	if !ApplyMove(g.pos, from, to, autoPromote) {
		return false, nil
	}
	g.history = append(g.history, snapshot)
	return true, nil
}

// Promote resolves a pending promotion with the chosen piece kind.
func (g *Game) Promote(kind chess.Kind) error {
	return ResolvePromotion(g.pos, kind)
}

// Undo reverts the last applied move, restoring board, turn, castling
// rights, en passant target, clocks and capture log exactly.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNoHistory
	}
	last := len(g.history) - 1
	g.pos.Restore(g.history[last])
	g.history = g.history[:last]
	return nil
}

// MovesPlayed returns how many moves can currently be undone.
func (g *Game) MovesPlayed() int {
	return len(g.history)
}

// LegalMoves returns the legal destinations for the piece on the square.
func (g *Game) LegalMoves(sq chess.Square) ([]chess.Square, error) {
	return LegalMoves(g.pos, sq)
}

// AllLegalMoves maps each of the side's occupied squares to its legal
// destinations.
func (g *Game) AllLegalMoves(side chess.Colour) map[chess.Square][]chess.Square {
	return AllLegalMoves(g.pos, side)
}

// State classifies the current position.
func (g *Game) State() GameState {
	return StateOf(g.pos)
}

// Captures returns the pieces the given side has captured, in order.
func (g *Game) Captures(side chess.Colour) []chess.Piece {
	return slices.Clone(g.pos.Captured[side])
}
