package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MustSquare parses algebraic notation, failing the test on bad input.
func MustSquare(t *testing.T, notation string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(notation)
	if err != nil {
		t.Fatalf("bad square %q: %v", notation, err)
	}
	return sq
}

// Squares parses a list of algebraic squares, failing the test on bad input.
func Squares(t *testing.T, notations ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(notations))
	for _, n := range notations {
		out = append(out, MustSquare(t, n))
	}
	return out
}

// SortSquares orders squares rank-major for order-insensitive comparison
// of move lists.
func SortSquares(squares []chess.Square) []chess.Square {
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Rank != squares[j].Rank {
			return squares[i].Rank < squares[j].Rank
		}
		return squares[i].File < squares[j].File
	})
	return squares
}
