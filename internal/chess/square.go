package chess

import (
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// Square identifies a board square by rank and file index, each in [0,7].
// Index (0,0) is the a8 corner: rank indices grow downwards from Black's
// back rank, file indices grow from the a-file to the h-file.
type Square struct {
	Rank int
	File int
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square displaced by dRank and dFile. The result may
// be off the board; callers check Valid.
func (s Square) Offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// String returns the algebraic notation for the square, e.g. "e4".
// Off-board squares render as "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('0' + BoardSize - s.Rank)})
}

// ParseSquare converts two-character algebraic notation ("a1".."h8") to a
// Square. The conversion is the exact inverse of String.
func ParseSquare(notation string) (Square, error) {
	if len(notation) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "notation %q", notation)
	}
	file := notation[0]
	rank := notation[1]
	if file < 'a' || file > 'h' {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "file %q", file)
	}
	if rank < '1' || rank > '8' {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "rank %q", rank)
	}
	// Ranks are mirrored in the grid: rank 8 is row index 0.
	return Square{Rank: BoardSize - int(rank-'0'), File: int(file - 'a')}, nil
}

// SquareSet is a set of squares, used for attacked-square membership tests.
type SquareSet map[Square]struct{}

// Add inserts a square into the set.
func (s SquareSet) Add(sq Square) {
	s[sq] = struct{}{}
}

// Contains reports whether the set holds the square.
func (s SquareSet) Contains(sq Square) bool {
	_, ok := s[sq]
	return ok
}

// Clone returns an independent copy of the set.
func (s SquareSet) Clone() SquareSet {
	out := make(SquareSet, len(s))
	for sq := range s {
		out[sq] = struct{}{}
	}
	return out
}
