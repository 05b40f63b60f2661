// Package chess provides the core chess value types and the Position state.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece kind.
type Kind int

const (
	NoPiece Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase FEN letter for a piece kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is an immutable kind+side value. Two pieces of the same kind and
// side are indistinguishable; pieces are copied by value everywhere.
type Piece struct {
	Kind Kind
	Side Colour
}

// None is the empty-square value.
var None = Piece{}

// IsEmpty reports whether p denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Side == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable representation such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%v %v", p.Side, p.Kind)
}

// PieceFromLetter converts a FEN letter to a piece. Uppercase letters are
// White, lowercase Black.
func PieceFromLetter(c byte) (Piece, error) {
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Piece{Pawn, side}, nil
	case 'N':
		return Piece{Knight, side}, nil
	case 'B':
		return Piece{Bishop, side}, nil
	case 'R':
		return Piece{Rook, side}, nil
	case 'Q':
		return Piece{Queen, side}, nil
	case 'K':
		return Piece{King, side}, nil
	default:
		return None, errors.Wrapf(errors.ErrInvalidFEN, "piece letter %q", c)
	}
}
