// Package engine implements move generation, legality checking, move
// application and game-state classification over a chess.Position.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Direction vectors as (dRank, dFile) offsets.
var (
	rookDirections   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets    = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
)

// moveRule drives the shared directional walker: the directions a kind
// moves in and how far it may slide along each.
type moveRule struct {
	directions [][2]int
	slideLimit int
}

// The rule set is closed; pawns have their own generator.
var pieceRules = map[chess.Kind]moveRule{
	chess.Rook:   {rookDirections, chess.BoardSize},
	chess.Bishop: {bishopDirections, chess.BoardSize},
	chess.Queen:  {queenDirections, chess.BoardSize},
	chess.Knight: {knightOffsets, 1},
	chess.King:   {queenDirections, 1},
}

// PseudoLegalMoves returns the destination squares the piece on from could
// move to, ignoring whether the mover's own king would be left attacked.
// An empty square yields an empty set; an off-board square is an error.
func PseudoLegalMoves(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	if !from.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "pseudo-legal moves for %d,%d", from.Rank, from.File)
	}

	piece := pos.At(from)
	switch piece.Kind {
	case chess.NoPiece:
		return nil, nil
	case chess.Pawn:
		return pawnMoves(pos, from, false), nil
	case chess.King:
		moves := directionalMoves(pos, from, pieceRules[chess.King], false)
		return append(moves, castlingMoves(pos, from)...), nil
	default:
		return directionalMoves(pos, from, pieceRules[piece.Kind], false), nil
	}
}

// attackSquares returns the squares the piece on from attacks. Unlike move
// generation, pawns report only their diagonals and no destination is
// filtered by same-colour occupancy, so a defended friendly square still
// counts as attacked. The square must be valid and occupied.
func attackSquares(pos *chess.Position, from chess.Square) []chess.Square {
	piece := pos.At(from)
	if piece.Kind == chess.Pawn {
		return pawnMoves(pos, from, true)
	}
	return directionalMoves(pos, from, pieceRules[piece.Kind], true)
}

// directionalMoves walks outward from from along each direction, at most
// slideLimit steps per ray. A ray stops at the board edge or at the first
// occupied square; that square is included for enemy pieces (a capture)
// and, in attack mode, for friendly pieces as well.
func directionalMoves(pos *chess.Position, from chess.Square, rule moveRule, attackOnly bool) []chess.Square {
	side := pos.At(from).Side
	var moves []chess.Square

	for _, dir := range rule.directions {
		sq := from
		for step := 0; step < rule.slideLimit; step++ {
			sq = sq.Offset(dir[0], dir[1])
			if !sq.Valid() {
				break
			}
			occupant := pos.At(sq)
			if occupant.IsEmpty() {
				moves = append(moves, sq)
				continue
			}
			if attackOnly || occupant.Side != side {
				moves = append(moves, sq)
			}
			break
		}
	}
	return moves
}

// pawnMoves generates pawn destinations: single push, double push from the
// starting rank, and diagonal captures including en passant. In attack
// mode only the two diagonals are reported, regardless of occupancy.
func pawnMoves(pos *chess.Position, from chess.Square, attackOnly bool) []chess.Square {
	side := pos.At(from).Side
	dir := pawnDirection(side)
	var moves []chess.Square

	if attackOnly {
		for _, df := range []int{-1, 1} {
			if sq := from.Offset(dir, df); sq.Valid() {
				moves = append(moves, sq)
			}
		}
		return moves
	}

	if forward := from.Offset(dir, 0); forward.Valid() && pos.At(forward).IsEmpty() {
		moves = append(moves, forward)
		if from.Rank == pawnStartRank(side) {
			if double := from.Offset(2*dir, 0); pos.At(double).IsEmpty() {
				moves = append(moves, double)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		sq := from.Offset(dir, df)
		if sq.Valid() && pawnCanCapture(pos, sq, side) {
			moves = append(moves, sq)
		}
	}
	return moves
}

// pawnCanCapture reports whether a pawn of the given side may capture onto
// target: either an enemy piece stands there, or it is the current en
// passant square and the side is the one entitled to use it.
func pawnCanCapture(pos *chess.Position, target chess.Square, side chess.Colour) bool {
	if pos.HasEnPassant && target == pos.EnPassant {
		if capturer, ok := enPassantCapturer(target); ok && capturer == side {
			return true
		}
	}
	occupant := pos.At(target)
	return !occupant.IsEmpty() && occupant.Side != side
}

// enPassantCapturer returns which side may capture onto an en passant
// target. A target on rank index 2 sits behind a black double push, so
// only White may use it; rank index 5 is the mirror case. This resolves
// the ambiguity when pawns of both colours are adjacent to the target.
func enPassantCapturer(target chess.Square) (chess.Colour, bool) {
	switch target.Rank {
	case 2:
		return chess.White, true
	case 5:
		return chess.Black, true
	}
	return chess.White, false
}

// castlingMoves returns the two-file king destinations for the castling
// options still open to the king on from. A candidate requires the right
// to be intact, the rook on its corner, the squares between them empty,
// and the king's start, transit and destination squares unattacked.
func castlingMoves(pos *chess.Position, from chess.Square) []chess.Square {
	side := pos.At(from).Side
	rank := backRank(side)
	if from != (chess.Square{Rank: rank, File: 4}) {
		return nil
	}

	enemy := pos.Attacked[side.Opposite()]
	rook := chess.Piece{Kind: chess.Rook, Side: side}
	var moves []chess.Square

	if pos.Castling[side].Kingside &&
		pos.At(chess.Square{Rank: rank, File: 7}) == rook &&
		pos.At(chess.Square{Rank: rank, File: 5}).IsEmpty() &&
		pos.At(chess.Square{Rank: rank, File: 6}).IsEmpty() &&
		!enemy.Contains(chess.Square{Rank: rank, File: 4}) &&
		!enemy.Contains(chess.Square{Rank: rank, File: 5}) &&
		!enemy.Contains(chess.Square{Rank: rank, File: 6}) {
		moves = append(moves, chess.Square{Rank: rank, File: 6})
	}

	if pos.Castling[side].Queenside &&
		pos.At(chess.Square{Rank: rank, File: 0}) == rook &&
		pos.At(chess.Square{Rank: rank, File: 1}).IsEmpty() &&
		pos.At(chess.Square{Rank: rank, File: 2}).IsEmpty() &&
		pos.At(chess.Square{Rank: rank, File: 3}).IsEmpty() &&
		!enemy.Contains(chess.Square{Rank: rank, File: 4}) &&
		!enemy.Contains(chess.Square{Rank: rank, File: 3}) &&
		!enemy.Contains(chess.Square{Rank: rank, File: 2}) {
		moves = append(moves, chess.Square{Rank: rank, File: 2})
	}

	return moves
}

// pawnDirection returns the rank delta a pawn advances by. White moves
// towards rank index 0.
func pawnDirection(side chess.Colour) int {
	if side == chess.White {
		return -1
	}
	return 1
}

// pawnStartRank returns the rank index pawns start on.
func pawnStartRank(side chess.Colour) int {
	if side == chess.White {
		return 6
	}
	return 1
}

// promotionRank returns the last rank index for the side's pawns.
func promotionRank(side chess.Colour) int {
	if side == chess.White {
		return 0
	}
	return 7
}

// backRank returns the rank index of the side's back rank.
func backRank(side chess.Colour) int {
	if side == chess.White {
		return 7
	}
	return 0
}
