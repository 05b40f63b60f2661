package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a position from a FEN string: six whitespace-separated
// fields (placement, side to move, castling, en passant, half-move clock,
// full-move number). Malformed fields are reported, never defaulted.
func ParseFEN(fen string) (*chess.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "expected 6 fields, got %d", len(fields))
	}

	pos := chess.NewPosition()

	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fields[1]); err != nil {
		return nil, err
	}
	if err := parseCastling(pos, fields[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, fields[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, fields[4], fields[5]); err != nil {
		return nil, err
	}

	RecomputeAttacks(pos)
	return pos, nil
}

// parsePlacement fills the grid from the rank-major placement field.
func parsePlacement(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "expected 8 ranks, got %d", len(ranks))
	}

	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, err := chess.PieceFromLetter(c)
			if err != nil {
				return err
			}
			if file >= chess.BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows the board", chess.BoardSize-rank)
			}
			pos.Set(chess.Square{Rank: rank, File: file}, piece)
			file++
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d covers %d files", chess.BoardSize-rank, file)
		}
	}
	return nil
}

// parseSideToMove parses the active side field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "side to move %q", field)
	}
	return nil
}

// parseCastling parses the castling availability field.
func parseCastling(pos *chess.Position, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.Castling[chess.White].Kingside = true
		case 'Q':
			pos.Castling[chess.White].Queenside = true
		case 'k':
			pos.Castling[chess.Black].Kingside = true
		case 'q':
			pos.Castling[chess.Black].Queenside = true
		default:
			return errors.Wrapf(errors.ErrInvalidFEN, "castling flag %q", field[i])
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return errors.Wrap(err, "en passant target")
	}
	pos.HasEnPassant = true
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the half-move clock and full-move number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	half, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "half-move clock %q", halfmove)
	}
	full, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "full-move number %q", fullmove)
	}
	pos.HalfmoveClock = uint(half)
	pos.MoveNumber = uint(full)
	return nil
}

// FormatFEN serialises the position to its FEN string. Parsing a
// canonical FEN and formatting it again reproduces it exactly.
func FormatFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePlacement(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastling(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePlacement writes the piece placement field, run-length-encoding
// consecutive empty squares.
func writePlacement(sb *strings.Builder, pos *chess.Position) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.At(chess.Square{Rank: rank, File: file})
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the active side field.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastling writes the castling availability field.
func writeCastling(sb *strings.Builder, pos *chess.Position) {
	any := false
	if pos.Castling[chess.White].Kingside {
		sb.WriteByte('K')
		any = true
	}
	if pos.Castling[chess.White].Queenside {
		sb.WriteByte('Q')
		any = true
	}
	if pos.Castling[chess.Black].Kingside {
		sb.WriteByte('k')
		any = true
	}
	if pos.Castling[chess.Black].Queenside {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square field.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if pos.HasEnPassant {
		sb.WriteString(pos.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() *chess.Position {
	pos, _ := ParseFEN(InitialFEN)
	return pos
}
