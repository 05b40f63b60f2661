package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		check   func(t *testing.T, pos *chess.Position)
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			check: func(t *testing.T, pos *chess.Position) {
				testutil.AssertEqual(t, pos.At(testutil.MustSquare(t, "e1")), chess.Piece{Kind: chess.King, Side: chess.White})
				testutil.AssertEqual(t, pos.At(testutil.MustSquare(t, "e8")), chess.Piece{Kind: chess.King, Side: chess.Black})
				testutil.AssertEqual(t, pos.At(testutil.MustSquare(t, "a8")), chess.Piece{Kind: chess.Rook, Side: chess.Black})
				testutil.AssertEqual(t, pos.ToMove, chess.White)
				testutil.AssertEqual(t, pos.Castling[chess.White], chess.CastlingRights{Kingside: true, Queenside: true})
				testutil.AssertEqual(t, pos.Castling[chess.Black], chess.CastlingRights{Kingside: true, Queenside: true})
				testutil.AssertFalse(t, pos.HasEnPassant)
				testutil.AssertEqual(t, pos.HalfmoveClock, uint(0))
				testutil.AssertEqual(t, pos.MoveNumber, uint(1))
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			check: func(t *testing.T, pos *chess.Position) {
				testutil.AssertEqual(t, pos.At(testutil.MustSquare(t, "e4")), chess.Piece{Kind: chess.Pawn, Side: chess.White})
				testutil.AssertTrue(t, pos.At(testutil.MustSquare(t, "e2")).IsEmpty())
				testutil.AssertEqual(t, pos.ToMove, chess.Black)
				testutil.AssertTrue(t, pos.HasEnPassant)
				testutil.AssertEqual(t, pos.EnPassant, testutil.MustSquare(t, "e3"))
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w - - 12 34",
			check: func(t *testing.T, pos *chess.Position) {
				testutil.AssertEqual(t, pos.Castling[chess.White], chess.CastlingRights{})
				testutil.AssertEqual(t, pos.Castling[chess.Black], chess.CastlingRights{})
				testutil.AssertEqual(t, pos.HalfmoveClock, uint(12))
				testutil.AssertEqual(t, pos.MoveNumber, uint(34))
			},
		},
		{
			name: "attack caches are primed",
			fen:  "7k/8/8/8/8/8/8/R6K w - - 0 1",
			check: func(t *testing.T, pos *chess.Position) {
				testutil.AssertTrue(t, pos.Attacked[chess.White].Contains(testutil.MustSquare(t, "a8")))
				testutil.AssertTrue(t, pos.Attacked[chess.Black].Contains(testutil.MustSquare(t, "g8")))
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "too few fields", fen: "8/8/8/8/8/8/8/8 w - -", wantErr: true},
		{name: "bad piece letter", fen: "8/8/8/8/3x4/8/8/8 w - - 0 1", wantErr: true},
		{name: "too few ranks", fen: "8/8/8/8/8/8/8 w - - 0 1", wantErr: true},
		{name: "rank too wide", fen: "9/8/8/8/8/8/8/8 w - - 0 1", wantErr: true},
		{name: "rank too narrow", fen: "7/8/8/8/8/8/8/8 w - - 0 1", wantErr: true},
		{name: "bad side to move", fen: "8/8/8/8/8/8/8/8 x - - 0 1", wantErr: true},
		{name: "bad castling flag", fen: "8/8/8/8/8/8/8/8 w X - 0 1", wantErr: true},
		{name: "bad en passant square", fen: "8/8/8/8/8/8/8/8 w - e9 0 1", wantErr: true},
		{name: "negative half-move clock", fen: "8/8/8/8/8/8/8/8 w - - -1 1", wantErr: true},
		{name: "non-numeric full-move number", fen: "8/8/8/8/8/8/8/8 w - - 0 x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if tt.wantErr {
				testutil.AssertError(t, err)
				testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidFEN) || stderrors.Is(err, errors.ErrInvalidSquare),
					"error %v should wrap a sentinel", err)
				return
			}
			testutil.AssertNoError(t, err)
			tt.check(t, pos)
		})
	}
}

func TestFormatFENRoundTrip(t *testing.T) {
	// Parsing a canonical FEN and re-serialising must reproduce it exactly.
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Qk - 4 21",
		"8/8/8/4k3/8/4K3/8/8 w - - 0 1",
		"rq1r2k1/6pp/b1nNp3/p1B1Pp2/2P1pP2/8/1P2Q1PP/R4R1K w - f6 0 24",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, FormatFEN(pos), fen)
		})
	}
}

func TestNewInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	testutil.AssertNotNil(t, pos)
	testutil.AssertEqual(t, FormatFEN(pos), InitialFEN)
}
