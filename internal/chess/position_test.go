package chess

import "testing"

func TestPositionAtSet(t *testing.T) {
	pos := NewPosition()
	e4 := Square{Rank: 4, File: 4}

	if !pos.At(e4).IsEmpty() {
		t.Error("new position should be empty")
	}

	pos.Set(e4, Piece{Knight, White})
	if pos.At(e4) != (Piece{Knight, White}) {
		t.Errorf("At(e4) = %v", pos.At(e4))
	}

	// Off-board access is inert.
	off := Square{Rank: -1, File: 0}
	pos.Set(off, Piece{Queen, Black})
	if !pos.At(off).IsEmpty() {
		t.Error("off-board At should read empty")
	}
}

func TestSnapshotRestore(t *testing.T) {
	pos := NewPosition()
	e4 := Square{Rank: 4, File: 4}
	d5 := Square{Rank: 3, File: 3}

	pos.Set(e4, Piece{Pawn, White})
	pos.Castling[White] = CastlingRights{Kingside: true, Queenside: true}
	pos.HasEnPassant = true
	pos.EnPassant = Square{Rank: 2, File: 3}
	pos.HalfmoveClock = 12
	pos.MoveNumber = 7
	pos.Captured[White] = append(pos.Captured[White], Piece{Knight, Black})
	pos.Attacked[White].Add(d5)

	saved := pos.Save()

	// Mutate everything the snapshot covers.
	pos.Set(e4, None)
	pos.Set(d5, Piece{Queen, Black})
	pos.ToMove = Black
	pos.Castling[White] = CastlingRights{}
	pos.HasEnPassant = false
	pos.HalfmoveClock = 0
	pos.MoveNumber = 8
	pos.Captured[White] = append(pos.Captured[White], Piece{Rook, Black})
	pos.PendingPromotion = true
	pos.PromotionSquare = e4
	pos.Attacked[White] = make(SquareSet)

	pos.Restore(saved)

	if pos.At(e4) != (Piece{Pawn, White}) || !pos.At(d5).IsEmpty() {
		t.Error("grid not restored")
	}
	if pos.ToMove != White {
		t.Error("turn not restored")
	}
	if pos.Castling[White] != (CastlingRights{Kingside: true, Queenside: true}) {
		t.Error("castling rights not restored")
	}
	if !pos.HasEnPassant || pos.EnPassant != (Square{Rank: 2, File: 3}) {
		t.Error("en passant not restored")
	}
	if pos.HalfmoveClock != 12 || pos.MoveNumber != 7 {
		t.Error("clocks not restored")
	}
	if pos.PendingPromotion {
		t.Error("pending promotion not restored")
	}
	if len(pos.Captured[White]) != 1 || pos.Captured[White][0] != (Piece{Knight, Black}) {
		t.Errorf("capture log not restored: %v", pos.Captured[White])
	}
	if !pos.Attacked[White].Contains(d5) {
		t.Error("attack cache not restored")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	pos := NewPosition()
	pos.Captured[Black] = append(pos.Captured[Black], Piece{Pawn, White})
	pos.Attacked[Black].Add(Square{Rank: 1, File: 1})

	saved := pos.Save()

	// Later mutations must not leak into the saved copy.
	pos.Captured[Black] = append(pos.Captured[Black], Piece{Queen, White})
	pos.Attacked[Black].Add(Square{Rank: 2, File: 2})

	if len(saved.Captured[Black]) != 1 {
		t.Errorf("snapshot capture log mutated: %v", saved.Captured[Black])
	}
	if saved.Attacked[Black].Contains(Square{Rank: 2, File: 2}) {
		t.Error("snapshot attack set mutated")
	}
}
