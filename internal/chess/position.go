package chess

import "slices"

// CastlingRights records the remaining castling options for one side.
// A flag is permanently false once the king or the corresponding rook has
// moved from its start square, or once that rook has been captured there.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Position is the full game state: the board grid plus all chess
// bookkeeping. A Position is owned and mutated by exactly one caller at a
// time; sharing across goroutines requires external serialisation.
type Position struct {
	// Grid holds the board contents, Grid[rank][file] with (0,0) = a8.
	Grid [BoardSize][BoardSize]Piece

	// ToMove is the side with the next move.
	ToMove Colour

	// Castling rights, indexed by Colour.
	Castling [2]CastlingRights

	// En passant target square, valid only for the move immediately
	// following a double pawn push.
	HasEnPassant bool
	EnPassant    Square

	// HalfmoveClock counts half-moves since the last capture or pawn move.
	HalfmoveClock uint

	// MoveNumber is the full-move counter, incremented after Black moves.
	MoveNumber uint

	// Pending promotion square. While set, the position accepts no new
	// moves until the promotion is resolved.
	PendingPromotion bool
	PromotionSquare  Square

	// Captured pieces per capturing side, in capture order.
	Captured [2][]Piece

	// Attacked-square caches per side, recomputed after every mutation.
	// Derived state: never mutated independently of the grid.
	Attacked [2]SquareSet
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		MoveNumber: 1,
		Attacked:   [2]SquareSet{make(SquareSet), make(SquareSet)},
	}
}

// At returns the piece on the square, or the empty piece. Off-board
// squares read as empty.
func (p *Position) At(sq Square) Piece {
	if !sq.Valid() {
		return None
	}
	return p.Grid[sq.Rank][sq.File]
}

// Set places a piece on the square. Off-board squares are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Grid[sq.Rank][sq.File] = piece
	}
}

// Snapshot captures all mutable position state for save/restore. Grids
// and rights copy by value; logs and caches are deep-copied so a restored
// position shares nothing with later mutations.
type Snapshot struct {
	Grid             [BoardSize][BoardSize]Piece
	ToMove           Colour
	Castling         [2]CastlingRights
	HasEnPassant     bool
	EnPassant        Square
	HalfmoveClock    uint
	MoveNumber       uint
	PendingPromotion bool
	PromotionSquare  Square
	Captured         [2][]Piece
	Attacked         [2]SquareSet
}

// Save captures the current state for later restoration.
func (p *Position) Save() Snapshot {
	return Snapshot{
		Grid:             p.Grid,
		ToMove:           p.ToMove,
		Castling:         p.Castling,
		HasEnPassant:     p.HasEnPassant,
		EnPassant:        p.EnPassant,
		HalfmoveClock:    p.HalfmoveClock,
		MoveNumber:       p.MoveNumber,
		PendingPromotion: p.PendingPromotion,
		PromotionSquare:  p.PromotionSquare,
		Captured:         [2][]Piece{slices.Clone(p.Captured[White]), slices.Clone(p.Captured[Black])},
		Attacked:         [2]SquareSet{p.Attacked[White].Clone(), p.Attacked[Black].Clone()},
	}
}

// Restore returns the position to a previously saved state.
func (p *Position) Restore(s Snapshot) {
	p.Grid = s.Grid
	p.ToMove = s.ToMove
	p.Castling = s.Castling
	p.HasEnPassant = s.HasEnPassant
	p.EnPassant = s.EnPassant
	p.HalfmoveClock = s.HalfmoveClock
	p.MoveNumber = s.MoveNumber
	p.PendingPromotion = s.PendingPromotion
	p.PromotionSquare = s.PromotionSquare
	p.Captured = [2][]Piece{slices.Clone(s.Captured[White]), slices.Clone(s.Captured[Black])}
	p.Attacked = [2]SquareSet{s.Attacked[White].Clone(), s.Attacked[Black].Clone()}
}
