// Package render prints positions as plain text for diagnostics. The
// output is a letters-and-dots grid with rank 8 at the top, matching the
// orientation of the position grid.
package render

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Board renders the position as an 8x8 grid: FEN letters for pieces,
// '.' for empty squares.
func Board(pos *chess.Position) string {
	return BoardWithHighlights(pos, nil)
}

// BoardWithHighlights renders the position with '*' overlaid on the given
// squares, typically a piece's legal destinations.
func BoardWithHighlights(pos *chess.Position, marks []chess.Square) string {
	marked := make(chess.SquareSet, len(marks))
	for _, sq := range marks {
		marked.Add(sq)
	}

	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{Rank: rank, File: file}
			switch {
			case marked.Contains(sq):
				sb.WriteByte('*')
			case pos.At(sq).IsEmpty():
				sb.WriteByte('.')
			default:
				sb.WriteByte(pos.At(sq).Letter())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
