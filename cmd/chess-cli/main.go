// chess-cli is an interactive host for the chess rules engine: it reads
// coordinate moves from stdin, applies them through the engine and renders
// the position after every turn.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/render"
)

var (
	startFEN    = flag.String("fen", "", "starting position as a FEN string (default: standard start)")
	autoPromote = flag.Bool("auto-promote", false, "promote pawns to queens automatically")
)

func main() {
	flag.Parse()

	game, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-cli: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("commands: <from> <to> | moves <square> | captures | fen | undo | quit")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Print(render.Board(game.Position()))
		fmt.Printf("[%s] %v to move> ", game.State(), game.SideToMove())

		if game.State() == engine.AwaitingPromotion {
			if !promptPromotion(game, scanner) {
				return
			}
			continue
		}
		if game.State().GameOver() {
			fmt.Println("game over")
			return
		}

		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !runCommand(game, line) {
			return
		}
	}
}

// newGame builds the game from the -fen flag or the standard start.
func newGame() (*engine.Game, error) {
	if *startFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(*startFEN)
}

// runCommand executes one input line. Returns false to quit.
func runCommand(game *engine.Game, line string) bool {
	args := strings.Fields(strings.ToLower(line))

	switch args[0] {
	case "quit", "exit":
		return false

	case "fen":
		fmt.Println(game.FEN())

	case "undo":
		if err := game.Undo(); err != nil {
			fmt.Println(err)
		}

	case "captures":
		for _, side := range []chess.Colour{chess.White, chess.Black} {
			fmt.Printf("%v: ", side)
			for _, piece := range game.Captures(side) {
				fmt.Printf("%c ", piece.Letter())
			}
			fmt.Println()
		}

	case "moves":
		if len(args) != 2 {
			fmt.Println("usage: moves <square>")
			break
		}
		showMoves(game, args[1])

	default:
		playMove(game, args)
	}
	return true
}

// showMoves renders the board with the square's legal destinations marked.
func showMoves(game *engine.Game, notation string) {
	from, err := chess.ParseSquare(notation)
	if err != nil {
		fmt.Println(err)
		return
	}
	moves, err := game.LegalMoves(from)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(render.BoardWithHighlights(game.Position(), moves))
}

// playMove parses "<from> <to>" (or "e2e4") and applies the move.
func playMove(game *engine.Game, args []string) {
	var fromStr, toStr string
	switch {
	case len(args) == 2:
		fromStr, toStr = args[0], args[1]
	case len(args) == 1 && len(args[0]) == 4:
		fromStr, toStr = args[0][:2], args[0][2:]
	default:
		fmt.Println("expected a move like: e2 e4")
		return
	}

	from, err := chess.ParseSquare(fromStr)
	if err != nil {
		fmt.Println(err)
		return
	}
	to, err := chess.ParseSquare(toStr)
	if err != nil {
		fmt.Println(err)
		return
	}

	ok, err := game.Move(from, to, *autoPromote)
	if err != nil {
		fmt.Println(err)
		return
	}
	if !ok {
		fmt.Println("illegal move")
	}
}

// promptPromotion reads a promotion choice until one parses. Returns
// false if stdin closed.
func promptPromotion(game *engine.Game, scanner *bufio.Scanner) bool {
	fmt.Print("promote to [q r b n k p]: ")
	if !scanner.Scan() {
		return false
	}
	choice := strings.TrimSpace(strings.ToLower(scanner.Text()))
	if len(choice) != 1 {
		fmt.Println("enter a single piece letter")
		return true
	}

	piece, err := chess.PieceFromLetter(choice[0])
	if err != nil {
		fmt.Println(err)
		return true
	}
	if err := game.Promote(piece.Kind); err != nil {
		fmt.Println(err)
	}
	return true
}
