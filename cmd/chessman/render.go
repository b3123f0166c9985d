// render.go - Terminal rendering of board positions
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/griggsjared/chessman/internal/chess"
)

// Piece colours for the board grid. fatih/color drops the escape codes
// when colours are disabled (-no-color, or stdout not a terminal).
var (
	whitePiece = color.New(color.FgHiCyan, color.Bold)
	blackPiece = color.New(color.FgHiMagenta, color.Bold)
)

// writePosition writes the board grid followed by the side to move.
func writePosition(w io.Writer, board *chess.Board, figurines bool) {
	writeBoard(w, board, figurines)
	fmt.Fprintf(w, "Side to move: %v\n", board.SideToMove())
}

// writeBoard writes the rank-numbered grid with a file legend, ranks 8
// down to 1. Pieces render as FEN letters, or as figurines when asked.
func writeBoard(w io.Writer, board *chess.Board, figurines bool) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq, _ := chess.NewSquare(file, rank)
			fmt.Fprintf(w, "%s ", renderPiece(board.PieceAt(sq), figurines))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// renderPiece returns the display cell for one square.
func renderPiece(p chess.Piece, figurines bool) string {
	if p == chess.NoPiece {
		return "."
	}
	cell := string(p.FEN())
	if figurines {
		cell = p.Symbol()
	}
	if p.Colour() == chess.White {
		return whitePiece.Sprint(cell)
	}
	return blackPiece.Sprint(cell)
}
