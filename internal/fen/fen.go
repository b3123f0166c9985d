// Package fen implements the board and side-to-move fields of
// Forsyth-Edwards Notation: decoding them into a chess.Board and
// encoding a chess.Board back into text.
package fen

import (
	"fmt"
	"strings"

	"github.com/griggsjared/chessman/internal/chess"
	"github.com/griggsjared/chessman/internal/errors"
)

// Initial is the FEN for the standard starting position, restricted to
// the two modelled fields.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// Decode parses the board and side-to-move fields of a FEN string into
// a board. Trailing fields (castling availability, en passant target,
// move clocks) are ignored. On failure it returns no board and an
// error wrapping errors.ErrInvalidFEN.
func Decode(s string) (*chess.Board, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return nil, fmt.Errorf("not enough fields: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePlacement(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePlacement parses the piece placement field. FEN lists ranks
// from rank 8 down to rank 1, so group i holds chess rank 8-i.
func parsePlacement(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	// Validate every rank's width before placing anything.
	for i, rank := range ranks {
		if rankWidth(rank) != 8 {
			return fmt.Errorf("rank %d does not expand to 8 squares: %w", 8-i, errors.ErrInvalidFEN)
		}
	}

	for i, rank := range ranks {
		if err := placeRank(board, rank, 7-i); err != nil {
			return err
		}
	}
	return nil
}

// rankWidth returns the number of files a rank group expands to, with
// the digits 1-8 counting as runs of empty squares.
func rankWidth(rank string) int {
	width := 0
	for _, c := range rank {
		if c >= '1' && c <= '8' {
			width += int(c - '0')
		} else {
			width++
		}
	}
	return width
}

// placeRank fills one board rank from its FEN rank group. boardRank is
// the 0-based rank index, so chess rank boardRank+1.
func placeRank(board *chess.Board, rank string, boardRank int) error {
	file := 0
	for _, c := range rank {
		if file > 7 {
			return fmt.Errorf("too many squares in rank %d: %w", boardRank+1, errors.ErrInvalidFEN)
		}
		if c >= '1' && c <= '8' {
			file += int(c - '0')
			continue
		}

		piece := chess.PieceFromFEN(c)
		if piece == chess.NoPiece {
			return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
		}
		sq, err := chess.NewSquare(file, boardRank)
		if err != nil {
			return fmt.Errorf("square out of bounds: %w", errors.ErrInvalidFEN)
		}
		board.SetPieceAt(sq, piece)
		file++
	}
	if file != 8 {
		return fmt.Errorf("rank %d does not end on file 8: %w", boardRank+1, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side-to-move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.SetSideToMove(chess.White)
	case "b":
		board.SetSideToMove(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// Placement returns the piece placement field for the board: ranks 8
// down to 1 separated by '/', with runs of empty squares as digits.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	writePlacement(&sb, board)
	return sb.String()
}

// Encode returns the FEN fields modelled by the board: the piece
// placement and the side to move. Decode(Encode(b)) reproduces b.
func Encode(board *chess.Board) string {
	var sb strings.Builder
	writePlacement(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	return sb.String()
}

// writePlacement writes the piece placement field to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			sq, _ := chess.NewSquare(file, rank)
			piece := board.PieceAt(sq)
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FEN())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side-to-move field to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
