package chess

import (
	"fmt"

	"github.com/griggsjared/chessman/internal/errors"
)

// Square represents a square on the chess board (0-63).
// Squares are numbered rank-major: index = rank*8 + file, so that
// A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from a file and a rank (both 0-indexed).
// A file or rank outside 0-7 yields NoSquare and an error.
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "file %d, rank %d", file, rank)
	}
	return Square(rank*8 + file), nil
}

// SquareFromIndex creates a square from a rank-major array index.
// An index outside 0-63 yields NoSquare and an error.
func SquareFromIndex(index int) (Square, error) {
	if index < 0 || index > 63 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "index %d", index)
	}
	return Square(index), nil
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}

	return Square(rank*8 + file), nil
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Index returns the square's position in a rank-major 64-slot array.
func (sq Square) Index() int {
	return int(sq)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
// NoSquare renders as "-".
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}
