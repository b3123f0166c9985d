// Package chess provides the core position types: colours, pieces,
// squares, and the board itself.
package chess

import "strings"

// Board represents a chess position: the piece placement for all 64
// squares plus the side to move. Slots hold NoPiece when empty.
type Board struct {
	squares    [64]Piece
	sideToMove Colour
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{sideToMove: White}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	return b
}

// backRank lists the back-rank piece kinds from file a to file h.
var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board with the standard chess starting
// position and White to move.
func NewInitialBoard() *Board {
	b := NewBoard()
	for file, kind := range backRank {
		b.squares[file] = NewPiece(White, kind)
		b.squares[8+file] = NewPiece(White, Pawn)
		b.squares[48+file] = NewPiece(Black, Pawn)
		b.squares[56+file] = NewPiece(Black, kind)
	}
	return b
}

// PieceAt returns the piece on the given square. Empty and invalid
// squares yield NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// SetPieceAt places a piece on the given square, overwriting whatever
// was there. Placing NoPiece clears the square. Invalid squares are
// ignored.
func (b *Board) SetPieceAt(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	b.squares[sq] = p
}

// SideToMove returns the colour whose turn it is.
func (b *Board) SideToMove() Colour {
	return b.sideToMove
}

// SetSideToMove sets the colour whose turn it is.
func (b *Board) SetSideToMove(c Colour) {
	b.sideToMove = c
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same
// squares with the same side to move.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.squares == other.squares && b.sideToMove == other.sideToMove
}

// String renders the board as a grid with rank numbers down the left
// edge and a file legend underneath, pieces as FEN letters and empty
// squares as dots.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			p := b.squares[rank*8+file]
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FEN())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
