package chess

import "strings"

// PieceKind represents the kind of a chess piece, without colour.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind PieceKind = 6
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// fenLetters holds the FEN letter for each piece value: the six white
// pieces first, then the six black, in kind order.
const fenLetters = "PNBRQKpnbrqk"

// pieceSymbols holds the Unicode figurine for each piece value, in the
// same order as fenLetters.
var pieceSymbols = [...]string{"♙", "♘", "♗", "♖", "♕", "♔", "♟", "♞", "♝", "♜", "♛", "♚"}

// Piece combines a colour and a piece kind into a single value.
// Encoded as: kind + colour*6. NoPiece marks an empty square.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

// NewPiece creates a piece from a colour and a kind. Out-of-range
// arguments yield NoPiece.
func NewPiece(c Colour, k PieceKind) Piece {
	if c >= NoColour || k >= NoPieceKind {
		return NoPiece
	}
	return Piece(k) + Piece(c)*6
}

// Kind returns the kind of the piece, or NoPieceKind for NoPiece.
func (p Piece) Kind() PieceKind {
	if p >= NoPiece {
		return NoPieceKind
	}
	return PieceKind(p % 6)
}

// Colour returns the colour of the piece, or NoColour for NoPiece.
func (p Piece) Colour() Colour {
	if p >= NoPiece {
		return NoColour
	}
	return Colour(p / 6)
}

// PieceFromFEN converts a FEN piece letter to a piece: uppercase
// KQRBNP for White, lowercase kqrbnp for Black. Any other rune yields
// NoPiece.
func PieceFromFEN(r rune) Piece {
	i := strings.IndexRune(fenLetters, r)
	if i < 0 {
		return NoPiece
	}
	return Piece(i)
}

// FEN returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '?' for NoPiece.
func (p Piece) FEN() byte {
	if p >= NoPiece {
		return '?'
	}
	return fenLetters[p]
}

// Symbol returns the Unicode figurine for the piece, or "?" for NoPiece.
func (p Piece) Symbol() string {
	if p >= NoPiece {
		return "?"
	}
	return pieceSymbols[p]
}

// String returns a readable name for the piece, such as "White Pawn".
func (p Piece) String() string {
	if p == NoPiece {
		return "NoPiece"
	}
	if p > NoPiece {
		return "Unknown"
	}
	return p.Colour().String() + " " + p.Kind().String()
}
