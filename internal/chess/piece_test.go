package chess

import "testing"

func TestColourString(t *testing.T) {
	tests := []struct {
		colour Colour
		want   string
	}{
		{White, "White"},
		{Black, "Black"},
		{NoColour, "NoColour"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.colour.String(); got != tt.want {
				t.Errorf("Colour.String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestColourOpposite(t *testing.T) {
	if got := White.Opposite(); got != Black {
		t.Errorf("White.Opposite() = %v; want Black", got)
	}
	if got := Black.Opposite(); got != White {
		t.Errorf("Black.Opposite() = %v; want White", got)
	}

	t.Run("involution", func(t *testing.T) {
		for _, c := range []Colour{White, Black} {
			if got := c.Opposite().Opposite(); got != c {
				t.Errorf("%v.Opposite().Opposite() = %v; want %v", c, got, c)
			}
		}
	})
}

func TestNewPiece(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		kind   PieceKind
		want   Piece
	}{
		{"white pawn", White, Pawn, WhitePawn},
		{"white king", White, King, WhiteKing},
		{"black pawn", Black, Pawn, BlackPawn},
		{"black queen", Black, Queen, BlackQueen},
		{"black king", Black, King, BlackKing},
		{"no colour", NoColour, Pawn, NoPiece},
		{"no kind", White, NoPieceKind, NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPiece(tt.colour, tt.kind); got != tt.want {
				t.Errorf("NewPiece(%v, %v) = %v; want %v", tt.colour, tt.kind, got, tt.want)
			}
		})
	}
}

// TestPieceKindColour checks that Kind and Colour recover the
// constructor arguments for all twelve pieces.
func TestPieceKindColour(t *testing.T) {
	for _, c := range []Colour{White, Black} {
		for k := Pawn; k < NoPieceKind; k++ {
			p := NewPiece(c, k)
			if p == NoPiece {
				t.Fatalf("NewPiece(%v, %v) = NoPiece; want a valid piece", c, k)
			}
			if got := p.Kind(); got != k {
				t.Errorf("NewPiece(%v, %v).Kind() = %v; want %v", c, k, got, k)
			}
			if got := p.Colour(); got != c {
				t.Errorf("NewPiece(%v, %v).Colour() = %v; want %v", c, k, got, c)
			}
		}
	}

	t.Run("NoPiece sentinels", func(t *testing.T) {
		if got := NoPiece.Kind(); got != NoPieceKind {
			t.Errorf("NoPiece.Kind() = %v; want NoPieceKind", got)
		}
		if got := NoPiece.Colour(); got != NoColour {
			t.Errorf("NoPiece.Colour() = %v; want NoColour", got)
		}
	})
}

func TestPieceFromFEN(t *testing.T) {
	tests := []struct {
		name  string
		input rune
		want  Piece
	}{
		{"white king", 'K', WhiteKing},
		{"white queen", 'Q', WhiteQueen},
		{"white rook", 'R', WhiteRook},
		{"white bishop", 'B', WhiteBishop},
		{"white knight", 'N', WhiteKnight},
		{"white pawn", 'P', WhitePawn},
		{"black king", 'k', BlackKing},
		{"black queen", 'q', BlackQueen},
		{"black rook", 'r', BlackRook},
		{"black bishop", 'b', BlackBishop},
		{"black knight", 'n', BlackKnight},
		{"black pawn", 'p', BlackPawn},
		{"unknown letter", 'Z', NoPiece},
		{"digit", '1', NoPiece},
		{"space", ' ', NoPiece},
		{"slash", '/', NoPiece},
		{"multi-byte rune", 'ŋ', NoPiece},
		{"figurine", '♔', NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PieceFromFEN(tt.input); got != tt.want {
				t.Errorf("PieceFromFEN(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestPieceFENRoundTrip checks that decoding the encoded letter of each
// piece returns the same piece.
func TestPieceFENRoundTrip(t *testing.T) {
	for p := WhitePawn; p < NoPiece; p++ {
		letter := p.FEN()
		if got := PieceFromFEN(rune(letter)); got != p {
			t.Errorf("PieceFromFEN(%q) = %v; want %v", letter, got, p)
		}
	}

	if got := NoPiece.FEN(); got != '?' {
		t.Errorf("NoPiece.FEN() = %q; want '?'", got)
	}
}

func TestPieceSymbol(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{WhiteKing, "♔"},
		{WhitePawn, "♙"},
		{BlackKing, "♚"},
		{BlackPawn, "♟"},
		{NoPiece, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Symbol(); got != tt.want {
				t.Errorf("Piece.Symbol() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPieceString(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{WhitePawn, "White Pawn"},
		{BlackKing, "Black King"},
		{WhiteKnight, "White Knight"},
		{NoPiece, "NoPiece"},
		{Piece(200), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.piece.String(); got != tt.want {
				t.Errorf("Piece.String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPieceKindString(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want string
	}{
		{Pawn, "Pawn"},
		{Knight, "Knight"},
		{Bishop, "Bishop"},
		{Rook, "Rook"},
		{Queen, "Queen"},
		{King, "King"},
		{NoPieceKind, "None"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("PieceKind.String() = %q; want %q", got, tt.want)
			}
		})
	}
}
