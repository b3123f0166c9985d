// Package testutil provides shared test utilities for the chessman project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/griggsjared/chessman/internal/chess"
	"github.com/griggsjared/chessman/internal/fen"
)

// MustDecode decodes a FEN string and returns the board.
// It calls t.Fatal if decoding fails. Use this in test setup where a
// malformed position should abort the test.
func MustDecode(t *testing.T, s string) *chess.Board {
	t.Helper()
	board, err := fen.Decode(s)
	if err != nil {
		t.Fatalf("failed to decode test position %q: %v", s, err)
	}
	return board
}

// MustParseSquare parses algebraic square notation and returns the square.
// It calls t.Fatal if parsing fails.
func MustParseSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("failed to parse test square %q: %v", s, err)
	}
	return sq
}
