package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
	NoColour Colour = 2
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColour"
	}
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}
