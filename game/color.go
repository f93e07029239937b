package game

// Color identifies a stone or a side to move. Empty marks a vacant
// point and doubles as "no role assigned" before configuration.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Opposite returns the other player. Opposite(Empty) is Empty.
func Opposite(c Color) Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}
