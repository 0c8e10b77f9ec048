package game

import "math"

// Heading is one of the four cardinal movement directions, or none.
type Heading uint8

const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

// cardinalHeadings is the fixed priority order used for greedy direction
// selection tie-breaks and input latching. Do not reorder: classic pursuit
// behaviour depends on this exact sequence.
var cardinalHeadings = [4]Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// Vector returns the unit grid delta for this heading.
func (h Heading) Vector() (dx, dy float64) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. HeadingNone reverses to itself.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	default:
		return HeadingNone
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	case HeadingNone:
		return "none"
	default:
		return "unknown"
	}
}

// tileOf converts a fractional coordinate to its containing tile index.
func tileOf(v float64) int {
	return int(math.Floor(v))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
