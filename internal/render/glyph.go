package render

import "growfield/internal/field"

// DefaultPitch is the on-screen size of one grid cell in glyph mode.
const DefaultPitch = 15

// Glyph returns the character drawn for an entity kind.
func Glyph(kind field.Kind) string {
	switch kind {
	case field.KindHeart:
		return "H"
	case field.KindVein:
		return "v"
	case field.KindZyg:
		return "z"
	default:
		return " "
	}
}
