package boxdraw

import "fmt"

// Light is the shared light-style codec used by the package-level functions
var Light = mustCodec(StyleLight)

func mustCodec(style Style) *Codec {
	c, err := NewCodec(style)
	if err != nil {
		panic(err)
	}
	return c
}

// Stack combines two light glyphs, e.g. Stack('┌', '┴') == '┼'
func Stack(a, b rune) (rune, bool) { return Light.Stack(a, b) }

// StackAll combines any number of light glyphs
func StackAll(glyphs ...rune) (rune, bool) { return Light.StackAll(glyphs...) }

// BitsToChar returns the light glyph for m
func BitsToChar(m Mask) (rune, error) { return Light.BitsToChar(m) }

// MustBitsToChar is BitsToChar for masks known to be valid; it panics otherwise
func MustBitsToChar(m Mask) rune {
	r, err := Light.BitsToChar(m)
	if err != nil {
		panic(fmt.Sprintf("boxdraw: mask must be between 0 and 15 inclusive but got %d", uint8(m)))
	}
	return r
}

// CharToBits returns the mask of a light glyph
func CharToBits(r rune) (Mask, error) { return Light.CharToBits(r) }

// Supports reports whether r is a light glyph or Blank
func Supports(r rune) bool { return Light.Supports(r) }
