package boxdraw

import "fmt"

// Codec converts between masks and the glyphs of one style
type Codec struct {
	style  Style
	glyphs *[16]rune
	masks  map[rune]Mask
}

// NewCodec builds the encode and decode tables for a style
func NewCodec(style Style) (*Codec, error) {
	table, ok := styleTables[style]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(style))
	}

	masks := make(map[rune]Mask, len(table))
	for i, r := range table {
		masks[r] = Mask(i)
	}

	return &Codec{
		style:  style,
		glyphs: table,
		masks:  masks,
	}, nil
}

func (c *Codec) Style() Style { return c.style }

// BitsToChar returns the glyph for a mask. Masks above MaskAll fail instead of being truncated.
func (c *Codec) BitsToChar(m Mask) (rune, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidMask, uint8(m), uint8(MaskAll))
	}
	return c.glyphs[m], nil
}

// CharToBits returns the mask that encodes to r
func (c *Codec) CharToBits(r rune) (Mask, error) {
	m, ok := c.masks[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q (%U)", ErrUnsupportedGlyph, r, r)
	}
	return m, nil
}

// Supports reports whether r decodes under this codec
func (c *Codec) Supports(r rune) bool {
	_, ok := c.masks[r]
	return ok
}

// Stack draws a and b in the same cell. False if either glyph is unsupported.
func (c *Codec) Stack(a, b rune) (rune, bool) {
	ma, ok := c.masks[a]
	if !ok {
		return 0, false
	}
	mb, ok := c.masks[b]
	if !ok {
		return 0, false
	}
	return c.glyphs[ma.Union(mb)], true
}

// StackAll folds Stack over glyphs, starting from Blank
func (c *Codec) StackAll(glyphs ...rune) (rune, bool) {
	var acc Mask
	for _, r := range glyphs {
		m, ok := c.masks[r]
		if !ok {
			return 0, false
		}
		acc |= m
	}
	return c.glyphs[acc], true
}

// Glyphs returns the table in mask order
func (c *Codec) Glyphs() []rune {
	out := make([]rune, len(c.glyphs))
	copy(out, c.glyphs[:])
	return out
}
