package boxdraw

import "github.com/gdamore/tcell/v2"

// Style selects a glyph table. Masks and stacking are style independent.
type Style uint8

const (
	StyleLight Style = iota
)

func (s Style) String() string {
	switch s {
	case StyleLight:
		return "light"
	}
	return "unknown"
}

// Blank is the glyph for MaskNone in every style
const Blank = ' '

// Single-direction light stubs, no tcell equivalent
const (
	lightLeftStub  = '╴' // U+2574
	lightUpStub    = '╵' // U+2575
	lightRightStub = '╶' // U+2576
	lightDownStub  = '╷' // U+2577
)

// lightLUT maps mask to light box character
var lightLUT = [16]rune{
	0:  Blank,              // Isolated
	1:  lightUpStub,        // N
	2:  lightRightStub,     // E
	3:  tcell.RuneLLCorner, // N+E └
	4:  lightDownStub,      // S
	5:  tcell.RuneVLine,    // N+S │
	6:  tcell.RuneULCorner, // E+S ┌
	7:  tcell.RuneLTee,     // N+E+S ├
	8:  lightLeftStub,      // W
	9:  tcell.RuneLRCorner, // N+W ┘
	10: tcell.RuneHLine,    // E+W ─
	11: tcell.RuneBTee,     // N+E+W ┴
	12: tcell.RuneURCorner, // S+W ┐
	13: tcell.RuneRTee,     // N+S+W ┤
	14: tcell.RuneTTee,     // E+S+W ┬
	15: tcell.RunePlus,     // All ┼
}

// styleTables registers the glyph table of each populated style
var styleTables = map[Style]*[16]rune{
	StyleLight: &lightLUT,
}
