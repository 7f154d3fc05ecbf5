// Package boxdraw stacks light box-drawing characters that share a terminal cell.
//
// Each glyph is a 4-bit directional mask, clockwise from the least significant
// bit: Up=1, Right=2, Down=4, Left=8. Stacking ORs the masks of two glyphs and
// looks the result up again:
//
//	boxdraw.Stack('┌', '┴') // '┼', true
//	boxdraw.Stack('┌', 'X') // 0, false
//
// Mask 0 is Blank (a space). Single-direction masks map to the half-line stubs
// ╵ ╶ ╷ ╴ (U+2574..U+2577), so every mask in [0,15] has a glyph and every
// supported glyph decodes back to its mask.
//
// Only the light style is populated. A Codec is immutable and safe for
// concurrent use.
package boxdraw
