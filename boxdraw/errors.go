package boxdraw

import "errors"

// Sentinel errors. Returned values wrap these with the offending input; branch with errors.Is.
var (
	// ErrUnsupportedGlyph is returned when a rune is not in the codec's glyph table
	ErrUnsupportedGlyph = errors.New("boxdraw: unsupported glyph")

	// ErrInvalidMask is returned for masks above MaskAll
	ErrInvalidMask = errors.New("boxdraw: invalid mask")

	// ErrUnknownStyle is returned by NewCodec for a style without a glyph table
	ErrUnknownStyle = errors.New("boxdraw: unknown style")
)
