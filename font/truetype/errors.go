package truetype

import "errors"

var (
	// ErrInvalidFont reports a structurally broken font file: short data,
	// a table directory pointing outside the file, or a required table
	// too small to hold its fixed fields.
	ErrInvalidFont = errors.New("truetype: invalid font data")

	// ErrMissingTable reports a font without a table this package
	// requires (head, maxp).
	ErrMissingTable = errors.New("truetype: missing required table")

	// ErrGlyphNotFound reports a glyph index outside the font or with a
	// broken location entry.
	ErrGlyphNotFound = errors.New("truetype: glyph not found")

	// ErrInvalidSize reports a non-positive pixel size.
	ErrInvalidSize = errors.New("truetype: size must be positive")
)
