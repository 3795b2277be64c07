package font

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggtext/style"
)

// Sentinel errors for font package.
var (
	// ErrGlyphNotFound is returned when a rune has no glyph in the face.
	ErrGlyphNotFound = errors.New("font: glyph not found")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrUnknownEngine is returned when no engine is registered under a name.
	ErrUnknownEngine = errors.New("font: unknown engine")

	// ErrFontNotFound is returned when a font file cannot be located.
	ErrFontNotFound = errors.New("font: font file not found")
)

// FaceCreationError is returned when a font engine rejects font data.
type FaceCreationError struct {
	Family style.Family
	Bold   bool
	Italic bool
	Engine string
	Err    error
}

func (e *FaceCreationError) Error() string {
	return fmt.Sprintf("font: unable to create face (family: %s, bold: %t, italic: %t, engine: %s): %v",
		e.Family, e.Bold, e.Italic, e.Engine, e.Err)
}

func (e *FaceCreationError) Unwrap() error {
	return e.Err
}
