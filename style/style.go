// Package style describes how a piece of text looks: font family and
// face, size, orientation, colors, shadow, frame and justification.
//
// It also provides the compact Key used to identify the font face a style
// resolves to, and the KeyTable mapping keys back to full styles.
package style

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"
)

// ErrInvalidStyle is returned by Validate for unusable styles.
var ErrInvalidStyle = errors.New("style: invalid text style")

// Family identifies a font family.
type Family int

const (
	// FamilySans is the default sans-serif family.
	FamilySans Family = iota

	// FamilyMono is the monospaced family.
	FamilyMono

	// FamilySerif is the serif family.
	FamilySerif

	// FamilyFile loads the face from TextStyle.FontFile.
	FamilyFile
)

const (
	familyMin  = FamilySans
	familyBits = 4
	familyMax  = familyMin + (1<<familyBits - 1)
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilySans:
		return "Sans"
	case FamilyMono:
		return "Mono"
	case FamilySerif:
		return "Serif"
	case FamilyFile:
		return "File"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Encodable reports whether the family fits the key's family field.
// Families beyond the built-in ones are valid extension slots.
func (f Family) Encodable() bool {
	return f >= familyMin && f <= familyMax
}

// ParseFamily parses a family name. Common aliases of the built-in
// families are accepted.
func ParseFamily(s string) (Family, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sans", "sans-serif", "arial", "default", "":
		return FamilySans, true
	case "mono", "monospace", "courier":
		return FamilyMono, true
	case "serif", "times":
		return FamilySerif, true
	case "file":
		return FamilyFile, true
	}
	return FamilySans, false
}

// Justification is the horizontal text justification.
type Justification int

const (
	// JustifyLeft aligns text to the anchor's left (default).
	JustifyLeft Justification = iota
	// JustifyCenter centers text on the anchor.
	JustifyCenter
	// JustifyRight aligns text to the anchor's right.
	JustifyRight
)

// String returns the justification name.
func (j Justification) String() string {
	switch j {
	case JustifyLeft:
		return "Left"
	case JustifyCenter:
		return "Center"
	case JustifyRight:
		return "Right"
	default:
		return unknownStr
	}
}

// ParseJustification parses "left", "center" or "right".
func ParseJustification(s string) (Justification, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return JustifyLeft, true
	case "center", "centre":
		return JustifyCenter, true
	case "right":
		return JustifyRight, true
	}
	return JustifyLeft, false
}

// VerticalJustification is the vertical text justification.
type VerticalJustification int

const (
	// JustifyBottom puts the anchor at the bottom of the text (default).
	JustifyBottom VerticalJustification = iota
	// JustifyMiddle centers text vertically on the anchor.
	JustifyMiddle
	// JustifyTop puts the anchor at the top of the text.
	JustifyTop
)

// String returns the vertical justification name.
func (j VerticalJustification) String() string {
	switch j {
	case JustifyBottom:
		return "Bottom"
	case JustifyMiddle:
		return "Middle"
	case JustifyTop:
		return "Top"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// ParseVerticalJustification parses "bottom", "middle" or "top".
// "center" is accepted for "middle".
func ParseVerticalJustification(s string) (VerticalJustification, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom", "":
		return JustifyBottom, true
	case "middle", "center", "centre":
		return JustifyMiddle, true
	case "top":
		return JustifyTop, true
	}
	return JustifyBottom, false
}

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
)

// Bytes converts the color to 8-bit channels. Components are truncated,
// not rounded, and clamped to [0, 255].
func (c RGB) Bytes() [3]uint8 {
	return [3]uint8{channel(c.R), channel(c.G), channel(c.B)}
}

// channel converts a [0, 1] component to an 8-bit channel.
func channel(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}

// Alpha converts an opacity in [0, 1] to an 8-bit alpha.
func Alpha(opacity float64) uint8 {
	return channel(opacity)
}

// TextStyle describes how text is laid out and rendered.
//
// Only Family, Bold, Italic and Orientation select the font face; the
// remaining fields are applied during layout and compositing.
type TextStyle struct {
	Family Family
	// FontFile is a font file path or a system font name, used when
	// Family is FamilyFile.
	FontFile string
	Bold     bool
	Italic   bool
	// FontSize is the size in points.
	FontSize int
	// Orientation is the counter-clockwise rotation in degrees.
	Orientation float64

	Color   RGB
	Opacity float64

	Shadow       bool
	ShadowOffset image.Point
	ShadowColor  RGB

	Justification         Justification
	VerticalJustification VerticalJustification

	// LineSpacing multiplies the line height between consecutive lines.
	LineSpacing float64
	// LineOffset shifts the first baseline down by this many pixels.
	LineOffset float64

	BackgroundColor   RGB
	BackgroundOpacity float64

	Frame      bool
	FrameWidth int
	FrameColor RGB

	// UseTightBoundingBox measures the line height from the text itself
	// instead of a reference string. It applies to single-line text only.
	UseTightBoundingBox bool
}

// Default returns the default text style: 12pt white sans-serif text,
// left and bottom justified, single spaced.
func Default() TextStyle {
	return TextStyle{
		Family:       FamilySans,
		FontSize:     12,
		Color:        White,
		Opacity:      1,
		ShadowOffset: image.Pt(1, -1),
		ShadowColor:  Black,
		LineSpacing:  1,
		FrameWidth:   1,
		FrameColor:   White,
	}
}

// Limits accepted by Validate.
const (
	MaxLineSpacing = 1000
	MaxLineOffset  = 1 << 24
)

// Validate reports whether the style can be laid out.
func (s TextStyle) Validate() error {
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: font size %d must be positive", ErrInvalidStyle, s.FontSize)
	}
	if s.LineSpacing < 0 || math.IsNaN(s.LineSpacing) {
		return fmt.Errorf("%w: line spacing %v must not be negative", ErrInvalidStyle, s.LineSpacing)
	}
	if s.LineSpacing > MaxLineSpacing {
		return fmt.Errorf("%w: line spacing %v exceeds %d", ErrInvalidStyle, s.LineSpacing, MaxLineSpacing)
	}
	if math.IsNaN(s.LineOffset) || math.Abs(s.LineOffset) > MaxLineOffset {
		return fmt.Errorf("%w: line offset %v out of range", ErrInvalidStyle, s.LineOffset)
	}
	if math.IsNaN(s.Orientation) || math.IsInf(s.Orientation, 0) {
		return fmt.Errorf("%w: orientation %v is not finite", ErrInvalidStyle, s.Orientation)
	}
	if s.FrameWidth < 0 {
		return fmt.Errorf("%w: frame width %d must not be negative", ErrInvalidStyle, s.FrameWidth)
	}
	return nil
}

// WithSize returns a copy of s with the given font size.
func (s TextStyle) WithSize(size int) TextStyle {
	s.FontSize = size
	return s
}

// Unrotated returns a copy of s with zero orientation.
func (s TextStyle) Unrotated() TextStyle {
	s.Orientation = 0
	return s
}

// Rotated reports whether the style has a non-negligible orientation.
func (s TextStyle) Rotated() bool {
	return math.Abs(s.Orientation) > 1e-5
}

// HasBackground reports whether a background would be visible.
func (s TextStyle) HasBackground() bool {
	return Alpha(s.BackgroundOpacity) > 0
}

// HasFrame reports whether a frame would be drawn.
func (s TextStyle) HasFrame() bool {
	return s.Frame && s.FrameWidth > 0
}

// Padding returns the number of pixels reserved on each side of the text
// for the background and frame.
func (s TextStyle) Padding() int {
	switch {
	case s.HasFrame():
		return 1 + s.FrameWidth
	case s.HasBackground():
		return 2
	default:
		return 0
	}
}
