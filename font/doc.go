// Package font is the boundary to the font engines that parse font files
// and produce glyph outlines.
//
// Three engines are registered by default:
//   - "sfnt" (default) uses golang.org/x/image/font/sfnt and reads both
//     TrueType and CFF fonts
//   - "truetype" uses github.com/golang/freetype/truetype and keeps the
//     native on/off-curve point tags of glyf outlines
//   - "gotext" uses github.com/go-text/typesetting/font
//
// A Face produced by an engine is wrapped in a TransformedFace, which
// applies the rotation of a text style and renders glyphs either as an
// 8-bit coverage bitmap (rasterized with golang.org/x/image/vector) or as
// tagged outline contours.
//
// Font bytes come from a Table indexed by family, bold and italic.
// DefaultTable embeds the Go fonts for the sans-serif and monospace families
// and Latin Modern Roman for the serif family. Fonts outside the table are
// loaded with LoadFile, which also searches the system font directories.
package font
