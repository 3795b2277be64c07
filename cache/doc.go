// Package cache holds the bounded caches shared by layout and rendering.
//
// # FaceCache
//
// FaceCache maps a style key (plus a font file for the File family) to a
// font face with the style's rotation already applied. Faces are built on
// first use from the embedded font table or from disk, and the least
// recently used face is dropped when the cache is full.
//
// # GlyphCache
//
// GlyphCache maps (style key, font file, pixel size, rune, form) to an
// immutable glyph. It is bounded both by resident bytes and by glyph count:
//
//	reg, err := cache.NewRegistry(cache.Config{})
//	g, err := reg.Glyphs.Glyph(key, "", ppem, 'A', font.FormBitmap)
//
// # Registry
//
// Registry bundles both caches with the style key table. It is the only
// shared state in the module and is passed explicitly to layout, raster,
// path and fit.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use.
package cache
