// Package ggtext measures, rasterizes and vectorizes styled text.
//
// # Overview
//
// ggtext is a Pure Go text engine for labels and annotations. It lays out
// multi-line text with a single style, renders it into an RGBA pixmap with
// optional shadow, background and frame, converts it to a vector path, and
// finds the font size that fits a rectangle.
//
// # Quick Start
//
//	import "github.com/gogpu/ggtext"
//
//	e, err := ggtext.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := style.Default()
//	s.FontSize = 24
//	s.Justification = style.JustifyCenter
//
//	buf := ggtext.NewPixmap(0, 0)
//	dims, err := e.RenderToPixels(s, "Hello\nWorld", buf)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = buf.SavePNG("hello.png")
//
// # Coordinates
//
// Bounding boxes are {xmin, xmax, ymin, ymax} in pixels relative to the
// anchor point, with Y pointing up. Pixmaps use Y pointing down; row 0 is
// the top of the text block.
//
// # Fonts
//
// Three families are embedded: Sans (Go), Mono (Go Mono) and Serif (Latin
// Modern Roman). FamilyFile loads TextStyle.FontFile, which may be a path or
// a system font name. Faces are loaded by a font engine selected with
// WithFontEngine: "sfnt" (golang.org/x/image), "truetype"
// (github.com/golang/freetype) or "gotext" (github.com/go-text/typesetting).
//
// # Caching
//
// Each Engine owns a face cache keyed by style.Key and a glyph cache bounded
// by bytes and count. See package cache.
//
// # Configuration
//
// Engines are configured with functional options or a TOML file:
//
//	cfg, err := ggtext.LoadConfig("ggtext.toml")
//	opts, err := cfg.Options()
//	e, err := ggtext.New(opts...)
//
// # Logging
//
// ggtext is silent by default. SetLogger installs a log/slog logger that
// receives family substitutions, skipped glyphs and cache evictions at
// debug level and font file fallbacks at warn level.
//
// # Thread Safety
//
// An Engine is safe for concurrent use. Pixmaps are not.
package ggtext
