// Command ggtext renders, vectorizes, measures and fits styled text.
//
// Usage:
//
//	ggtext [flags] text
//
// The output format follows the -output extension: .png renders pixels,
// .svg writes the outline as an SVG path. Without -output the bounding box
// is printed. With -fit WxH the fitting font size is printed.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/style"
)

func main() {
	var (
		config      = flag.String("config", "", "TOML config file")
		output      = flag.String("output", "", "output file (.png or .svg)")
		size        = flag.Int("size", 0, "font size in points (overrides config)")
		family      = flag.String("family", "", "font family: sans, mono, serif or a font file")
		orientation = flag.Float64("rotate", 0, "orientation in degrees, counter-clockwise")
		justify     = flag.String("justify", "", "horizontal justification: left, center, right")
		fitRect     = flag.String("fit", "", "print the font size that fits WxH pixels")
		verbose     = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	text := strings.ReplaceAll(strings.Join(flag.Args(), " "), `\n`, "\n")

	if *verbose {
		ggtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := &ggtext.Config{}
	if *config != "" {
		var err error
		if cfg, err = ggtext.LoadConfig(*config); err != nil {
			log.Fatal(err)
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}
	e, err := ggtext.New(opts...)
	if err != nil {
		log.Fatal(err)
	}

	s, err := cfg.Style.Apply(style.Default())
	if err != nil {
		log.Fatal(err)
	}
	if *size > 0 {
		s.FontSize = *size
	}
	if *family != "" {
		if f, ok := style.ParseFamily(*family); ok {
			s.Family = f
		} else {
			s.Family, s.FontFile = style.FamilyFile, *family
		}
	}
	if *orientation != 0 {
		s.Orientation = *orientation
	}
	if *justify != "" {
		j, ok := style.ParseJustification(*justify)
		if !ok {
			log.Fatalf("unknown justification %q", *justify)
		}
		s.Justification = j
	}

	if *fitRect != "" {
		var w, h int
		if _, err := fmt.Sscanf(*fitRect, "%dx%d", &w, &h); err != nil {
			log.Fatalf("invalid -fit %q: want WxH", *fitRect)
		}
		fmt.Println(e.FitFontSize(text, s, w, h))
		return
	}

	switch strings.ToLower(filepath.Ext(*output)) {
	case "":
		bbox, err := e.Measure(s, text)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("xmin=%d xmax=%d ymin=%d ymax=%d\n", bbox[0], bbox[1], bbox[2], bbox[3])
	case ".png":
		buf := ggtext.NewPixmap(0, 0)
		dims, err := e.RenderToPixels(s, text, buf)
		if err != nil {
			log.Fatal(err)
		}
		if err := buf.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Text saved to %s (%dx%d)\n", *output, dims[0], dims[1])
	case ".svg":
		p, err := e.TextToPath(s, text)
		if err != nil {
			log.Fatal(err)
		}
		if err := writeSVG(*output, p.SVG(), p.Bounds()); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Outline saved to %s (%d segments)\n", *output, p.Len())
	default:
		log.Fatalf("unsupported output format %q", filepath.Ext(*output))
	}
}
