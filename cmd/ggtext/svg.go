package main

import (
	"fmt"
	"os"

	"github.com/gogpu/ggtext/outline"
)

// writeSVG writes a single-path SVG document. Path data is already Y-down.
func writeSVG(name, d string, b outline.Rect) error {
	if b.Empty() {
		b = outline.Rect{}
	}
	doc := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">
<path d="%s" fill="black" fill-rule="nonzero"/>
</svg>
`, b.MinX, -b.MaxY, b.Width(), b.Height(), d)
	return os.WriteFile(name, []byte(doc), 0o644)
}
