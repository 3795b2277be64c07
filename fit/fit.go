// Package fit finds the font size at which text fills a target rectangle.
package fit

import (
	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/layout"
	"github.com/gogpu/ggtext/style"
)

// MaxSize bounds the estimate and the upward search.
const MaxSize = 200

// Fit returns the largest font size, starting from s.FontSize, at which
// the bounding box of text fits within targetW x targetH pixels.
//
// The size is first estimated by assuming the box grows linearly with the
// font size, then stepped by one point until the box fits. Fit returns 0
// if either target dimension is not positive and -1 if the text is empty
// or layout fails. The result is 0 when even a one point font does not fit.
func Fit(reg *cache.Registry, text []rune, s style.TextStyle, targetW, targetH, dpi int) int {
	if targetW <= 0 || targetH <= 0 {
		return 0
	}
	if len(text) == 0 {
		return -1
	}

	size := s.FontSize
	w, h, ok := measure(reg, text, s, size, dpi)
	if !ok {
		return -1
	}

	if w != 0 && h != 0 {
		scale := min(float64(targetW)/float64(w), float64(targetH)/float64(h))
		size = min(max(int(float64(size)*scale), 1), MaxSize)
		if w, h, ok = measure(reg, text, s, size, dpi); !ok {
			return -1
		}
	}

	for w < targetW && h < targetH && size < MaxSize {
		size++
		if w, h, ok = measure(reg, text, s, size, dpi); !ok {
			return -1
		}
	}

	for (w > targetW || h > targetH) && size > 0 {
		size--
		if size == 0 {
			break
		}
		if w, h, ok = measure(reg, text, s, size, dpi); !ok {
			return -1
		}
	}
	return size
}

// measure returns the bounding box extent of text at size.
func measure(reg *cache.Registry, text []rune, s style.TextStyle, size, dpi int) (w, h int, ok bool) {
	res, err := layout.Layout(reg, s.WithSize(size), text, dpi)
	if err != nil {
		reg.Logger().Debug("fit: layout failed", "size", size, "err", err)
		return 0, 0, false
	}
	return res.BBox[1] - res.BBox[0], res.BBox[3] - res.BBox[2], true
}
