package font

import (
	"fmt"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggtext/style"
)

// Variant indexes the four faces of a family.
type Variant struct {
	Bold   bool
	Italic bool
}

// Table holds font file bytes indexed by family, bold and italic.
// It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	fonts map[style.Family]*[2][2][]byte
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{fonts: make(map[style.Family]*[2][2][]byte)}
}

var (
	defaultTableOnce sync.Once
	defaultTable     *Table
)

// DefaultTable returns the table of embedded fonts:
//   - FamilySans: Go Regular, Bold, Italic and Bold Italic
//   - FamilyMono: Go Mono in the same four variants
//   - FamilySerif: Latin Modern Roman 10 in the same four variants
//
// The returned table is shared; use Clone before registering more fonts.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		t := NewTable()
		t.SetFamily(style.FamilySans, goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF)
		t.SetFamily(style.FamilyMono, gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF)
		t.SetFamily(style.FamilySerif, lmroman10regular.TTF, lmroman10bold.TTF, lmroman10italic.TTF, lmroman10bolditalic.TTF)
		defaultTable = t
	})
	return defaultTable
}

// Set registers the bytes of one face.
func (t *Table) Set(f style.Family, v Variant, data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	faces, ok := t.fonts[f]
	if !ok {
		faces = new([2][2][]byte)
		t.fonts[f] = faces
	}
	faces[b2i(v.Bold)][b2i(v.Italic)] = data
}

// SetFamily registers all four faces of a family.
func (t *Table) SetFamily(f style.Family, regular, bold, italic, boldItalic []byte) {
	t.Set(f, Variant{}, regular)
	t.Set(f, Variant{Bold: true}, bold)
	t.Set(f, Variant{Italic: true}, italic)
	t.Set(f, Variant{Bold: true, Italic: true}, boldItalic)
}

// Lookup returns the bytes registered for a face.
func (t *Table) Lookup(f style.Family, v Variant) ([]byte, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	faces, ok := t.fonts[f]
	if !ok {
		return nil, false
	}
	data := faces[b2i(v.Bold)][b2i(v.Italic)]
	return data, len(data) > 0
}

// Has reports whether any face of family f is registered.
func (t *Table) Has(f style.Family) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.fonts[f]
	return ok
}

// Clone returns an independent copy of the table. Font bytes are shared.
func (t *Table) Clone() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := NewTable()
	for f, faces := range t.fonts {
		cp := *faces
		c.fonts[f] = &cp
	}
	return c
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// LoadFile reads a font file. If name is not an existing file it is
// looked up in the system font directories (for example "DejaVuSans.ttf"
// or "Arial").
func LoadFile(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrFontNotFound)
	}
	path := name
	if _, err := os.Stat(path); err != nil {
		found, ferr := findfont.Find(name)
		if ferr != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrFontNotFound, name, ferr)
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read %q: %w", path, err)
	}
	return data, nil
}
