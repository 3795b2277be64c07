package font

import (
	"fmt"
	"sort"
	"sync"
)

// engineRegistry holds registered font engines.
// The default engine is "sfnt" (golang.org/x/image/font/sfnt).
var (
	engineMu       sync.RWMutex
	engineRegistry = map[string]Engine{
		SFNTEngineName:     sfntEngine{},
		TrueTypeEngineName: truetypeEngine{},
		GoTextEngineName:   gotextEngine{},
	}
)

// DefaultEngineName is the name of the default engine.
const DefaultEngineName = SFNTEngineName

// RegisterEngine registers a font engine under its name, replacing any
// engine previously registered under that name.
func RegisterEngine(e Engine) {
	engineMu.Lock()
	engineRegistry[e.Name()] = e
	engineMu.Unlock()
}

// GetEngine returns the engine registered under name. An empty name
// selects the default engine.
func GetEngine(name string) (Engine, error) {
	if name == "" {
		name = DefaultEngineName
	}
	engineMu.RLock()
	e, ok := engineRegistry[name]
	engineMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return e, nil
}

// Engines returns the names of all registered engines, sorted.
func Engines() []string {
	engineMu.RLock()
	names := make([]string, 0, len(engineRegistry))
	for name := range engineRegistry {
		names = append(names, name)
	}
	engineMu.RUnlock()
	sort.Strings(names)
	return names
}

// kerningProbes are glyph pairs that any kerned Latin font adjusts.
var kerningProbes = [][2]rune{
	{'A', 'V'}, {'A', 'T'}, {'A', 'W'}, {'A', 'Y'}, {'T', 'o'}, {'T', 'a'},
	{'V', 'a'}, {'W', 'a'}, {'Y', 'o'}, {'L', 'T'}, {'P', '.'}, {'F', ','},
	{'r', '.'}, {'y', '.'},
}

// probeKerning reports whether the face kerns any probe pair at the
// given size.
func probeKerning(f Face, ppem int) bool {
	for _, pair := range kerningProbes {
		l, r := f.GlyphIndex(pair[0]), f.GlyphIndex(pair[1])
		if l == 0 || r == 0 {
			continue
		}
		if f.Kern(toFixed(float64(ppem)), l, r) != 0 {
			return true
		}
	}
	return false
}
