package cache

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/style"
)

// Default GlyphCache budgets.
const (
	// DefaultMaxGlyphs is the default maximum number of cached glyphs.
	DefaultMaxGlyphs = 600

	// DefaultMaxGlyphBytes is the default maximum of resident glyph bytes.
	DefaultMaxGlyphBytes = 300000 * 600
)

// GlyphKey uniquely identifies a cached glyph.
type GlyphKey struct {
	// Style is the face key: family, bold, italic and orientation.
	Style style.Key

	// File is the font file for style.FamilyFile, empty otherwise.
	File string

	// PPEM is the pixel size in 26.6 fixed point.
	PPEM fixed.Int26_6

	// Rune is the character.
	Rune rune

	// Form is the requested representation.
	Form font.Form
}

// GlyphCacheConfig holds the GlyphCache budgets.
type GlyphCacheConfig struct {
	// MaxBytes bounds the summed Glyph.ByteSize of resident glyphs.
	// Default: DefaultMaxGlyphBytes
	MaxBytes int

	// MaxGlyphs bounds the number of resident glyphs.
	// Default: DefaultMaxGlyphs
	MaxGlyphs int
}

// GlyphStats is a snapshot of GlyphCache statistics.
type GlyphStats struct {
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Insertions uint64
	Bytes      int
	Len        int
}

// GlyphCache is a byte- and count-bounded LRU cache of glyphs.
//
// GlyphCache is safe for concurrent use. A single mutex guards the map
// and the recency list; hits reorder under the same lock.
type GlyphCache struct {
	faces  *FaceCache
	config GlyphCacheConfig
	logger *slog.Logger

	mu      sync.Mutex
	entries map[GlyphKey]*lruEntry[GlyphKey, *font.Glyph]
	lru     lruList[GlyphKey, *font.Glyph]

	hits       atomic.Uint64
	misses     atomic.Uint64
	evictions  atomic.Uint64
	insertions atomic.Uint64
}

// NewGlyphCache creates a glyph cache that builds glyphs from faces.
func NewGlyphCache(faces *FaceCache, config GlyphCacheConfig, logger *slog.Logger) *GlyphCache {
	if config.MaxBytes <= 0 {
		config.MaxBytes = DefaultMaxGlyphBytes
	}
	if config.MaxGlyphs <= 0 {
		config.MaxGlyphs = DefaultMaxGlyphs
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GlyphCache{
		faces:   faces,
		config:  config,
		logger:  logger,
		entries: make(map[GlyphKey]*lruEntry[GlyphKey, *font.Glyph]),
	}
}

// Config returns the cache budgets.
func (c *GlyphCache) Config() GlyphCacheConfig {
	return c.config
}

// Glyph returns the glyph for r in the given form. It returns an error
// wrapping font.ErrGlyphNotFound when the face has no glyph for r.
func (c *GlyphCache) Glyph(key style.Key, file string, ppem fixed.Int26_6, r rune, form font.Form) (*font.Glyph, error) {
	k := GlyphKey{Style: key, PPEM: ppem, Rune: r, Form: form}
	if key.Family() == style.FamilyFile {
		k.File = file
	}

	if g, ok := c.get(k); ok {
		c.hits.Add(1)
		return g, nil
	}
	c.misses.Add(1)

	face, err := c.faces.Face(key, file)
	if err != nil {
		return nil, err
	}
	g, err := face.Glyph(ppem, r, form)
	if err != nil {
		return nil, err
	}

	cached, err := c.insert(k, g)
	if errors.Is(err, ErrCacheExhausted) {
		c.logger.Debug("glyph not cached", "rune", string(r), "bytes", g.ByteSize(), "err", err)
	}
	return cached, nil
}

func (c *GlyphCache) get(k GlyphKey) (*font.Glyph, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	c.lru.MoveToFront(e)
	return e.value, true
}

// insert stores g under k, evicting least recently used glyphs until both
// budgets hold. If g alone exceeds the byte budget it is returned with
// ErrCacheExhausted and nothing is evicted. If k was inserted concurrently
// the resident glyph wins.
func (c *GlyphCache) insert(k GlyphKey, g *font.Glyph) (*font.Glyph, error) {
	size := g.ByteSize()
	if size > c.config.MaxBytes {
		return g, ErrCacheExhausted
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[k]; ok {
		c.lru.MoveToFront(e)
		return e.value, nil
	}

	for c.lru.Len() > 0 &&
		(c.lru.Size()+size > c.config.MaxBytes || c.lru.Len()+1 > c.config.MaxGlyphs) {
		old := c.lru.Back()
		c.lru.Remove(old)
		delete(c.entries, old.key)
		c.evictions.Add(1)
	}

	c.entries[k] = c.lru.PushFront(k, g, size)
	c.insertions.Add(1)
	return g, nil
}

// Contains reports whether k is resident without touching its recency.
func (c *GlyphCache) Contains(k GlyphKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[k]
	return ok
}

// Stats returns a snapshot of the cache statistics.
func (c *GlyphCache) Stats() GlyphStats {
	c.mu.Lock()
	bytes, n := c.lru.Size(), c.lru.Len()
	c.mu.Unlock()

	return GlyphStats{
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Evictions:  c.evictions.Load(),
		Insertions: c.insertions.Load(),
		Bytes:      bytes,
		Len:        n,
	}
}

// Purge drops every cached glyph.
func (c *GlyphCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[GlyphKey]*lruEntry[GlyphKey, *font.Glyph])
	c.lru.Clear()
}
