package cache

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/style"
)

// DefaultMaxFaces is the default FaceCache capacity.
const DefaultMaxFaces = 30

// faceID identifies a cached face. File is only set for style.FamilyFile.
type faceID struct {
	key  style.Key
	file string
}

func (id faceID) String() string {
	return fmt.Sprintf("%08x|%s", uint32(id.key), id.file)
}

// FaceCache is an LRU cache of transformed font faces.
//
// FaceCache is safe for concurrent use. Concurrent misses on the same face
// share a single construction.
type FaceCache struct {
	engine font.Engine
	table  *font.Table
	logger *slog.Logger

	faces *lru.Cache[faceID, *font.TransformedFace]
	group singleflight.Group

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// FaceStats is a snapshot of FaceCache statistics.
type FaceStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
}

// NewFaceCache creates a face cache holding at most maxFaces faces.
// Faces are loaded through engine from table. A maxFaces <= 0 selects
// DefaultMaxFaces; nil engine, table or logger select the defaults.
func NewFaceCache(maxFaces int, engine font.Engine, table *font.Table, logger *slog.Logger) (*FaceCache, error) {
	if maxFaces <= 0 {
		maxFaces = DefaultMaxFaces
	}
	if engine == nil {
		var err error
		if engine, err = font.GetEngine(""); err != nil {
			return nil, err
		}
	}
	if table == nil {
		table = font.DefaultTable()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &FaceCache{engine: engine, table: table, logger: logger}
	faces, err := lru.NewWithEvict(maxFaces, c.onEvict)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	c.faces = faces
	return c, nil
}

func (c *FaceCache) onEvict(id faceID, _ *font.TransformedFace) {
	c.evictions.Add(1)
	c.logger.Debug("face evicted", "key", id.key, "file", id.file)
}

// Engine returns the font engine used to build faces.
func (c *FaceCache) Engine() font.Engine { return c.engine }

// Face returns the face for key. file names the font file and is only
// consulted when the key's family is style.FamilyFile.
func (c *FaceCache) Face(key style.Key, file string) (*font.TransformedFace, error) {
	id := faceID{key: key}
	if key.Family() == style.FamilyFile {
		id.file = file
	}

	if f, ok := c.faces.Get(id); ok {
		c.hits.Add(1)
		return f, nil
	}
	c.misses.Add(1)

	v, err, _ := c.group.Do(id.String(), func() (any, error) {
		// Another caller may have finished the same build.
		if f, ok := c.faces.Peek(id); ok {
			return f, nil
		}
		f, err := c.build(id)
		if err != nil {
			return nil, err
		}
		c.faces.Add(id, f)
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*font.TransformedFace), nil
}

// build resolves the font bytes for id and constructs the face.
func (c *FaceCache) build(id faceID) (*font.TransformedFace, error) {
	s := style.Decode(id.key)
	data, family := c.resolve(s, id.file)

	m := font.Identity
	if s.Rotated() {
		m = font.Rotation(s.Orientation)
	}

	ferr := func(err error) error {
		return &font.FaceCreationError{
			Family: family,
			Bold:   s.Bold,
			Italic: s.Italic,
			Engine: c.engine.Name(),
			Err:    err,
		}
	}
	if data == nil {
		return nil, ferr(fmt.Errorf("%w: no font registered for %s", font.ErrFontNotFound, family))
	}
	f, err := font.NewFace(c.engine, data, m)
	if err != nil {
		return nil, ferr(err)
	}
	return f, nil
}

// resolve returns the font bytes for s and the family they belong to.
func (c *FaceCache) resolve(s style.TextStyle, file string) ([]byte, style.Family) {
	v := font.Variant{Bold: s.Bold, Italic: s.Italic}
	family := s.Family

	if family == style.FamilyFile {
		data, err := font.LoadFile(file)
		if err == nil {
			return data, family
		}
		c.logger.Warn("font file unavailable, using sans", "file", file, "err", err)
		family = style.FamilySans
	}

	if data, ok := c.table.Lookup(family, v); ok {
		return data, family
	}
	if family != style.FamilySans {
		c.logger.Debug("family not registered, using sans", "family", family)
		family = style.FamilySans
		if data, ok := c.table.Lookup(family, v); ok {
			return data, family
		}
	}
	return nil, family
}

// Len returns the number of cached faces.
func (c *FaceCache) Len() int {
	return c.faces.Len()
}

// Stats returns a snapshot of the cache statistics.
func (c *FaceCache) Stats() FaceStats {
	return FaceStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Len:       c.faces.Len(),
	}
}

// Purge drops every cached face.
func (c *FaceCache) Purge() {
	c.faces.Purge()
}
