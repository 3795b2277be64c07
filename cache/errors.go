package cache

import "errors"

// ErrCacheExhausted is returned when an entry cannot fit in the cache even
// after evicting everything else. GlyphCache absorbs it and hands the glyph
// back uncached.
var ErrCacheExhausted = errors.New("cache: entry exceeds cache budget")
