package style

import "sync"

// KeyTable maps keys back to the styles they were derived from.
// It is safe for concurrent use.
type KeyTable struct {
	mu     sync.RWMutex
	styles map[Key]TextStyle
}

// NewKeyTable creates an empty key table.
func NewKeyTable() *KeyTable {
	return &KeyTable{styles: make(map[Key]TextStyle)}
}

// Remember derives the key of s and records s under it. The first style
// recorded for a key is kept; later styles with the same key only return
// the key.
func (t *KeyTable) Remember(s TextStyle) Key {
	k := Encode(s)

	t.mu.RLock()
	_, ok := t.styles[k]
	t.mu.RUnlock()
	if ok {
		return k
	}

	t.mu.Lock()
	if _, ok := t.styles[k]; !ok {
		t.styles[k] = s
	}
	t.mu.Unlock()
	return k
}

// Lookup returns the style recorded for k.
func (t *KeyTable) Lookup(k Key) (TextStyle, bool) {
	t.mu.RLock()
	s, ok := t.styles[k]
	t.mu.RUnlock()
	return s, ok
}

// Len returns the number of recorded keys.
func (t *KeyTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.styles)
}

// Reset forgets every recorded key.
func (t *KeyTable) Reset() {
	t.mu.Lock()
	t.styles = make(map[Key]TextStyle)
	t.mu.Unlock()
}
