package cache

// lruEntry is a node in a doubly-linked LRU list.
// The entry stores its key for O(1) deletion from the owning map.
type lruEntry[K comparable, V any] struct {
	key   K
	value V
	size  int
	prev  *lruEntry[K, V]
	next  *lruEntry[K, V]
}

// lruList is a doubly-linked list ordered by recency.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used entry, the tail the least.
type lruList[K comparable, V any] struct {
	head *lruEntry[K, V]
	tail *lruEntry[K, V]
	len  int
	size int
}

// Len returns the number of entries in the list.
func (l *lruList[K, V]) Len() int {
	return l.len
}

// Size returns the summed size of all entries.
func (l *lruList[K, V]) Size() int {
	return l.size
}

// PushFront inserts a new entry as the most recently used.
func (l *lruList[K, V]) PushFront(key K, value V, size int) *lruEntry[K, V] {
	e := &lruEntry[K, V]{key: key, value: value, size: size}
	l.link(e)
	return e
}

// MoveToFront marks e as the most recently used.
func (l *lruList[K, V]) MoveToFront(e *lruEntry[K, V]) {
	if e == nil || e == l.head {
		return
	}
	l.unlink(e)
	l.link(e)
}

// Remove removes e from the list.
func (l *lruList[K, V]) Remove(e *lruEntry[K, V]) {
	if e == nil {
		return
	}
	l.unlink(e)
}

// Back returns the least recently used entry, or nil if the list is empty.
func (l *lruList[K, V]) Back() *lruEntry[K, V] {
	return l.tail
}

// Clear removes all entries.
func (l *lruList[K, V]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
	l.size = 0
}

func (l *lruList[K, V]) link(e *lruEntry[K, V]) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.len++
	l.size += e.size
}

func (l *lruList[K, V]) unlink(e *lruEntry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev = nil
	e.next = nil
	l.len--
	l.size -= e.size
}
