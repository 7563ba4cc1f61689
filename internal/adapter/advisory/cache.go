package advisory

import (
	"sync"
	"time"

	"github.com/couchcryptid/storm-cone-engine/internal/domain"
)

// cachedAdvisory is a parsed advisory plus the inferred storm name, pinned to
// the source file's modification time.
type cachedAdvisory struct {
	advisory domain.Advisory
	name     string
	modTime  time.Time
}

// advisoryCache is a thread-safe LRU cache of parsed advisories keyed by file
// path. A stale modification time counts as a miss so updated files are
// re-parsed.
type advisoryCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value cachedAdvisory
	prev  *entry
	next  *entry
}

func newAdvisoryCache(maxEntries int) *advisoryCache {
	return &advisoryCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *advisoryCache) get(key string, modTime time.Time) (cachedAdvisory, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.value.modTime.Equal(modTime) {
		return cachedAdvisory{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *advisoryCache) put(key string, value cachedAdvisory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *advisoryCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *advisoryCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *advisoryCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *advisoryCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
