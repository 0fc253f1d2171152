package cache

import (
	"container/list"
	"sync"
)

// NamespaceLRU is a namespace-based LRU cache of rendered documents
type NamespaceLRU struct {
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	mutex    sync.Mutex
}

type entry struct {
	namespace string
	key       string
	value     []byte
}

// NewNamespaceLRU creates a new namespace-based LRU cache with specified capacity.
// A capacity below one disables caching: Set becomes a no-op.
func NewNamespaceLRU(capacity int) *NamespaceLRU {
	return &NamespaceLRU{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
	}
}

func compositeKey(namespace, key string) string {
	return namespace + ":" + key
}

// Set adds or updates a value in the cache under a namespace.
// The value is copied, callers may reuse their buffer.
func (c *NamespaceLRU) Set(namespace, key string, value []byte) {
	if c.capacity < 1 {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	stored := append([]byte(nil), value...)
	ck := compositeKey(namespace, key)

	if element, exists := c.items[ck]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*entry).value = stored
		return
	}

	element := c.queue.PushFront(&entry{
		namespace: namespace,
		key:       key,
		value:     stored,
	})
	c.items[ck] = element

	for c.queue.Len() > c.capacity {
		c.evict()
	}
}

// Get retrieves a value by namespace and key and marks it recently used.
// The returned slice must not be modified.
func (c *NamespaceLRU) Get(namespace, key string) ([]byte, bool) {
	// MoveToFront mutates the queue, so a read lock is not enough here
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[compositeKey(namespace, key)]
	if !exists {
		return nil, false
	}

	c.queue.MoveToFront(element)
	return element.Value.(*entry).value, true
}

// Invalidate removes an item from the cache by namespace and key
func (c *NamespaceLRU) Invalidate(namespace, key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ck := compositeKey(namespace, key)
	if element, exists := c.items[ck]; exists {
		c.queue.Remove(element)
		delete(c.items, ck)
	}
}

// InvalidateNamespace removes all items from the specified namespace
func (c *NamespaceLRU) InvalidateNamespace(namespace string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for ck, element := range c.items {
		if element.Value.(*entry).namespace == namespace {
			c.queue.Remove(element)
			delete(c.items, ck)
		}
	}
}

// Clear empties the cache
func (c *NamespaceLRU) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string]*list.Element)
	c.queue = list.New()
}

// Size returns the current number of items in the cache
func (c *NamespaceLRU) Size() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.queue.Len()
}

// evict removes the least recently used item from the cache
func (c *NamespaceLRU) evict() {
	element := c.queue.Back()
	if element == nil {
		return
	}

	c.queue.Remove(element)
	e := element.Value.(*entry)
	delete(c.items, compositeKey(e.namespace, e.key))
}
