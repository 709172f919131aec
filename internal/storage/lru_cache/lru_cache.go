package lru_cache

import (
	"container/list"
	"sync"
	"time"
)

type CacheItem[K comparable, V any] struct {
	Key       K
	Value     V
	Priority  int
	expiresAt time.Time
}

/*
*
Cache based on map of elements, linked list, map of priorities
when touch an elem move it on the top of linked list
when need to find an element to delete - searches for elem with max priority,
so low priority entries (warmed ones) outlive the ones loaded on demand
expired elements are dropped on read
*/
type LRUCache[K comparable, V any] struct {
	capacity      int
	ttl           time.Duration
	items         map[K]*list.Element
	order         *list.List
	priorityCount map[int]int
	maxPriority   int
	mu            sync.Mutex
	now           func() time.Time
}

// NewLRUCache returns a cache of capacity elements living ttl each, 0 ttl never expires
func NewLRUCache[K comparable, V any](capacity int, ttl time.Duration) *LRUCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache[K, V]{
		capacity:      capacity,
		ttl:           ttl,
		items:         make(map[K]*list.Element, capacity),
		order:         list.New(),
		priorityCount: make(map[int]int),
		maxPriority:   0,
		now:           time.Now,
	}
}

// edit field of max priority
func (c *LRUCache[K, V]) updateMaxPriorityOnRemoval(removedPriority int) {
	c.priorityCount[removedPriority]--
	if c.priorityCount[removedPriority] == 0 {
		delete(c.priorityCount, removedPriority)
		if removedPriority == c.maxPriority {
			newMax := 0
			for prio := range c.priorityCount {
				if prio > newMax {
					newMax = prio
				}
			}
			c.maxPriority = newMax
		}
	}
}

// edit priority map
func (c *LRUCache[K, V]) updatePriorityCountOnAddition(priority int) {
	c.priorityCount[priority]++
	if priority > c.maxPriority {
		c.maxPriority = priority
	}
}

func (c *LRUCache[K, V]) expired(item *CacheItem[K, V]) bool {
	return !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt)
}

func (c *LRUCache[K, V]) remove(elem *list.Element) {
	item := elem.Value.(*CacheItem[K, V])
	c.order.Remove(elem)
	delete(c.items, item.Key)
	c.updateMaxPriorityOnRemoval(item.Priority)
}

// get an elem
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	item := elem.Value.(*CacheItem[K, V])
	if c.expired(item) {
		c.remove(elem)
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return item.Value, true
}

// get all live keys, most recently used first
func (c *LRUCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]K, 0, len(c.items))
	for e := c.order.Front(); e != nil; e = e.Next() {
		item := e.Value.(*CacheItem[K, V])
		if c.expired(item) {
			continue
		}
		result = append(result, item.Key)
	}
	return result
}

// sync set value
func (c *LRUCache[K, V]) Set(key K, value V, priority int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*CacheItem[K, V])

		//if Priority changed we need to change our Priority map and max Priority
		if item.Priority != priority {
			c.updateMaxPriorityOnRemoval(item.Priority)
			item.Priority = priority
			c.updatePriorityCountOnAddition(priority)
		}
		item.Value = value
		item.expiresAt = expiresAt
		c.order.MoveToFront(elem)
		return
	}

	//if our linked list fulfilled need to find an elem to delete
	if c.order.Len() >= c.capacity {
		c.evict()
	}

	newItem := &CacheItem[K, V]{
		Key:       key,
		Value:     value,
		Priority:  priority,
		expiresAt: expiresAt,
	}
	elem := c.order.PushFront(newItem)
	c.items[key] = elem
	c.updatePriorityCountOnAddition(priority)
}

// evict drops an expired elem if there is one, otherwise the least recently used one of max priority
func (c *LRUCache[K, V]) evict() {
	var candidate *list.Element
	for e := c.order.Back(); e != nil; e = e.Prev() {
		item := e.Value.(*CacheItem[K, V])
		if c.expired(item) {
			candidate = e
			break
		}
		if candidate == nil && item.Priority == c.maxPriority {
			candidate = e
		}
	}
	if candidate != nil {
		c.remove(candidate)
	}
}

// delete an elem
func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.remove(elem)
	}
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
