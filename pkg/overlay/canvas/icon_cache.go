package canvas

import "image"

const defaultMaxCacheSize = 8

// IconCache keeps rasterised icons by key and evicts the least recently
// used one when full.
type IconCache struct {
	icons   map[string]*image.RGBA
	order   []string // Least recently used first
	maxSize int
}

func NewIconCache() *IconCache {
	return NewIconCacheWithSize(defaultMaxCacheSize)
}

func NewIconCacheWithSize(maxSize int) *IconCache {
	return &IconCache{
		icons:   make(map[string]*image.RGBA),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *IconCache) Get(key string) *image.RGBA {
	if icon, exists := c.icons[key]; exists {
		c.moveToEnd(key)
		return icon
	}
	return nil
}

func (c *IconCache) Set(key string, icon *image.RGBA) {
	if _, exists := c.icons[key]; exists {
		c.icons[key] = icon
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.icons[key] = icon
	c.order = append(c.order, key)
}

// Len returns the number of cached icons.
func (c *IconCache) Len() int {
	return len(c.order)
}

func (c *IconCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.icons, oldest)
}

// Clear drops every icon.
func (c *IconCache) Clear() {
	clear(c.icons)
	c.order = c.order[:0]
}
