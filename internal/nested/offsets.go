package nested

import "sort"

// OffsetCache remembers the horizontal scroll position of every section so a
// recycled row can be put back where the user left it.
type OffsetCache struct {
	offsets map[int]Point
}

func NewOffsetCache() *OffsetCache {
	return &OffsetCache{offsets: make(map[int]Point)}
}

// Get returns the cached offset for section, or the zero point.
func (c *OffsetCache) Get(section int) Point {
	return c.offsets[section]
}

func (c *OffsetCache) Lookup(section int) (Point, bool) {
	p, ok := c.offsets[section]
	return p, ok
}

func (c *OffsetCache) Set(section int, p Point) {
	c.offsets[section] = p
}

func (c *OffsetCache) Delete(section int) {
	delete(c.offsets, section)
}

// InvalidateAll drops every entry. Called on full reload because section
// indices may now denote different sections.
func (c *OffsetCache) InvalidateAll() {
	c.offsets = make(map[int]Point)
}

func (c *OffsetCache) Len() int {
	return len(c.offsets)
}

// Shift moves every entry keyed at or above from by delta. Callers delete the
// entry of a removed section before shifting its successors down.
func (c *OffsetCache) Shift(from, delta int) {
	if delta == 0 {
		return
	}
	keys := make([]int, 0, len(c.offsets))
	for k := range c.offsets {
		if k >= from {
			keys = append(keys, k)
		}
	}
	// move in an order that never overwrites an entry still to be moved
	if delta > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	} else {
		sort.Ints(keys)
	}
	for _, k := range keys {
		p := c.offsets[k]
		delete(c.offsets, k)
		c.offsets[k+delta] = p
	}
}
