package nested

import (
	"fmt"
	"sort"
)

// fetchCounts asks the data source for the current shape of the grid.
func (c *Collection) fetchCounts() []int {
	ds := c.dataSource
	if ds.NumberOfSections == nil {
		return nil
	}
	n := max(ds.NumberOfSections(c), 0)
	counts := make([]int, n)
	if ds.NumberOfItems == nil {
		return counts
	}
	for s := range counts {
		counts[s] = max(ds.NumberOfItems(c, s), 0)
	}
	return counts
}

// ReloadData rebuilds everything from the data source. Cached row offsets
// and the selection are discarded because section indices may now denote
// different content.
func (c *Collection) ReloadData() {
	c.counts = c.fetchCounts()
	c.offsets.InvalidateAll()
	c.selection.Clear()
	c.focus.clamp(c.counts)
	c.outer.ReloadData()
	c.logf("reload: %d sections", len(c.counts))
}

func checkSections(sections []int, limit int) error {
	seen := make(map[int]bool, len(sections))
	for _, s := range sections {
		if s < 0 || s >= limit {
			return fmt.Errorf("section %d of %d: %w", s, limit, ErrSectionOutOfRange)
		}
		if seen[s] {
			return fmt.Errorf("section %d: %w", s, ErrDuplicateIndex)
		}
		seen[s] = true
	}
	return nil
}

func checkItems(items []Coordinate, counts []int) error {
	seen := make(map[Coordinate]bool, len(items))
	for _, at := range items {
		if at.Section < 0 || at.Section >= len(counts) {
			return fmt.Errorf("item %d/%d: %w", at.Section, at.Item, ErrSectionOutOfRange)
		}
		if at.Item < 0 || at.Item >= counts[at.Section] {
			return fmt.Errorf("item %d/%d of %d: %w", at.Section, at.Item, counts[at.Section], ErrItemOutOfRange)
		}
		if seen[at] {
			return fmt.Errorf("item %d/%d: %w", at.Section, at.Item, ErrDuplicateIndex)
		}
		seen[at] = true
	}
	return nil
}

// ReloadSections refreshes the rows of the given sections. Their cached
// offsets are kept.
func (c *Collection) ReloadSections(sections ...int) error {
	if err := checkSections(sections, len(c.counts)); err != nil {
		return fmt.Errorf("reload sections: %w", err)
	}
	next := c.fetchCounts()
	if len(next) != len(c.counts) {
		return fmt.Errorf("reload sections: %d sections, had %d: %w", len(next), len(c.counts), ErrCountMismatch)
	}
	c.counts = next
	c.selection.clamp(c.counts)
	c.focus.clamp(c.counts)
	for _, s := range sections {
		c.outer.ReloadItems(ToOuterRow(s), 0)
	}
	c.logf("reload sections %v", sections)
	return nil
}

// ReloadItems refreshes single items. Items of rows that are off screen are
// picked up when the row is next shown.
func (c *Collection) ReloadItems(items ...Coordinate) error {
	if err := checkItems(items, c.counts); err != nil {
		return fmt.Errorf("reload items: %w", err)
	}
	for _, at := range items {
		if row, ok := c.row(at.Section); ok {
			row.inner.ReloadItems(0, at.Item)
		}
	}
	return nil
}

// InsertSections tells the collection that the data source gained sections
// at the given final indices.
func (c *Collection) InsertSections(sections ...int) error {
	next := c.fetchCounts()
	if len(next) != len(c.counts)+len(sections) {
		return fmt.Errorf("insert sections: %d sections, expected %d: %w", len(next), len(c.counts)+len(sections), ErrCountMismatch)
	}
	if err := checkSections(sections, len(next)); err != nil {
		return fmt.Errorf("insert sections: %w", err)
	}

	sorted := append([]int(nil), sections...)
	sort.Ints(sorted)
	for _, s := range sorted {
		c.offsets.Shift(s, 1)
		c.selection.insertSection(s)
		c.focus.insertSection(s)
	}
	c.counts = next
	c.outer.ReloadData()
	c.logf("insert sections %v", sorted)
	return nil
}

// DeleteSections tells the collection that sections at the given indices,
// counted before the deletion, are gone.
func (c *Collection) DeleteSections(sections ...int) error {
	if err := checkSections(sections, len(c.counts)); err != nil {
		return fmt.Errorf("delete sections: %w", err)
	}
	next := c.fetchCounts()
	if len(next) != len(c.counts)-len(sections) {
		return fmt.Errorf("delete sections: %d sections, expected %d: %w", len(next), len(c.counts)-len(sections), ErrCountMismatch)
	}

	sorted := append([]int(nil), sections...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, s := range sorted {
		c.offsets.Delete(s)
		c.offsets.Shift(s+1, -1)
		c.selection.deleteSection(s)
		c.focus.deleteSection(s)
	}
	c.counts = next
	c.outer.ReloadData()
	c.logf("delete sections %v", sorted)
	return nil
}

func perSection(items []Coordinate) map[int]int {
	n := make(map[int]int)
	for _, at := range items {
		n[at.Section]++
	}
	return n
}

// InsertItems tells the collection that items were added at the given final
// coordinates. Sections keep their cached offsets.
func (c *Collection) InsertItems(items ...Coordinate) error {
	next := c.fetchCounts()
	if err := c.checkItemDelta(next, perSection(items), 1); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}
	if err := checkItems(items, next); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	sorted := sortedItems(items, false)
	for _, at := range sorted {
		c.selection.insertItem(at)
		c.focus.insertItem(at)
	}
	c.counts = next
	c.reloadRows(items)
	return nil
}

// DeleteItems tells the collection that the items at the given coordinates,
// counted before the deletion, are gone.
func (c *Collection) DeleteItems(items ...Coordinate) error {
	if err := checkItems(items, c.counts); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	next := c.fetchCounts()
	if err := c.checkItemDelta(next, perSection(items), -1); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}

	sorted := sortedItems(items, true)
	for _, at := range sorted {
		c.selection.deleteItem(at)
		c.focus.deleteItem(at)
	}
	c.counts = next
	c.reloadRows(items)
	return nil
}

// checkItemDelta verifies that next differs from the current counts by
// exactly sign*changed[s] items in every section.
func (c *Collection) checkItemDelta(next []int, changed map[int]int, sign int) error {
	if len(next) != len(c.counts) {
		return fmt.Errorf("%d sections, had %d: %w", len(next), len(c.counts), ErrCountMismatch)
	}
	for s := range next {
		if want := c.counts[s] + sign*changed[s]; next[s] != want {
			return fmt.Errorf("section %d has %d items, expected %d: %w", s, next[s], want, ErrCountMismatch)
		}
	}
	return nil
}

func sortedItems(items []Coordinate, descending bool) []Coordinate {
	out := append([]Coordinate(nil), items...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if descending {
			a, b = b, a
		}
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		return a.Item < b.Item
	})
	return out
}

// reloadRows re-lays out the rows touched by an item update and pulls their
// offsets back into range.
func (c *Collection) reloadRows(items []Coordinate) {
	for s := range perSection(items) {
		if row, ok := c.row(s); ok {
			row.inner.ReloadData()
			row.inner.ensureLayout()
			if saved, ok := c.offsets.Lookup(s); ok {
				if clamped := row.inner.clamp(saved); clamped != saved {
					c.offsets.Set(s, clamped)
				}
			}
		}
		c.outer.ReloadItems(ToOuterRow(s), 0)
	}
}
