package nested

const rowIdentifier = "nested.row"

// outerTemplates resolves the outer level's only cell type, the row, and
// defers supplementary views to the shared registry.
type outerTemplates struct {
	c *Collection
}

func (t outerTemplates) itemRegistration(id string) (registration, bool) {
	if id != rowIdentifier {
		return registration{}, false
	}
	return registration{template: t.c.newRow}, true
}

func (t outerTemplates) supplementaryRegistration(kind, id string) (registration, bool) {
	return t.c.registry.supplementaryRegistration(kind, id)
}

func (c *Collection) newRow() Cell {
	c.rowAllocations++
	return &RowCell{}
}

// configureRow hands a row to section. Structure is wired once per row; every
// handout disables interaction, clears the previous section's position and
// restores this section's cached one. willDisplay re-enables interaction.
func (c *Collection) configureRow(outer *Scroller, section int) Cell {
	row, ok := outer.DequeueCell(rowIdentifier).(*RowCell)
	if !ok {
		return placeholderCell{}
	}
	row.configure(c.registry, c.proxy)

	inner := row.inner
	inner.SetScrollEnabled(false)
	inner.SetSection(section)
	inner.SetContentOffset(Point{})
	inner.SetPagingEnabled(c.proxy.paging(section))
	if a, ok := outer.layout.ItemAttributes(section, 0); ok {
		inner.SetBounds(a.Frame.Size())
	}
	inner.ReloadData()
	inner.ensureLayout()
	// the section may have shrunk since the offset was cached
	if saved, ok := c.offsets.Lookup(section); ok {
		clamped := inner.clamp(saved)
		if clamped != saved {
			c.offsets.Set(section, clamped)
		}
		inner.SetContentOffset(clamped)
	}
	return row
}

// row returns the realized row of section, if it is on screen.
func (c *Collection) row(section int) (*RowCell, bool) {
	cell, ok := c.outer.CellForItem(ToOuterRow(section), 0)
	if !ok {
		return nil, false
	}
	row, ok := cell.(*RowCell)
	if !ok || row.inner == nil {
		return nil, false
	}
	return row, true
}
