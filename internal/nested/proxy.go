package nested

// proxy sits between both levels of scrollers and the consumer. It rewrites
// scroller-local indices into logical coordinates, applies the engine's own
// overrides and falls back to layout defaults for anything the consumer
// leaves unimplemented.
type proxy struct {
	c *Collection
}

func (p *proxy) logical(s *Scroller, section, item int) Coordinate {
	if s.role.Kind == RoleOuter {
		return ToLogical(section, 0)
	}
	return ToLogical(s.role.Section, item)
}

func (p *proxy) section(s *Scroller, section int) int {
	if s.role.Kind == RoleOuter {
		return section
	}
	return s.role.Section
}

func (p *proxy) paging(section int) bool {
	ds := p.c.dataSource
	return ds.PagingEnabled != nil && ds.PagingEnabled(p.c, section)
}

func (p *proxy) numberOfSections(s *Scroller) int {
	if s.role.Kind == RoleOuter {
		return len(p.c.counts)
	}
	return 1
}

func (p *proxy) numberOfItems(s *Scroller, section int) int {
	if s.role.Kind == RoleOuter {
		return 1
	}
	return p.c.itemCount(s.role.Section)
}

// sizeForItem sizes outer rows from the first item of their section; only
// the height is taken, rows always span the outer viewport.
func (p *proxy) sizeForItem(s *Scroller, section, item int) Size {
	d := p.c.delegate
	size := s.layout.ItemSize
	if s.role.Kind == RoleOuter {
		size.Width = s.viewSize().Width
		if d.SizeForItem != nil {
			size.Height = d.SizeForItem(p.c, ToLogical(section, 0)).Height
		}
		return size
	}
	if d.SizeForItem != nil {
		size = d.SizeForItem(p.c, p.logical(s, section, item))
	}
	return size
}

// insetForSection splits the consumer's inset between levels: the outer
// level owns top and bottom, the inner level owns left and right. Paging
// rows are kept flush.
func (p *proxy) insetForSection(s *Scroller, section int) Insets {
	insets := s.layout.SectionInset
	logical := p.section(s, section)
	if d := p.c.delegate; d.InsetForSection != nil {
		client := d.InsetForSection(p.c, logical)
		if s.role.Kind == RoleOuter {
			insets.Top, insets.Bottom = client.Top, client.Bottom
		} else {
			insets.Left, insets.Right = client.Left, client.Right
		}
	}
	if s.role.Kind == RoleOuter || p.paging(logical) {
		insets.Left, insets.Right = 0, 0
	}
	return insets
}

func (p *proxy) lineSpacing(s *Scroller, section int) int {
	spacing := s.layout.LineSpacing
	if s.role.Kind == RoleOuter {
		return spacing
	}
	if p.paging(s.role.Section) {
		return 0
	}
	if d := p.c.delegate; d.LineSpacing != nil {
		spacing = d.LineSpacing(p.c, s.role.Section)
	}
	return spacing
}

func (p *proxy) headerSize(s *Scroller, section int) Size {
	if d := p.c.delegate; s.role.Kind == RoleOuter && d.HeaderSize != nil {
		return d.HeaderSize(p.c, section)
	}
	return Size{}
}

func (p *proxy) footerSize(s *Scroller, section int) Size {
	if d := p.c.delegate; s.role.Kind == RoleOuter && d.FooterSize != nil {
		return d.FooterSize(p.c, section)
	}
	return Size{}
}

func (p *proxy) cellForItem(s *Scroller, section, item int) Cell {
	if s.role.Kind == RoleOuter {
		return p.c.configureRow(s, section)
	}
	return p.c.dequeueItem(s, item)
}

func (p *proxy) supplementaryView(s *Scroller, kind string, section int) Cell {
	d := p.c.delegate
	if s.role.Kind != RoleOuter || d.SupplementaryView == nil {
		return placeholderCell{}
	}
	if v := d.SupplementaryView(p.c, kind, section); v != nil {
		return v
	}
	return placeholderCell{}
}

// willDisplay is where a row's inner scroller becomes interactive again, once
// its offset has been restored.
func (p *proxy) willDisplay(s *Scroller, cell Cell, section, item int) {
	if s.role.Kind == RoleOuter {
		if row, ok := cell.(*RowCell); ok && row.inner != nil {
			row.inner.SetScrollEnabled(true)
		}
		return
	}
	if d := p.c.delegate; d.WillDisplay != nil {
		d.WillDisplay(p.c, cell, p.logical(s, section, item))
	}
}

func (p *proxy) cellState(s *Scroller, section, item int) CellState {
	if s.role.Kind == RoleOuter {
		return CellState{}
	}
	at := p.logical(s, section, item)
	var state CellState
	if sel, ok := p.c.selection.Get(); ok && sel == at {
		state.Selected = true
	}
	if f, ok := p.c.focus.Get(); ok && f == at && p.canFocus(s.role) {
		state.Focused = true
	}
	return state
}

// canFocus denies focus to the outer level; rows are containers, not items.
func (p *proxy) canFocus(role ViewportRole) bool {
	return role.Kind != RoleOuter
}

// didScroll records inner offsets while the row is interactive and rejects
// programmatic moves while it is not, then forwards the event.
func (p *proxy) didScroll(s *Scroller) {
	d := p.c.delegate
	if s.role.Kind == RoleOuter {
		if d.DidScrollVertically != nil {
			d.DidScrollVertically(p.c, s.offset)
		}
		return
	}

	section := s.role.Section
	saved := p.c.offsets.Get(section)
	if s.scrollEnabled {
		p.c.offsets.Set(section, s.offset)
	} else if s.offset != saved {
		// the nested call reports the restored offset
		s.SetContentOffset(saved)
		return
	}
	if d.DidScrollHorizontally != nil {
		d.DidScrollHorizontally(p.c, s.offset, section)
	}
}

func (p *proxy) willEndDragging(s *Scroller, velocity Velocity, target *Point) {
	d := p.c.delegate
	if s.role.Kind == RoleOuter {
		if d.WillEndDraggingVertically != nil {
			d.WillEndDraggingVertically(p.c, velocity, target)
		}
		return
	}
	if d.WillEndDraggingHorizontally != nil {
		d.WillEndDraggingHorizontally(p.c, velocity, target, s.role.Section)
	}
}

func (p *proxy) didSelect(role ViewportRole, item int) {
	if role.Kind == RoleOuter {
		return
	}
	at := ToLogical(role.Section, item)
	p.c.selection.Set(at)
	if d := p.c.delegate; d.DidSelect != nil {
		d.DidSelect(p.c, at)
	}
}

func (p *proxy) didDeselect(role ViewportRole, item int) {
	if role.Kind == RoleOuter {
		return
	}
	p.c.selection.Clear()
	if d := p.c.delegate; d.DidDeselect != nil {
		d.DidDeselect(p.c, ToLogical(role.Section, item))
	}
}
