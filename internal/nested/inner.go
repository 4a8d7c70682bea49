package nested

// RowCell is the outer-level cell of one section. It owns a horizontal inner
// scroller for its whole life and is only ever repositioned after the first
// configuration.
type RowCell struct {
	inner      *Scroller
	configured bool
}

func (r *RowCell) configure(registry *Registry, p *proxy) {
	if r.configured {
		return
	}
	r.inner = newScroller(InnerRole(0), NewFlowLayout(Horizontal), p, registry)
	r.inner.showsIndicator = false
	r.configured = true
}

func (r *RowCell) Configured() bool { return r.configured }

// Inner returns the row's inner scroller, nil before configuration.
func (r *RowCell) Inner() *Scroller { return r.inner }

func (r *RowCell) Section() int {
	if r.inner == nil {
		return -1
	}
	return r.inner.role.Section
}

func (r *RowCell) Render(size Size) string {
	if r.inner == nil {
		return ""
	}
	r.inner.SetBounds(size)
	return r.inner.Render()
}

// PrepareForReuse stops any drag in flight so the offset reset on the next
// handout is not mistaken for user input.
func (r *RowCell) PrepareForReuse() {
	if r.inner != nil {
		r.inner.dragging = false
	}
}

func (c *Collection) dequeueItem(inner *Scroller, item int) Cell {
	if c.dataSource.ReuseIdentifier == nil {
		return placeholderCell{}
	}
	id := c.dataSource.ReuseIdentifier(c, ToLogical(inner.role.Section, item))
	return inner.DequeueCell(id)
}
