// Package nested virtualizes a vertical list of sections in which every
// section is its own horizontally scrolling row, and presents the pair as one
// grid addressed by (section, item).
package nested

import (
	"io"
	"log"
)

// Collection is the engine. The outer scroller shows one row per section;
// each row hosts an inner scroller showing that section's items. All methods
// must be called from the goroutine driving the UI.
type Collection struct {
	dataSource DataSource
	delegate   Delegate

	registry  *Registry
	offsets   *OffsetCache
	selection Selection
	focus     Selection
	counts    []int

	outer *Scroller
	proxy *proxy

	logger         *log.Logger
	rowAllocations int
}

type Option func(*Collection)

func WithLogger(l *log.Logger) Option {
	return func(c *Collection) {
		c.logger = l
	}
}

// WithLayout replaces the outer layout object. Its axis is forced vertical.
func WithLayout(l *FlowLayout) Option {
	return func(c *Collection) {
		c.SetLayout(l)
	}
}

// WithScrollIndicator draws a vertical indicator along the right edge.
func WithScrollIndicator() Option {
	return func(c *Collection) {
		c.outer.SetShowsIndicator(true)
	}
}

func New(ds DataSource, d Delegate, opts ...Option) *Collection {
	c := &Collection{
		dataSource: ds,
		delegate:   d,
		registry:   NewRegistry(),
		offsets:    NewOffsetCache(),
		logger:     log.New(io.Discard, "", 0),
	}
	c.proxy = &proxy{c: c}
	c.outer = newScroller(OuterRole(), NewFlowLayout(Vertical), c.proxy, outerTemplates{c: c})
	for _, opt := range opts {
		opt(c)
	}
	c.counts = c.fetchCounts()
	return c
}

func (c *Collection) SetDataSource(ds DataSource) {
	c.dataSource = ds
	c.ReloadData()
}

func (c *Collection) SetDelegate(d Delegate) {
	c.delegate = d
	c.outer.ReloadData()
}

func (c *Collection) RegisterItem(id string, t Template) {
	c.registry.RegisterItem(id, t)
}

func (c *Collection) RegisterSupplementary(kind, id string, t Template) {
	c.registry.RegisterSupplementary(kind, id, t)
}

// DequeueSupplementaryView is meant to be called from the delegate's
// SupplementaryView hook. Sections outside the current counts get a
// placeholder.
func (c *Collection) DequeueSupplementaryView(kind, id string, section int) Cell {
	if section < 0 || section >= len(c.counts) {
		c.outer.pending = nil
		c.logf("dequeue %s %q for missing section %d", kind, id, section)
		return placeholderCell{}
	}
	return c.outer.DequeueSupplementary(kind, id)
}

func (c *Collection) Offsets() *OffsetCache { return c.offsets }

func (c *Collection) SetSize(width, height int) {
	c.outer.SetBounds(Size{Width: width, Height: height})
}

func (c *Collection) Size() Size { return c.outer.Bounds() }

// ViewSize is the area left for rows once the scroll indicator is drawn.
func (c *Collection) ViewSize() Size { return c.outer.viewSize() }

// LayoutIfNeeded realizes the rows that are currently visible and the items
// visible inside each of them.
func (c *Collection) LayoutIfNeeded() {
	c.outer.LayoutIfNeeded()
	for _, k := range c.outer.visibleItems() {
		if row, ok := c.row(k.section); ok {
			row.inner.LayoutIfNeeded()
		}
	}
}

// Render draws the visible part of the grid.
func (c *Collection) Render() string {
	return c.outer.Render()
}

func (c *Collection) NumberOfSections() int { return len(c.counts) }

func (c *Collection) NumberOfItems(section int) int { return c.itemCount(section) }

func (c *Collection) itemCount(section int) int {
	if section < 0 || section >= len(c.counts) {
		return 0
	}
	return c.counts[section]
}

func (c *Collection) valid(at Coordinate) bool {
	return at.Section >= 0 && at.Section < len(c.counts) && at.Item >= 0 && at.Item < c.counts[at.Section]
}

// CellForItem returns the cell displaying at, or false when it is not
// currently realized.
func (c *Collection) CellForItem(at Coordinate) (Cell, bool) {
	if !c.valid(at) {
		return nil, false
	}
	row, ok := c.row(at.Section)
	if !ok {
		return nil, false
	}
	return row.inner.CellForItem(0, at.Item)
}

func (c *Collection) SupplementaryView(kind string, section int) (Cell, bool) {
	if section < 0 || section >= len(c.counts) {
		return nil, false
	}
	return c.outer.SupplementaryView(kind, section)
}

// Row exposes the realized row of a section.
func (c *Collection) Row(section int) (*RowCell, bool) {
	return c.row(section)
}

// VisibleItems lists every realized item in grid order.
func (c *Collection) VisibleItems() []Coordinate {
	var out []Coordinate
	for _, rk := range c.outer.visibleItems() {
		row, ok := c.row(rk.section)
		if !ok {
			continue
		}
		for _, ik := range row.inner.visibleItems() {
			out = append(out, ToLogical(rk.section, ik.item))
		}
	}
	return out
}

func (c *Collection) SelectedItems() []Coordinate {
	return c.selection.Items()
}

// SelectItem selects at as if the user had picked it in its row.
func (c *Collection) SelectItem(at Coordinate) bool {
	if !c.valid(at) {
		return false
	}
	c.proxy.didSelect(InnerRole(at.Section), at.Item)
	return true
}

func (c *Collection) DeselectItem(at Coordinate) bool {
	sel, ok := c.selection.Get()
	if !ok || sel != at {
		return false
	}
	c.proxy.didDeselect(InnerRole(at.Section), at.Item)
	return true
}

// SetFocusedItem moves keyboard focus. Only items can take focus.
func (c *Collection) SetFocusedItem(at Coordinate) bool {
	if !c.valid(at) || !c.proxy.canFocus(InnerRole(at.Section)) {
		return false
	}
	c.focus.Set(at)
	return true
}

func (c *Collection) FocusedItem() (Coordinate, bool) {
	return c.focus.Get()
}

func (c *Collection) ClearFocus() {
	c.focus.Clear()
}

// ScrollToItem brings at into view in two steps: the section's row is
// aligned to the top of the outer viewport and laid out, then the item is
// aligned inside the row. Terminal frames are discrete, so animated moves
// land immediately.
func (c *Collection) ScrollToItem(at Coordinate, pos ScrollPosition, animated bool) bool {
	if !c.valid(at) {
		return false
	}
	if !c.outer.ScrollToItem(ToOuterRow(at.Section), 0, AlignStart) {
		return false
	}
	c.outer.LayoutIfNeeded()
	row, ok := c.row(at.Section)
	if !ok {
		return false
	}
	c.logf("scroll to %d/%d (%s)", at.Section, at.Item, pos)
	return row.inner.ScrollToItem(0, at.Item, pos)
}

// RevealItem scrolls the minimum needed on both levels to show at.
func (c *Collection) RevealItem(at Coordinate) bool {
	if !c.valid(at) {
		return false
	}
	if !c.outer.ScrollToItem(ToOuterRow(at.Section), 0, AlignNearest) {
		return false
	}
	c.outer.LayoutIfNeeded()
	row, ok := c.row(at.Section)
	if !ok {
		return false
	}
	pos := AlignNearest
	if row.inner.IsPagingEnabled() {
		pos = AlignStart
	}
	return row.inner.ScrollToItem(0, at.Item, pos)
}

func (c *Collection) ContentOffset() Point { return c.outer.ContentOffset() }

func (c *Collection) SetContentOffset(p Point, animated bool) {
	c.outer.SetContentOffset(p)
}

func (c *Collection) ContentInset() Insets { return c.outer.ContentInset() }

func (c *Collection) SetContentInset(i Insets) {
	c.outer.SetContentInset(i)
}

func (c *Collection) InsetAdjustmentBehavior() InsetAdjustment { return c.outer.InsetAdjustment() }

func (c *Collection) SetInsetAdjustmentBehavior(a InsetAdjustment) {
	c.outer.SetInsetAdjustment(a)
}

func (c *Collection) SetSafeAreaInsets(i Insets) {
	c.outer.SetSafeAreaInsets(i)
}

func (c *Collection) IsTracking() bool { return c.outer.IsTracking() }

func (c *Collection) Layout() *FlowLayout { return c.outer.Layout() }

func (c *Collection) SetLayout(l *FlowLayout) {
	if l == nil {
		return
	}
	l.Axis = Vertical
	c.outer.setLayout(l)
}

// DragVertically performs a complete user drag of the outer list.
func (c *Collection) DragVertically(dy int, velocity Velocity) bool {
	if !c.outer.BeginDragging() {
		return false
	}
	c.outer.DragBy(Point{Y: dy})
	c.outer.EndDragging(velocity)
	return true
}

// DragSection performs a complete user drag of a visible row. It fails when
// the row is off screen or not yet interactive.
func (c *Collection) DragSection(section, dx int, velocity Velocity) bool {
	c.outer.LayoutIfNeeded()
	row, ok := c.row(section)
	if !ok || !row.inner.BeginDragging() {
		return false
	}
	row.inner.DragBy(Point{X: dx})
	row.inner.EndDragging(velocity)
	return true
}

// ItemAt hit-tests a point relative to the top-left of the collection.
func (c *Collection) ItemAt(x, y int) (Coordinate, bool) {
	c.outer.LayoutIfNeeded()
	a, ok := c.outer.ElementAt(Point{X: x, Y: y})
	if !ok || !a.IsCell() {
		return Coordinate{}, false
	}
	row, ok := c.row(a.Section)
	if !ok {
		return Coordinate{}, false
	}
	content := Point{X: x, Y: y}.Add(c.outer.ContentOffset())
	local := Point{X: content.X - a.Frame.X, Y: content.Y - a.Frame.Y}
	ia, ok := row.inner.ElementAt(local)
	if !ok || !ia.IsCell() {
		return Coordinate{}, false
	}
	return ToLogical(a.Section, ia.Item), true
}

// SectionAt returns the section whose row or supplementary view covers line y.
func (c *Collection) SectionAt(y int) (int, bool) {
	c.outer.LayoutIfNeeded()
	a, ok := c.outer.ElementAt(Point{X: 0, Y: y})
	if !ok {
		return 0, false
	}
	return a.Section, true
}

func (c *Collection) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
