package nested

import (
	"math"
	"sort"
)

type RoleKind int

const (
	RoleOuter RoleKind = iota
	RoleInner
)

// ViewportRole tags a scroller with the level it serves. Inner scrollers also
// carry the logical section they currently display.
type ViewportRole struct {
	Kind    RoleKind
	Section int
}

func OuterRole() ViewportRole { return ViewportRole{Kind: RoleOuter} }

func InnerRole(section int) ViewportRole { return ViewportRole{Kind: RoleInner, Section: section} }

// InsetAdjustment controls whether safe-area insets are added to the content
// inset when computing the scrollable range.
type InsetAdjustment int

const (
	InsetAdjustAutomatic InsetAdjustment = iota
	InsetAdjustScrollableAxes
	InsetAdjustNever
	InsetAdjustAlways
)

// projection is how far ahead of the drag-end offset scrolling is expected to
// come to rest, in seconds of the release velocity.
const projection = 0.25

// scrollerSource answers every layout and interaction question a scroller
// raises. The collection's proxy is the only implementation.
type scrollerSource interface {
	numberOfSections(s *Scroller) int
	numberOfItems(s *Scroller, section int) int
	sizeForItem(s *Scroller, section, item int) Size
	insetForSection(s *Scroller, section int) Insets
	lineSpacing(s *Scroller, section int) int
	headerSize(s *Scroller, section int) Size
	footerSize(s *Scroller, section int) Size

	cellForItem(s *Scroller, section, item int) Cell
	supplementaryView(s *Scroller, kind string, section int) Cell
	willDisplay(s *Scroller, cell Cell, section, item int)
	cellState(s *Scroller, section, item int) CellState

	didScroll(s *Scroller)
	willEndDragging(s *Scroller, velocity Velocity, target *Point)
}

type templateSource interface {
	itemRegistration(id string) (registration, bool)
	supplementaryRegistration(kind, id string) (registration, bool)
}

type itemKey struct {
	section, item int
}

type viewKey struct {
	kind    string
	section int
}

type issue struct {
	queue      string
	generation uint64
}

type realized struct {
	cell   Cell
	issue  issue
	pooled bool
}

// Scroller is the host viewport primitive both levels are built on: a
// clipped window onto a flow layout that realizes only the cells it can see
// and recycles the rest through per-identifier reuse queues.
type Scroller struct {
	role      ViewportRole
	layout    *FlowLayout
	source    scrollerSource
	templates templateSource

	bounds       Size
	offset       Point
	contentInset Insets
	safeArea     Insets
	adjustment   InsetAdjustment

	scrollEnabled  bool
	pagingEnabled  bool
	dragging       bool
	showsIndicator bool

	queues  map[string][]realized
	cells   map[itemKey]realized
	views   map[viewKey]realized
	pending *issue

	needsReload bool
}

func newScroller(role ViewportRole, layout *FlowLayout, source scrollerSource, templates templateSource) *Scroller {
	return &Scroller{
		role:          role,
		layout:        layout,
		source:        source,
		templates:     templates,
		scrollEnabled: true,
		queues:        make(map[string][]realized),
		cells:         make(map[itemKey]realized),
		views:         make(map[viewKey]realized),
		needsReload:   true,
	}
}

func (s *Scroller) Role() ViewportRole { return s.role }

// SetSection retags an inner scroller when its row is handed to a new section.
func (s *Scroller) SetSection(section int) {
	if s.role.Kind == RoleInner {
		s.role.Section = section
	}
}

func (s *Scroller) Layout() *FlowLayout { return s.layout }

func (s *Scroller) setLayout(l *FlowLayout) {
	s.layout = l
	s.layout.Invalidate()
}

func (s *Scroller) Bounds() Size { return s.bounds }

func (s *Scroller) SetBounds(size Size) {
	if size == s.bounds {
		return
	}
	s.bounds = size
	s.layout.Invalidate()
}

// viewSize is the part of the bounds left for content once an indicator is
// drawn.
func (s *Scroller) viewSize() Size {
	v := s.bounds
	if s.showsIndicator {
		if s.layout.Axis == Vertical {
			v.Width = max(v.Width-1, 0)
		} else {
			v.Height = max(v.Height-1, 0)
		}
	}
	return v
}

func (s *Scroller) ContentOffset() Point { return s.offset }

// SetContentOffset moves the viewport without clamping and reports the move
// to the source when the offset actually changes.
func (s *Scroller) SetContentOffset(p Point) {
	if p == s.offset {
		return
	}
	s.offset = p
	s.source.didScroll(s)
}

func (s *Scroller) ContentSize() Size {
	s.ensureLayout()
	return s.layout.ContentSize()
}

func (s *Scroller) ContentInset() Insets { return s.contentInset }

func (s *Scroller) SetContentInset(i Insets) { s.contentInset = i }

func (s *Scroller) SetSafeAreaInsets(i Insets) { s.safeArea = i }

func (s *Scroller) InsetAdjustment() InsetAdjustment { return s.adjustment }

func (s *Scroller) SetInsetAdjustment(a InsetAdjustment) { s.adjustment = a }

// AdjustedContentInset is the content inset plus whatever part of the safe
// area the adjustment behavior admits.
func (s *Scroller) AdjustedContentInset() Insets {
	switch s.adjustment {
	case InsetAdjustNever:
		return s.contentInset
	case InsetAdjustScrollableAxes:
		if s.layout.Axis == Vertical {
			return s.contentInset.add(Insets{Top: s.safeArea.Top, Bottom: s.safeArea.Bottom})
		}
		return s.contentInset.add(Insets{Left: s.safeArea.Left, Right: s.safeArea.Right})
	default:
		return s.contentInset.add(s.safeArea)
	}
}

func (s *Scroller) IsScrollEnabled() bool { return s.scrollEnabled }

func (s *Scroller) SetScrollEnabled(enabled bool) { s.scrollEnabled = enabled }

func (s *Scroller) IsPagingEnabled() bool { return s.pagingEnabled }

func (s *Scroller) SetPagingEnabled(enabled bool) { s.pagingEnabled = enabled }

func (s *Scroller) IsTracking() bool { return s.dragging }

func (s *Scroller) ShowsIndicator() bool { return s.showsIndicator }

func (s *Scroller) SetShowsIndicator(show bool) {
	s.showsIndicator = show
	s.layout.Invalidate()
}

func (s *Scroller) minOffset() Point {
	in := s.AdjustedContentInset()
	return Point{X: -in.Left, Y: -in.Top}
}

func (s *Scroller) maxOffset() Point {
	in := s.AdjustedContentInset()
	content := s.layout.ContentSize()
	view := s.viewSize()
	lo := s.minOffset()
	return Point{
		X: max(content.Width-view.Width+in.Right, lo.X),
		Y: max(content.Height-view.Height+in.Bottom, lo.Y),
	}
}

func (s *Scroller) clamp(p Point) Point {
	lo, hi := s.minOffset(), s.maxOffset()
	return Point{X: min(max(p.X, lo.X), hi.X), Y: min(max(p.Y, lo.Y), hi.Y)}
}

// alongAxis keeps only the component of p on the scroll axis.
func (s *Scroller) alongAxis(p Point) Point {
	if s.layout.Axis == Vertical {
		return Point{Y: p.Y}
	}
	return Point{X: p.X}
}

// ReloadData recycles every realized element and recomputes the layout on
// the next pass.
func (s *Scroller) ReloadData() {
	s.needsReload = true
	s.layout.Invalidate()
}

func (s *Scroller) InvalidateLayout() {
	s.layout.Invalidate()
}

// ReloadItems recycles the given realized cells of section so they are
// requested again.
func (s *Scroller) ReloadItems(section int, items ...int) {
	for _, item := range items {
		k := itemKey{section: section, item: item}
		if r, ok := s.cells[k]; ok {
			s.enqueue(r)
			delete(s.cells, k)
		}
	}
	s.layout.Invalidate()
}

func (s *Scroller) ensureLayout() {
	if s.needsReload {
		s.recycleAll()
		s.needsReload = false
		s.layout.Invalidate()
	}
	if !s.layout.valid {
		s.layout.prepare(s)
	}
}

// LayoutIfNeeded brings the layout and the set of realized elements up to
// date with the current offset. Newly realized cells are announced through
// willDisplay only after every new cell of the pass has been built.
func (s *Scroller) LayoutIfNeeded() {
	s.ensureLayout()

	visible := s.layout.AttributesIn(s.visibleRect())
	wantCells := make(map[itemKey]bool, len(visible))
	wantViews := make(map[viewKey]bool)
	for _, a := range visible {
		if a.IsCell() {
			wantCells[itemKey{a.Section, a.Item}] = true
		} else {
			wantViews[viewKey{a.Kind, a.Section}] = true
		}
	}
	for k, r := range s.cells {
		if !wantCells[k] {
			s.enqueue(r)
			delete(s.cells, k)
		}
	}
	for k, r := range s.views {
		if !wantViews[k] {
			s.enqueue(r)
			delete(s.views, k)
		}
	}

	var fresh []itemKey
	for _, a := range visible {
		if a.IsCell() {
			k := itemKey{a.Section, a.Item}
			if _, ok := s.cells[k]; ok {
				continue
			}
			s.cells[k] = s.adopt(s.source.cellForItem(s, a.Section, a.Item))
			fresh = append(fresh, k)
			continue
		}
		k := viewKey{a.Kind, a.Section}
		if _, ok := s.views[k]; !ok {
			s.views[k] = s.adopt(s.source.supplementaryView(s, a.Kind, a.Section))
		}
	}
	for _, k := range fresh {
		if r, ok := s.cells[k]; ok {
			s.source.willDisplay(s, r.cell, k.section, k.item)
		}
	}
}

func (s *Scroller) visibleRect() Rect {
	v := s.viewSize()
	return Rect{X: s.offset.X, Y: s.offset.Y, Width: v.Width, Height: v.Height}
}

// DequeueCell returns a pooled or freshly built cell for id. Unknown
// identifiers yield a placeholder.
func (s *Scroller) DequeueCell(id string) Cell {
	reg, ok := s.templates.itemRegistration(id)
	if !ok {
		s.pending = nil
		return placeholderCell{}
	}
	return s.dequeue("cell/"+id, reg)
}

func (s *Scroller) DequeueSupplementary(kind, id string) Cell {
	reg, ok := s.templates.supplementaryRegistration(kind, id)
	if !ok {
		s.pending = nil
		return placeholderCell{}
	}
	return s.dequeue("view/"+kind+"/"+id, reg)
}

func (s *Scroller) dequeue(queue string, reg registration) Cell {
	q := s.queues[queue]
	for len(q) > 0 {
		r := q[len(q)-1]
		q = q[:len(q)-1]
		if r.issue.generation != reg.generation {
			// built from a template that has since been replaced
			continue
		}
		s.queues[queue] = q
		if re, ok := r.cell.(Reusable); ok {
			re.PrepareForReuse()
		}
		s.pending = &issue{queue: queue, generation: reg.generation}
		return r.cell
	}
	s.queues[queue] = q

	cell := reg.template()
	if cell == nil {
		s.pending = nil
		return placeholderCell{}
	}
	s.pending = &issue{queue: queue, generation: reg.generation}
	return cell
}

// adopt pairs a cell returned by the source with the dequeue that produced
// it, so it can go back to the right queue later.
func (s *Scroller) adopt(cell Cell) realized {
	if cell == nil {
		cell = placeholderCell{}
	}
	r := realized{cell: cell}
	if s.pending != nil {
		r.issue = *s.pending
		r.pooled = true
		s.pending = nil
	}
	return r
}

func (s *Scroller) enqueue(r realized) {
	if !r.pooled {
		return
	}
	s.queues[r.issue.queue] = append(s.queues[r.issue.queue], r)
}

func (s *Scroller) recycleAll() {
	for k, r := range s.cells {
		s.enqueue(r)
		delete(s.cells, k)
	}
	for k, r := range s.views {
		s.enqueue(r)
		delete(s.views, k)
	}
}

func (s *Scroller) pooledCount() int {
	n := 0
	for _, q := range s.queues {
		n += len(q)
	}
	return n
}

// CellForItem returns the realized cell at (section, item), if any.
func (s *Scroller) CellForItem(section, item int) (Cell, bool) {
	r, ok := s.cells[itemKey{section, item}]
	if !ok {
		return nil, false
	}
	return r.cell, true
}

func (s *Scroller) SupplementaryView(kind string, section int) (Cell, bool) {
	r, ok := s.views[viewKey{kind, section}]
	if !ok {
		return nil, false
	}
	return r.cell, true
}

// visibleItems lists realized cells in layout order.
func (s *Scroller) visibleItems() []itemKey {
	keys := make([]itemKey, 0, len(s.cells))
	for k := range s.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].section != keys[j].section {
			return keys[i].section < keys[j].section
		}
		return keys[i].item < keys[j].item
	})
	return keys
}

// ScrollToItem aligns the item along the scroll axis and clamps the result
// to the scrollable range.
func (s *Scroller) ScrollToItem(section, item int, pos ScrollPosition) bool {
	s.ensureLayout()
	a, ok := s.layout.ItemAttributes(section, item)
	if !ok {
		return false
	}
	view := s.viewSize()
	start, length, cur, span := a.Frame.Y, a.Frame.Height, s.offset.Y, view.Height
	if s.layout.Axis == Horizontal {
		start, length, cur, span = a.Frame.X, a.Frame.Width, s.offset.X, view.Width
	}

	target := cur
	switch pos {
	case AlignStart:
		target = start
	case AlignCenter:
		target = start - (span-length)/2
	case AlignEnd:
		target = start + length - span
	default:
		if start < cur {
			target = start
		} else if start+length > cur+span {
			target = start + length - span
		}
	}

	next := s.offset
	if s.layout.Axis == Vertical {
		next.Y = target
	} else {
		next.X = target
	}
	s.SetContentOffset(s.clamp(next))
	return true
}

// BeginDragging starts a user-driven scroll. It fails while interactive
// scrolling is disabled.
func (s *Scroller) BeginDragging() bool {
	if !s.scrollEnabled {
		return false
	}
	s.dragging = true
	return true
}

func (s *Scroller) DragBy(delta Point) {
	if !s.dragging {
		return
	}
	s.ensureLayout()
	s.SetContentOffset(s.clamp(s.offset.Add(s.alongAxis(delta))))
}

// EndDragging lets the source adjust the projected resting offset and then
// settles there. Paging scrollers snap to whole pages of the view size.
func (s *Scroller) EndDragging(velocity Velocity) {
	if !s.dragging {
		return
	}
	s.ensureLayout()
	target := s.projectedTarget(velocity)
	s.source.willEndDragging(s, velocity, &target)
	s.dragging = false
	s.SetContentOffset(s.clamp(s.alongAxis(target).Add(s.crossOffset())))
}

func (s *Scroller) crossOffset() Point {
	if s.layout.Axis == Vertical {
		return Point{X: s.offset.X}
	}
	return Point{Y: s.offset.Y}
}

func (s *Scroller) projectedTarget(velocity Velocity) Point {
	vertical := s.layout.Axis == Vertical
	cur, v, page := s.offset.X, velocity.X, s.viewSize().Width
	if vertical {
		cur, v, page = s.offset.Y, velocity.Y, s.viewSize().Height
	}

	var target int
	if s.pagingEnabled && page > 0 {
		pages := float64(cur) / float64(page)
		switch {
		case v > 0:
			pages = math.Ceil(pages)
		case v < 0:
			pages = math.Floor(pages)
		default:
			pages = math.Round(pages)
		}
		target = int(pages) * page
	} else {
		target = cur + int(math.Round(v*projection))
	}

	p := s.offset
	if vertical {
		p.Y = target
	} else {
		p.X = target
	}
	return s.clamp(p)
}

// ElementAt hit-tests a point given in viewport coordinates.
func (s *Scroller) ElementAt(p Point) (Attributes, bool) {
	s.ensureLayout()
	c := p.Add(s.offset)
	hits := s.layout.AttributesIn(Rect{X: c.X, Y: c.Y, Width: 1, Height: 1})
	if len(hits) == 0 {
		return Attributes{}, false
	}
	return hits[0], true
}

// Render lays out if needed and draws the visible elements.
func (s *Scroller) Render() string {
	s.LayoutIfNeeded()
	view := s.viewSize()

	var placements []placement
	for _, a := range s.layout.AttributesIn(s.visibleRect()) {
		var r realized
		var ok bool
		if a.IsCell() {
			r, ok = s.cells[itemKey{a.Section, a.Item}]
			if ok {
				if st, isStateful := r.cell.(Stateful); isStateful {
					st.SetState(s.source.cellState(s, a.Section, a.Item))
				}
			}
		} else {
			r, ok = s.views[viewKey{a.Kind, a.Section}]
		}
		if !ok {
			continue
		}
		placements = append(placements, placement{frame: a.Frame, content: r.cell.Render(a.Frame.Size())})
	}
	body := compose(view, s.offset, placements)
	if !s.showsIndicator {
		return body
	}

	content := s.layout.ContentSize()
	lo, hi := s.minOffset(), s.maxOffset()
	if s.layout.Axis == Vertical {
		start, length := thumb(view.Height, view.Height, content.Height, s.offset.Y, lo.Y, hi.Y)
		return attachIndicator(body, Vertical, view.Height, start, length)
	}
	start, length := thumb(view.Width, view.Width, content.Width, s.offset.X, lo.X, hi.X)
	return attachIndicator(body, Horizontal, view.Width, start, length)
}
