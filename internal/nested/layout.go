package nested

// DefaultItemSize is used when the delegate does not size an item.
var DefaultItemSize = Size{Width: 16, Height: 4}

// Attributes is the computed placement of one element in content space.
// Kind is empty for cells and KindHeader or KindFooter for supplementary views.
type Attributes struct {
	Kind    string
	Section int
	Item    int
	Frame   Rect
}

func (a Attributes) IsCell() bool { return a.Kind == "" }

// FlowLayout stacks items one per line along its axis, bracketed by section
// insets and optional header and footer views. The exported fields are the
// fallbacks used when the delegate leaves a value unspecified.
type FlowLayout struct {
	Axis         Axis
	ItemSize     Size
	SectionInset Insets
	LineSpacing  int

	attributes  []Attributes
	contentSize Size
	valid       bool
}

func NewFlowLayout(axis Axis) *FlowLayout {
	return &FlowLayout{Axis: axis, ItemSize: DefaultItemSize}
}

func (l *FlowLayout) Invalidate() {
	l.valid = false
}

func (l *FlowLayout) ContentSize() Size {
	return l.contentSize
}

func (l *FlowLayout) prepare(s *Scroller) {
	l.attributes = l.attributes[:0]
	src := s.source
	vertical := l.Axis == Vertical

	cursor, cross := 0, 0
	grow := func(extent int) {
		if extent > cross {
			cross = extent
		}
	}

	sections := src.numberOfSections(s)
	for sec := 0; sec < sections; sec++ {
		cursor = l.placeSupplementary(s, KindHeader, sec, src.headerSize(s, sec), cursor)

		inset := src.insetForSection(s, sec)
		spacing := src.lineSpacing(s, sec)
		if vertical {
			cursor += inset.Top
		} else {
			cursor += inset.Left
		}

		n := src.numberOfItems(s, sec)
		for item := 0; item < n; item++ {
			if item > 0 {
				cursor += spacing
			}
			size := src.sizeForItem(s, sec, item)
			var frame Rect
			if vertical {
				frame = Rect{X: inset.Left, Y: cursor, Width: size.Width, Height: size.Height}
				cursor += size.Height
				grow(inset.Left + size.Width + inset.Right)
			} else {
				frame = Rect{X: cursor, Y: inset.Top, Width: size.Width, Height: size.Height}
				cursor += size.Width
				grow(inset.Top + size.Height + inset.Bottom)
			}
			l.attributes = append(l.attributes, Attributes{Section: sec, Item: item, Frame: frame})
		}

		if vertical {
			cursor += inset.Bottom
		} else {
			cursor += inset.Right
		}
		cursor = l.placeSupplementary(s, KindFooter, sec, src.footerSize(s, sec), cursor)
	}

	if vertical {
		l.contentSize = Size{Width: cross, Height: cursor}
	} else {
		l.contentSize = Size{Width: cursor, Height: cross}
	}
	l.valid = true
}

// placeSupplementary spans the full cross extent of the viewport, like a
// section header in a flow layout. Zero-length views are skipped.
func (l *FlowLayout) placeSupplementary(s *Scroller, kind string, section int, size Size, cursor int) int {
	var frame Rect
	if l.Axis == Vertical {
		if size.Height <= 0 {
			return cursor
		}
		frame = Rect{X: 0, Y: cursor, Width: s.bounds.Width, Height: size.Height}
		cursor += size.Height
	} else {
		if size.Width <= 0 {
			return cursor
		}
		frame = Rect{X: cursor, Y: 0, Width: size.Width, Height: s.bounds.Height}
		cursor += size.Width
	}
	l.attributes = append(l.attributes, Attributes{Kind: kind, Section: section, Frame: frame})
	return cursor
}

// AttributesIn returns every element whose frame intersects r.
func (l *FlowLayout) AttributesIn(r Rect) []Attributes {
	var out []Attributes
	for _, a := range l.attributes {
		if a.Frame.Intersects(r) {
			out = append(out, a)
		}
	}
	return out
}

func (l *FlowLayout) ItemAttributes(section, item int) (Attributes, bool) {
	for _, a := range l.attributes {
		if a.IsCell() && a.Section == section && a.Item == item {
			return a, true
		}
	}
	return Attributes{}, false
}

func (l *FlowLayout) SupplementaryAttributes(kind string, section int) (Attributes, bool) {
	for _, a := range l.attributes {
		if a.Kind == kind && a.Section == section {
			return a, true
		}
	}
	return Attributes{}, false
}
