package nested

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCell struct {
	label  string
	state  CellState
	reused int
}

func (f *fakeCell) Render(size Size) string { return f.label }

func (f *fakeCell) PrepareForReuse() { f.reused++ }

func (f *fakeCell) SetState(s CellState) { f.state = s }

type fixture struct {
	counts  []int
	paging  map[int]bool
	ids     func(at Coordinate) string
	idCalls int

	selected   []Coordinate
	deselected []Coordinate
	scrolled   int

	delegate Delegate
	c        *Collection
}

func newFixture(t *testing.T, width, height int, counts ...int) *fixture {
	t.Helper()
	f := &fixture{counts: counts, paging: map[int]bool{}}
	ds := DataSource{
		NumberOfSections: func(*Collection) int { return len(f.counts) },
		NumberOfItems:    func(_ *Collection, s int) int { return f.counts[s] },
		ReuseIdentifier: func(_ *Collection, at Coordinate) string {
			f.idCalls++
			if f.ids != nil {
				return f.ids(at)
			}
			return "poster"
		},
		PagingEnabled: func(_ *Collection, s int) bool { return f.paging[s] },
	}
	f.delegate = Delegate{
		SizeForItem: func(*Collection, Coordinate) Size { return Size{Width: 10, Height: 4} },
		WillDisplay: func(_ *Collection, cell Cell, at Coordinate) {
			if fc, ok := cell.(*fakeCell); ok {
				fc.label = fmt.Sprintf("%d/%d", at.Section, at.Item)
			}
		},
		DidSelect:           func(_ *Collection, at Coordinate) { f.selected = append(f.selected, at) },
		DidDeselect:         func(_ *Collection, at Coordinate) { f.deselected = append(f.deselected, at) },
		DidScrollVertically: func(*Collection, Point) { f.scrolled++ },
	}
	f.c = New(ds, f.delegate)
	f.c.RegisterItem("poster", func() Cell { return &fakeCell{} })
	f.c.SetSize(width, height)
	return f
}

func (f *fixture) with(change func(d *Delegate)) {
	change(&f.delegate)
	f.c.SetDelegate(f.delegate)
}

func TestScrollToItemAlignsRowThenItem(t *testing.T) {
	f := newFixture(t, 40, 4, 4, 10, 10)
	f.paging[0] = true

	require.True(t, f.c.ScrollToItem(Coordinate{Section: 2, Item: 5}, AlignStart, true))
	assert.Equal(t, Point{X: 0, Y: 8}, f.c.ContentOffset())

	row, ok := f.c.Row(2)
	require.True(t, ok)
	assert.Equal(t, Point{X: 50}, row.Inner().ContentOffset())
	assert.Equal(t, Point{X: 50}, f.c.Offsets().Get(2))

	f.c.LayoutIfNeeded()
	assert.Equal(t, []Coordinate{{2, 5}, {2, 6}, {2, 7}, {2, 8}}, f.c.VisibleItems())
}

func TestScrollToItemRejectsInvalidCoordinates(t *testing.T) {
	f := newFixture(t, 40, 4, 4, 10, 10)

	assert.False(t, f.c.ScrollToItem(Coordinate{Section: 3}, AlignStart, false))
	assert.False(t, f.c.ScrollToItem(Coordinate{Section: 0, Item: 4}, AlignStart, false))
	assert.False(t, f.c.ScrollToItem(Coordinate{Section: -1}, AlignStart, false))
	assert.Equal(t, Point{}, f.c.ContentOffset())
}

func TestRowOffsetSurvivesRecycling(t *testing.T) {
	f := newFixture(t, 40, 4, 4, 10, 10)
	require.True(t, f.c.ScrollToItem(Coordinate{Section: 2, Item: 5}, AlignStart, false))
	row, _ := f.c.Row(2)
	inner := row.Inner()

	f.c.SetContentOffset(Point{}, false)
	f.c.LayoutIfNeeded()
	_, ok := f.c.Row(2)
	assert.False(t, ok)
	first, ok := f.c.Row(0)
	require.True(t, ok)
	assert.Same(t, inner, first.Inner())
	assert.Equal(t, Point{}, first.Inner().ContentOffset())
	assert.Equal(t, Point{X: 50}, f.c.Offsets().Get(2))
	assert.Equal(t, 0, first.Section())

	f.c.SetContentOffset(Point{Y: 8}, false)
	f.c.LayoutIfNeeded()
	back, ok := f.c.Row(2)
	require.True(t, ok)
	assert.Same(t, inner, back.Inner())
	assert.Equal(t, Point{X: 50}, back.Inner().ContentOffset())
	assert.True(t, back.Configured())
	assert.Equal(t, 2, back.Section())
	assert.Equal(t, 1, f.c.rowAllocations)
}

func TestDisabledRowRejectsOffsetChanges(t *testing.T) {
	f := newFixture(t, 40, 4, 4, 10, 10)
	require.True(t, f.c.ScrollToItem(Coordinate{Section: 2, Item: 5}, AlignStart, false))
	row, _ := f.c.Row(2)

	row.Inner().SetScrollEnabled(false)
	row.Inner().SetContentOffset(Point{X: 30})
	assert.Equal(t, Point{X: 50}, row.Inner().ContentOffset())
	assert.Equal(t, Point{X: 50}, f.c.Offsets().Get(2))

	assert.False(t, f.c.DragSection(2, 5, Velocity{}))
}

func TestPagingRowSnapsToPages(t *testing.T) {
	f := newFixture(t, 20, 4, 4, 10, 10)
	f.paging[0] = true

	require.True(t, f.c.DragSection(0, 5, Velocity{X: 1}))
	row, _ := f.c.Row(0)
	assert.Equal(t, Point{X: 20}, row.Inner().ContentOffset())

	assert.Equal(t, Point{X: 20}, f.c.Offsets().Get(0))

	require.True(t, f.c.DragSection(0, -5, Velocity{X: -1}))
	assert.Equal(t, Point{}, row.Inner().ContentOffset())
}

func TestDragProjectsWithVelocity(t *testing.T) {
	f := newFixture(t, 20, 8, 4, 10, 10)

	require.True(t, f.c.DragSection(1, 5, Velocity{X: 40}))
	row, _ := f.c.Row(1)
	assert.Equal(t, Point{X: 15}, row.Inner().ContentOffset())
	assert.Equal(t, Point{X: 15}, f.c.Offsets().Get(1))
	assert.False(t, f.c.IsTracking())
}

func TestDelegateCanRetargetDragEnd(t *testing.T) {
	f := newFixture(t, 20, 8, 4, 10, 10)
	var sections []int
	f.with(func(d *Delegate) {
		d.WillEndDraggingHorizontally = func(_ *Collection, _ Velocity, target *Point, section int) {
			sections = append(sections, section)
			target.X = 30
		}
	})

	require.True(t, f.c.DragSection(1, 5, Velocity{}))
	row, _ := f.c.Row(1)
	assert.Equal(t, Point{X: 30}, row.Inner().ContentOffset())
	assert.Equal(t, []int{1}, sections)
}

func TestDragVertically(t *testing.T) {
	f := newFixture(t, 40, 4, 4, 10, 10)

	require.True(t, f.c.DragVertically(3, Velocity{}))
	assert.Equal(t, Point{Y: 3}, f.c.ContentOffset())

	require.True(t, f.c.DragVertically(50, Velocity{}))
	assert.Equal(t, Point{Y: 8}, f.c.ContentOffset())
}

func TestSetContentOffsetDoesNotClamp(t *testing.T) {
	f := newFixture(t, 40, 4, 4, 10, 10)

	f.c.SetContentOffset(Point{Y: 100}, false)
	f.c.SetContentOffset(Point{Y: 100}, false)
	assert.Equal(t, Point{Y: 100}, f.c.ContentOffset())
	assert.Equal(t, 1, f.scrolled)
}

func TestReloadQueriesEveryVisibleItemOnce(t *testing.T) {
	f := newFixture(t, 200, 12, 4, 10, 10)

	f.c.LayoutIfNeeded()
	assert.Equal(t, 24, f.idCalls)
	assert.Len(t, f.c.VisibleItems(), 24)

	f.c.ReloadData()
	f.c.LayoutIfNeeded()
	assert.Equal(t, 48, f.idCalls)
	assert.Equal(t, 3, f.c.rowAllocations)
}

func TestReloadQueriesLayoutOncePerSection(t *testing.T) {
	f := newFixture(t, 40, 12, 4, 10, 10)
	sizes, insets, headers, spacings := map[int]int{}, map[int]int{}, map[int]int{}, map[int]int{}
	f.with(func(d *Delegate) {
		d.SizeForItem = func(_ *Collection, at Coordinate) Size {
			sizes[at.Section]++
			return Size{Width: 10, Height: 4}
		}
		d.InsetForSection = func(_ *Collection, s int) Insets {
			insets[s]++
			return Insets{}
		}
		d.HeaderSize = func(_ *Collection, s int) Size {
			headers[s]++
			return Size{}
		}
		d.LineSpacing = func(_ *Collection, s int) int {
			spacings[s]++
			return 0
		}
	})
	f.c.Render()
	clear(sizes)
	clear(insets)
	clear(headers)
	clear(spacings)

	f.c.ReloadData()
	f.c.Render()

	for s, n := range f.counts {
		assert.Equal(t, 1+n, sizes[s], "size queries of section %d", s)
		assert.Equal(t, 2, insets[s], "inset queries of section %d", s)
		assert.Equal(t, 1, headers[s], "header queries of section %d", s)
		assert.Equal(t, 1, spacings[s], "spacing queries of section %d", s)
	}
}

func TestSelectionKeepsOneItem(t *testing.T) {
	f := newFixture(t, 200, 12, 4, 10, 10)

	assert.True(t, f.c.SelectItem(Coordinate{Section: 1, Item: 3}))
	assert.True(t, f.c.SelectItem(Coordinate{Section: 2, Item: 0}))
	assert.False(t, f.c.SelectItem(Coordinate{Section: 0, Item: 9}))
	assert.Equal(t, []Coordinate{{2, 0}}, f.c.SelectedItems())
	assert.Equal(t, []Coordinate{{1, 3}, {2, 0}}, f.selected)

	f.c.Render()
	cell, ok := f.c.CellForItem(Coordinate{Section: 2, Item: 0})
	require.True(t, ok)
	assert.True(t, cell.(*fakeCell).state.Selected)
	other, _ := f.c.CellForItem(Coordinate{Section: 1, Item: 3})
	assert.False(t, other.(*fakeCell).state.Selected)

	assert.False(t, f.c.DeselectItem(Coordinate{Section: 1, Item: 3}))
	assert.True(t, f.c.DeselectItem(Coordinate{Section: 2, Item: 0}))
	assert.Empty(t, f.c.SelectedItems())
	assert.Equal(t, []Coordinate{{2, 0}}, f.deselected)
}

func TestFocusMarksCell(t *testing.T) {
	f := newFixture(t, 200, 12, 4, 10, 10)

	require.True(t, f.c.SetFocusedItem(Coordinate{Section: 1, Item: 2}))
	assert.False(t, f.c.SetFocusedItem(Coordinate{Section: 5}))
	at, ok := f.c.FocusedItem()
	require.True(t, ok)
	assert.Equal(t, Coordinate{Section: 1, Item: 2}, at)

	f.c.Render()
	cell, _ := f.c.CellForItem(at)
	assert.True(t, cell.(*fakeCell).state.Focused)

	f.c.ClearFocus()
	_, ok = f.c.FocusedItem()
	assert.False(t, ok)
}

func TestUnregisteredIdentifierYieldsPlaceholder(t *testing.T) {
	f := newFixture(t, 200, 12, 4, 10, 10)
	f.ids = func(at Coordinate) string {
		if at.Section == 1 {
			return "missing"
		}
		return "poster"
	}

	f.c.LayoutIfNeeded()
	cell, ok := f.c.CellForItem(Coordinate{Section: 1, Item: 0})
	require.True(t, ok)
	assert.True(t, IsPlaceholder(cell))
	cell, _ = f.c.CellForItem(Coordinate{Section: 0, Item: 0})
	assert.False(t, IsPlaceholder(cell))
}

func TestItemAt(t *testing.T) {
	f := newFixture(t, 40, 8, 4, 10, 10)

	at, ok := f.c.ItemAt(12, 5)
	require.True(t, ok)
	assert.Equal(t, Coordinate{Section: 1, Item: 1}, at)

	_, ok = f.c.ItemAt(12, 20)
	assert.False(t, ok)

	section, ok := f.c.SectionAt(1)
	require.True(t, ok)
	assert.Equal(t, 0, section)
}

func TestHeadersAreLaidOutAboveRows(t *testing.T) {
	f := newFixture(t, 40, 20, 4, 10, 10)
	f.c.RegisterSupplementary(KindHeader, "title", func() Cell { return &fakeCell{label: "title"} })
	f.with(func(d *Delegate) {
		d.HeaderSize = func(*Collection, int) Size { return Size{Height: 1} }
		d.SupplementaryView = func(c *Collection, kind string, section int) Cell {
			return c.DequeueSupplementaryView(kind, "title", section)
		}
	})

	f.c.LayoutIfNeeded()
	layout := f.c.Layout()
	header, ok := layout.SupplementaryAttributes(KindHeader, 1)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: 5, Width: 40, Height: 1}, header.Frame)
	row, ok := layout.ItemAttributes(1, 0)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: 6, Width: 40, Height: 4}, row.Frame)
	assert.Equal(t, Size{Width: 40, Height: 15}, layout.ContentSize())

	view, ok := f.c.SupplementaryView(KindHeader, 0)
	require.True(t, ok)
	assert.Equal(t, "title", view.(*fakeCell).label)
	assert.True(t, strings.HasPrefix(f.c.Render(), "title"))
}

func TestRenderComposesRow(t *testing.T) {
	f := newFixture(t, 25, 4, 3)

	lines := strings.Split(f.c.Render(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "0/0       0/1       0/2  ", lines[0])
	assert.Equal(t, strings.Repeat(" ", 25), lines[3])
}

func TestSafeAreaAdjustment(t *testing.T) {
	f := newFixture(t, 40, 4, 4, 10, 10)
	f.c.SetSafeAreaInsets(Insets{Top: 2})

	assert.Equal(t, Insets{Top: 2}, f.c.outer.AdjustedContentInset())
	f.c.SetInsetAdjustmentBehavior(InsetAdjustNever)
	assert.Equal(t, InsetAdjustNever, f.c.InsetAdjustmentBehavior())
	assert.Equal(t, Insets{}, f.c.outer.AdjustedContentInset())
}

func TestWithLayoutForcesVerticalAxis(t *testing.T) {
	ds := DataSource{
		NumberOfSections: func(*Collection) int { return 2 },
		NumberOfItems:    func(*Collection, int) int { return 1 },
	}
	l := &FlowLayout{Axis: Horizontal, ItemSize: Size{Width: 5, Height: 3}, SectionInset: Insets{Top: 1, Left: 4}}
	c := New(ds, Delegate{}, WithLayout(l))
	c.SetSize(20, 10)
	c.LayoutIfNeeded()

	assert.Same(t, l, c.Layout())
	assert.Equal(t, Vertical, c.Layout().Axis)
	a, ok := c.Layout().ItemAttributes(1, 0)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: 5, Width: 20, Height: 3}, a.Frame)
}

func TestSetDataSourceReloads(t *testing.T) {
	f := newFixture(t, 40, 12, 4, 10, 10)
	require.True(t, f.c.SelectItem(Coordinate{Section: 2, Item: 3}))

	f.c.SetDataSource(DataSource{
		NumberOfSections: func(*Collection) int { return 1 },
		NumberOfItems:    func(*Collection, int) int { return 3 },
		ReuseIdentifier:  func(*Collection, Coordinate) string { return "poster" },
	})
	f.c.LayoutIfNeeded()

	assert.Equal(t, 1, f.c.NumberOfSections())
	assert.Equal(t, 3, f.c.NumberOfItems(0))
	assert.Empty(t, f.c.SelectedItems())
	assert.Len(t, f.c.VisibleItems(), 3)
}

func TestDequeueSupplementaryViewChecksSection(t *testing.T) {
	f := newFixture(t, 40, 12, 4, 10, 10)
	f.c.RegisterSupplementary(KindHeader, "title", func() Cell { return &fakeCell{} })

	assert.True(t, IsPlaceholder(f.c.DequeueSupplementaryView(KindHeader, "title", 3)))
	assert.True(t, IsPlaceholder(f.c.DequeueSupplementaryView(KindHeader, "title", -1)))
	assert.False(t, IsPlaceholder(f.c.DequeueSupplementaryView(KindHeader, "title", 2)))
}
