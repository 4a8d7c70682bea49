package nested

// Coordinate addresses one item of the logical grid.
type Coordinate struct {
	Section int
	Item    int
}

// ToLogical maps an outer row index and an item index inside that row's
// inner viewport onto a logical coordinate.
func ToLogical(outerSection, innerItem int) Coordinate {
	return Coordinate{Section: outerSection, Item: innerItem}
}

// ToOuterRow returns the outer row hosting section. There is exactly one row
// per section.
func ToOuterRow(section int) int {
	return section
}

type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

type Size struct {
	Width, Height int
}

type Insets struct {
	Top, Left, Bottom, Right int
}

func (i Insets) add(o Insets) Insets {
	return Insets{Top: i.Top + o.Top, Left: i.Left + o.Left, Bottom: i.Bottom + o.Bottom, Right: i.Right + o.Right}
}

// Velocity is expressed in cells per second.
type Velocity struct {
	X, Y float64
}

type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// ScrollPosition aligns a target item inside a viewport along its scroll axis.
type ScrollPosition int

const (
	AlignNearest ScrollPosition = iota
	AlignStart
	AlignCenter
	AlignEnd
)

func (p ScrollPosition) String() string {
	switch p {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "nearest"
	}
}
