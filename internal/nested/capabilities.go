package nested

// DataSource describes the shape of the grid. Every member may be nil; a nil
// count yields zero and a nil identifier yields a placeholder cell.
type DataSource struct {
	NumberOfSections func(c *Collection) int
	NumberOfItems    func(c *Collection, section int) int
	ReuseIdentifier  func(c *Collection, at Coordinate) string
	// PagingEnabled turns a section's row into a snap-to-page strip.
	PagingEnabled func(c *Collection, section int) bool
}

// Delegate receives layout queries and interaction events in logical
// coordinates. Nil members fall back to the layout object's defaults.
type Delegate struct {
	SizeForItem     func(c *Collection, at Coordinate) Size
	InsetForSection func(c *Collection, section int) Insets
	LineSpacing     func(c *Collection, section int) int
	HeaderSize      func(c *Collection, section int) Size
	FooterSize      func(c *Collection, section int) Size

	WillDisplay       func(c *Collection, cell Cell, at Coordinate)
	SupplementaryView func(c *Collection, kind string, section int) Cell

	DidSelect   func(c *Collection, at Coordinate)
	DidDeselect func(c *Collection, at Coordinate)

	DidScrollHorizontally func(c *Collection, offset Point, section int)
	DidScrollVertically   func(c *Collection, offset Point)

	// The target may be rewritten to change where scrolling comes to rest.
	WillEndDraggingHorizontally func(c *Collection, velocity Velocity, target *Point, section int)
	WillEndDraggingVertically   func(c *Collection, velocity Velocity, target *Point)
}
