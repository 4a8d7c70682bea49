package nested

// Selection remembers the last explicitly selected item. It is a single slot:
// selecting a new item replaces the previous one.
type Selection struct {
	at    Coordinate
	valid bool
}

func (s *Selection) Set(c Coordinate) {
	s.at = c
	s.valid = true
}

func (s *Selection) Clear() {
	s.at = Coordinate{}
	s.valid = false
}

func (s *Selection) Get() (Coordinate, bool) {
	return s.at, s.valid
}

// Items returns the selection as a slice of zero or one coordinates.
func (s *Selection) Items() []Coordinate {
	if !s.valid {
		return nil
	}
	return []Coordinate{s.at}
}

func (s *Selection) insertSection(section int) {
	if s.valid && s.at.Section >= section {
		s.at.Section++
	}
}

func (s *Selection) deleteSection(section int) {
	if !s.valid {
		return
	}
	switch {
	case s.at.Section == section:
		s.Clear()
	case s.at.Section > section:
		s.at.Section--
	}
}

func (s *Selection) insertItem(c Coordinate) {
	if s.valid && s.at.Section == c.Section && s.at.Item >= c.Item {
		s.at.Item++
	}
}

func (s *Selection) deleteItem(c Coordinate) {
	if !s.valid || s.at.Section != c.Section {
		return
	}
	switch {
	case s.at.Item == c.Item:
		s.Clear()
	case s.at.Item > c.Item:
		s.at.Item--
	}
}

// clamp drops the selection when it no longer fits the given counts.
func (s *Selection) clamp(counts []int) {
	if !s.valid {
		return
	}
	if s.at.Section < 0 || s.at.Section >= len(counts) || s.at.Item < 0 || s.at.Item >= counts[s.at.Section] {
		s.Clear()
	}
}
