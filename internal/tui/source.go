package tui

import (
	"log"

	"github.com/nicobailon/nestview/internal/catalog"
	"github.com/nicobailon/nestview/internal/config"
	"github.com/nicobailon/nestview/internal/nested"
	"github.com/nicobailon/nestview/internal/tui/views"
)

// catalogSource feeds catalog sections to the collection. The model holds it
// by pointer so a reload can swap the sections in place.
type catalogSource struct {
	cfg      *config.Config
	sections []catalog.Section
	logger   *log.Logger
}

func (s *catalogSource) section(i int) (catalog.Section, bool) {
	if i < 0 || i >= len(s.sections) {
		return catalog.Section{}, false
	}
	return s.sections[i], true
}

func (s *catalogSource) isBanner(section int) bool {
	sec, ok := s.section(section)
	return ok && sec.Style == config.StyleBanner
}

func (s *catalogSource) dataSource() nested.DataSource {
	return nested.DataSource{
		NumberOfSections: func(*nested.Collection) int { return len(s.sections) },
		NumberOfItems: func(_ *nested.Collection, section int) int {
			sec, _ := s.section(section)
			return len(sec.Items)
		},
		ReuseIdentifier: func(_ *nested.Collection, at nested.Coordinate) string {
			if s.isBanner(at.Section) {
				return views.BannerID
			}
			return views.PosterID
		},
		PagingEnabled: func(_ *nested.Collection, section int) bool {
			sec, _ := s.section(section)
			return sec.Paging
		},
	}
}

func (s *catalogSource) delegate() nested.Delegate {
	return nested.Delegate{
		SizeForItem: func(c *nested.Collection, at nested.Coordinate) nested.Size {
			if s.isBanner(at.Section) {
				return nested.Size{Width: c.ViewSize().Width, Height: s.cfg.ItemHeight + 1}
			}
			return nested.Size{Width: s.cfg.ItemWidth, Height: s.cfg.ItemHeight}
		},
		InsetForSection: func(*nested.Collection, int) nested.Insets {
			return nested.Insets{Left: s.cfg.Inset, Right: s.cfg.Inset, Bottom: 1}
		},
		LineSpacing: func(*nested.Collection, int) int { return s.cfg.Spacing },
		HeaderSize: func(*nested.Collection, int) nested.Size {
			if !s.cfg.ShowHeaders {
				return nested.Size{}
			}
			return nested.Size{Height: 1}
		},
		SupplementaryView: func(c *nested.Collection, kind string, section int) nested.Cell {
			if kind != nested.KindHeader {
				return nil
			}
			cell := c.DequeueSupplementaryView(kind, views.HeaderID, section)
			if h, ok := cell.(*views.HeaderCell); ok {
				sec, _ := s.section(section)
				h.Text = sec.Title
				h.Count = len(sec.Items)
			}
			return cell
		},
		WillDisplay: func(_ *nested.Collection, cell nested.Cell, at nested.Coordinate) {
			t, ok := catalog.Lookup(s.sections, at.Section, at.Item)
			if !ok {
				return
			}
			switch v := cell.(type) {
			case *views.PosterCell:
				v.Title = t
			case *views.BannerCell:
				v.Title = t
				v.Page = at.Item
				v.Pages = len(s.sections[at.Section].Items)
			}
		},
		DidSelect: func(_ *nested.Collection, at nested.Coordinate) {
			s.logger.Printf("select %d/%d", at.Section, at.Item)
		},
		DidDeselect: func(_ *nested.Collection, at nested.Coordinate) {
			s.logger.Printf("deselect %d/%d", at.Section, at.Item)
		},
		DidScrollHorizontally: func(_ *nested.Collection, offset nested.Point, section int) {
			s.logger.Printf("row %d scrolled to %d", section, offset.X)
		},
	}
}

// newCollection wires a collection to s and registers the demo cells.
func newCollection(s *catalogSource, width, height int) *nested.Collection {
	c := nested.New(s.dataSource(), s.delegate(),
		nested.WithLogger(s.logger),
		nested.WithScrollIndicator(),
	)
	c.RegisterItem(views.PosterID, views.NewPosterCell)
	c.RegisterItem(views.BannerID, views.NewBannerCell)
	c.RegisterSupplementary(nested.KindHeader, views.HeaderID, views.NewHeaderCell)
	c.SetSize(width, height)
	return c
}
