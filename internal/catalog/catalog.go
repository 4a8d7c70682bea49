// Package catalog builds the demo content shown by nestview: a handful of
// titled rows of films generated deterministically from the configuration.
package catalog

import (
	"fmt"

	"github.com/nicobailon/nestview/internal/config"
)

type Title struct {
	Name   string
	Year   int
	Rating float64
}

type Section struct {
	Title  string
	Style  string
	Paging bool
	Items  []Title
}

var (
	adjectives = []string{"Silent", "Crimson", "Hidden", "Electric", "Last", "Broken", "Golden", "Midnight", "Distant", "Hollow", "Wild", "Paper"}
	nouns      = []string{"Harbor", "Orbit", "Garden", "Signal", "Empire", "River", "Machine", "Winter", "Lantern", "Frontier", "Mirror", "Circus"}
)

// Build returns one section per configured section. The same configuration
// always yields the same titles.
func Build(cfg *config.Config) []Section {
	sections := make([]Section, 0, len(cfg.Sections))
	seed := 0
	for _, sc := range cfg.Sections {
		s := Section{
			Title:  sc.Title,
			Style:  sc.Style,
			Paging: sc.Paging,
			Items:  make([]Title, sc.Items),
		}
		for i := range s.Items {
			s.Items[i] = title(seed)
			seed++
		}
		sections = append(sections, s)
	}
	return sections
}

func title(n int) Title {
	adj := adjectives[n%len(adjectives)]
	noun := nouns[(n*7+3)%len(nouns)]
	return Title{
		Name:   fmt.Sprintf("The %s %s", adj, noun),
		Year:   1990 + (n*13)%35,
		Rating: float64(50+(n*17)%50) / 10,
	}
}

// Counts returns the number of items in every section.
func Counts(sections []Section) []int {
	counts := make([]int, len(sections))
	for i, s := range sections {
		counts[i] = len(s.Items)
	}
	return counts
}

// Lookup returns the title at (section, item).
func Lookup(sections []Section, section, item int) (Title, bool) {
	if section < 0 || section >= len(sections) {
		return Title{}, false
	}
	items := sections[section].Items
	if item < 0 || item >= len(items) {
		return Title{}, false
	}
	return items[item], true
}
