package catalog

import (
	"testing"

	"github.com/nicobailon/nestview/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Sections: []config.SectionConfig{
			{Title: "Featured", Items: 4, Paging: true, Style: config.StyleBanner},
			{Title: "Trending", Items: 10, Style: config.StylePoster},
			{Title: "Empty", Items: 0, Style: config.StylePoster},
		},
	}
}

func TestBuild(t *testing.T) {
	sections := Build(testConfig())

	require.Len(t, sections, 3)
	assert.Equal(t, []int{4, 10, 0}, Counts(sections))
	assert.True(t, sections[0].Paging)
	assert.Equal(t, config.StyleBanner, sections[0].Style)
	assert.Equal(t, "Trending", sections[1].Title)
	assert.Equal(t, Build(testConfig()), sections)
}

func TestTitlesAreDistinctAcrossSections(t *testing.T) {
	sections := Build(testConfig())

	assert.NotEqual(t, sections[0].Items[0], sections[1].Items[0])
	for _, s := range sections {
		for _, item := range s.Items {
			assert.NotEmpty(t, item.Name)
			assert.GreaterOrEqual(t, item.Rating, 5.0)
			assert.Less(t, item.Rating, 10.0)
		}
	}
}

func TestLookup(t *testing.T) {
	sections := Build(testConfig())

	got, ok := Lookup(sections, 1, 2)
	require.True(t, ok)
	assert.Equal(t, sections[1].Items[2], got)

	_, ok = Lookup(sections, 2, 0)
	assert.False(t, ok)
	_, ok = Lookup(sections, 3, 0)
	assert.False(t, ok)
	_, ok = Lookup(sections, -1, 0)
	assert.False(t, ok)
}
