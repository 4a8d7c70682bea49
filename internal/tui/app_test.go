package tui

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/nestview/internal/config"
	"github.com/nicobailon/nestview/internal/nested"
	"github.com/nicobailon/nestview/internal/recent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ItemWidth:   18,
		ItemHeight:  5,
		Spacing:     2,
		Inset:       1,
		ShowHeaders: true,
		Mouse:       true,
		Sections: []config.SectionConfig{
			{Title: "Featured", Items: 4, Paging: true, Style: config.StyleBanner},
			{Title: "Trending", Items: 10, Style: config.StylePoster},
			{Title: "New Releases", Items: 10, Style: config.StylePoster},
		},
	}
}

func sized(t *testing.T, width, height int) model {
	t.Helper()
	m := initialModel(testConfig(), log.New(io.Discard, "", 0))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(model)
}

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	return m
}

// dispatch delivers msg and then the message produced by the returned
// command, which must not be a timer.
func dispatch(t *testing.T, m model, msg tea.Msg) (model, tea.Msg) {
	t.Helper()
	updated, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	follow := cmd()
	updated, _ = updated.(model).Update(follow)
	return updated.(model), follow
}

func TestInitialFocusAndView(t *testing.T) {
	m := sized(t, 80, 30)

	at, ok := m.coll.FocusedItem()
	require.True(t, ok)
	assert.Equal(t, nested.Coordinate{}, at)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Featured")
	assert.Contains(t, view, "Trending")
	assert.Contains(t, view, "Featured 1/4")
}

func TestKeyboardNavigationAndSelection(t *testing.T) {
	m := sized(t, 80, 30)

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	at, _ := m.coll.FocusedItem()
	assert.Equal(t, nested.Coordinate{Section: 0, Item: 1}, at)
	row, ok := m.coll.Row(0)
	require.True(t, ok)
	assert.Equal(t, nested.Point{X: 79}, row.Inner().ContentOffset())

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	at, _ = m.coll.FocusedItem()
	assert.Equal(t, nested.Coordinate{Section: 1, Item: 1}, at)

	m, msg := dispatch(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.IsType(t, SuccessMsg{}, msg)
	assert.Equal(t, []nested.Coordinate{{Section: 1, Item: 1}}, m.coll.SelectedItems())
	require.NotNil(t, m.toast)
	assert.Equal(t, toastSuccess, m.toast.kind)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.coll.SelectedItems())

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	at, _ = m.coll.FocusedItem()
	assert.Equal(t, 2, at.Section)
}

func TestFocusStaysInsideRow(t *testing.T) {
	m := sized(t, 80, 30)

	for i := 0; i < 6; i++ {
		m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	at, _ := m.coll.FocusedItem()
	assert.Equal(t, nested.Coordinate{Section: 0, Item: 3}, at)

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	at, _ = m.coll.FocusedItem()
	assert.Equal(t, nested.Coordinate{Section: 0, Item: 3}, at)
}

func TestMouseClickSelects(t *testing.T) {
	m := sized(t, 80, 30)

	m = send(m, tea.MouseMsg{X: 6, Y: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, []nested.Coordinate{{Section: 1, Item: 0}}, m.coll.SelectedItems())
	at, _ := m.coll.FocusedItem()
	assert.Equal(t, nested.Coordinate{Section: 1, Item: 0}, at)
}

func TestMouseWheel(t *testing.T) {
	m := sized(t, 80, 20)

	m = send(m, tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, nested.Point{Y: 3}, m.coll.ContentOffset())

	m = send(m, tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, nested.Point{}, m.coll.ContentOffset())

	m = send(m, tea.MouseMsg{X: 5, Y: 12, Button: tea.MouseButtonWheelRight})
	assert.Equal(t, nested.Point{X: 20}, m.coll.Offsets().Get(1))

	// outside the body
	m = send(m, tea.MouseMsg{X: 5, Y: 0, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, nested.Point{}, m.coll.ContentOffset())
}

func TestReloadKeepsFocus(t *testing.T) {
	m := sized(t, 80, 30)
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	m, msg := dispatch(t, updated.(model), cmd())
	assert.IsType(t, InfoMsg{}, msg)

	at, ok := m.coll.FocusedItem()
	require.True(t, ok)
	assert.Equal(t, nested.Coordinate{Section: 1, Item: 1}, at)
	require.NotNil(t, m.toast)
	assert.Equal(t, toastInfo, m.toast.kind)
}

func TestSnapshot(t *testing.T) {
	out, err := Snapshot(testConfig(), 80, 24, &nested.Coordinate{Section: 2, Item: 5})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "New Releases 6/10")

	_, err = Snapshot(testConfig(), 80, 24, &nested.Coordinate{Section: 2, Item: 50})
	assert.ErrorIs(t, err, nested.ErrItemOutOfRange)
}

func TestSelectRecordsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")
	history, err := recent.LoadFrom(path)
	require.NoError(t, err)

	m := sized(t, 80, 30)
	m.history = history
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	saved, err := recent.LoadFrom(path)
	require.NoError(t, err)
	require.Len(t, saved.Entries, 1)
	assert.Equal(t, "Trending", saved.Entries[0].Section)
	assert.Equal(t, m.src.sections[1].Items[0].Name, saved.Entries[0].Name)
}

func TestHistorySaveFailureShowsError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	history, err := recent.LoadFrom(filepath.Join(blocker, "recent.json"))
	require.NoError(t, err)

	m := sized(t, 80, 30)
	m.history = history
	m, msg := dispatch(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok)
	assert.Equal(t, "save history", errMsg.Context)
	assert.Equal(t, []nested.Coordinate{{}}, m.coll.SelectedItems())
	require.NotNil(t, m.toast)
	assert.Equal(t, toastError, m.toast.kind)
	assert.Contains(t, ansi.Strip(m.View()), "save history")
}
