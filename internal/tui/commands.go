package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/nestview/internal/catalog"
	"github.com/nicobailon/nestview/internal/config"
)

type catalogLoadedMsg struct {
	sections []catalog.Section
}

func loadCatalogCmd(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{sections: catalog.Build(cfg)}
	}
}
