package tui

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nicobailon/nestview/internal/catalog"
	"github.com/nicobailon/nestview/internal/config"
	"github.com/nicobailon/nestview/internal/nested"
	"github.com/nicobailon/nestview/internal/recent"
	"github.com/nicobailon/nestview/internal/tui/theme"
	"github.com/nicobailon/nestview/internal/tui/views"
)

// statusHeight is the single line between the rows and the help footer.
const statusHeight = 1

type model struct {
	src     *catalogSource
	coll    *nested.Collection
	history *recent.Store
	keys    keyMap
	help    help.Model
	toast   *toast
	width   int
	height  int
}

type App struct {
	cfg *config.Config
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	logger := log.New(io.Discard, "", 0)
	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "nestview")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	m := initialModel(a.cfg, logger)
	history, err := recent.Load()
	if err != nil {
		logger.Printf("load history: %v", err)
	} else {
		m.history = history
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}

// Snapshot renders a single frame without starting a program. When at is
// set, that item is scrolled to the top left and focused.
func Snapshot(cfg *config.Config, width, height int, at *nested.Coordinate) (string, error) {
	m := initialModel(cfg, log.New(io.Discard, "", 0))
	m.resize(width, height)
	if at != nil {
		if !m.coll.ScrollToItem(*at, nested.AlignStart, false) {
			return "", fmt.Errorf("item %d/%d: %w", at.Section, at.Item, nested.ErrItemOutOfRange)
		}
		m.coll.SetFocusedItem(*at)
	}
	return m.View(), nil
}

func initialModel(cfg *config.Config, logger *log.Logger) model {
	src := &catalogSource{
		cfg:      cfg,
		sections: catalog.Build(cfg),
		logger:   logger,
	}

	h := help.New()
	h.Styles.ShortKey = theme.KeyStyle
	h.Styles.FullKey = theme.KeyStyle
	h.Styles.ShortDesc = theme.DimStyle
	h.Styles.FullDesc = theme.DimStyle
	h.Styles.ShortSeparator = theme.SeparatorStyle
	h.Styles.FullSeparator = theme.SeparatorStyle

	m := model{
		src:  src,
		coll: newCollection(src, 0, 0),
		keys: defaultKeyMap(),
		help: h,
	}
	m.focusEdge(false)
	return m
}

// TEA plumbing

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return handleKey(&m, msg)

	case tea.MouseMsg:
		return handleMouse(&m, msg)

	case catalogLoadedMsg:
		m.src.sections = msg.sections
		m.coll.ReloadData()
		if _, ok := m.coll.FocusedItem(); !ok {
			m.focusEdge(false)
		}
		return m, NewInfoCmd(fmt.Sprintf("Reloaded %d sections", len(msg.sections)))

	case SuccessMsg:
		m.toast = newToast(toastSuccess, msg.Message)
		return m, toastExpireCmd()

	case InfoMsg:
		m.toast = newToast(toastInfo, msg.Message)
		return m, toastExpireCmd()

	case ErrorMsg:
		m.toast = newToast(toastError, msg.Error())
		return m, toastExpireCmd()

	case toastExpiredMsg:
		if m.toast != nil && m.toast.expired() {
			m.toast = nil
		}
		return m, nil
	}
	return m, nil
}

func (m *model) footerHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

func (m *model) bodyTop() int {
	return views.HeaderHeight
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	body := height - views.HeaderHeight - statusHeight - m.footerHeight()
	m.coll.SetSize(width, max(body, 0))
}

func (m model) position() string {
	at, ok := m.coll.FocusedItem()
	if !ok {
		return fmt.Sprintf("%d sections", m.coll.NumberOfSections())
	}
	sec := m.src.sections[at.Section]
	return fmt.Sprintf("%s %d/%d", sec.Title, at.Item+1, len(sec.Items))
}

func (m model) status() string {
	if m.toast != nil && !m.toast.expired() {
		return m.toast.render(defaultToastStyles())
	}
	selected := m.coll.SelectedItems()
	if len(selected) == 0 {
		return ""
	}
	t, ok := catalog.Lookup(m.src.sections, selected[0].Section, selected[0].Item)
	if !ok {
		return ""
	}
	return theme.SuccessStyle.Render(fmt.Sprintf("%s %s (%d)  %s %.1f", theme.IconSelected, t.Name, t.Year, theme.IconStar, t.Rating))
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.coll.NumberOfSections() == 0 {
		return views.RenderEmpty(m.width, m.height)
	}
	return views.RenderScreen(
		views.RenderHeader(m.width, m.position()),
		m.coll.Render(),
		views.RenderStatus(m.width, m.status()),
		views.RenderFooter(m.help.View(m.keys)),
	)
}
