package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/dailylog/internal/files"
	"github.com/faizmokh/dailylog/internal/render"
)

var (
	headerBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	helpBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

const helpLine = "←/→ day · t today · r reload · ↑/↓ scroll · q quit"

// Model owns Bubble Tea state for the read-only day browser.
type Model struct {
	ctx     context.Context
	manager *files.Manager

	currentDate time.Time
	content     string
	exists      bool

	viewport viewport.Model
	ready    bool

	loading    bool
	statusLine string
	errorLine  string
}

type dayLoadedMsg struct {
	date    time.Time
	content string
	exists  bool
	err     error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, manager *files.Manager) Model {
	return Model{
		ctx:         ctx,
		manager:     manager,
		currentDate: today(),
		loading:     true,
		statusLine:  "Loading today's log...",
	}
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return m.loadDayCmd(m.currentDate)
}

// Update wires state transitions from user input and async loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h", "p":
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case "right", "l", "n":
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case "t":
		return m.gotoDate(today())
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadDayCmd(m.currentDate)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Header and help bar each take one line plus a separating blank line.
	contentHeight := msg.Height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, contentHeight)
		m.ready = true
		m.viewport.SetContent(m.renderContent())
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = contentHeight
	}
	return m, nil
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	if !sameDay(msg.date, m.currentDate) {
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		return m, nil
	}

	m.content = msg.content
	m.exists = msg.exists
	m.statusLine = ""
	m.errorLine = ""
	if m.ready {
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
	}
	return m, nil
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	m.currentDate = date
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", date.Format("2006-01-02"))
	m.errorLine = ""
	return m, m.loadDayCmd(date)
}

func (m Model) loadDayCmd(date time.Time) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		content, exists, err := manager.ReadDay(date)
		return dayLoadedMsg{date: date, content: content, exists: exists, err: err}
	}
}

// View renders the header bar, day content, and help line.
func (m Model) View() string {
	header := headerBarStyle.Render(fmt.Sprintf("dailylog — %s (%s)",
		m.currentDate.Format("2006-01-02"), m.currentDate.Weekday()))

	body := ""
	switch {
	case m.loading:
		body = m.statusLine
	case m.errorLine != "":
		body = m.errorLine
	case m.ready:
		body = m.viewport.View()
	default:
		body = m.renderContent()
	}

	return fmt.Sprintf("%s\n\n%s\n%s", header, body, helpBarStyle.Render(helpLine))
}

func (m Model) renderContent() string {
	if !m.exists {
		return emptyStyle.Render("No log for this day.")
	}
	return render.Markdown(m.content)
}

func today() time.Time {
	now := time.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
