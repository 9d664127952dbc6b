// Package tui implements the interactive dashboard: a tabbed bubbletea
// program covering the task list, the focus timer, and the statistics
// views, driven by a one-second tick while the timer runs.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harutoki/focusdeck/internal/app"
	"github.com/harutoki/focusdeck/internal/domain"
)

// Tab identifies a dashboard tab.
type Tab int

const (
	TabTasks Tab = iota
	TabTimer
	TabStats
)

var tabTitles = []string{"Tasks", "Timer", "Stats"}

// tickMsg drives the timer countdown.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the dashboard's bubbletea model.
type Model struct {
	container *app.Container
	keys      KeyMap
	help      help.Model
	search    textinput.Model
	styles    Styles

	tab       Tab
	theme     string
	filter    domain.Filter
	tasks     []*domain.Task
	cursor    int
	searching bool
	status    string // Transient message shown in the footer
	width     int
	height    int
}

// NewModel creates the dashboard model opened on the given tab.
func NewModel(c *app.Container, tab Tab) Model {
	search := textinput.New()
	search.Placeholder = "search title or description"
	search.CharLimit = 80
	search.Width = 40

	theme := c.Theme()
	m := Model{
		container: c,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		search:    search,
		styles:    NewStyles(PaletteFor(theme)),
		tab:       tab,
		theme:     theme,
		filter:    domain.DefaultFilter(),
	}
	m.reload()
	return m
}

// Init starts the one-second tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

// reload refreshes the visible task slice from the repository and clamps
// the cursor.
func (m *Model) reload() {
	m.tasks = m.container.Tasks.Filtered(m.filter)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the task under the cursor, or nil.
func (m *Model) selected() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.container.Timer.Tick() {
			m.status = m.container.Timer.State().Phase.Display() + " is up next"
		}
		return m, tick()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updateSearch handles keys while the search input is focused.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filter.Search = ""
		m.reload()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.Search = m.search.Value()
	m.reload()
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabTitles))
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		if m.theme == "light" {
			m.theme = "dark"
		} else {
			m.theme = "light"
		}
		m.container.SetTheme(m.theme)
		m.styles = NewStyles(PaletteFor(m.theme))
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.tab == TabTimer {
		return m.updateTimerKeys(msg)
	}
	if m.tab == TabTasks {
		return m.updateTaskKeys(msg)
	}
	return m, nil
}

func (m Model) updateTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.container.Timer
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if t.Running() {
			t.Pause()
		} else {
			t.Start()
		}
	case key.Matches(msg, m.keys.Reset):
		t.Reset()
	case key.Matches(msg, m.keys.Next):
		t.Skip()
	}
	return m, nil
}

func (m Model) updateTaskKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Complete):
		if t := m.selected(); t != nil {
			m.setStatus(t, toggledStatus(t.Status))
		}

	case key.Matches(msg, m.keys.Start):
		if t := m.selected(); t != nil {
			m.setStatus(t, domain.StatusInProgress)
		}

	case key.Matches(msg, m.keys.Skip):
		if t := m.selected(); t != nil {
			m.setStatus(t, domain.StatusSkipped)
		}

	case key.Matches(msg, m.keys.Delete):
		if t := m.selected(); t != nil {
			m.container.Tasks.Delete(t.ID)
			m.status = "Deleted " + t.Title
			m.reload()
		}

	case key.Matches(msg, m.keys.Clear):
		n := m.container.Tasks.ClearCompleted()
		if n > 0 {
			m.status = "Cleared completed tasks"
			m.reload()
		}

	case key.Matches(msg, m.keys.Sort):
		m.filter.Sort = nextSortMode(m.filter.Sort)
		m.reload()

	case key.Matches(msg, m.keys.FilterStat):
		m.filter.Status = nextStatusFilter(m.filter.Status)
		m.reload()

	case key.Matches(msg, m.keys.FilterCat):
		m.filter.Category = nextCategoryFilter(m.filter.Category)
		m.reload()
	}
	return m, nil
}

func (m *Model) setStatus(t *domain.Task, status domain.Status) {
	if _, err := m.container.Tasks.Update(t.ID, domain.TaskPatch{Status: &status}); err != nil {
		m.status = err.Error()
		return
	}
	m.reload()
}

// toggledStatus flips between completed and pending.
func toggledStatus(s domain.Status) domain.Status {
	if s == domain.StatusCompleted {
		return domain.StatusPending
	}
	return domain.StatusCompleted
}

func nextSortMode(mode domain.SortMode) domain.SortMode {
	order := []domain.SortMode{
		domain.SortNewest,
		domain.SortDeadline,
		domain.SortPriority,
		domain.SortAlphabetical,
	}
	for i, cur := range order {
		if cur == mode {
			return order[(i+1)%len(order)]
		}
	}
	return domain.SortNewest
}

func nextStatusFilter(current string) string {
	order := []string{domain.FilterAll}
	for _, s := range domain.AllStatuses() {
		order = append(order, string(s))
	}
	return nextIn(order, current)
}

func nextCategoryFilter(current string) string {
	order := []string{domain.FilterAll}
	for _, c := range domain.AllCategories() {
		order = append(order, string(c))
	}
	return nextIn(order, current)
}

func nextIn(order []string, current string) string {
	for i, cur := range order {
		if cur == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
