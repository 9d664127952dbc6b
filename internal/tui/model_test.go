package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutoki/focusdeck/internal/app"
	"github.com/harutoki/focusdeck/internal/domain"
	"github.com/harutoki/focusdeck/internal/infra/config"
	"github.com/harutoki/focusdeck/internal/repository"
)

func newTestModel(t *testing.T) (Model, *app.Container) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.DataDir = t.TempDir()
	c, err := app.NewWithConfig(cfg)
	require.NoError(t, err)
	return NewModel(c, TabTasks), c
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNextSortMode_Cycles(t *testing.T) {
	mode := domain.SortNewest
	seen := map[domain.SortMode]bool{}
	for i := 0; i < 4; i++ {
		seen[mode] = true
		mode = nextSortMode(mode)
	}
	assert.Equal(t, domain.SortNewest, mode, "cycle returns to the start")
	assert.Len(t, seen, 4)
}

func TestNextStatusFilter_Cycles(t *testing.T) {
	cur := domain.FilterAll
	for i := 0; i < 5; i++ {
		cur = nextStatusFilter(cur)
	}
	assert.Equal(t, domain.FilterAll, cur)

	// Unknown input restarts at "all".
	assert.Equal(t, domain.FilterAll, nextStatusFilter("bogus"))
}

func TestToggledStatus(t *testing.T) {
	assert.Equal(t, domain.StatusCompleted, toggledStatus(domain.StatusPending))
	assert.Equal(t, domain.StatusCompleted, toggledStatus(domain.StatusInProgress))
	assert.Equal(t, domain.StatusPending, toggledStatus(domain.StatusCompleted))
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, lightPalette, PaletteFor("light"))
	assert.Equal(t, darkPalette, PaletteFor("dark"))
	assert.Equal(t, darkPalette, PaletteFor(""))
}

func TestModel_TabSwitching(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, TabTasks, m.tab)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, TabTimer, m.tab)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, TabStats, m.tab)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, TabTasks, m.tab)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, TabStats, m.tab)
}

func TestModel_ToggleTaskCompletion(t *testing.T) {
	m, c := newTestModel(t)
	task, err := c.Tasks.Create(repository.CreateInput{
		Title:    "toggle me",
		Category: domain.CategoryWork,
		Priority: domain.PriorityMedium,
	})
	require.NoError(t, err)
	m.reload()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Equal(t, domain.StatusCompleted, c.Tasks.Get(task.ID).Status)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = next.(Model)
	assert.Equal(t, domain.StatusPending, c.Tasks.Get(task.ID).Status)
}

func TestModel_ThemeToggle(t *testing.T) {
	m, c := newTestModel(t)
	assert.Equal(t, "dark", m.theme)

	next, _ := m.Update(keyMsg("t"))
	m = next.(Model)
	assert.Equal(t, "light", m.theme)
	assert.Equal(t, "light", c.Theme())
}

func TestModel_TimerKeys(t *testing.T) {
	m, c := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, TabTimer, m.tab)

	next, _ = m.Update(keyMsg(" "))
	m = next.(Model)
	assert.True(t, c.Timer.Running())

	next, _ = m.Update(keyMsg(" "))
	m = next.(Model)
	assert.False(t, c.Timer.Running())

	next, _ = m.Update(keyMsg("n"))
	_ = next.(Model)
	assert.NotEqual(t, "focus", string(c.Timer.State().Phase))
}

func TestModel_ViewSmoke(t *testing.T) {
	m, c := newTestModel(t)
	_, err := c.Tasks.Create(repository.CreateInput{
		Title:    "render me",
		Category: domain.CategoryStudy,
		Priority: domain.PriorityHigh,
		Deadline: "2026-09-01",
	})
	require.NoError(t, err)
	m.reload()

	view := m.View()
	assert.Contains(t, view, "render me")

	m.tab = TabTimer
	assert.NotEmpty(t, m.View())

	m.tab = TabStats
	assert.Contains(t, m.View(), "Completion")
}
