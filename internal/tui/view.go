package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/harutoki/focusdeck/internal/domain"
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabTimer:
		b.WriteString(m.viewTimer())
	case TabStats:
		b.WriteString(m.viewStats())
	default:
		b.WriteString(m.viewTasks())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Warning.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			parts = append(parts, m.styles.TabActive.Render(title))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(title))
		}
	}
	return strings.Join(parts, m.styles.Muted.Render(" │ "))
}

func (m Model) viewTasks() string {
	var b strings.Builder

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
		"status:%s  category:%s  sort:%s", m.filter.Status, m.filter.Category, m.filter.Sort)))
	b.WriteString("\n")
	if m.searching || m.filter.Search != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("No tasks match. Press / to search or add tasks with `focusdeck add`."))
		b.WriteString("\n")
		return b.String()
	}

	now := m.container.Clock.Now()
	for i, t := range m.tasks {
		b.WriteString(m.viewTaskRow(t, i == m.cursor, now))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewTaskRow(t *domain.Task, selected bool, now time.Time) string {
	marker := "  "
	if selected {
		marker = m.styles.Selected.Render("> ")
	}

	box := "[ ]"
	switch t.Status {
	case domain.StatusCompleted:
		box = m.styles.Success.Render("[x]")
	case domain.StatusInProgress:
		box = m.styles.Warning.Render("[>]")
	case domain.StatusSkipped:
		box = m.styles.Muted.Render("[-]")
	}

	title := t.Title
	if t.Status == domain.StatusCompleted || t.Status == domain.StatusSkipped {
		title = m.styles.Muted.Render(title)
	} else if selected {
		title = m.styles.Selected.Render(title)
	}

	meta := fmt.Sprintf("%s · %s", t.Category.Display(), t.Priority.Display())
	if t.HasDeadline() {
		deadline := t.Deadline
		if t.IsOverdue(now) {
			deadline = m.styles.Error.Render(deadline + " (overdue)")
		} else if t.IsDueSoon(now, m.container.Config.UI.DueSoonDays) {
			deadline = m.styles.Warning.Render(deadline)
		}
		meta += " · due " + deadline
	}

	return fmt.Sprintf("%s%s %s  %s", marker, box, title, m.styles.Muted.Render(meta))
}

func (m Model) viewTimer() string {
	t := m.container.Timer
	state := t.State()

	phase := m.styles.Header.Render(state.Phase.Display())
	digits := m.styles.TimerDigits.Render(bigDigits(t.Remaining()))

	status := "paused"
	if state.Running {
		status = "running"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		phase,
		"",
		digits,
		"",
		m.styles.Muted.Render(fmt.Sprintf("%s · %d focus session(s) completed", status, state.SessionsCompleted)),
	)
}

func (m Model) viewStats() string {
	var b strings.Builder
	completion := m.container.Stats.Completion()

	b.WriteString(m.styles.Header.Render("Completion"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %d/%d completed (%d%%)  %s\n\n",
		completion.Completed, completion.Total, completion.CompletionRate,
		m.renderBar(completion.CompletionRate, 100)))

	b.WriteString(m.styles.Header.Render("Categories"))
	b.WriteString("\n")
	dist := m.container.Stats.CategoryDistribution()
	max := 0
	for _, n := range dist {
		if n > max {
			max = n
		}
	}
	for _, category := range domain.AllCategories() {
		b.WriteString(fmt.Sprintf("  %-9s %3d  %s\n", category.Display(), dist[category], m.renderBar(dist[category], max)))
	}
	b.WriteString("\n")

	current, longest := m.streaks()
	b.WriteString(m.styles.Header.Render("Streak"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  current %d day(s) · longest %d day(s)\n\n", current, longest))

	b.WriteString(m.styles.Header.Render("Last 7 days"))
	b.WriteString("\n")
	series := m.container.Stats.WeeklySeries()
	seriesMax := 0
	for _, bucket := range series {
		if bucket.Count > seriesMax {
			seriesMax = bucket.Count
		}
	}
	for _, bucket := range series {
		b.WriteString(fmt.Sprintf("  %s %3d  %s\n", bucket.Label, bucket.Count, m.renderBar(bucket.Count, seriesMax)))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Header.Render("Last 30 days"))
	b.WriteString("\n  ")
	for _, bucket := range m.container.Stats.DailyActivity(30) {
		cell := "·"
		if bucket.Level > 0 {
			cell = "▪"
		}
		b.WriteString(m.styles.HeatLevels[bucket.Level].Render(cell))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) streaks() (current, longest int) {
	current = m.container.Stats.Streak()
	_, longest = m.container.Stats.RecordedStreaks()
	return current, longest
}

const statsBarWidth = 20

func (m Model) renderBar(value, max int) string {
	if max <= 0 || value <= 0 {
		return m.styles.BarEmpty.Render(strings.Repeat("░", statsBarWidth))
	}
	filled := value * statsBarWidth / max
	if filled > statsBarWidth {
		filled = statsBarWidth
	}
	if filled == 0 {
		filled = 1
	}
	return m.styles.Bar.Render(strings.Repeat("█", filled)) +
		m.styles.BarEmpty.Render(strings.Repeat("░", statsBarWidth-filled))
}

// bigDigits renders the countdown in a larger block form.
func bigDigits(s string) string {
	rows := make([]string, 3)
	for _, r := range s {
		glyph, ok := digitGlyphs[r]
		if !ok {
			glyph = [3]string{"   ", " " + string(r) + " ", "   "}
		}
		for i := 0; i < 3; i++ {
			rows[i] += glyph[i] + " "
		}
	}
	return strings.Join(rows, "\n")
}

var digitGlyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {" █ ", " █ ", " ▀ "},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", "▀▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {" ▀ ", " ▀ ", "   "},
}
