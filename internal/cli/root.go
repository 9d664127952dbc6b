// Package cli provides the command-line interface for focusdeck.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harutoki/focusdeck/internal/app"
	"github.com/harutoki/focusdeck/internal/tui"
)

// Command group IDs.
const (
	groupTask    = "task"
	groupInsight = "insight"
	groupData    = "data"
)

// launchDashboardFunc is a function variable for launching the TUI,
// allowing it to be mocked in tests.
var launchDashboardFunc = launchDashboard

// NewRootCommand creates the root command for focusdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "focusdeck",
		Short: "Personal productivity dashboard",
		Long: `focusdeck is a personal productivity dashboard: task tracking with
categories, priorities and deadlines, a Pomodoro-style focus timer, and
derived analytics (completion rate, streaks, activity heatmap), all
persisted locally.

Running focusdeck without a subcommand opens the dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchDashboardFunc(c, tui.TabTasks)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupInsight, Title: "Insights:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
	)

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	startCmd := newStartCommand(c)
	startCmd.GroupID = groupTask

	skipCmd := newSkipCommand(c)
	skipCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	clearCmd := newClearCommand(c)
	clearCmd.GroupID = groupTask

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupInsight

	activityCmd := newActivityCommand(c)
	activityCmd.GroupID = groupInsight

	streakCmd := newStreakCommand(c)
	streakCmd.GroupID = groupInsight

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	timerCmd := newTimerCommand(c)
	tuiCmd := newTUICommand(c)

	root.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		doneCmd,
		startCmd,
		skipCmd,
		rmCmd,
		clearCmd,
		statsCmd,
		activityCmd,
		streakCmd,
		exportCmd,
		importCmd,
		timerCmd,
		tuiCmd,
	)

	return root
}

// newTUICommand creates the tui command launching the dashboard.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchDashboardFunc(c, tui.TabTasks)
		},
	}
}

// newTimerCommand creates the timer command opening the focus timer.
func newTimerCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Open the focus timer",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchDashboardFunc(c, tui.TabTimer)
		},
	}
}

// launchDashboard starts the bubbletea dashboard on the given tab.
func launchDashboard(c *app.Container, tab tui.Tab) error {
	model := tui.NewModel(c, tab)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
