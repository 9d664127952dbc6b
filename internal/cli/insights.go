package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/harutoki/focusdeck/internal/app"
	"github.com/harutoki/focusdeck/internal/domain"
	"github.com/harutoki/focusdeck/internal/stats"
)

// barWidth is the maximum width of CLI bar charts.
const barWidth = 24

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Bold(true)

	// heatCells maps activity levels 0..4 to heatmap glyphs.
	heatCells = []string{
		dimStyle.Render("·"),
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Render("▪"),
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Render("▪"),
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Render("▪"),
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Render("▪"),
	}
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion and category statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			completion := c.Stats.Completion()

			_, _ = fmt.Fprintln(out, labelStyle.Render("Completion"))
			_, _ = fmt.Fprintf(out, "  Total: %d  Completed: %d  Pending: %d  In Progress: %d  Skipped: %d\n",
				completion.Total, completion.Completed, completion.Pending, completion.InProgress, completion.Skipped)
			_, _ = fmt.Fprintf(out, "  Rate:  %d%%  %s\n\n", completion.CompletionRate, renderBar(completion.CompletionRate, 100))

			_, _ = fmt.Fprintln(out, labelStyle.Render("Categories"))
			dist := c.Stats.CategoryDistribution()
			max := 0
			for _, n := range dist {
				if n > max {
					max = n
				}
			}
			for _, category := range domain.AllCategories() {
				n := dist[category]
				_, _ = fmt.Fprintf(out, "  %-9s %3d  %s\n", category.Display(), n, renderBar(n, max))
			}

			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, labelStyle.Render("Last 7 days"))
			printSeries(out, c.Stats.WeeklySeries())
			return nil
		},
	}
}

// newActivityCommand creates the activity heatmap command.
func newActivityCommand(c *app.Container) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the completed-task activity heatmap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive")
			}
			buckets := c.Stats.DailyActivity(days)

			var cells strings.Builder
			for _, b := range buckets {
				cells.WriteString(heatCells[b.Level])
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s .. %s\n", buckets[0].Date, buckets[len(buckets)-1].Date)
			_, _ = fmt.Fprintln(out, cells.String())
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 30, "Number of days to show")
	return cmd
}

// newStreakCommand creates the streak command.
func newStreakCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the completion streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, longest := c.Stats.RecordedStreaks()
			current := c.Stats.Streak()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d day(s)\nLongest streak: %d day(s)\n", current, longest)
			return nil
		},
	}
}

// renderBar renders a proportional bar of up to barWidth cells.
func renderBar(value, max int) string {
	if max <= 0 || value <= 0 {
		return dimStyle.Render(strings.Repeat("░", barWidth))
	}
	filled := value * barWidth / max
	if filled > barWidth {
		filled = barWidth
	}
	if filled == 0 {
		filled = 1
	}
	return barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

// printSeries prints one bar row per day bucket.
func printSeries(out io.Writer, series []stats.DayBucket) {
	max := 0
	for _, b := range series {
		if b.Count > max {
			max = b.Count
		}
	}
	for _, b := range series {
		_, _ = fmt.Fprintf(out, "  %s %3d  %s\n", b.Label, b.Count, renderBar(b.Count, max))
	}
}
