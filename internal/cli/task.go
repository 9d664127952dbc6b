package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harutoki/focusdeck/internal/app"
	"github.com/harutoki/focusdeck/internal/domain"
	"github.com/harutoki/focusdeck/internal/repository"
)

// shortIDLen is the displayed prefix length of task ids.
const shortIDLen = 8

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Category    string
		Priority    string
		Deadline    string
		From        string
	}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a new task",
		Long: `Create a new task.

Examples:
  # Create a task with defaults (category study, priority medium)
  focusdeck add "Read chapter 4"

  # Create a work task with a deadline
  focusdeck add "Quarterly report" --category work --priority high --deadline 2026-09-01

  # Create tasks from a Markdown file with YAML frontmatter blocks
  focusdeck add --from tasks.md

File format for --from:
  ---
  title: Read chapter 4
  category: study
  priority: high
  deadline: 2026-09-01
  ---
  Notes for the task go here.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.From != "" {
				return addTasksFromFile(cmd, c, opts.From)
			}

			title := opts.Title
			if len(args) > 0 {
				title = args[0]
			}
			if strings.TrimSpace(title) == "" {
				return domain.ErrEmptyTitle
			}

			category, err := domain.ParseCategory(opts.Category)
			if err != nil {
				return fmt.Errorf("%w: %q", err, opts.Category)
			}
			priority, err := domain.ParsePriority(opts.Priority)
			if err != nil {
				return fmt.Errorf("%w: %q", err, opts.Priority)
			}

			task, err := c.Tasks.Create(repository.CreateInput{
				Title:       title,
				Description: opts.Description,
				Category:    category,
				Priority:    priority,
				Deadline:    opts.Deadline,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", shortID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (alternative to the positional argument)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category: study, work, personal, health (default study)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: high, medium, low (default medium)")
	cmd.Flags().StringVarP(&opts.Deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a Markdown file")

	return cmd
}

// addTasksFromFile creates tasks from a Markdown file with frontmatter.
func addTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	drafts, err := domain.ParseTaskDrafts(string(content))
	if err != nil {
		return err
	}

	for i, draft := range drafts {
		category, err := domain.ParseCategory(draft.Category)
		if err != nil {
			return fmt.Errorf("task %d: %w: %q", i+1, err, draft.Category)
		}
		priority, err := domain.ParsePriority(draft.Priority)
		if err != nil {
			return fmt.Errorf("task %d: %w: %q", i+1, err, draft.Priority)
		}
		task, err := c.Tasks.Create(repository.CreateInput{
			Title:       draft.Title,
			Description: draft.Description,
			Category:    category,
			Priority:    priority,
			Deadline:    draft.Deadline,
		})
		if err != nil {
			return fmt.Errorf("task %d: %w", i+1, err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s  %s\n", shortID(task.ID), task.Title)
	}
	return nil
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Category string
		Search   string
		Sort     string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered and sorted.

Examples:
  focusdeck list
  focusdeck list --status pending --category work
  focusdeck list --search report --sort deadline`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sortMode, err := domain.ParseSortMode(opts.Sort)
			if err != nil {
				return fmt.Errorf("%w: %q", err, opts.Sort)
			}
			if opts.Status != "" && opts.Status != domain.FilterAll {
				if _, err := domain.ParseStatus(opts.Status); err != nil {
					return fmt.Errorf("%w: %q", err, opts.Status)
				}
			}
			if opts.Category != "" && opts.Category != domain.FilterAll {
				if _, err := domain.ParseCategory(opts.Category); err != nil {
					return fmt.Errorf("%w: %q", err, opts.Category)
				}
			}

			filter := domain.DefaultFilter()
			if opts.Status != "" {
				filter.Status = opts.Status
			}
			if opts.Category != "" {
				filter.Category = opts.Category
			}
			filter.Search = opts.Search
			filter.Sort = sortMode

			tasks := c.Tasks.Filtered(filter)
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			printTaskTable(cmd, c, tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status (pending, in-progress, completed, skipped, all)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category (study, work, personal, health, all)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Case-insensitive search over title and description")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort mode: newest, deadline, priority, alphabetical (default newest)")

	return cmd
}

// printTaskTable renders tasks with tabwriter.
func printTaskTable(cmd *cobra.Command, c *app.Container, tasks []*domain.Task) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRIORITY\tSTATUS\tDEADLINE")
	today := c.Clock.Now()
	for _, t := range tasks {
		deadline := t.Deadline
		if deadline == "" {
			deadline = "-"
		} else if t.IsOverdue(today) {
			deadline += " (overdue)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), t.Title, t.Category.Display(), t.Priority.Display(), t.Status.Display(), deadline)
	}
	_ = w.Flush()
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(c, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "ID:        %s\n", task.ID)
			_, _ = fmt.Fprintf(out, "Title:     %s\n", task.Title)
			_, _ = fmt.Fprintf(out, "Category:  %s\n", task.Category.Display())
			_, _ = fmt.Fprintf(out, "Priority:  %s\n", task.Priority.Display())
			_, _ = fmt.Fprintf(out, "Status:    %s\n", task.Status.Display())
			if task.HasDeadline() {
				_, _ = fmt.Fprintf(out, "Deadline:  %s\n", task.Deadline)
			}
			_, _ = fmt.Fprintf(out, "Created:   %s\n", task.Created.Format("2006-01-02 15:04"))
			if task.Completed != nil {
				_, _ = fmt.Fprintf(out, "Completed: %s\n", task.Completed.Format("2006-01-02 15:04"))
			}
			if task.Description != "" {
				_, _ = fmt.Fprintf(out, "\n%s\n", task.Description)
			}
			return nil
		},
	}
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Category    string
		Priority    string
		Deadline    string
		Status      string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task. Only the provided flags are changed.

Examples:
  focusdeck edit 1a2b3c4d --title "New title"
  focusdeck edit 1a2b3c4d --priority high --deadline 2026-09-01
  focusdeck edit 1a2b3c4d --deadline ""   # clear the deadline`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(c, args[0])
			if err != nil {
				return err
			}

			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				patch.Description = &opts.Description
			}
			if cmd.Flags().Changed("category") {
				category, err := domain.ParseCategory(opts.Category)
				if err != nil {
					return fmt.Errorf("%w: %q", err, opts.Category)
				}
				patch.Category = &category
			}
			if cmd.Flags().Changed("priority") {
				priority, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return fmt.Errorf("%w: %q", err, opts.Priority)
				}
				patch.Priority = &priority
			}
			if cmd.Flags().Changed("deadline") {
				patch.Deadline = &opts.Deadline
			}
			if cmd.Flags().Changed("status") {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return fmt.Errorf("%w: %q", err, opts.Status)
				}
				patch.Status = &status
			}

			updated, err := c.Tasks.Update(task.ID, patch)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", shortID(updated.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVarP(&opts.Deadline, "deadline", "d", "", "New deadline (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "New status")

	return cmd
}

// newDoneCommand creates the done command marking tasks completed.
func newDoneCommand(c *app.Container) *cobra.Command {
	return newStatusCommand(c, "done", "Mark tasks as completed", domain.StatusCompleted)
}

// newStartCommand creates the start command marking tasks in progress.
func newStartCommand(c *app.Container) *cobra.Command {
	return newStatusCommand(c, "start", "Mark tasks as in progress", domain.StatusInProgress)
}

// newSkipCommand creates the skip command marking tasks skipped.
func newSkipCommand(c *app.Container) *cobra.Command {
	return newStatusCommand(c, "skip", "Mark tasks as skipped", domain.StatusSkipped)
}

// newStatusCommand builds a command that moves one or more tasks to a
// fixed status. Multiple ids are applied best-effort, one by one.
func newStatusCommand(c *app.Container, use, short string, status domain.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := resolveTaskIDs(c, args)
			if err != nil {
				return err
			}
			count := c.Tasks.BulkUpdate(ids, domain.TaskPatch{Status: &status})
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %d task(s)\n", count)
			return nil
		},
	}
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete tasks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := resolveTaskIDs(c, args)
			if err != nil {
				return err
			}
			count := c.Tasks.BulkDelete(ids)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d task(s)\n", count)
			return nil
		},
	}
}

// newClearCommand creates the clear command removing completed tasks.
func newClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count := c.Tasks.ClearCompleted()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed task(s)\n", count)
			return nil
		},
	}
}

// shortID returns the displayed prefix of a task id.
func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// resolveTask finds a task by full id or unique id prefix.
func resolveTask(c *app.Container, ref string) (*domain.Task, error) {
	if task := c.Tasks.Get(ref); task != nil {
		return task, nil
	}

	var match *domain.Task
	for _, task := range c.Tasks.All() {
		if strings.HasPrefix(task.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous task id %q", ref)
			}
			match = task
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, ref)
	}
	return match, nil
}

// resolveTaskIDs resolves each reference to a full task id.
func resolveTaskIDs(c *app.Container, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		task, err := resolveTask(c, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, task.ID)
	}
	return ids, nil
}
