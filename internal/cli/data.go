package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harutoki/focusdeck/internal/app"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as JSON",
		Long: `Export the full task collection plus metadata as JSON.

Examples:
  focusdeck export                  # write to stdout
  focusdeck export -o backup.json   # write to a file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := c.Tasks.Export()
			content, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}

			if output == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(content))
				return nil
			}
			if err := os.WriteFile(output, content, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", len(payload.Tasks), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a JSON export",
		Long: `Import tasks from a previously exported JSON file. Imported tasks
are appended to the current collection with fresh ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			count, err := c.Tasks.Import(content)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d task(s)\n", count)
			return nil
		},
	}
}
