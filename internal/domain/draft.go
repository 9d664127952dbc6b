package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from file input.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string `yaml:"title"`
	Description string `yaml:"-"`
	Category    string `yaml:"category"`
	Priority    string `yaml:"priority"`
	Deadline    string `yaml:"deadline"`
}

// ParseTaskDrafts parses a Markdown file containing one or more task
// definitions. Each task is a YAML frontmatter block followed by an
// optional description body:
//
//	---
//	title: Read chapter 4
//	category: study
//	priority: high
//	deadline: 2026-09-01
//	---
//	Notes for the task go here.
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	lines := strings.Split(content, "\n")
	var drafts []TaskDraft
	i := 0
	for i < len(lines) {
		// Skip to the opening --- of the next block
		for i < len(lines) && strings.TrimSpace(lines[i]) != "---" {
			i++
		}
		if i >= len(lines) {
			break
		}
		i++

		// Collect frontmatter until the closing ---
		var frontmatter []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "---" {
			frontmatter = append(frontmatter, lines[i])
			i++
		}
		if i >= len(lines) {
			return nil, fmt.Errorf("task %d: missing closing frontmatter delimiter: %w", len(drafts)+1, ErrInvalidFormat)
		}
		i++

		// Body runs until the next block
		var body []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "---" {
			body = append(body, lines[i])
			i++
		}

		var draft TaskDraft
		if err := yaml.Unmarshal([]byte(strings.Join(frontmatter, "\n")), &draft); err != nil {
			return nil, fmt.Errorf("task %d: parse frontmatter: %w", len(drafts)+1, err)
		}
		draft.Title = strings.TrimSpace(draft.Title)
		if draft.Title == "" {
			return nil, fmt.Errorf("task %d: %w", len(drafts)+1, ErrEmptyTitle)
		}
		draft.Description = strings.TrimSpace(strings.Join(body, "\n"))
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return nil, ErrNoTasksInFile
	}
	return drafts, nil
}
