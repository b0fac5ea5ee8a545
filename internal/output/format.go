// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tdo/internal/service"
)

const (
	// SectionSeparator is the separator line for view headers.
	SectionSeparator = "------------"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {TITLE}" plus a "(!)" marker for high priority and a
// "[due YYYY-MM-DD]" suffix when a due date is set.
func FormatTask(w io.Writer, num int, task service.Task) {
	line := normalizeTitle(task.Title)
	if task.Priority == service.PriorityHigh {
		line = "(!) " + line
	}
	if due := shortDate(task.DueDate); due != "" {
		line += "  [due " + due + "]"
	}
	fmt.Fprintf(w, "%4d  %s\n", num, line)
}

// FormatSectionHeader formats a view header.
func FormatSectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, normalizeTitle(title))
	fmt.Fprintln(w, SectionSeparator)
}

// FormatProject formats a project line for the projects command.
func FormatProject(w io.Writer, project service.Project, isInbox bool) {
	name := normalizeTitle(project.Name)
	if isInbox {
		name += " [inbox]"
	}
	fmt.Fprintln(w, name)
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// shortDate trims an ISO-8601 timestamp down to its date part.
func shortDate(due string) string {
	if due == "" {
		return ""
	}
	if i := strings.IndexByte(due, 'T'); i > 0 {
		return due[:i]
	}
	return due
}
