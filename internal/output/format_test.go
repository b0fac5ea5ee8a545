package output_test

import (
	"bytes"
	"testing"

	"tdo/internal/output"
	"tdo/internal/service"
	"tdo/internal/testutil"
)

func TestFormatTaskView(t *testing.T) {
	var buf bytes.Buffer
	output.FormatSectionHeader(&buf, "Work")
	output.FormatTask(&buf, 1, service.Task{Title: "Buy milk"})
	output.FormatTask(&buf, 2, service.Task{Title: "Ship release", Priority: service.PriorityHigh})
	output.FormatTask(&buf, 3, service.Task{Title: "Pay rent", DueDate: "2026-09-01T00:00:00Z"})
	output.FormatTask(&buf, 4, service.Task{Title: ""})
	output.FormatTask(&buf, 5, service.Task{Title: "multi\nline"})

	testutil.Golden(t, "task_view", buf.Bytes())
}

func TestFormatProjects(t *testing.T) {
	var buf bytes.Buffer
	output.FormatProject(&buf, service.Project{ID: "p1", Name: "Inbox"}, true)
	output.FormatProject(&buf, service.Project{ID: "p2", Name: "Work"}, false)
	output.FormatProject(&buf, service.Project{ID: "p3", Name: ""}, false)

	testutil.Golden(t, "projects", buf.Bytes())
}

func TestFormatTask_WideIndex(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 12345, service.Task{Title: "x"})
	if got, want := buf.String(), "12345  x\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatTask_BareDueDate(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, service.Task{Title: "x", DueDate: "2026-09-01"})
	if got, want := buf.String(), "   1  x  [due 2026-09-01]\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
