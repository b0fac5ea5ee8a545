package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"tdo/internal/service"
)

// TaskRef represents a parsed task reference: either a 1-based index into
// the current view or a raw task id.
type TaskRef struct {
	Num int    // 1-based view index, 0 if an id was given
	ID  string // raw task id, empty if an index was given
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrTaskOutOfRange indicates an index reference past the end of the view.
var ErrTaskOutOfRange = errors.New("task number out of range")

// ParseTaskRef parses a task reference from args.
// An all-digit argument is a view index; anything else is taken as a
// task id.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	arg := args[0]
	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil || num < 1 {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	return TaskRef{ID: arg}, nil
}

// ResolveTaskRef maps a reference to a concrete task. Index references
// are looked up in the view the filter describes, in display order; id
// references pass through untouched (the backend validates them).
func ResolveTaskRef(ctx context.Context, svc service.Service, filter service.TaskFilter, ref TaskRef) (service.Task, error) {
	if ref.ID != "" {
		return service.Task{ID: ref.ID}, nil
	}

	tasks, err := svc.ListTasks(ctx, filter)
	if err != nil {
		return service.Task{}, err
	}
	if ref.Num < 1 || ref.Num > len(tasks) {
		return service.Task{}, fmt.Errorf("%w: %d", ErrTaskOutOfRange, ref.Num)
	}
	return tasks[ref.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is
// non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// viewFilter builds the open-task filter for the view a command operates
// on: the named project's view, or the inbox view when no project was
// given.
func viewFilter(ctx context.Context, svc service.Service, projectName string) (service.TaskFilter, error) {
	filter := service.TaskFilter{Completed: service.Bool(false)}
	if projectName == "" {
		filter.InboxOnly = true
		return filter, nil
	}
	project, err := ResolveProject(ctx, svc, projectName)
	if err != nil {
		return service.TaskFilter{}, err
	}
	filter.ProjectID = project.ID
	return filter, nil
}
