// Package cache keeps fetched collections keyed by query parameters,
// coalesces concurrent identical fetches, and marks entries stale after
// mutations so the next access refetches.
package cache

import (
	"strings"

	"tdo/internal/service"
)

// Resource kinds used in cache keys.
const (
	ResourceTasks    = "tasks"
	ResourceProjects = "projects"
)

// Key identifies one cached query: the resource kind plus the filter
// tuple. Absent filter fields encode as "null" so that identical queries
// always collide on the same key.
type Key struct {
	Resource  string
	ProjectID string // "" = no project filter
	Completed string // "", "true", or "false"
	Inbox     bool
}

// TasksKey builds the cache key for a task list query.
// The inbox-over-project precedence is applied here too, so a filter that
// sets both collapses to the inbox key the client would actually fetch.
func TasksKey(filter service.TaskFilter) Key {
	k := Key{Resource: ResourceTasks}
	if filter.InboxOnly {
		k.Inbox = true
	} else {
		k.ProjectID = filter.ProjectID
	}
	if filter.Completed != nil {
		if *filter.Completed {
			k.Completed = "true"
		} else {
			k.Completed = "false"
		}
	}
	return k
}

// ProjectsKey builds the cache key for the project list query.
func ProjectsKey() Key {
	return Key{Resource: ResourceProjects}
}

// String encodes the key for singleflight grouping.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Resource)
	b.WriteString("|project:")
	b.WriteString(orNull(k.ProjectID))
	b.WriteString("|completed:")
	b.WriteString(orNull(k.Completed))
	b.WriteString("|inbox:")
	if k.Inbox {
		b.WriteString("true")
	} else {
		b.WriteString("null")
	}
	return b.String()
}

func orNull(s string) string {
	if s == "" {
		return "null"
	}
	return s
}

// Pattern matches a set of keys for invalidation. Nil fields are
// wildcards; Resource is required.
type Pattern struct {
	Resource  string
	ProjectID *string
	Completed *string
	Inbox     *bool
}

// Matches reports whether the key falls under the pattern.
func (p Pattern) Matches(k Key) bool {
	if p.Resource != k.Resource {
		return false
	}
	if p.ProjectID != nil && *p.ProjectID != k.ProjectID {
		return false
	}
	if p.Completed != nil && *p.Completed != k.Completed {
		return false
	}
	if p.Inbox != nil && *p.Inbox != k.Inbox {
		return false
	}
	return true
}
