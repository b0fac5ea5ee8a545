// Package inbox derives the identifier of the user's Inbox project.
//
// The backend does not guarantee a queryable "is this the inbox" flag in
// every deployment, so resolution is an ordered fallback chain over the
// projects and tasks data. The result is never cached here: project
// creation or deletion can change the answer, so callers resolve against
// the live (or cache-layer-fresh) service each time.
package inbox

import (
	"context"
	"sort"
	"strings"

	"tdo/internal/service"
)

// Resolve returns the best-guess Inbox project identifier.
//
// Fallback order, first success wins:
//  1. a project whose name lowercases to exactly "inbox";
//  2. a project flagged IsSystem;
//  3. the most frequent non-empty projectId among the user's open tasks;
//  4. unresolved: ok is false, and callers must treat this as "no inbox
//     exists yet" rather than guessing.
func Resolve(ctx context.Context, svc service.Service) (id string, ok bool, err error) {
	projects, err := svc.ListProjects(ctx)
	if err != nil {
		return "", false, err
	}

	// The name check precedes the IsSystem check: a project literally
	// named "Inbox" wins even when a different project carries the flag.
	for _, p := range projects {
		if strings.ToLower(strings.TrimSpace(p.Name)) == "inbox" {
			return p.ID, true, nil
		}
	}
	for _, p := range projects {
		if p.IsSystem {
			return p.ID, true, nil
		}
	}

	tasks, err := svc.ListTasks(ctx, service.TaskFilter{Completed: service.Bool(false)})
	if err != nil {
		return "", false, err
	}
	if id, ok := majorityProject(tasks); ok {
		return id, true, nil
	}

	return "", false, nil
}

// majorityProject returns the most frequently occurring non-empty
// projectId among tasks. Ties break to the lexicographically smallest id
// so the vote is deterministic.
func majorityProject(tasks []service.Task) (string, bool) {
	freq := make(map[string]int)
	for _, t := range tasks {
		if t.ProjectID != "" {
			freq[t.ProjectID]++
		}
	}
	if len(freq) == 0 {
		return "", false
	}

	ids := make([]string, 0, len(freq))
	for id := range freq {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if freq[ids[i]] != freq[ids[j]] {
			return freq[ids[i]] > freq[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids[0], true
}
