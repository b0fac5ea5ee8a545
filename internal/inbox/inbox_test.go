package inbox_test

import (
	"context"
	"errors"
	"testing"

	"tdo/internal/inbox"
	"tdo/internal/service"
	"tdo/internal/testutil"
)

func TestResolve_ByName(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("p1", "Work", false)
	fake.AddProject("p2", "Inbox", false)

	id, ok, err := inbox.Resolve(context.Background(), fake)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !ok || id != "p2" {
		t.Errorf("expected p2 by name, got id=%q ok=%v", id, ok)
	}
}

func TestResolve_NameIsCaseAndSpaceInsensitive(t *testing.T) {
	for _, name := range []string{"INBOX", "  inbox  ", "InBox"} {
		fake := testutil.NewFakeService()
		fake.AddProject("p1", name, false)

		id, ok, err := inbox.Resolve(context.Background(), fake)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if !ok || id != "p1" {
			t.Errorf("name %q: expected p1, got id=%q ok=%v", name, id, ok)
		}
	}
}

func TestResolve_NameBeatsSystemFlag(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("p1", "Defaults", true)
	fake.AddProject("p2", "Inbox", false)

	id, ok, err := inbox.Resolve(context.Background(), fake)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !ok || id != "p2" {
		t.Errorf("expected the literally named project to win, got id=%q ok=%v", id, ok)
	}
}

func TestResolve_SystemFlagFallback(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("p1", "Work", false)
	fake.AddProject("p2", "Default", true)

	id, ok, err := inbox.Resolve(context.Background(), fake)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !ok || id != "p2" {
		t.Errorf("expected the system project, got id=%q ok=%v", id, ok)
	}
}

func TestResolve_MajorityVote(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("pA", "Alpha", false)
	fake.AddProject("pB", "Beta", false)
	fake.AddTask("t1", "one", "pA", false)
	fake.AddTask("t2", "two", "pA", false)
	fake.AddTask("t3", "three", "pB", false)
	fake.AddTask("t4", "four", "", false) // unfiled tasks do not vote

	id, ok, err := inbox.Resolve(context.Background(), fake)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !ok || id != "pA" {
		t.Errorf("expected majority pA, got id=%q ok=%v", id, ok)
	}
}

func TestResolve_MajorityIgnoresCompleted(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("pA", "Alpha", false)
	fake.AddProject("pB", "Beta", false)
	fake.AddTask("t1", "one", "pA", false)
	fake.AddTask("t2", "two", "pB", true)
	fake.AddTask("t3", "three", "pB", true)

	// pB has more tasks overall, but only open tasks vote.
	id, ok, err := inbox.Resolve(context.Background(), fake)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !ok || id != "pA" {
		t.Errorf("expected pA from open tasks only, got id=%q ok=%v", id, ok)
	}
}

func TestResolve_TieBreaksDeterministically(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("pB", "Beta", false)
	fake.AddProject("pA", "Alpha", false)
	fake.AddTask("t1", "one", "pB", false)
	fake.AddTask("t2", "two", "pA", false)

	for i := 0; i < 10; i++ {
		id, ok, err := inbox.Resolve(context.Background(), fake)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if !ok || id != "pA" {
			t.Fatalf("expected the tie to break to pA, got id=%q ok=%v", id, ok)
		}
	}
}

func TestResolve_Unresolved(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("p1", "Work", false)
	fake.AddTask("t1", "one", "", false)

	id, ok, err := inbox.Resolve(context.Background(), fake)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ok || id != "" {
		t.Errorf("expected unresolved, got id=%q ok=%v", id, ok)
	}
}

func TestResolve_ErrorsPropagate(t *testing.T) {
	wantErr := errors.New("backend down")

	fake := testutil.NewFakeService()
	fake.ListProjectsErr = wantErr
	if _, _, err := inbox.Resolve(context.Background(), fake); !errors.Is(err, wantErr) {
		t.Errorf("expected project list error, got %v", err)
	}

	fake = testutil.NewFakeService()
	fake.AddProject("p1", "Work", false)
	fake.ListTasksErr = wantErr
	if _, _, err := inbox.Resolve(context.Background(), fake); !errors.Is(err, wantErr) {
		t.Errorf("expected task list error, got %v", err)
	}
}

var _ service.Service = (*testutil.FakeService)(nil)
