package cache_test

import (
	"context"
	"testing"

	"tdo/internal/cache"
	"tdo/internal/service"
	"tdo/internal/testutil"
)

// seedViews primes the cache with the query shapes a UI would hold open:
// the inbox view, the all-tasks view, and one project view.
func seedViews(t *testing.T, svc *cache.CachingService) {
	t.Helper()
	ctx := context.Background()
	views := []service.TaskFilter{
		{InboxOnly: true, Completed: service.Bool(false)},
		{Completed: service.Bool(false)},
		{ProjectID: "p1", Completed: service.Bool(false)},
	}
	for _, f := range views {
		if _, err := svc.ListTasks(ctx, f); err != nil {
			t.Fatalf("seed ListTasks(%+v) failed: %v", f, err)
		}
	}
}

func refetchCount(t *testing.T, svc *cache.CachingService, fake *testutil.FakeService) int {
	t.Helper()
	ctx := context.Background()
	before := fake.Calls["ListTasks"]
	views := []service.TaskFilter{
		{InboxOnly: true, Completed: service.Bool(false)},
		{Completed: service.Bool(false)},
		{ProjectID: "p1", Completed: service.Bool(false)},
	}
	for _, f := range views {
		if _, err := svc.ListTasks(ctx, f); err != nil {
			t.Fatalf("ListTasks(%+v) failed: %v", f, err)
		}
	}
	return fake.Calls["ListTasks"] - before
}

func TestCachingService_ReadsAreCached(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("t1", "one", "", false)
	svc := cache.Wrap(fake)

	seedViews(t, svc)
	fetched := fake.Calls["ListTasks"]
	if fetched != 3 {
		t.Fatalf("expected 3 backend fetches for 3 distinct views, got %d", fetched)
	}

	// Re-reading the same views hits the cache.
	if n := refetchCount(t, svc, fake); n != 0 {
		t.Errorf("expected 0 refetches for fresh views, got %d", n)
	}
}

func TestCachingService_CreateInboxTaskInvalidation(t *testing.T) {
	fake := testutil.NewFakeService()
	svc := cache.Wrap(fake)
	seedViews(t, svc)

	// A task created without a project affects the inbox view and the
	// all-tasks view, but not the project view.
	if _, err := svc.CreateTask(context.Background(), service.TaskPayload{Title: "Buy milk"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if n := refetchCount(t, svc, fake); n != 2 {
		t.Errorf("expected inbox and all-tasks views to refetch (2), got %d", n)
	}
}

func TestCachingService_CreateProjectTaskInvalidation(t *testing.T) {
	fake := testutil.NewFakeService()
	svc := cache.Wrap(fake)
	seedViews(t, svc)

	// A task filed under p1 stales the p1 view and the all-tasks view.
	// The no-project pattern also catches the inbox key, which shares the
	// empty project field; that over-invalidation is accepted.
	if _, err := svc.CreateTask(context.Background(), service.TaskPayload{Title: "x", ProjectID: "p1"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if n := refetchCount(t, svc, fake); n != 3 {
		t.Errorf("expected all seeded views to refetch (3), got %d", n)
	}
}

func TestCachingService_UpdateInvalidatesAllTaskViews(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("t1", "one", "p1", false)
	svc := cache.Wrap(fake)
	seedViews(t, svc)

	if _, err := svc.UpdateTask(context.Background(), "t1", service.TaskPatch{Completed: service.Bool(true)}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if n := refetchCount(t, svc, fake); n != 3 {
		t.Errorf("expected every task view to refetch (3), got %d", n)
	}
}

func TestCachingService_DeleteInvalidatesAllTaskViews(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("t1", "one", "", false)
	svc := cache.Wrap(fake)
	seedViews(t, svc)

	if err := svc.DeleteTask(context.Background(), "t1"); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	if n := refetchCount(t, svc, fake); n != 3 {
		t.Errorf("expected every task view to refetch (3), got %d", n)
	}
}

func TestCachingService_ProjectMutationsInvalidateProjects(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("p1", "Work", false)
	svc := cache.Wrap(fake)
	ctx := context.Background()

	if _, err := svc.ListProjects(ctx); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if _, err := svc.ListProjects(ctx); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if fake.Calls["ListProjects"] != 1 {
		t.Fatalf("expected cached project list, got %d fetches", fake.Calls["ListProjects"])
	}

	if _, err := svc.CreateProject(ctx, service.ProjectPayload{Name: "Home"}); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	projects, err := svc.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if fake.Calls["ListProjects"] != 2 {
		t.Errorf("expected refetch after create, got %d fetches", fake.Calls["ListProjects"])
	}
	if len(projects) != 2 {
		t.Errorf("expected 2 projects after refetch, got %d", len(projects))
	}
}

func TestCachingService_DeleteProjectInvalidatesTasksToo(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddProject("p1", "Work", false)
	fake.AddTask("t1", "one", "p1", false)
	svc := cache.Wrap(fake)
	seedViews(t, svc)

	if _, err := svc.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}

	if err := svc.DeleteProject(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	before := fake.Calls["ListProjects"]
	if _, err := svc.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if fake.Calls["ListProjects"] != before+1 {
		t.Error("expected project list to refetch after delete")
	}
	if n := refetchCount(t, svc, fake); n != 3 {
		t.Errorf("expected task views to refetch after project delete (3), got %d", n)
	}
}

func TestCachingService_MutationErrorSkipsInvalidation(t *testing.T) {
	fake := testutil.NewFakeService()
	svc := cache.Wrap(fake)
	seedViews(t, svc)

	fake.CreateTaskErr = &service.APIError{StatusCode: 500, Message: "boom"}
	if _, err := svc.CreateTask(context.Background(), service.TaskPayload{Title: "x"}); err == nil {
		t.Fatal("expected error from backend")
	}
	fake.CreateTaskErr = nil

	if n := refetchCount(t, svc, fake); n != 0 {
		t.Errorf("a failed mutation must not invalidate, got %d refetches", n)
	}
}
