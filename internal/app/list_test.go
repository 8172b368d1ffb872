package app

import (
	"context"
	"errors"
	"testing"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"

	"google.golang.org/grpc"
)

func TestAppListScopesToProject(t *testing.T) {
	var got *devserverv1.ListRequest
	stubConn(t, func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
		got = args.(*devserverv1.ListRequest)
		resp := reply.(*devserverv1.ListResponse)
		resp.Records = []*devserverv1.ServerRecord{
			{ProjectId: "web", Type: "primary", Status: "running", Reachable: true, StartedAtUnix: 1700000000},
		}
		return nil
	})

	app := New(Options{})
	servers, err := app.List(context.Background(), ListParams{ProjectID: "web", Timeout: time.Second})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got.GetProjectId() != "web" {
		t.Fatalf("expected request scoped to web, got %q", got.GetProjectId())
	}
	if len(servers) != 1 {
		t.Fatalf("expected 1 server, got %d", len(servers))
	}
	if !servers[0].Reachable {
		t.Fatalf("expected reachable server, got %+v", servers[0])
	}
	if servers[0].StartedAt.IsZero() {
		t.Fatalf("expected StartedAt to be set")
	}
}

func TestAppListRPCError(t *testing.T) {
	stubConn(t, func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
		return errors.New("boom")
	})

	app := New(Options{})
	if _, err := app.List(context.Background(), ListParams{Timeout: time.Second}); err == nil {
		t.Fatal("expected error from failed RPC")
	}
}

func TestAppStopRequiresProjectID(t *testing.T) {
	stubDaemon(t, true, nil)

	app := New(Options{})
	if err := app.Stop(context.Background(), "  ", time.Second); err == nil || err.Error() != "project id is required" {
		t.Fatalf("expected project id validation error, got %v", err)
	}
}

func TestAppHealthReportsVerdict(t *testing.T) {
	stubConn(t, func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
		req := args.(*devserverv1.CheckHealthRequest)
		if req.GetProjectId() != "web" {
			t.Fatalf("unexpected project id %q", req.GetProjectId())
		}
		reply.(*devserverv1.CheckHealthResponse).Reachable = true
		return nil
	})

	app := New(Options{})
	reachable, err := app.Health(context.Background(), "web", time.Second)
	if err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if !reachable {
		t.Fatal("expected reachable verdict")
	}
}

func TestAppRetryReportsAttempt(t *testing.T) {
	stubConn(t, func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
		resp := reply.(*devserverv1.RetryResponse)
		resp.Attempt = 2
		resp.Records = []*devserverv1.ServerRecord{
			{ProjectId: "web", Type: "primary", Status: "running"},
			{ProjectId: "web", Type: "catalog", Status: "running"},
		}
		return nil
	})

	app := New(Options{})
	result, err := app.Retry(context.Background(), StartParams{
		Project: Project{ID: "web", Path: t.TempDir()},
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	if result.Attempt != 2 {
		t.Fatalf("expected attempt 2, got %d", result.Attempt)
	}
	if len(result.Servers) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(result.Servers))
	}
}
