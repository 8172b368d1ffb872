package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"

	"google.golang.org/grpc"
)

func TestAppStartRequiresPath(t *testing.T) {
	stubDaemon(t, true, nil)

	app := New(Options{})
	if _, err := app.Start(context.Background(), StartParams{Timeout: time.Second}); err == nil || err.Error() != "project path is required" {
		t.Fatalf("expected path validation error, got %v", err)
	}
}

func TestAppStartDerivesProjectID(t *testing.T) {
	var got *devserverv1.StartRequest
	stubConn(t, func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
		req, ok := args.(*devserverv1.StartRequest)
		if !ok {
			t.Fatalf("unexpected request type %T", args)
		}
		got = req
		resp := reply.(*devserverv1.StartResponse)
		resp.Records = []*devserverv1.ServerRecord{
			{ProjectId: req.GetProjectId(), Type: "primary", Status: "running", Port: 5173, Url: "http://localhost:5173"},
			{ProjectId: req.GetProjectId(), Type: "catalog", Status: "running", Port: 6006, Url: "http://localhost:6006"},
		}
		return nil
	})

	app := New(Options{})
	dir := t.TempDir()
	servers, err := app.Start(context.Background(), StartParams{
		Project: Project{Path: dir},
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	wantID := filepath.Base(dir)
	if got.GetProjectId() != wantID {
		t.Fatalf("expected project id %q, got %q", wantID, got.GetProjectId())
	}
	if got.GetName() != wantID {
		t.Fatalf("expected name to default to project id, got %q", got.GetName())
	}
	if !filepath.IsAbs(got.GetPath()) {
		t.Fatalf("expected absolute path, got %q", got.GetPath())
	}
	if len(servers) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(servers))
	}
	if servers[0].Type != "primary" || servers[0].Port != 5173 {
		t.Fatalf("unexpected first server: %+v", servers[0])
	}
}

func TestAppStartNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)

	app := New(Options{})
	_, err := app.Start(context.Background(), StartParams{
		Project: Project{Path: t.TempDir()},
		Timeout: time.Second,
	})
	if err == nil || err.Error() != "daemon is not running" {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}
