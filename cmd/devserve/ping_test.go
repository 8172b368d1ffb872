package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"devserve/internal/app"
)

type stubController struct {
	pingFunc func(ctx context.Context, timeout time.Duration) (string, error)
	listFunc func(ctx context.Context, params app.ListParams) ([]app.Server, error)
}

func (s *stubController) Ping(ctx context.Context, timeout time.Duration) (string, error) {
	if s.pingFunc != nil {
		return s.pingFunc(ctx, timeout)
	}
	return "", errors.New("ping not implemented")
}

func (s *stubController) Start(ctx context.Context, params app.StartParams) ([]app.Server, error) {
	panic("Start not implemented")
}

func (s *stubController) Stop(ctx context.Context, projectID string, timeout time.Duration) error {
	panic("Stop not implemented")
}

func (s *stubController) Retry(ctx context.Context, params app.StartParams) (app.RetryResult, error) {
	panic("Retry not implemented")
}

func (s *stubController) Health(ctx context.Context, projectID string, timeout time.Duration) (bool, error) {
	panic("Health not implemented")
}

func (s *stubController) List(ctx context.Context, params app.ListParams) ([]app.Server, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, params)
	}
	panic("List not implemented")
}

func (s *stubController) Watch(ctx context.Context, projectID string, fn func(app.Event) error) error {
	panic("Watch not implemented")
}

func (s *stubController) Status() (app.DaemonStatus, error) {
	panic("Status not implemented")
}

func (s *stubController) StopDaemon(force bool) error {
	panic("StopDaemon not implemented")
}

func (s *stubController) StartDaemon() (*app.DaemonHandle, error) {
	panic("StartDaemon not implemented")
}

func withController(t *testing.T, stub controllerAPI) {
	t.Helper()
	origFactory := controllerFactory
	controllerFactory = func() controllerAPI {
		return stub
	}
	t.Cleanup(func() {
		controllerFactory = origFactory
	})
}

func withPingOutput(t *testing.T) (*bytes.Buffer, func()) {
	t.Helper()
	buf := &bytes.Buffer{}
	origOut := cmdPing.OutOrStdout()
	cmdPing.SetOut(buf)
	return buf, func() {
		cmdPing.SetOut(origOut)
	}
}

func TestPingSuccess(t *testing.T) {
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (string, error) {
			if timeout != 2*time.Second {
				t.Fatalf("expected timeout 2s, got %v", timeout)
			}
			return "pong", nil
		},
	})
	buf, restore := withPingOutput(t)
	defer restore()

	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 2
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	if err := cmdPing.RunE(cmdPing, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "pong\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPingError(t *testing.T) {
	expected := errors.New("daemon down")
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (string, error) {
			return "", expected
		},
	})
	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 1
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	err := cmdPing.RunE(cmdPing, nil)
	if !errors.Is(err, expected) {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}

func TestListEmptyRegistry(t *testing.T) {
	withController(t, &stubController{
		listFunc: func(ctx context.Context, params app.ListParams) ([]app.Server, error) {
			return nil, nil
		},
	})

	buf := &bytes.Buffer{}
	origOut := cmdList.OutOrStdout()
	cmdList.SetOut(buf)
	t.Cleanup(func() { cmdList.SetOut(origOut) })

	if err := cmdList.RunE(cmdList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "No dev servers registered\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
