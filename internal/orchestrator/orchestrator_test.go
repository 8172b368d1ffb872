package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"devserve/internal/config"
	"devserve/internal/launcher"
	"devserve/internal/registry"
)

func resetSeams() {
	findPort = func(start, maxAttempts int) (int, error) { return start, nil }
	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		return runningRecord(spec, nil), nil
	}
	probeURL = func(ctx context.Context, url string) error { return nil }
	signalPG = func(pgid int, sig syscall.Signal) error { return nil }
}

func stubSeams(t *testing.T) {
	t.Helper()
	resetSeams()
	t.Cleanup(resetSeams)
}

func runningRecord(spec launcher.Spec, handle *registry.Handle) registry.ServerRecord {
	return registry.ServerRecord{
		ProjectID: spec.ProjectID,
		Type:      spec.Type,
		Name:      spec.Name,
		URL:       fmt.Sprintf("http://localhost:%d", spec.Port),
		Port:      spec.Port,
		Status:    registry.StatusRunning,
		StartedAt: time.Now(),
		Handle:    handle,
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.StopGracePeriod = 50 * time.Millisecond
	cfg.MaxRetries = 2
	return cfg
}

var project = registry.ProjectConfig{ID: "p1", Name: "demo", Path: "/tmp/demo"}

func TestStartServersLaunchesBothTypes(t *testing.T) {
	stubSeams(t)

	var launched sync.Map
	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		launched.Store(spec.Type, spec.Port)
		return runningRecord(spec, nil), nil
	}

	o := New(testConfig())
	recs, err := o.StartServers(context.Background(), project)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	if port, ok := launched.Load(registry.ServerTypePrimary); !ok || port.(int) != 5173 {
		t.Fatalf("primary not launched on base port: %v", port)
	}
	if port, ok := launched.Load(registry.ServerTypeCatalog); !ok || port.(int) != 6006 {
		t.Fatalf("catalog not launched on base port: %v", port)
	}

	snap := o.Snapshot()
	rec, ok := snap.Get(registry.ServerKey{ProjectID: "p1", Type: registry.ServerTypePrimary})
	if !ok || rec.Status != registry.StatusRunning {
		t.Fatalf("primary record not running: %+v ok=%t", rec, ok)
	}
}

func TestStartServersFailureDoesNotAbortSibling(t *testing.T) {
	stubSeams(t)

	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		if spec.Type == registry.ServerTypeCatalog {
			return registry.ServerRecord{}, &launcher.ProcessExitedEarlyError{Name: spec.Name, ExitCode: 1}
		}
		return runningRecord(spec, nil), nil
	}

	o := New(testConfig())
	_, err := o.StartServers(context.Background(), project)
	if err == nil {
		t.Fatal("expected an aggregate error for the failed catalog launch")
	}

	snap := o.Snapshot()
	primary, _ := snap.Get(registry.ServerKey{ProjectID: "p1", Type: registry.ServerTypePrimary})
	if primary.Status != registry.StatusRunning {
		t.Fatalf("sibling launch was affected: %+v", primary)
	}
	catalog, ok := snap.Get(registry.ServerKey{ProjectID: "p1", Type: registry.ServerTypeCatalog})
	if !ok || catalog.Status != registry.StatusErrored {
		t.Fatalf("failed launch should leave an errored record: %+v", catalog)
	}
	if catalog.LastError == "" {
		t.Fatal("errored record should carry the failure message")
	}
}

func TestStartServersGuardsConcurrentStart(t *testing.T) {
	stubSeams(t)

	release := make(chan struct{})
	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		<-release
		return runningRecord(spec, nil), nil
	}

	o := New(testConfig())
	done := make(chan error, 1)
	go func() {
		_, err := o.StartServers(context.Background(), project)
		done <- err
	}()

	// Wait for the first call to take the guard.
	deadline := time.Now().Add(time.Second)
	for {
		o.mu.Lock()
		_, busy := o.starting[project.ID]
		o.mu.Unlock()
		if busy {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("first start never took the guard")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := o.StartServers(context.Background(), project); !errors.Is(err, ErrAlreadyStarting) {
		t.Fatalf("expected ErrAlreadyStarting, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first start failed: %v", err)
	}
}

func TestStopServersGracefulPath(t *testing.T) {
	stubSeams(t)

	handles := make(map[registry.ServerType]*registry.Handle)
	var mu sync.Mutex
	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		h := registry.NewHandle(1000+spec.Port, 1000+spec.Port)
		mu.Lock()
		handles[spec.Type] = h
		mu.Unlock()
		return runningRecord(spec, h), nil
	}
	signalPG = func(pgid int, sig syscall.Signal) error {
		if sig == syscall.SIGTERM {
			mu.Lock()
			for _, h := range handles {
				if h.PGID == pgid {
					h.MarkExited(0)
				}
			}
			mu.Unlock()
		}
		return nil
	}

	o := New(testConfig())
	if _, err := o.StartServers(context.Background(), project); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := o.StopServers(context.Background(), "p1"); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if got := o.Snapshot().Project("p1"); len(got) != 0 {
		t.Fatalf("records not removed after stop: %+v", got)
	}
}

func TestStopServersForceKillsAfterGracePeriod(t *testing.T) {
	stubSeams(t)

	handles := make(map[int]*registry.Handle)
	var mu sync.Mutex
	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		h := registry.NewHandle(1000+spec.Port, 1000+spec.Port)
		mu.Lock()
		handles[h.PGID] = h
		mu.Unlock()
		return runningRecord(spec, h), nil
	}

	var sigterms, sigkills atomic.Int64
	signalPG = func(pgid int, sig syscall.Signal) error {
		switch sig {
		case syscall.SIGTERM:
			// Child ignores graceful termination.
			sigterms.Add(1)
		case syscall.SIGKILL:
			sigkills.Add(1)
			mu.Lock()
			if h := handles[pgid]; h != nil {
				h.MarkExited(-1)
			}
			mu.Unlock()
		}
		return nil
	}

	o := New(testConfig())
	if _, err := o.StartServers(context.Background(), project); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := o.StopServers(context.Background(), "p1"); err != nil {
		t.Fatalf("stop must not fail on a hung child: %v", err)
	}

	if sigterms.Load() != 2 || sigkills.Load() != 2 {
		t.Fatalf("expected SIGTERM then SIGKILL per server, got term=%d kill=%d", sigterms.Load(), sigkills.Load())
	}
	if got := o.Snapshot().Project("p1"); len(got) != 0 {
		t.Fatalf("records not removed after forced kill: %+v", got)
	}
}

func TestStopServersUnknownProject(t *testing.T) {
	stubSeams(t)
	o := New(testConfig())

	err := o.StopServers(context.Background(), "ghost")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestRetryConnectionEnforcesCeiling(t *testing.T) {
	stubSeams(t)

	var launches atomic.Int64
	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		launches.Add(1)
		return registry.ServerRecord{}, &launcher.ProcessExitedEarlyError{Name: spec.Name, ExitCode: 1}
	}

	o := New(testConfig()) // MaxRetries = 2
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		if _, attempt, err := o.RetryConnection(ctx, project); err == nil || attempt != i {
			t.Fatalf("retry %d: attempt=%d err=%v", i, attempt, err)
		}
	}
	before := launches.Load()

	_, _, err := o.RetryConnection(ctx, project)
	var limit *RetryLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected *RetryLimitError, got %v", err)
	}
	if limit.Max != 2 {
		t.Fatalf("error should carry the ceiling, got %d", limit.Max)
	}
	if launches.Load() != before {
		t.Fatal("excess retry still spawned a process")
	}
}

func TestRetryCounterResetsOnSuccess(t *testing.T) {
	stubSeams(t)

	var fail atomic.Bool
	fail.Store(true)
	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		if fail.Load() {
			return registry.ServerRecord{}, &launcher.ProcessExitedEarlyError{Name: spec.Name, ExitCode: 1}
		}
		return runningRecord(spec, nil), nil
	}

	o := New(testConfig())
	ctx := context.Background()

	if _, _, err := o.RetryConnection(ctx, project); err == nil {
		t.Fatal("expected first retry to fail")
	}
	fail.Store(false)
	if _, _, err := o.RetryConnection(ctx, project); err != nil {
		t.Fatalf("second retry should succeed: %v", err)
	}

	o.mu.Lock()
	count := o.retries[project.ID]
	o.mu.Unlock()
	if count != 0 {
		t.Fatalf("counter should reset after a successful start, got %d", count)
	}
}

func TestCheckHealthUpdatesReachability(t *testing.T) {
	stubSeams(t)

	o := New(testConfig())
	if _, err := o.StartServers(context.Background(), project); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	probeURL = func(ctx context.Context, url string) error { return nil }
	reachable, err := o.CheckHealth(context.Background(), "p1")
	if err != nil || !reachable {
		t.Fatalf("expected reachable, got %t err=%v", reachable, err)
	}

	probeURL = func(ctx context.Context, url string) error { return errors.New("connection refused") }
	reachable, err = o.CheckHealth(context.Background(), "p1")
	if err != nil || reachable {
		t.Fatalf("expected unreachable verdict, got %t err=%v", reachable, err)
	}

	rec, _ := o.Snapshot().Get(registry.ServerKey{ProjectID: "p1", Type: registry.ServerTypePrimary})
	if rec.Reachable {
		t.Fatal("reachability flag not cleared")
	}
	if rec.Status != registry.StatusRunning {
		t.Fatalf("health probe must not touch lifecycle status, got %s", rec.Status)
	}
	if rec.LastError == "" {
		t.Fatal("probe failure should surface in last error")
	}
}

func TestCheckHealthUnknownProject(t *testing.T) {
	stubSeams(t)
	o := New(testConfig())

	_, err := o.CheckHealth(context.Background(), "ghost")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestSubscribeDeliversStatusAndDisposerStops(t *testing.T) {
	stubSeams(t)

	o := New(testConfig())
	events, dispose := o.Subscribe()

	if _, err := o.StartServers(context.Background(), project); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	var sawRunning bool
	deadline := time.After(time.Second)
collect:
	for {
		select {
		case ev := <-events:
			if ev.Type == EventStatus && ev.ProjectID == "p1" {
				for _, rec := range ev.Records {
					if rec.Status == registry.StatusRunning {
						sawRunning = true
						break collect
					}
				}
			}
		case <-deadline:
			break collect
		}
	}
	if !sawRunning {
		t.Fatal("no status event with a running record was delivered")
	}

	dispose()
	if _, ok := <-drained(events); ok {
		t.Fatal("channel should be closed after dispose")
	}
}

func TestErrorEventOnLaunchFailure(t *testing.T) {
	stubSeams(t)

	launchProc = func(ctx context.Context, spec launcher.Spec) (registry.ServerRecord, error) {
		return registry.ServerRecord{}, &launcher.ProcessStartTimeoutError{Name: spec.Name, Timeout: time.Second}
	}

	o := New(testConfig())
	events, dispose := o.Subscribe()
	defer dispose()

	_, _ = o.StartServers(context.Background(), project)

	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == EventError && ev.ProjectID == "p1" && ev.Message != "" {
				return
			}
		case <-deadline:
			t.Fatal("no error event delivered for failed launch")
		}
	}
}

// drained consumes buffered events and returns the channel once empty,
// so a closed-channel read can be asserted.
func drained(events <-chan Event) <-chan Event {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				closed := make(chan Event)
				close(closed)
				return closed
			}
		default:
			return events
		}
	}
}
