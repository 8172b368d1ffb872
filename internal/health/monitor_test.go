package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestProbeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD probe, got %s", r.Method)
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Probe(ctx, srv.URL); err != nil {
		t.Fatalf("unexpected probe error: %v", err)
	}
}

func TestProbeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := Probe(context.Background(), srv.URL)
	var check *CheckError
	if !errors.As(err, &check) {
		t.Fatalf("expected *CheckError, got %v", err)
	}
	if check.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500 in error, got %d", check.StatusCode)
	}
}

func TestProbeConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if err := Probe(context.Background(), url); err == nil {
		t.Fatal("expected error probing a closed server")
	}
}

func TestMonitorReportsReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	reports := make(chan bool, 4)
	m := NewMonitor(srv.URL, 20*time.Millisecond, time.Second, func(reachable bool, err error) {
		reports <- reachable
	})
	m.Start()
	defer m.Stop()

	select {
	case reachable := <-reports:
		if !reachable {
			t.Fatal("expected reachable verdict")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no report within deadline")
	}
}

func TestMonitorSelfTerminatesOnFailure(t *testing.T) {
	var probes atomic.Int64
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	var mu sync.Mutex
	var verdicts []bool
	m := NewMonitor(srv.URL, 20*time.Millisecond, time.Second, func(reachable bool, err error) {
		mu.Lock()
		verdicts = append(verdicts, reachable)
		mu.Unlock()
	})
	m.Start()

	// Let at least one healthy probe land, then flip to failing.
	time.Sleep(60 * time.Millisecond)
	fail.Store(true)

	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not self-terminate after a failed probe")
	}

	settled := probes.Load()
	time.Sleep(100 * time.Millisecond)
	if got := probes.Load(); got != settled {
		t.Fatalf("probing continued after self-termination: %d -> %d", settled, got)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(verdicts) == 0 || verdicts[len(verdicts)-1] {
		t.Fatalf("expected a final unreachable verdict, got %v", verdicts)
	}
}

func TestMonitorStopIsIdempotent(t *testing.T) {
	m := NewMonitor("http://localhost:0", time.Hour, time.Second, nil)
	m.Start()
	m.Stop()
	m.Stop()
	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
