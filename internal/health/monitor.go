// Package health probes running dev servers for reachability.
package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// CheckError reports a probe that reached the server but got a
// non-success answer, or failed to reach it at all.
type CheckError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("health check %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("health check %s: status %d", e.URL, e.StatusCode)
}

func (e *CheckError) Unwrap() error { return e.Err }

// Probe issues a HEAD request against url and returns nil when the
// server answered with a non-error status. The caller bounds the probe
// through ctx.
func Probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return &CheckError{URL: url, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &CheckError{URL: url, Err: err}
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return &CheckError{URL: url, StatusCode: resp.StatusCode}
	}
	return nil
}

// ReportFunc receives each probe verdict. It must not block for long;
// it runs on the monitor goroutine.
type ReportFunc func(reachable bool, err error)

// Monitor polls one server URL on a fixed interval and reports the
// reachability verdict. After the first failed probe it stops itself:
// an unreachable dev server is assumed dead or wedged, and resumption
// requires an explicit restart, not more polling. The monitor never
// decides lifecycle status; it only reports reachability.
type Monitor struct {
	url      string
	interval time.Duration
	timeout  time.Duration
	report   ReportFunc

	probe func(context.Context, string) error

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewMonitor builds a monitor for url. report is invoked after every
// probe, including the final failed one.
func NewMonitor(url string, interval, timeout time.Duration, report ReportFunc) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Monitor{
		url:      url,
		interval: interval,
		timeout:  timeout,
		report:   report,
		probe:    Probe,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins periodic probing on a new goroutine.
func (m *Monitor) Start() {
	go m.run()
}

func (m *Monitor) run() {
	defer close(m.done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
			err := m.probe(ctx, m.url)
			cancel()
			if m.report != nil {
				m.report(err == nil, err)
			}
			if err != nil {
				return
			}
		}
	}
}

// Stop cancels polling. Idempotent; safe after self-termination.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Done is closed once the polling goroutine has exited, whether by
// Stop or by self-termination.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}
