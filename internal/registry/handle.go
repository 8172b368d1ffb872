package registry

import "sync"

// Handle is the opaque reference to a spawned dev-server process.
// The orchestrator signals the process group via PGID; Done unblocks
// once the child has been reaped.
type Handle struct {
	PID  int
	PGID int

	exitCode int
	done     chan struct{}
	once     sync.Once
}

// NewHandle wraps a started process. The launcher marks it exited
// from its reaper goroutine.
func NewHandle(pid, pgid int) *Handle {
	return &Handle{PID: pid, PGID: pgid, done: make(chan struct{})}
}

// MarkExited records the exit code and unblocks all Done waiters.
// Safe to call more than once; the first call wins.
func (h *Handle) MarkExited(code int) {
	h.once.Do(func() {
		h.exitCode = code
		close(h.done)
	})
}

// Done is closed once the process has been reaped.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Exited reports whether the process has been reaped.
func (h *Handle) Exited() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// ExitCode returns the recorded exit code. Only meaningful after Done.
func (h *Handle) ExitCode() int {
	return h.exitCode
}
