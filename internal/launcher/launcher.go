// Package launcher spawns dev-server processes and watches their
// output for a readiness marker.
package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"devserve/internal/registry"
)

// Spec describes one dev server to spawn.
type Spec struct {
	ProjectID string
	Type      registry.ServerType
	Name      string
	Dir       string
	Command   []string
	Port      int
	// ReadyMarker is the substring expected in the process output once
	// the server is serving. Tool-specific; comes from config.
	ReadyMarker string
	Timeout     time.Duration
	Env         []string
}

// ProcessExitedEarlyError reports a child that terminated before its
// readiness marker appeared. Usually retryable: a port claimed between
// probe and bind surfaces this way.
type ProcessExitedEarlyError struct {
	Name     string
	ExitCode int
}

func (e *ProcessExitedEarlyError) Error() string {
	return fmt.Sprintf("%s exited with code %d before becoming ready", e.Name, e.ExitCode)
}

// ProcessStartTimeoutError reports that the readiness marker was not
// observed within the startup deadline. The child has been killed by
// the time this error is returned.
type ProcessStartTimeoutError struct {
	Name    string
	Timeout time.Duration
}

func (e *ProcessStartTimeoutError) Error() string {
	return fmt.Sprintf("%s did not become ready within %s", e.Name, e.Timeout)
}

// readTail bounds the accumulated output buffer. Trimming keeps at
// least this many trailing bytes so a marker straddling two delivery
// chunks is still found.
const readTail = 8 * 1024

// Launch spawns the process described by spec and blocks until the
// readiness marker is observed, the child exits, the deadline elapses,
// or ctx is cancelled. It resolves exactly once. On timeout or
// cancellation the spawned process group is killed before returning so
// no orphan survives.
func Launch(ctx context.Context, spec Spec) (registry.ServerRecord, error) {
	var zero registry.ServerRecord
	if len(spec.Command) == 0 {
		return zero, errors.New("launch: empty command")
	}
	if spec.ReadyMarker == "" {
		return zero, errors.New("launch: empty readiness marker")
	}
	if spec.Timeout <= 0 {
		return zero, errors.New("launch: timeout must be positive")
	}

	cmd := exec.Command(spec.Command[0], spec.Command[1:]...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zero, fmt.Errorf("stdout pipe for %s: %w", spec.Name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		stdout.Close()
		return zero, fmt.Errorf("stderr pipe for %s: %w", spec.Name, err)
	}

	if err := cmd.Start(); err != nil {
		stdout.Close()
		stderr.Close()
		return zero, fmt.Errorf("start %s (%s): %w", spec.Name, spec.Command[0], err)
	}

	pid := cmd.Process.Pid
	pgid, err := syscall.Getpgid(pid)
	if err != nil {
		pgid = pid
	}
	handle := registry.NewHandle(pid, pgid)

	chunks := make(chan []byte, 16)
	readersDone := make(chan struct{})
	go func() {
		defer close(readersDone)
		drain2(stdout, stderr, chunks)
	}()

	exited := make(chan error, 1)
	go func() {
		<-readersDone
		close(chunks)
		err := cmd.Wait()
		handle.MarkExited(exitCode(err))
		exited <- err
	}()

	deadline := time.NewTimer(spec.Timeout)
	defer deadline.Stop()

	// Matching runs against an accumulating buffer, never per chunk:
	// the marker may straddle two deliveries.
	var buf []byte
	marker := []byte(spec.ReadyMarker)

	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				// Output closed; the exit path owns the verdict now.
				chunks = nil
				continue
			}
			buf = appendBounded(buf, chunk)
			if bytes.Contains(buf, marker) {
				abandon(chunks)
				return readyRecord(spec, handle), nil
			}

		case err := <-exited:
			// Exit is reported only after the output channel closes, but
			// the select may still pick it ahead of buffered chunks.
			// Readiness observed anywhere in the stream wins over an
			// exit that happened after it.
			if chunks != nil {
				for chunk := range chunks {
					buf = appendBounded(buf, chunk)
				}
				if bytes.Contains(buf, marker) {
					return readyRecord(spec, handle), nil
				}
			}
			return zero, &ProcessExitedEarlyError{Name: spec.Name, ExitCode: exitCode(err)}

		case <-deadline.C:
			killGroup(pgid, pid)
			abandon(chunks)
			awaitExit(exited)
			return zero, &ProcessStartTimeoutError{Name: spec.Name, Timeout: spec.Timeout}

		case <-ctx.Done():
			killGroup(pgid, pid)
			abandon(chunks)
			awaitExit(exited)
			return zero, ctx.Err()
		}
	}
}

// abandon keeps draining remaining output so the child (or its reaper)
// never blocks on a full pipe once the caller stops consuming.
func abandon(chunks <-chan []byte) {
	if chunks == nil {
		return
	}
	go func() {
		for range chunks {
		}
	}()
}

func readyRecord(spec Spec, handle *registry.Handle) registry.ServerRecord {
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

// drain2 forwards stdout and stderr chunks into out until both reach
// EOF. The two streams interleave; ordering between them is not
// meaningful for marker detection.
func drain2(a, b io.ReadCloser, out chan<- []byte) {
	done := make(chan struct{}, 2)
	for _, r := range []io.ReadCloser{a, b} {
		go func(r io.ReadCloser) {
			defer func() { done <- struct{}{} }()
			defer r.Close()
			buf := make([]byte, 4096)
			for {
				n, err := r.Read(buf)
				if n > 0 {
					chunk := make([]byte, n)
					copy(chunk, buf[:n])
					out <- chunk
				}
				if err != nil {
					return
				}
			}
		}(r)
	}
	<-done
	<-done
}

func appendBounded(buf, chunk []byte) []byte {
	buf = append(buf, chunk...)
	if len(buf) > 2*readTail {
		buf = append(buf[:0], buf[len(buf)-readTail:]...)
	}
	return buf
}

func killGroup(pgid, pid int) {
	target := pid
	if pgid > 0 {
		target = -pgid
	}
	_ = syscall.Kill(target, syscall.SIGKILL)
}

// awaitExit blocks until the reaper goroutine confirms the child is
// gone, with a cap so a wedged pipe cannot stall the caller forever.
func awaitExit(exited <-chan error) {
	select {
	case <-exited:
	case <-time.After(3 * time.Second):
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
