package netutil

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"testing"
)

// occupy binds an ephemeral port and returns it with a release func.
func occupy(t *testing.T) (int, func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("bind ephemeral port: %v", err)
	}
	return ln.Addr().(*net.TCPAddr).Port, func() { ln.Close() }
}

func TestIsPortAvailable(t *testing.T) {
	port, release := occupy(t)

	if IsPortAvailable(port) {
		t.Fatalf("port %d has a live listener but was reported available", port)
	}

	release()
	if !IsPortAvailable(port) {
		t.Fatalf("port %d was released but reported unavailable", port)
	}
}

func TestFindAvailablePortSkipsOccupied(t *testing.T) {
	// Occupy three consecutive ports; the fourth should win.
	base, release := occupy(t)
	defer release()

	listeners := make([]net.Listener, 0, 2)
	defer func() {
		for _, ln := range listeners {
			ln.Close()
		}
	}()
	for i := 1; i <= 2; i++ {
		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(base+i)))
		if err != nil {
			t.Skipf("port %d not bindable in this environment: %v", base+i, err)
		}
		listeners = append(listeners, ln)
	}

	got, err := FindAvailablePort(base, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != base+3 {
		t.Fatalf("expected port %d, got %d", base+3, got)
	}
}

func TestFindAvailablePortExhaustsBudget(t *testing.T) {
	base, release := occupy(t)
	defer release()

	_, err := FindAvailablePort(base, 1)
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	var exhausted *PortExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *PortExhaustedError, got %T", err)
	}
	if exhausted.StartPort != base {
		t.Fatalf("error should name the starting port %d, got %d", base, exhausted.StartPort)
	}
	if !strings.Contains(err.Error(), strconv.Itoa(base)) {
		t.Fatalf("error message should mention the starting port: %s", err)
	}
}

func TestFindAvailablePortRejectsBadArguments(t *testing.T) {
	if _, err := FindAvailablePort(0, 5); err == nil {
		t.Fatal("expected error for invalid start port")
	}
	if _, err := FindAvailablePort(3000, 0); err == nil {
		t.Fatal("expected error for invalid attempt budget")
	}
}
