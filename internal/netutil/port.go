// Package netutil finds free local TCP ports by speculative bind/release.
package netutil

import (
	"fmt"
	"net"
	"strconv"
)

// PortExhaustedError reports that no free port was found within the
// attempt budget.
type PortExhaustedError struct {
	StartPort int
	Attempts  int
}

func (e *PortExhaustedError) Error() string {
	return fmt.Sprintf("no available port within %d attempts starting at %d", e.Attempts, e.StartPort)
}

// IsPortAvailable reports whether a listener can currently bind the
// port on localhost. The transient listener is released immediately.
func IsPortAvailable(port int) bool {
	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	ln.Close()
	return true
}

// FindAvailablePort probes start, start+1, ... sequentially and returns
// the first port a listener can bind. Probing is deliberately not
// parallel: concurrent probes within one call could settle on the same
// port. Fails with *PortExhaustedError after maxAttempts misses.
func FindAvailablePort(start, maxAttempts int) (int, error) {
	if start <= 0 || start > 65535 {
		return 0, fmt.Errorf("invalid start port %d", start)
	}
	if maxAttempts <= 0 {
		return 0, fmt.Errorf("invalid attempt budget %d", maxAttempts)
	}
	for i := 0; i < maxAttempts; i++ {
		port := start + i
		if port > 65535 {
			break
		}
		if IsPortAvailable(port) {
			return port, nil
		}
	}
	return 0, &PortExhaustedError{StartPort: start, Attempts: maxAttempts}
}
