package daemon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"
	"devserve/internal/config"
	"devserve/internal/orchestrator"

	"google.golang.org/grpc"
)

// Server wraps the UNIX listener and the gRPC server bound to it.
type Server struct {
	ln   net.Listener
	path string
	grpc *grpc.Server
	orc  *orchestrator.Orchestrator
}

// Close drains in-flight RPCs, stops every supervised server and
// unlinks the socket.
func (s *Server) Close() error {
	if s.orc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.orc.Close(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return RemovePID()
}

// StartDaemon binds the UNIX socket and serves the DevServer gRPC API.
// configPath may be empty; defaults apply then.
func StartDaemon(configPath string) (*Server, error) {
	if err := EnsureRuntimeDir(); err != nil {
		return nil, err
	}
	path := SocketPath()

	// If stale socket file exists but daemon is not running, remove it
	if _, err := os.Stat(path); err == nil && !IsRunning() {
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		ln.Close()
		return nil, err
	}

	orc := orchestrator.New(cfg)
	gs := grpc.NewServer()
	devserverv1.RegisterDevServerServer(gs, newService(orc))

	s := &Server{ln: ln, path: path, grpc: gs, orc: orc}
	if err := WritePID(os.Getpid()); err != nil {
		s.Close()
		return nil, err
	}
	go func() {
		if err := gs.Serve(ln); err != nil {
			log.Printf("grpc serve: %v", err)
		}
	}()
	return s, nil
}

// StopRunningDaemon sends a termination signal to the currently running daemon if any.
func StopRunningDaemon(force bool) error {
	pid, err := RunningPID()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if IsRunning() {
				return fmt.Errorf("daemon is running but PID file %q is missing; stop it manually", PIDPath())
			}
			return nil
		}
		return fmt.Errorf("unable to read daemon PID: %w", err)
	}
	if pid == os.Getpid() {
		return errors.New("refusing to stop current process")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := sendSignal(proc, syscall.SIGTERM); err != nil {
		return err
	}
	if waitForShutdown(3 * time.Second) {
		return nil
	}
	if !force {
		return fmt.Errorf("daemon process %d did not exit after SIGTERM", pid)
	}
	if err := sendSignal(proc, syscall.SIGKILL); err != nil {
		return err
	}
	if waitForShutdown(2 * time.Second) {
		return nil
	}
	return fmt.Errorf("daemon process %d did not exit after SIGKILL", pid)
}

func sendSignal(proc *os.Process, sig syscall.Signal) error {
	if err := proc.Signal(sig); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			_ = RemovePID()
			return nil
		}
		return err
	}
	return nil
}

func waitForShutdown(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if !IsRunning() {
			_ = RemovePID()
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}
