package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	devserverv1 "devserve/api/proto/devserver/v1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Watch streams lifecycle events from the daemon and invokes fn for
// each one. It blocks until the context is cancelled, the daemon shuts
// down, or fn returns an error.
func (a *App) Watch(ctx context.Context, projectID string, fn func(Event) error) error {
	if fn == nil {
		return errors.New("event callback is required")
	}
	if !daemonIsRunning() {
		return errors.New("daemon is not running")
	}

	client, conn, err := dialDaemonClient(ctx)
	if err != nil {
		return fmt.Errorf("connect to daemon: %w", err)
	}
	if conn != nil {
		defer conn.Close()
	}

	stream, err := client.Watch(ctx, &devserverv1.WatchRequest{ProjectId: projectID})
	if err != nil {
		return fmt.Errorf("daemon watch RPC failed: %w", err)
	}
	for {
		ev, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("watch stream: %w", err)
		}
		if err := fn(eventFromProto(ev)); err != nil {
			return err
		}
	}
}
