package app

import (
	"context"
	"fmt"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"
)

// Ping contacts the daemon and returns its health response.
func (a *App) Ping(ctx context.Context, timeout time.Duration) (string, error) {
	var msg string
	err := a.withClient(ctx, timeout, func(ctx context.Context, client devserverv1.DevServerClient) error {
		resp, err := client.Ping(ctx, &devserverv1.PingRequest{})
		if err != nil {
			return fmt.Errorf("daemon ping RPC failed: %w", err)
		}
		msg = resp.GetOk()
		return nil
	})
	return msg, err
}
