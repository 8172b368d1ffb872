package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"
)

// Health probes the project's primary URL on demand and returns the
// verdict the daemon recorded.
func (a *App) Health(ctx context.Context, projectID string, timeout time.Duration) (bool, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return false, errors.New("project id is required")
	}

	var reachable bool
	err := a.withClient(ctx, timeout, func(ctx context.Context, client devserverv1.DevServerClient) error {
		resp, err := client.CheckHealth(ctx, &devserverv1.CheckHealthRequest{ProjectId: projectID})
		if err != nil {
			return fmt.Errorf("daemon health RPC failed: %w", err)
		}
		reachable = resp.GetReachable()
		return nil
	})
	return reachable, err
}
