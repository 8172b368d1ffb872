package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"
)

// Stop terminates both dev servers for the project and removes their
// registry entries.
func (a *App) Stop(ctx context.Context, projectID string, timeout time.Duration) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return errors.New("project id is required")
	}
	return a.withClient(ctx, timeout, func(ctx context.Context, client devserverv1.DevServerClient) error {
		if _, err := client.Stop(ctx, &devserverv1.StopRequest{ProjectId: projectID}); err != nil {
			return fmt.Errorf("daemon stop RPC failed: %w", err)
		}
		return nil
	})
}
