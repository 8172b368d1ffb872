package app

import (
	"context"
	"fmt"

	devserverv1 "devserve/api/proto/devserver/v1"
)

// RetryResult reports the outcome of one restart attempt.
type RetryResult struct {
	Servers []Server
	Attempt int
}

// Retry tears down and relaunches both dev servers for the project.
// The daemon enforces the per-project attempt ceiling.
func (a *App) Retry(ctx context.Context, params StartParams) (RetryResult, error) {
	var result RetryResult
	if err := params.normalize(); err != nil {
		return result, err
	}

	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client devserverv1.DevServerClient) error {
		resp, err := client.Retry(ctx, &devserverv1.RetryRequest{
			ProjectId: params.Project.ID,
			Name:      params.Project.Name,
			Path:      params.Project.Path,
		})
		if err != nil {
			return fmt.Errorf("daemon retry RPC failed: %w", err)
		}
		result.Servers = serversFromProto(resp.GetRecords())
		result.Attempt = int(resp.GetAttempt())
		return nil
	})
	return result, err
}
