package app

import (
	"context"
	"fmt"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"
)

// ListParams scopes the listing. An empty ProjectID lists everything.
type ListParams struct {
	ProjectID string
	Timeout   time.Duration
}

// List fetches registry entries, optionally scoped to one project.
func (a *App) List(ctx context.Context, params ListParams) ([]Server, error) {
	var servers []Server
	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client devserverv1.DevServerClient) error {
		resp, err := client.List(ctx, &devserverv1.ListRequest{ProjectId: params.ProjectID})
		if err != nil {
			return fmt.Errorf("daemon list RPC failed: %w", err)
		}
		servers = serversFromProto(resp.GetRecords())
		return nil
	})
	return servers, err
}
