package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"
)

// StartParams configures the start command.
type StartParams struct {
	Project Project
	Timeout time.Duration
}

func (p *StartParams) normalize() error {
	p.Project.Path = strings.TrimSpace(p.Project.Path)
	if p.Project.Path == "" {
		return errors.New("project path is required")
	}
	abs, err := filepath.Abs(p.Project.Path)
	if err != nil {
		return fmt.Errorf("resolve project path: %w", err)
	}
	p.Project.Path = abs

	p.Project.ID = strings.TrimSpace(p.Project.ID)
	if p.Project.ID == "" {
		p.Project.ID = filepath.Base(abs)
	}
	if p.Project.Name == "" {
		p.Project.Name = p.Project.ID
	}
	return nil
}

// Start launches both dev servers for the project and waits until each
// reports readiness (or fails).
func (a *App) Start(ctx context.Context, params StartParams) ([]Server, error) {
	if err := params.normalize(); err != nil {
		return nil, err
	}

	var servers []Server
	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client devserverv1.DevServerClient) error {
		resp, err := client.Start(ctx, &devserverv1.StartRequest{
			ProjectId: params.Project.ID,
			Name:      params.Project.Name,
			Path:      params.Project.Path,
		})
		if err != nil {
			return fmt.Errorf("daemon start RPC failed: %w", err)
		}
		servers = serversFromProto(resp.GetRecords())
		return nil
	})
	return servers, err
}
