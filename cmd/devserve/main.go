package main

import (
	"context"
	"log"
	"time"

	"devserve/internal/app"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devserve [command]",
	Short: "devserve: dev server lifecycle manager",
	Long:  `devserve supervises the dev servers of your frontend projects: it allocates ports, launches the processes, watches readiness output and keeps probing their URLs.`,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
}

// controllerAPI is the surface of app.App the commands use; tests swap
// the factory for a stub.
type controllerAPI interface {
	Ping(ctx context.Context, timeout time.Duration) (string, error)
	Start(ctx context.Context, params app.StartParams) ([]app.Server, error)
	Stop(ctx context.Context, projectID string, timeout time.Duration) error
	Retry(ctx context.Context, params app.StartParams) (app.RetryResult, error)
	Health(ctx context.Context, projectID string, timeout time.Duration) (bool, error)
	List(ctx context.Context, params app.ListParams) ([]app.Server, error)
	Watch(ctx context.Context, projectID string, fn func(app.Event) error) error
	Status() (app.DaemonStatus, error)
	StopDaemon(force bool) error
	StartDaemon() (*app.DaemonHandle, error)
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{ConfigPath: configPath})
}

func controller() controllerAPI {
	return controllerFactory()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
