package main

import (
	"fmt"
	"os"
	"time"

	"devserve/internal/app"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdStart)
}

var (
	startProjectID      string
	startProjectName    string
	startTimeoutSeconds int
)

func init() {
	cmdStart.Flags().StringVarP(&startProjectID, "id", "i", "", "Project identifier (defaults to the directory name)")
	cmdStart.Flags().StringVarP(&startProjectName, "name", "n", "", "Display name (defaults to the project id)")
	cmdStart.Flags().IntVarP(&startTimeoutSeconds, "timeout", "t", 90, "Timeout in seconds for both servers to report readiness")
}

var cmdStart = &cobra.Command{
	Use:   "start [path]",
	Short: "Launch both dev servers for a project",
	Long:  `Allocates free ports, launches the primary and catalog dev servers and blocks until each prints its readiness marker.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		startSpin := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(os.Stdout))
		startSpin.Suffix = " Starting dev servers..."
		startSpin.Start()
		servers, err := controller().Start(cmd.Context(), app.StartParams{
			Project: app.Project{ID: startProjectID, Name: startProjectName, Path: path},
			Timeout: time.Duration(startTimeoutSeconds) * time.Second,
		})
		startSpin.Stop()
		if err != nil {
			return err
		}

		for _, s := range servers {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %s\n", s.Type, s.Status, s.URL)
		}
		return nil
	},
}
