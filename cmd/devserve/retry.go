package main

import (
	"fmt"
	"time"

	"devserve/internal/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdRetry)
}

var (
	retryProjectID      string
	retryTimeoutSeconds int
)

func init() {
	cmdRetry.Flags().StringVarP(&retryProjectID, "id", "i", "", "Project identifier (defaults to the directory name)")
	cmdRetry.Flags().IntVarP(&retryTimeoutSeconds, "timeout", "t", 90, "Timeout in seconds for the relaunch")
}

var cmdRetry = &cobra.Command{
	Use:   "retry [path]",
	Short: "Tear down and relaunch a project's dev servers",
	Long:  `Stops whatever is still running for the project and starts both servers again. The daemon caps the number of attempts per project; successful starts reset the counter.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		result, err := controller().Retry(cmd.Context(), app.StartParams{
			Project: app.Project{ID: retryProjectID, Path: path},
			Timeout: time.Duration(retryTimeoutSeconds) * time.Second,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Attempt %d succeeded\n", result.Attempt)
		for _, s := range result.Servers {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %s\n", s.Type, s.Status, s.URL)
		}
		return nil
	},
}
