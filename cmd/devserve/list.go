package main

import (
	"fmt"
	"time"

	"devserve/internal/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdList)
}

var listProjectID string

func init() {
	cmdList.Flags().StringVarP(&listProjectID, "id", "i", "", "Only list servers of this project")
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List all dev servers managed by the daemon",
	Long:  `Fetches the server registry from the daemon via gRPC.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		servers, err := controller().List(cmd.Context(), app.ListParams{
			ProjectID: listProjectID,
			Timeout:   2 * time.Second,
		})
		if err != nil {
			return err
		}

		if len(servers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No dev servers registered")
			return nil
		}

		for _, s := range servers {
			reach := "unreachable"
			if s.Reachable {
				reach = "reachable"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s/%s] %-8s %-11s %s pid=%d\n",
				s.ProjectID, s.Type, s.Status, reach, s.URL, s.PID)
			if s.LastError != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "    last error: %s\n", s.LastError)
			}
		}
		return nil
	},
}
