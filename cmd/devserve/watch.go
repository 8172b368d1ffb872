package main

import (
	"fmt"
	"time"

	"devserve/internal/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdWatch)
}

var watchProjectID string

func init() {
	cmdWatch.Flags().StringVarP(&watchProjectID, "id", "i", "", "Only watch events of this project")
}

var cmdWatch = &cobra.Command{
	Use:   "watch",
	Short: "Stream lifecycle events from the daemon",
	Long:  `Subscribes to the daemon's event stream and prints status changes and errors until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return controller().Watch(cmd.Context(), watchProjectID, func(ev app.Event) error {
			stamp := ev.Time.Format(time.TimeOnly)
			switch ev.Type {
			case "error":
				fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] error: %s\n", stamp, ev.ProjectID, ev.Message)
			default:
				reach := "unreachable"
				if ev.Reachable {
					reach = "reachable"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s:", stamp, ev.ProjectID, reach)
				for _, s := range ev.Servers {
					fmt.Fprintf(cmd.OutOrStdout(), " %s=%s", s.Type, s.Status)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		})
	},
}
