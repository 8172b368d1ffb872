package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdStop)
}

var stopTimeoutSeconds int

func init() {
	cmdStop.Flags().IntVarP(&stopTimeoutSeconds, "timeout", "t", 30, "Timeout in seconds for both servers to shut down")
}

var cmdStop = &cobra.Command{
	Use:   "stop <project-id>",
	Short: "Stop both dev servers of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller().Stop(cmd.Context(), args[0], time.Duration(stopTimeoutSeconds)*time.Second); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stopped dev servers for %s\n", args[0])
		return nil
	},
}
