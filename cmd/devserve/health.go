package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdHealth)
}

var healthTimeoutSeconds int

func init() {
	cmdHealth.Flags().IntVarP(&healthTimeoutSeconds, "timeout", "t", 10, "Timeout in seconds for the probe")
}

var cmdHealth = &cobra.Command{
	Use:   "health <project-id>",
	Short: "Probe a project's primary URL right now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reachable, err := controller().Health(cmd.Context(), args[0], time.Duration(healthTimeoutSeconds)*time.Second)
		if err != nil {
			return err
		}
		if reachable {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is reachable\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is NOT reachable\n", args[0])
		}
		return nil
	},
}
