package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/git-hulk/requestkit/pkg/status"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <code>...",
		Short: "Print the reason phrase of HTTP status codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				code, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid status code %q", arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), status.Text(code))
			}
			return nil
		},
	}
}
