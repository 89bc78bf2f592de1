package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <template>...",
		Short: "Substitute {{VAR}} placeholders and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.substitutor()
			if err != nil {
				return err
			}
			resolved, err := s.ResolveAll(args...)
			if err != nil {
				return err
			}
			for _, line := range resolved {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
