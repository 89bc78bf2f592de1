package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/git-hulk/requestkit/pkg/urlenc"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <url>",
		Short: "Percent-encode a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := urlenc.Encode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
}
