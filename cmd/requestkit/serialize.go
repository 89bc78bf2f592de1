package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/git-hulk/requestkit/pkg/serialize"
)

func newSerializeCmd() *cobra.Command {
	var colon bool
	cmd := &cobra.Command{
		Use:   "serialize <file|->",
		Short: "Render a YAML or JSON document as compact bracketed text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			doc, err := serialize.FromYAML(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), serialize.Serialize(doc, colon))
			return nil
		},
	}
	cmd.Flags().BoolVar(&colon, "colon", false, "Separate entries with ':' instead of ','")
	return cmd
}
