package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/git-hulk/requestkit/pkg/logger"
	"github.com/git-hulk/requestkit/pkg/substitute"
	"github.com/git-hulk/requestkit/pkg/variables"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	dir          string
	fileName     string
	matchMode    string
	skipComments bool
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "requestkit",
		Short: "Prepare raw HTTP request text before it is sent",
		Long: `requestkit substitutes {{VAR}} placeholders from a local .env file or the
process environment, percent-encodes URLs and renders documents as compact text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zapcore.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			config := logger.DefaultConfig()
			config.Level = level
			return logger.Init(config)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", "", "Directory holding the variable file (default: working directory)")
	flags.StringVar(&opts.fileName, "env-file", variables.DefaultFileName, "Variable file name")
	flags.StringVar(&opts.matchMode, "match", "exact", "Variable key matching: exact or pattern")
	flags.BoolVar(&opts.skipComments, "skip-comments", false, "Ignore '#' lines in the variable file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newResolveCmd(opts),
		newEncodeCmd(),
		newSerializeCmd(),
		newStatusCmd(),
		newPrepareCmd(opts),
	)
	return cmd
}

func (o *rootOptions) substitutor() (*substitute.Substitutor, error) {
	mode, err := variables.ParseMatchMode(o.matchMode)
	if err != nil {
		return nil, err
	}
	storeOptions := []variables.Option{
		variables.WithDir(o.dir),
		variables.WithFileName(o.fileName),
	}
	if o.skipComments {
		storeOptions = append(storeOptions, variables.WithSkipComments())
	}
	return substitute.New(
		substitute.WithStore(variables.NewStore(storeOptions...)),
		substitute.WithMatchMode(mode),
	), nil
}
