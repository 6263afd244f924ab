package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/imonaar/uniqr/internal/buildinfo"
	"github.com/imonaar/uniqr/internal/infra/linesource"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts filterOptions

	cmd := &cobra.Command{
		Use:           "uniqr [IN_FILE] [OUT_FILE]",
		Short:         "report or filter out repeated lines in a file",
		Long:          "Collapse each run of adjacent identical lines of IN_FILE (default \"-\", standard input)\ninto one line written to OUT_FILE (default standard output).\nLines are compared without their trailing line terminator.",
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.in = linesource.Stdin
			if len(args) > 0 {
				opts.in = args[0]
			}
			if len(args) > 1 {
				opts.out = args[1]
			}
			opts.countSet = cmd.Flags().Changed("count")

			return runFilter(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "prefix lines by the number of occurrences")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file (optional)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable verbose logging (requires --log-file)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	return cmd
}
