package main

import (
	"os"

	"github.com/spf13/cobra"

	"weather-ai-bot/internal/router/delivery/console"
	"weather-ai-bot/internal/router/delivery/tui"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "weatherbot",
		Short: "Weather + AI Bot",
		Long: `Weather + AI Bot answers one question per turn:
today's date, the current weather in a city, or a general knowledge question.

Without a sub-command an interactive console session starts.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default: ./config/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "keep info logs in interactive modes")

	cmd.AddCommand(
		newREPLCmd(opts),
		newAskCmd(opts),
		newBatchCmd(opts),
		newTUICmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

func newREPLCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive console session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func runREPL(cmd *cobra.Command, opts *rootOptions) error {
	a, err := bootstrap(cmd.Context(), opts, true)
	if err != nil {
		return err
	}
	defer a.close()

	return console.New(a.l, a.router).REPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Answer a single question and exit",
		Example: `  weatherbot ask what is the date today
  weatherbot ask "What's the weather in Paris?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			return console.New(a.l, a.router).Ask(cmd.Context(), args, cmd.OutOrStdout())
		},
	}
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Answer every line of a file and print the transcript",
		Long: `Routes one utterance per line. Blank lines and lines starting with '#' are skipped.
Use '-' to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			a, err := bootstrap(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			return console.New(a.l, a.router).Batch(cmd.Context(), in, cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", console.FormatText, "transcript format: text or yaml")
	return cmd
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen terminal chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			return tui.Run(cmd.Context(), a.router)
		},
	}
}
