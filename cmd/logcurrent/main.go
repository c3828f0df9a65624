package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mxgoldstein/log-current/internal/config"
	"github.com/mxgoldstein/log-current/internal/core"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set via ldflags
var version = "0.3.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootCmd creates the log-current command
func rootCmd() *cobra.Command {
	var (
		auto      bool
		command   string
		directory string
		list      bool
		prefix    string
		suffix    string
		wait      int
		fuzzy     bool
		format    string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "log-current [options]",
		Short: "Find the log files that are currently being written to",
		Long: `log-current takes two snapshots of a log directory a few seconds apart and
lists the files that appeared or changed size in between. Pick one and the
configured command (tail -f by default) is run on it.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			// Override config with CLI flags
			flags := cmd.Flags()
			if flags.Changed("auto") {
				cfg.Auto = auto
			}
			if flags.Changed("command") {
				cfg.Command = command
			}
			if flags.Changed("directory") {
				cfg.Directory = directory
			}
			if flags.Changed("list") {
				cfg.ListOnly = list
			}
			if flags.Changed("prefix") {
				cfg.Prefix = prefix
			}
			if flags.Changed("suffix") {
				cfg.Suffix = suffix
			}
			if flags.Changed("wait") {
				cfg.Wait = wait
			}
			if flags.Changed("fuzzy") {
				cfg.Fuzzy = fuzzy
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			// Usage text is only for command line mistakes
			cmd.SilenceUsage = true

			if cfg.Contradictory(flags.Changed("command")) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --command (-c) and --list (-l) contradict each other")
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			session := core.NewSession(cfg, logger)
			session.SetOutput(cmd.OutOrStdout())
			session.SetInput(cmd.InOrStdin())

			result, err := session.Run(context.Background())
			if err != nil {
				logger.Error("Observation failed", zap.Error(err))
				return err
			}

			logger.Info("Observation completed",
				zap.Duration("duration", result.Duration),
				zap.Int("changed", result.Changed.Len()),
				zap.Bool("command_ran", result.CommandRan))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&auto, "auto", "a", false, "Automatically select the first log file and ignore all others")
	cmd.Flags().StringVarP(&command, "command", "c", config.DefaultCommand, "Command to be applied to the selected log file")
	cmd.Flags().StringVarP(&directory, "directory", "d", config.DefaultDirectory, "Directory to observe")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Only list files")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Only consider files whose name starts with this")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Only consider files whose name ends with this")
	cmd.Flags().IntVarP(&wait, "wait", "w", config.DefaultWait, "Seconds to wait between the two snapshots")
	cmd.Flags().BoolVarP(&fuzzy, "fuzzy", "f", false, "Pick the file with a fuzzy finder instead of a numbered list")
	cmd.Flags().StringVar(&format, "format", config.FormatText, "Listing format for --list: text, json, yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &config.Error{Err: err}
	})

	return cmd
}

// newLogger returns a development logger when verbose, otherwise one that
// only reports errors
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	return cfg.Build()
}
