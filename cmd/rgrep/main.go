package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gubarz/rgrep/internal/config"
	"github.com/gubarz/rgrep/internal/logger"
	"github.com/gubarz/rgrep/internal/output"
	"github.com/gubarz/rgrep/internal/search"
	"github.com/gubarz/rgrep/internal/ui"
)

var version = "1.0.0"

var rootCmd = newRootCmd()

// page shows the collected results; replaced in tests
var page = ui.Page

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rgrep <pattern> <glob>",
		Short: "Search files matching a glob for a regular expression",
		Long: `Simpler version of grep with regular expressions and file wildcards.

Every file matched by the glob is scanned line by line. The first match on
each line is printed with its line number and column, grouped by file.

Examples:
  rgrep 'fn \w+' 'src/**/*.rs'
  rgrep -j 4 TODO '*.go'`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}

	cmd.Flags().String("color", config.ColorAuto, "Colorize output: auto, always, never")
	cmd.Flags().IntP("workers", "j", 0, "Number of files scanned in parallel (default: number of CPUs)")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().Bool("pager", false, "Show results in an interactive pager")

	viper.BindPFlag("color", cmd.Flags().Lookup("color"))
	viper.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("pager", cmd.Flags().Lookup("pager"))

	return cmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := search.NewConfig(args[0], args[1])

	workers := config.GetWorkers()
	if n, _ := cmd.Flags().GetInt("workers"); n > 0 {
		workers = n
	}

	pager := config.GetPager()

	var dst io.Writer = cmd.OutOrStdout()
	var buffered *bytes.Buffer
	if pager {
		buffered = &bytes.Buffer{}
		dst = buffered
	}

	searcher := search.NewSearcher(dst).WithWorkers(workers)

	// colors follow the terminal the results end up on
	renderer := output.NewRenderer(cmd.OutOrStdout(), config.GetColor())
	palette := output.NewPalette(renderer)
	palette.LoadFromConfig(renderer)
	searcher.WithPalette(palette)

	log := logger.NewConsoleLogger(searcher.Sink(), config.GetLogLevel()).
		WithColor(output.HasColor(renderer))
	searcher.WithLogger(log)
	log.LogTrace("config: %+v", config.C)

	if err := searcher.RunDefault(cfg); err != nil {
		return err
	}

	if !pager {
		return nil
	}

	// the pager owns the terminal, so diagnostics go to stderr
	status := logger.NewConsoleLogger(cmd.ErrOrStderr(), config.GetLogLevel()).
		WithColor(output.HasColor(renderer))
	if buffered.Len() == 0 {
		status.LogInfo("no matches, pager not opened")
		return nil
	}
	if err := page(fmt.Sprintf("rgrep %s %s", cfg.Pattern, cfg.Glob), buffered.String()); err != nil {
		// fall back to plain output
		status.LogWarn("pager unavailable: %v", err)
		if _, werr := cmd.OutOrStdout().Write(buffered.Bytes()); werr != nil {
			status.LogError("internal error: %v", fmt.Errorf("%w: %w", search.ErrWrite, werr))
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
