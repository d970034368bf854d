// Package cli implements the regen command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/t14raptor/regen/internal/ui"
	"github.com/t14raptor/regen/transform/regenerator"
)

var (
	verbose bool
	noColor bool

	rewriteCfg = regenerator.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:           "regen",
	Short:         "regen rewrites generator functions into step functions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
		ui.SetColor(!noColor)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// addRewriteFlags registers the flags that shape the rewritten code.
func addRewriteFlags(cmd *cobra.Command) {
	d := regenerator.DefaultConfig()
	cmd.Flags().StringVar(&rewriteCfg.Adapter, "adapter", d.Adapter, "name of the function wrapping each rewritten generator")
	cmd.Flags().StringVar(&rewriteCfg.Result, "result", d.Result, "name of the {value, done} helper")
	cmd.Flags().StringVar(&rewriteCfg.ResumeParam, "resume-param", d.ResumeParam, "parameter receiving the resumed value")
	cmd.Flags().StringVar(&rewriteCfg.StepParam, "step-param", d.StepParam, "parameter receiving the step index")
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// readSource reads the file named by args, or stdin when there is none or
// it is "-".
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.ErrorLine(os.Stderr, err)
		os.Exit(1)
	}
}
