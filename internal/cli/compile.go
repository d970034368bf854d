package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/t14raptor/regen/generator"
	"github.com/t14raptor/regen/internal/cache"
	"github.com/t14raptor/regen/internal/ui"
	"github.com/t14raptor/regen/parser"
	"github.com/t14raptor/regen/transform/regenerator"
)

// CompileOptions configures RunCompile.
type CompileOptions struct {
	Config regenerator.Config
	// CachePath names a sqlite cache database. Empty disables caching.
	CachePath string
	// Output names the file to write. Empty writes to w.
	Output string
}

var compileOpts CompileOptions

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Rewrite the generators of a file and print the result",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		compileOpts.Config = rewriteCfg
		return RunCompile(cmd.OutOrStdout(), src, compileOpts)
	},
}

func init() {
	addRewriteFlags(compileCmd)
	compileCmd.Flags().StringVar(&compileOpts.CachePath, "cache", "", "sqlite file caching compiled output")
	compileCmd.Flags().StringVarP(&compileOpts.Output, "output", "o", "", "write the result to this file")
	rootCmd.AddCommand(compileCmd)
}

// transpile parses src, rewrites its generators and prints the program.
func transpile(src string, cfg regenerator.Config) (string, *regenerator.Report, error) {
	p, err := parser.ParseFile(src)
	if err != nil {
		return "", nil, err
	}
	report, err := regenerator.Rewrite(p, cfg)
	if err != nil {
		return "", nil, err
	}
	return generator.Generate(p), report, nil
}

func RunCompile(w io.Writer, src string, opts CompileOptions) error {
	out, cached, err := compileCached(src, opts)
	if err != nil {
		return err
	}
	if opts.Output == "" {
		_, err := io.WriteString(w, out)
		return err
	}
	if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	ui.WroteLine(w, opts.Output, cached)
	return nil
}

func compileCached(src string, opts CompileOptions) (string, bool, error) {
	if opts.CachePath == "" {
		out, _, err := transpile(src, opts.Config)
		return out, false, err
	}

	c, err := cache.Open(opts.CachePath)
	if err != nil {
		return "", false, err
	}
	defer c.Close()

	key := cache.Key(src, opts.Config)
	if out, ok, err := c.Get(key); err != nil {
		return "", false, err
	} else if ok {
		slog.Debug("cache hit", "key", key)
		return out, true, nil
	}

	out, _, err := transpile(src, opts.Config)
	if err != nil {
		return "", false, err
	}
	if err := c.Put(key, out); err != nil {
		return "", false, err
	}
	return out, false, nil
}
