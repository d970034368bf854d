package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/t14raptor/regen/evaluator"
	"github.com/t14raptor/regen/parser"
	"github.com/t14raptor/regen/transform/regenerator"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Rewrite the generators of a file and evaluate it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		return RunRun(cmd.OutOrStdout(), src, rewriteCfg)
	},
}

func init() {
	addRewriteFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

// RunRun evaluates src after rewriting it. console.log writes to w. The
// runtime builtins are always GeneratorFunction and generatorResult, so a
// config renaming them is bound to those builtins under the new names.
func RunRun(w io.Writer, src string, cfg regenerator.Config) error {
	p, err := parser.ParseFile(src)
	if err != nil {
		return err
	}
	if _, err := regenerator.Rewrite(p, cfg); err != nil {
		return err
	}

	in := evaluator.New(evaluator.WithStdout(w))
	d := regenerator.DefaultConfig()
	for alias, builtin := range map[string]string{cfg.Adapter: d.Adapter, cfg.Result: d.Result} {
		if alias == builtin || alias == "" {
			continue
		}
		v, _ := in.Global(builtin)
		evaluator.WithGlobal(alias, v)(in)
	}
	return in.Exec(p)
}
