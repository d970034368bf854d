package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/t14raptor/regen/internal/ui"
	"github.com/t14raptor/regen/transform/regenerator"
)

var stepsCmd = &cobra.Command{
	Use:   "steps [file]",
	Short: "Count the yields and steps of every generator in a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		return RunSteps(cmd.OutOrStdout(), src, rewriteCfg)
	},
}

func init() {
	addRewriteFlags(stepsCmd)
	rootCmd.AddCommand(stepsCmd)
}

func RunSteps(w io.Writer, src string, cfg regenerator.Config) error {
	_, report, err := transpile(src, cfg)
	if err != nil {
		return err
	}
	ui.StepsTable(w, report)
	return nil
}
