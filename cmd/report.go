package cmd

import (
	"os"

	"github.com/solverlab/mipbench/internal/config"
	"github.com/solverlab/mipbench/internal/report"
	"github.com/spf13/cobra"
)

var flagFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [log-file]",
		Short: "Summarize a result log per algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			logPath := cfg.Output
			if len(args) > 0 {
				logPath = args[0]
			}
			return report.Generate(logPath, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
