package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mipbench",
		Short: "Batch runner for MIP heuristic benchmark experiments",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "mipbench.yaml", "config file path")
	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newValidateCmd())
	return root
}
