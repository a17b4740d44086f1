package cmd

import (
	"fmt"

	"github.com/solverlab/mipbench/internal/config"
	"github.com/solverlab/mipbench/internal/matrix"
	"github.com/solverlab/mipbench/internal/result"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [log-file]",
		Short: "Check a result log against the configured trial matrix",
		Long:  "Compare the identities recorded in a result log with the full instance × algorithm × seed matrix, reporting completed, missing, and unknown trials.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			logPath := cfg.Output
			if len(args) > 0 {
				logPath = args[0]
			}

			specs := matrix.Build(cfg)
			completed, err := result.LoadCompleted(logPath)
			if err != nil {
				return err
			}

			expected := make(map[result.Identity]bool, len(specs))
			var missing []result.Identity
			done := 0
			for _, s := range specs {
				expected[s.Identity] = true
				if completed[s.Identity] {
					done++
				} else {
					missing = append(missing, s.Identity)
				}
			}
			unknown := 0
			for id := range completed {
				if !expected[id] {
					unknown++
				}
			}

			fmt.Printf("Matrix: %d trials (%d instances × %d algorithms × %d seeds)\n",
				len(specs), len(cfg.Instances), len(cfg.Algorithms), len(cfg.Seeds))
			fmt.Printf("Completed: %d\nMissing: %d\nUnknown rows: %d\n", done, len(missing), unknown)

			const maxListed = 20
			for i, id := range missing {
				if i == maxListed {
					fmt.Printf("  ... and %d more\n", len(missing)-maxListed)
					break
				}
				fmt.Printf("  missing: %s / %s / seed %d\n", id.Instance, id.Algorithm, id.Seed)
			}

			if len(missing) > 0 {
				return fmt.Errorf("%d trials missing from %s", len(missing), logPath)
			}
			return nil
		},
	}
}
