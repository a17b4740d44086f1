package cmd

import (
	"fmt"
	"sort"

	"github.com/solverlab/mipbench/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured instances, algorithms, and seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Solver: %s (parallel: %d)\n", cfg.Solver, cfg.Parallel)

			fmt.Println("\nInstances:")
			for _, name := range cfg.Instances {
				fmt.Printf("  - %s (%s)\n", name, cfg.InstancePath(name))
			}

			fmt.Println("\nAlgorithms:")
			names := make([]string, 0, len(cfg.Algorithms))
			for name := range cfg.Algorithms {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  - %s (%d args)\n", name, len(cfg.Algorithms[name]))
			}

			fmt.Printf("\nSeeds: %v\n", cfg.Seeds)
			return nil
		},
	}
}
