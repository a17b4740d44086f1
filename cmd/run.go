package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/solverlab/mipbench/internal/config"
	"github.com/solverlab/mipbench/internal/matrix"
	"github.com/solverlab/mipbench/internal/report"
	"github.com/solverlab/mipbench/internal/result"
	"github.com/solverlab/mipbench/internal/runner"
	"github.com/solverlab/mipbench/internal/solver"
	"github.com/spf13/cobra"
)

var (
	flagResume    bool
	flagParallel  int
	flagOutput    string
	flagInstance  string
	flagAlgorithm string
	flagSeed      int
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the benchmark trial matrix",
		RunE:  runExperiment,
	}
	cmd.Flags().BoolVar(&flagResume, "resume", false, "skip trials already present in the result log")
	cmd.Flags().IntVar(&flagParallel, "parallel", 0, "override max concurrent trials")
	cmd.Flags().StringVar(&flagOutput, "output", "", "override result log path")
	cmd.Flags().StringVar(&flagInstance, "instance", "", "filter to a single instance")
	cmd.Flags().StringVar(&flagAlgorithm, "algorithm", "", "filter to a single algorithm")
	cmd.Flags().IntVar(&flagSeed, "seed", 0, "filter to a single seed")
	return cmd
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if flagParallel > 0 {
		cfg.Parallel = flagParallel
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	cfg.Instances = filterInstances(cfg.Instances, flagInstance)
	cfg.Algorithms = filterAlgorithms(cfg.Algorithms, flagAlgorithm)
	cfg.Seeds = filterSeeds(cfg.Seeds, flagSeed)

	specs := matrix.Build(cfg)
	if len(specs) == 0 {
		return fmt.Errorf("no trials match the given filters")
	}

	resLog, completed, err := openLog(cfg.Output, flagResume)
	if err != nil {
		return err
	}
	defer resLog.Close()

	done := 0
	for i := range specs {
		if completed[specs[i].Identity] {
			done++
		}
	}
	fmt.Printf("Result log: %s\n", cfg.Output)
	if done > 0 {
		fmt.Printf("Resuming: %d of %d trials already recorded\n", done, len(specs))
	}

	sched := &runner.Scheduler{
		Workers:  cfg.Parallel,
		Exec:     &solver.Runner{Program: cfg.Solver},
		Log:      resLog,
		Progress: runner.NewProgress(len(specs), done),
		Out:      os.Stdout,
	}
	if err := sched.Run(context.Background(), specs, completed); err != nil {
		return err
	}

	fmt.Println("\n--- Results ---")
	return report.Generate(cfg.Output, "table", os.Stdout)
}

// openLog returns the log to append to and the identities already recorded
// in it. A fresh log is created unless resuming against an existing file.
func openLog(path string, resume bool) (*result.Log, map[result.Identity]bool, error) {
	if resume {
		if _, err := os.Stat(path); err == nil {
			completed, err := result.LoadCompleted(path)
			if err != nil {
				return nil, nil, err
			}
			l, err := result.Open(path)
			if err != nil {
				return nil, nil, err
			}
			return l, completed, nil
		}
	}
	l, err := result.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return l, map[result.Identity]bool{}, nil
}

func filterInstances(instances []string, name string) []string {
	if name == "" {
		return instances
	}
	var filtered []string
	for _, in := range instances {
		if in == name {
			filtered = append(filtered, in)
		}
	}
	return filtered
}

func filterAlgorithms(algorithms map[string][]string, name string) map[string][]string {
	if name == "" {
		return algorithms
	}
	filtered := map[string][]string{}
	if args, ok := algorithms[name]; ok {
		filtered[name] = args
	}
	return filtered
}

func filterSeeds(seeds []int, seed int) []int {
	if seed == 0 {
		return seeds
	}
	var filtered []int
	for _, s := range seeds {
		if s == seed {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
