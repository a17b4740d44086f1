// Package matrix builds the full set of trials for an experiment: the
// Cartesian product of instances, algorithms, and seeds.
package matrix

import (
	"sort"

	"github.com/solverlab/mipbench/internal/config"
	"github.com/solverlab/mipbench/internal/result"
)

// Spec is one trial ready to run: its identity plus the resolved instance
// file path and the algorithm's fixed argument list.
type Spec struct {
	result.Identity
	InstancePath string
	Args         []string
}

// Build produces one Spec per (instance, algorithm, seed) combination.
// Pure function of the configuration; algorithm names are sorted so the
// submission order is deterministic.
func Build(cfg *config.Config) []Spec {
	algorithms := make([]string, 0, len(cfg.Algorithms))
	for name := range cfg.Algorithms {
		algorithms = append(algorithms, name)
	}
	sort.Strings(algorithms)

	specs := make([]Spec, 0, len(cfg.Seeds)*len(cfg.Instances)*len(algorithms))
	for _, seed := range cfg.Seeds {
		for _, instance := range cfg.Instances {
			for _, algorithm := range algorithms {
				specs = append(specs, Spec{
					Identity: result.Identity{
						Instance:  instance,
						Algorithm: algorithm,
						Seed:      seed,
					},
					InstancePath: cfg.InstancePath(instance),
					Args:         cfg.Algorithms[algorithm],
				})
			}
		}
	}
	return specs
}
