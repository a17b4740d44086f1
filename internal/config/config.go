package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes one experiment: the solver binary, the instance and
// algorithm sets, the seeds, and where results go. All fields are fixed
// once loaded.
type Config struct {
	Solver       string              `yaml:"solver"`
	Parallel     int                 `yaml:"parallel"`
	Output       string              `yaml:"output"`
	InstancesDir string              `yaml:"instances_dir"`
	InstanceExt  string              `yaml:"instance_ext"`
	Instances    []string            `yaml:"instances"`
	Algorithms   map[string][]string `yaml:"algorithms"`
	Seeds        []int               `yaml:"seeds"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Solver == "" {
		return fmt.Errorf("solver is required")
	}
	if cfg.Parallel == 0 {
		cfg.Parallel = 1
	}
	if cfg.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1")
	}
	if cfg.Output == "" {
		cfg.Output = "results.csv"
	}
	if cfg.InstanceExt == "" {
		cfg.InstanceExt = ".mps.gz"
	}
	if len(cfg.Instances) == 0 {
		return fmt.Errorf("no instances defined")
	}
	seen := make(map[string]bool, len(cfg.Instances))
	for _, name := range cfg.Instances {
		if name == "" {
			return fmt.Errorf("instance names must be non-empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate instance %q", name)
		}
		seen[name] = true
	}
	if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("no algorithms defined")
	}
	for name := range cfg.Algorithms {
		if name == "" {
			return fmt.Errorf("algorithm names must be non-empty")
		}
	}
	if len(cfg.Seeds) == 0 {
		return fmt.Errorf("no seeds defined")
	}
	seenSeed := make(map[int]bool, len(cfg.Seeds))
	for _, s := range cfg.Seeds {
		if seenSeed[s] {
			return fmt.Errorf("duplicate seed %d", s)
		}
		seenSeed[s] = true
	}
	return nil
}

// InstancePath resolves the on-disk file for a named instance.
func (c *Config) InstancePath(name string) string {
	return filepath.Join(c.InstancesDir, name+c.InstanceExt)
}
