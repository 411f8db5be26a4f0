// Package config loads routesim's experiment configuration.
package config

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"
)

// TopologyConfig selects a harness topology generator and its parameters.
// Only the fields relevant to Kind need to be set.
type TopologyConfig struct {
	Kind string  `mapstructure:"kind"` // barabasi_albert, watts_strogatz, grid, random_sparse, tree
	N    int     `mapstructure:"n"`
	M    int     `mapstructure:"m"`
	K    int     `mapstructure:"k"`
	Beta float64 `mapstructure:"beta"`
	Rows int     `mapstructure:"rows"`
	Cols int     `mapstructure:"cols"`
	P    float64 `mapstructure:"p"`
}

// ScenarioConfig selects which harness driver to run and its parameters.
type ScenarioConfig struct {
	Kind           string   `mapstructure:"kind"` // trial, random_removal, targeted_removal, dynamic, disconnect
	Trials         int      `mapstructure:"trials"`
	Fraction       float64  `mapstructure:"fraction"`
	Rounds         int      `mapstructure:"rounds"`
	RemoveFraction float64  `mapstructure:"remove_fraction"`
	AddFraction    float64  `mapstructure:"add_fraction"`
	CutSet         []string `mapstructure:"cut_set"`
}

// OutputConfig controls where routesim writes its report and logs.
type OutputConfig struct {
	ReportPath string `mapstructure:"report_path"`
	LogLevel   string `mapstructure:"log_level"`
}

// ExperimentConfig is the top-level shape of a routesim run's YAML file.
type ExperimentConfig struct {
	Seed     int64          `mapstructure:"seed"`
	Topology TopologyConfig `mapstructure:"topology"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
	Output   OutputConfig   `mapstructure:"output"`
}

// Load reads an ExperimentConfig from configPath, applying defaults for
// any field the file omits.
func Load(configPath string) (*ExperimentConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", configPath, err)
	}
	v.AutomaticEnv()

	var cfg ExperimentConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads an ExperimentConfig from in-memory YAML, for tests.
func LoadFromReader(content []byte) (*ExperimentConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	var cfg ExperimentConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 1)
	v.SetDefault("topology.kind", "barabasi_albert")
	v.SetDefault("topology.n", 100)
	v.SetDefault("topology.m", 2)
	v.SetDefault("topology.k", 4)
	v.SetDefault("topology.beta", 0.1)
	v.SetDefault("topology.p", 0.05)
	v.SetDefault("scenario.kind", "trial")
	v.SetDefault("scenario.trials", 200)
	v.SetDefault("scenario.fraction", 0.05)
	v.SetDefault("scenario.rounds", 10)
	v.SetDefault("scenario.remove_fraction", 0.05)
	v.SetDefault("scenario.add_fraction", 0.05)
	v.SetDefault("output.report_path", "report.json")
	v.SetDefault("output.log_level", "info")
}

// Validate rejects configuration values the harness cannot act on.
func (c *ExperimentConfig) Validate() error {
	switch c.Topology.Kind {
	case "barabasi_albert", "watts_strogatz", "grid", "random_sparse", "tree":
	default:
		return fmt.Errorf("unsupported topology kind: %q", c.Topology.Kind)
	}
	switch c.Scenario.Kind {
	case "trial", "random_removal", "targeted_removal", "dynamic", "disconnect":
	default:
		return fmt.Errorf("unsupported scenario kind: %q", c.Scenario.Kind)
	}
	if c.Topology.N <= 0 && c.Topology.Kind != "grid" {
		return fmt.Errorf("topology.n must be positive")
	}
	if c.Topology.Kind == "grid" && (c.Topology.Rows <= 0 || c.Topology.Cols <= 0) {
		return fmt.Errorf("topology.rows and topology.cols must be positive for a grid topology")
	}
	return nil
}
