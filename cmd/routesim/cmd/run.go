package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/compactroute/engine/config"
	"github.com/compactroute/engine/harness"
	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/oracle"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one experiment described by a config file",
	Example: `  routesim run --config experiment.yaml
  routesim run -c ./configs/disconnect.yaml -v`,
	RunE: runExperiment,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an experiment YAML file (required)")
	runCmd.MarkFlagRequired("config")
}

// experimentReport is the envelope routesim writes to OutputConfig's
// report path: the scenario that produced it, the parameters that were
// used, and the scenario-specific result.
type experimentReport struct {
	Scenario   string `json:"scenario"`
	Seed       int64  `json:"seed"`
	Topology   string `json:"topology"`
	Nodes      int    `json:"nodes"`
	DurationMs int64  `json:"duration_ms"`
	Result     any    `json:"result"`
}

func runExperiment(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log.Info().
		Str("topology", cfg.Topology.Kind).
		Str("scenario", cfg.Scenario.Kind).
		Int64("seed", cfg.Seed).
		Msg("loaded experiment config")

	view, err := buildTopology(cfg.Topology, cfg.Seed)
	if err != nil {
		return fmt.Errorf("build topology: %w", err)
	}
	log.Info().Int("nodes", view.NodeCount()).Msg("topology built")

	start := time.Now()
	result, err := runScenario(cfg, view)
	if err != nil {
		return fmt.Errorf("run scenario %q: %w", cfg.Scenario.Kind, err)
	}
	elapsed := time.Since(start)

	report := experimentReport{
		Scenario:   cfg.Scenario.Kind,
		Seed:       cfg.Seed,
		Topology:   cfg.Topology.Kind,
		Nodes:      view.NodeCount(),
		DurationMs: elapsed.Milliseconds(),
		Result:     result,
	}

	if err := writeReport(cfg.Output.ReportPath, report); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output.ReportPath).Dur("elapsed", elapsed).Msg("report written")
	return nil
}

func buildTopology(tc config.TopologyConfig, seed int64) (*netview.View, error) {
	switch tc.Kind {
	case "barabasi_albert":
		return harness.BarabasiAlbertView(tc.N, tc.M, seed)
	case "watts_strogatz":
		return harness.WattsStrogatzView(tc.N, tc.K, tc.Beta, seed)
	case "grid":
		return harness.GridView(tc.Rows, tc.Cols, seed)
	case "random_sparse":
		return harness.RandomSparseView(tc.N, tc.P, seed)
	case "tree":
		return harness.TreeView(tc.N, seed)
	default:
		return nil, fmt.Errorf("unsupported topology kind: %q", tc.Kind)
	}
}

func runScenario(cfg *config.ExperimentConfig, view *netview.View) (any, error) {
	sc := cfg.Scenario
	switch sc.Kind {
	case "trial":
		snap, err := harness.BuildSnapshot(view, cfg.Seed)
		if err != nil {
			return nil, err
		}
		return harness.RunTrials(view, oracle.NewHandle(snap), cfg.Seed+1, sc.Trials)
	case "random_removal":
		return harness.RandomRemoval(view, cfg.Seed, sc.Fraction, sc.Trials)
	case "targeted_removal":
		return harness.TargetedRemoval(view, cfg.Seed, sc.Fraction, sc.Trials)
	case "dynamic":
		return harness.DynamicExperiment(view, cfg.Seed, sc.Rounds, sc.RemoveFraction, sc.AddFraction, sc.Trials)
	case "disconnect":
		if len(sc.CutSet) == 0 {
			return nil, fmt.Errorf("scenario.cut_set must name at least one node")
		}
		return harness.RunDisconnection(view, cfg.Seed, sc.CutSet)
	default:
		return nil, fmt.Errorf("unsupported scenario kind: %q", sc.Kind)
	}
}

func writeReport(path string, report experimentReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	data, err := gojson.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
