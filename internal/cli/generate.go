package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/analysis"
	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/internal/config"
	"github.com/katalvlaran/lvtopo/internal/logging"
)

// generateFlags mirrors the overridable config fields.
type generateFlags struct {
	configPath string
	n, m       int
	hs, ls     int
	placement  string
	bwDist     string
	bwMin      float64
	bwMax      float64
	seed       int64
	format     string
	logLevel   string
}

// summary is the yaml rendering of one run.
type summary struct {
	Model  string           `yaml:"model"`
	Seed   int64            `yaml:"seed"`
	Report *analysis.Report `yaml:"report"`
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a topology and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runGenerate(cmd.OutOrStdout(), cfg, logger)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file (default: ./lvtopo.yaml or $HOME/.lvtopo/lvtopo.yaml)")
	fl.IntVarP(&f.n, "nodes", "n", 0, "number of routers")
	fl.IntVarP(&f.m, "edges-per-node", "m", 0, "links added by each joining router")
	fl.IntVar(&f.hs, "hs", 0, "side of the placement plane")
	fl.IntVar(&f.ls, "ls", 0, "side of a heavy-tailed placement square")
	fl.StringVar(&f.placement, "placement", "", "node placement: random | heavy-tailed")
	fl.StringVar(&f.bwDist, "bw-dist", "", "bandwidth law: const | uniform | exponential | heavy-tailed")
	fl.Float64Var(&f.bwMin, "bw-min", 0, "minimum bandwidth")
	fl.Float64Var(&f.bwMax, "bw-max", 0, "maximum bandwidth")
	fl.Int64Var(&f.seed, "seed", 0, "random seed")
	fl.StringVar(&f.format, "format", "", "report format: text | yaml")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug | info | warn | error")

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, f generateFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("nodes") {
		cfg.Model.N = f.n
	}
	if fl.Changed("edges-per-node") {
		cfg.Model.M = f.m
	}
	if fl.Changed("hs") {
		cfg.Model.HS = f.hs
	}
	if fl.Changed("ls") {
		cfg.Model.LS = f.ls
	}
	if fl.Changed("placement") {
		if cfg.Model.Placement, err = builder.ParsePlacement(f.placement); err != nil {
			return config.Config{}, err
		}
	}
	if fl.Changed("bw-dist") {
		if cfg.Model.BWDist, err = builder.ParseBandwidthDist(f.bwDist); err != nil {
			return config.Config{}, err
		}
	}
	if fl.Changed("bw-min") {
		cfg.Model.BWMin = f.bwMin
	}
	if fl.Changed("bw-max") {
		cfg.Model.BWMax = f.bwMax
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// runGenerate builds, verifies and summarizes one topology.
func runGenerate(w io.Writer, cfg config.Config, logger *zap.Logger) error {
	g, err := builder.Generate(cfg.Model, builder.WithSeed(cfg.Seed), builder.WithLogger(logger))
	if err != nil {
		return err
	}
	if err = analysis.Verify(g); err != nil {
		return err
	}
	report, err := analysis.Summarize(g)
	if err != nil {
		return err
	}
	logger.Debug("summary ready", zap.Int("components", report.Components))

	if cfg.Format == "yaml" {
		out, err := yaml.Marshal(summary{Model: cfg.Model.String(), Seed: cfg.Seed, Report: report})
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	if _, err = fmt.Fprintf(w, "%s\nseed: %d\n", cfg.Model.String(), cfg.Seed); err != nil {
		return err
	}

	return report.WriteText(w)
}
