package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/render"
	"github.com/katalvlaran/socialgraph/social"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	color      string

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	render   *render.Renderer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "socialgraph",
		Short: "Explore friendships, suggestions and shortest paths in a social network",
		Long: `socialgraph loads a social network and answers questions about it.

The network comes from the "network" section of the configuration file,
or is the built-in eight-user demo network when none is given.

Configuration precedence (highest first):
  command-line flags
  SOCIALGRAPH_* environment variables
  the YAML file named by --config
  built-in defaults`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.color, "color", "", "styling: auto, always or never")

	root.AddCommand(
		a.showCmd(),
		a.friendsCmd(),
		a.mutualCmd(),
		a.suggestCmd(),
		a.suggestAllCmd(),
		a.pathCmd(),
		a.reachCmd(),
		a.componentsCmd(),
		a.demoCmd(),
		a.metricsCmd(),
	)

	return root
}

// setup resolves configuration, then builds the logger, registry and renderer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.registry = prometheus.NewRegistry()
	a.render = render.New(a.out, cfg.Color)

	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.String("algorithm", cfg.Algorithm),
		slog.Int("workers", cfg.Workers),
		slog.Bool("custom_network", cfg.Network != nil),
	)

	return nil
}

// network wraps g in an instrumented Network on the invocation's registry.
func (a *app) network(g *core.Graph) *social.Network {
	return social.New(g,
		social.WithRegisterer(a.registry),
		social.WithLogger(a.logger),
		social.WithWorkers(a.cfg.Workers),
	)
}

// configured builds the network declared by the configuration.
func (a *app) configured() (*social.Network, error) {
	g, err := a.cfg.BuildGraph()
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	return a.network(g), nil
}
