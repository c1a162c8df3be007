package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/icurves/config"
	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/layout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errNoDescription = errors.New("icurves: no description given")

// app carries the global flags and what they resolve to.
type app struct {
	configPath string
	logLevel   string

	log  *zap.Logger
	opts []layout.Option
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "icurves",
		Short:         "Incremental Euler diagram layout",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML or TOML settings file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "debug, info, warn or error")

	root.AddCommand(newRenderCmd(a), newPlanCmd(a), newExamplesCmd())

	return root
}

// setup builds the logger and loads the config file.
func (a *app) setup() error {
	log, err := newLogger(a.logLevel)
	if err != nil {
		return err
	}
	a.log = log
	a.opts = nil
	if a.configPath != "" {
		f, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.opts = f.Options()
		log.Debug("config loaded", zap.String("path", a.configPath), zap.Int("options", len(a.opts)))
	}
	a.opts = append(a.opts, layout.WithLogger(log))

	return nil
}

// newLogger returns a development logger at debug level and a production
// logger otherwise.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("icurves: --log-level: %w", err)
	}
	if lvl == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// resolveDescription picks the description from --example or the
// positional arguments, joined by spaces.
func resolveDescription(example string, args []string) (description.Description, error) {
	if example != "" {
		return description.Example(example)
	}
	if len(args) == 0 {
		return description.Description{}, errNoDescription
	}
	informal := args[0]
	for _, s := range args[1:] {
		informal += " " + s
	}

	return description.Parse(informal)
}
