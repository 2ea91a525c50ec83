package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/tspexact/config"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

// app carries the state shared by every subcommand after PersistentPreRunE.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

// newRootCmd wires the command tree. out receives results, errOut receives logs.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	var (
		configPath string
		logLevel   string
	)

	root := &cobra.Command{
		Use:           "tspsolve",
		Short:         "Exact travelling-salesman solver for small complete graphs",
		Long:          "tspsolve finds the minimum-cost Hamiltonian cycle of a small complete graph\nusing brute force (ranking every cycle) or Held-Karp dynamic programming.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			logger, err := newLogger(errOut, cfg.Log)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newVersionCmd())

	return root
}

// newLogger builds the slog logger described by the [log] section.
func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tspsolve version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("tspsolve %s\n", version)
		},
	}
}
