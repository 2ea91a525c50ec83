// Package config loads the tspsolve TOML configuration.
//
// Every key is optional; missing keys fall back to the defaults below and the
// result is validated before use:
//
//	[solver]
//	algorithm = "auto"        # auto | bruteforce | heldkarp
//
//	[generator]
//	nodes = 8                 # random instance size
//	seed = 0                  # 0 = derive from the clock
//	min_weight = 10
//	max_weight = 59
//
//	[output]
//	format = "json"           # json | yaml
//	dir = "."
//	top = 10                  # routes printed; 0 = all
//	export = false
//
//	[log]
//	level = "info"            # debug | info | warn | error
//	format = "text"           # text | json
//
//	[metrics]
//	textfile = ""             # write Prometheus textfile when set
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/tspexact/report"
	"github.com/katalvlaran/tspexact/tsp"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Defaults.
const (
	DefaultAlgorithm = "auto"
	DefaultNodes     = 8
	DefaultMinWeight = 10
	DefaultMaxWeight = 59
	DefaultFormat    = "json"
	DefaultDir       = "."
	DefaultTop       = 10
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// MaxGeneratedNodes caps random instances at what Held–Karp can solve.
	MaxGeneratedNodes = tsp.HeldKarpMaxNodes
)

// Config is the root document.
type Config struct {
	Solver    Solver    `toml:"solver"`
	Generator Generator `toml:"generator"`
	Output    Output    `toml:"output"`
	Log       Log       `toml:"log"`
	Metrics   Metrics   `toml:"metrics"`
}

type Solver struct {
	Algorithm string `toml:"algorithm"`
}

type Generator struct {
	Nodes     int   `toml:"nodes"`
	Seed      int64 `toml:"seed"`
	MinWeight int   `toml:"min_weight"`
	MaxWeight int   `toml:"max_weight"`
}

type Output struct {
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
	Top    int    `toml:"top"`
	Export bool   `toml:"export"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Metrics struct {
	Textfile string `toml:"textfile"`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg, nil)

	return cfg
}

// Load reads path, applies defaults and validates. An empty path yields Default().
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(string(data))
}

// Parse decodes a TOML document, applies defaults and validates.
func Parse(doc string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	applyDefaults(&cfg, &md)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills zero values. md tells explicit zeros apart where zero is
// meaningful (top = 0 means "all routes"); md == nil means nothing was set.
func applyDefaults(cfg *Config, md *toml.MetaData) {
	if strings.TrimSpace(cfg.Solver.Algorithm) == "" {
		cfg.Solver.Algorithm = DefaultAlgorithm
	}
	if cfg.Generator.Nodes == 0 {
		cfg.Generator.Nodes = DefaultNodes
	}
	if !isDefined(md, "generator", "min_weight") {
		cfg.Generator.MinWeight = DefaultMinWeight
	}
	if !isDefined(md, "generator", "max_weight") {
		cfg.Generator.MaxWeight = DefaultMaxWeight
	}
	if strings.TrimSpace(cfg.Output.Format) == "" {
		cfg.Output.Format = DefaultFormat
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = DefaultDir
	}
	if !isDefined(md, "output", "top") {
		cfg.Output.Top = DefaultTop
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if strings.TrimSpace(cfg.Log.Format) == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

func isDefined(md *toml.MetaData, key ...string) bool {
	return md != nil && md.IsDefined(key...)
}

// Validate checks every field; errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if _, err := tsp.ParseAlgorithm(c.Solver.Algorithm); err != nil {
		return fmt.Errorf("%w: solver.algorithm %q: %w", ErrInvalid, c.Solver.Algorithm, err)
	}
	if c.Generator.Nodes < tsp.MinNodes || c.Generator.Nodes > MaxGeneratedNodes {
		return fmt.Errorf("%w: generator.nodes=%d outside [%d,%d]", ErrInvalid, c.Generator.Nodes, tsp.MinNodes, MaxGeneratedNodes)
	}
	if c.Generator.MinWeight < 0 || c.Generator.MaxWeight < c.Generator.MinWeight {
		return fmt.Errorf("%w: generator weights require 0 ≤ min_weight ≤ max_weight, got %d..%d",
			ErrInvalid, c.Generator.MinWeight, c.Generator.MaxWeight)
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %v", ErrInvalid, err)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("%w: output.top=%d must be ≥ 0", ErrInvalid, c.Output.Top)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}

	return lvl, nil
}
