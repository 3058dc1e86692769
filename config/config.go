// SPDX-License-Identifier: MIT

// Package config loads the socialgraph CLI configuration: logging, output
// styling, default algorithm, batch parallelism and an optional network
// fixture. Values are resolved in three layers, later layers winning:
//
//  1. built-in defaults (Default),
//  2. a YAML file,
//  3. SOCIALGRAPH_* environment variables,
//
// and the result is validated with go-playground/validator.
//
// Example file:
//
//	log_level: debug
//	color: never
//	algorithm: dijkstra
//	suggest_limit: 5
//	workers: 4
//	network:
//	  users: [Alice, Bob, Charlie]
//	  friendships:
//	    - [Alice, Bob]
//	    - [Bob, Charlie]
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvLogLevel  = "SOCIALGRAPH_LOG_LEVEL"
	EnvColor     = "SOCIALGRAPH_COLOR"
	EnvAlgorithm = "SOCIALGRAPH_ALGORITHM"
	EnvWorkers   = "SOCIALGRAPH_WORKERS"
)

// Algorithm names accepted by the path command.
const (
	AlgorithmBFS      = "bfs"
	AlgorithmDijkstra = "dijkstra"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the fully resolved CLI configuration.
type Config struct {
	LogLevel     string       `yaml:"log_level" validate:"oneof=debug info warn error"`
	Color        string       `yaml:"color" validate:"oneof=auto always never"`
	Algorithm    string       `yaml:"algorithm" validate:"oneof=bfs dijkstra"`
	SuggestLimit int          `yaml:"suggest_limit" validate:"gte=0"`
	Workers      int          `yaml:"workers" validate:"gte=1,lte=256"`
	Network      *NetworkSpec `yaml:"network" validate:"omitempty"`
}

// NetworkSpec declares users and friendships to load instead of the demo network.
type NetworkSpec struct {
	Users       []string     `yaml:"users" validate:"required,min=1,dive,required"`
	Friendships []Friendship `yaml:"friendships" validate:"dive"`
}

// Friendship is one undirected link, written in YAML as a two-item list.
type Friendship struct {
	A string `validate:"required"`
	B string `validate:"required,nefield=A"`
}

// UnmarshalYAML decodes "[a, b]" into a Friendship.
func (f *Friendship) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: line %d: friendship must list exactly two users, got %d",
			ErrInvalidConfig, value.Line, len(pair))
	}
	f.A, f.B = pair[0], pair[1]

	return nil
}

// configValidate is the shared validator instance.
var configValidate = validator.New()

// Default returns the built-in configuration: info logging, automatic color,
// BFS paths, unlimited suggestions, four workers and the demo network.
func Default() Config {
	return Config{
		LogLevel:     "info",
		Color:        ColorAuto,
		Algorithm:    AlgorithmBFS,
		SuggestLimit: 0,
		Workers:      4,
	}
}

// Load resolves the configuration from defaults, the YAML file at path and
// the environment. An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			return err
		}
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		cfg.Algorithm = strings.ToLower(v)
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWorkers, v, err)
		}
		cfg.Workers = n
	}

	return nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level; unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BuildGraph materializes the configured network, or the demo network when
// none is declared. Friendships naming undeclared users fail with
// core.ErrUserNotFound.
func (c Config) BuildGraph() (*core.Graph, error) {
	if c.Network == nil {
		return builder.Demo(), nil
	}

	pairs := make([]builder.Pair, len(c.Network.Friendships))
	for i, f := range c.Network.Friendships {
		pairs[i] = builder.Pair{A: f.A, B: f.B}
	}

	return builder.BuildGraph(nil, builder.Users(c.Network.Users...), builder.Friendships(pairs...))
}
