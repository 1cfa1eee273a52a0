// Package config holds the process-wide tunables of the CLI (SPEC_FULL.md
// §9): dimension-bound override, sparse-mode toggle, log level, DOT output
// path. It follows the teacher's functional-options idiom
// (pkg/minikanren/optimize.go's OptimizeOption) rather than a struct of
// public fields threaded through every call site.
package config

import (
	"github.com/gitrdm/tautology/internal/logx"
	"github.com/gitrdm/tautology/pkg/logic"
)

// Config is the resolved set of tunables for one CLI invocation.
type Config struct {
	DimensionBound *int // nil selects the engine's default of |atoms(E)|
	Sparse         bool
	LogLevel       logx.Level
	DotPath        string
}

// Option mutates a Config under construction.
type Option func(*Config)

// New builds a Config from the given options, defaulting to no dimension
// override, sparse mode off, info-level logging, and no DOT output.
func New(opts ...Option) *Config {
	c := &Config{LogLevel: logx.LevelInfo}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithDimensionBound overrides the engine's default dimension bound.
func WithDimensionBound(n int) Option {
	return func(c *Config) { c.DimensionBound = &n }
}

// WithSparse toggles the sparse_fire optimisation (§4.2.4).
func WithSparse(enabled bool) Option {
	return func(c *Config) { c.Sparse = enabled }
}

// WithLogLevel sets the logging sink's minimum level (§6.4).
func WithLogLevel(level logx.Level) Option {
	return func(c *Config) { c.LogLevel = level }
}

// WithDotPath sets the path proof.dot is written to; empty means "print a
// debug rendering instead" (§6.3).
func WithDotPath(path string) Option {
	return func(c *Config) { c.DotPath = path }
}

// LogicOptions translates the resolved Config into the logic.Option values
// Coalesce/Proof expect, attaching logger as the engine's logging sink.
func (c *Config) LogicOptions(logger *logx.Logger) []logic.Option {
	opts := []logic.Option{
		logic.WithSparse(c.Sparse),
		logic.WithLogger(logger),
	}
	if c.DimensionBound != nil {
		opts = append(opts, logic.WithDimensionBound(*c.DimensionBound))
	}
	return opts
}
