package character

import (
	"github.com/katalvlaran/symchar/partition"
	"go.uber.org/zap"
)

// Option configures an Evaluator.
// Use with NewEvaluator(opts...).
type Option func(*Options)

// Options holds Evaluator configuration.
type Options struct {
	// Logger receives debug events when tables are built. Defaults to a no-op logger.
	Logger *zap.Logger

	// Generator supplies partitions for Table. Sharing one Generator between
	// evaluators shares its cached partition table. Defaults to a fresh one.
	Generator *partition.Generator
}

// DefaultOptions returns Options with a no-op logger and a fresh Generator.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Generator: partition.NewGenerator(),
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGenerator sets the partition generator; nil is ignored.
func WithGenerator(g *partition.Generator) Option {
	return func(o *Options) {
		if g != nil {
			o.Generator = g
		}
	}
}
