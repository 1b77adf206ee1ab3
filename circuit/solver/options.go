package solver

import (
	"errors"

	"github.com/consensys/circuitgraph/circuit"
	"github.com/consensys/circuitgraph/logger"
	"github.com/rs/zerolog"
)

// Option defines option for altering the behavior of the solver (Fill
// function). See the descriptions of functions returning instances of this
// type for implemented options.
type Option func(*Config) error

// Config is the configuration for the solver with the options applied.
type Config struct {
	Targets []circuit.NodeID // defaults to the graph outputs
	Logger  zerolog.Logger   // defaults to the circuitgraph logger
}

// WithTargets is a solver option that restricts the fill to the given nodes
// and the nodes they depend on. By default the fill targets the marked
// outputs of the graph, or every node when the graph has none.
func WithTargets(targets ...circuit.NodeID) Option {
	return func(opt *Config) error {
		if len(targets) == 0 {
			return errors.New("no fill target provided")
		}
		opt.Targets = targets
		return nil
	}
}

// WithLogger is a solver option that specifies the zerolog.Logger receiving
// the fill events. By default, uses the circuitgraph logger. zerolog.Nop()
// will disable logging.
func WithLogger(l zerolog.Logger) Option {
	return func(opt *Config) error {
		opt.Logger = l
		return nil
	}
}

// NewConfig returns a default Config with given solver options opts applied.
func NewConfig(opts ...Option) (Config, error) {
	opt := Config{Logger: logger.Logger()}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}
