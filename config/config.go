// Package config loads and validates the generator's operator-facing
// settings: the target clustering coefficient, RNG seed, convergence
// ceiling, and the step-dependent degree percentages forwarded to
// Person.TargetEdges.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable, validator-tagged settings struct for
// one generator run.
type Config struct {
	// ClusteringCoefficient is the operator-supplied target; TargetCC
	// halves it before the driver uses it, per the source's
	// deliberate miscalibration between the internal analytic
	// estimator and the measured post-hoc coefficient.
	ClusteringCoefficient float64 `yaml:"clusteringCoefficient" validate:"gte=0,lte=1"`

	// Seed is the single entropy source for an entire generator
	// invocation; every random draw consumes from the stream it seeds.
	Seed int64 `yaml:"seed"`

	// MaxIterations bounds the outer convergence loop. Hitting it
	// surfaces knowsgen.ErrIterationCeilingReached rather than looping
	// forever (spec.md §9 Open Question 4).
	MaxIterations int `yaml:"maxIterations" validate:"gt=0"`

	// Percentages and StepIndex are forwarded verbatim to
	// Person.TargetEdges; the generator treats them as opaque.
	Percentages []float64 `yaml:"percentages"`
	StepIndex   int       `yaml:"stepIndex"`
}

// Default returns a Config populated with the source generator's
// documented defaults: clusteringCoefficient=0.1, a 25-iteration
// ceiling, seed 0 (callers should override for anything but tests).
func Default() Config {
	return Config{
		ClusteringCoefficient: 0.1,
		MaxIterations:         25,
	}
}

// TargetCC returns the halved clustering-coefficient target the
// driver actually refines toward. The halving is preserved verbatim
// from the source's initialize() and is not documented there either;
// it lives here as the single place it happens.
func (c Config) TargetCC() float64 {
	return c.ClusteringCoefficient / 2.0
}

var validate = validator.New()

// Load reads a YAML config file at path, applying Default() first so
// unset fields keep sensible values, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", path, err)
	}
	return &cfg, nil
}
