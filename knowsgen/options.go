package knowsgen

import (
	"github.com/ldbc/knowsgen/metrics"
	"github.com/ldbc/knowsgen/person"
	"go.uber.org/zap"
)

// Option configures a Driver before use.
type Option func(*Driver)

// WithLogger attaches a *zap.Logger for diagnostic warnings (invariant
// violations, iteration-ceiling warnings). Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("knowsgen: WithLogger(nil)")
	}
	return func(d *Driver) { d.logger = logger }
}

// WithMetrics attaches a metrics.Collector updated after every
// GenerateKnows call. Defaults to nil (no metrics emitted).
func WithMetrics(c *metrics.Collector) Option {
	if c == nil {
		panic("knowsgen: WithMetrics(nil)")
	}
	return func(d *Driver) { d.metrics = c }
}

// WithRejectionPolicy attaches the external duplicate/locality veto
// spec.md attributes to Knows.create. Defaults to nil (accept every
// pair that passes capacity checks).
func WithRejectionPolicy(p person.RejectionPolicy) Option {
	if p == nil {
		panic("knowsgen: WithRejectionPolicy(nil)")
	}
	return func(d *Driver) { d.reject = p }
}
