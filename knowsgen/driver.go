package knowsgen

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/ldbc/knowsgen/clustering"
	"github.com/ldbc/knowsgen/community"
	"github.com/ldbc/knowsgen/config"
	"github.com/ldbc/knowsgen/graphutils"
	"github.com/ldbc/knowsgen/materialize"
	"github.com/ldbc/knowsgen/metrics"
	"github.com/ldbc/knowsgen/person"
	"github.com/ldbc/knowsgen/refine"
	"github.com/ldbc/knowsgen/stats"
	"go.uber.org/zap"
)

// convergenceTolerance is the window the outer loop's |target-measured|
// check accepts, matching refine's internal tolerance.
const convergenceTolerance = 0.001

// feedbackDamping is the fraction of the measured delta fed back into
// fakeTargetCC between outer-loop iterations.
const feedbackDamping = 0.8

// Driver owns the state a single GenerateKnows call threads through
// every sub-pass: a logger for diagnostics, an optional metrics
// collector, and an optional external rejection policy.
type Driver struct {
	logger  *zap.Logger
	metrics *metrics.Collector
	reject  person.RejectionPolicy
}

// NewDriver constructs a Driver with sane defaults: a no-op logger, no
// metrics collector, and no external rejection policy.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// GenerateKnows mutates persons in place, synthesizing a "knows" graph
// whose clustering coefficient approximates cfg.TargetCC(). It is
// single-threaded and synchronous; ctx is checked once per outer-loop
// iteration for cancellation, never mid-pass.
//
// It always returns a non-nil *stats.Stats, even on error: a caller
// that receives ErrIterationCeilingReached still gets the best-effort
// result the driver produced before giving up.
func (d *Driver) GenerateKnows(ctx context.Context, persons []person.Person, cfg config.Config) (*stats.Stats, error) {
	st := &stats.Stats{}
	rng := rand.New(rand.NewSource(cfg.Seed))

	n := len(persons)
	degree := make([]int, n)
	originalDegree := make([]int, n)
	for i, p := range persons {
		degree[i] = int(p.TargetEdges(cfg.Percentages, cfg.StepIndex))
		originalDegree[i] = int(p.MaxKnows())
	}

	communities, err := community.Partition(n, degree, originalDegree)
	if err != nil {
		return st, fmt.Errorf("knowsgen: partition: %w", err)
	}
	for _, c := range communities {
		if verr := community.Validate(c); verr != nil {
			d.logger.Warn("community core invariant violated", zap.Error(verr))
		}
	}

	info := clustering.NewInfo(n, communities)

	for i := range communities {
		communities[i].P = 1.0
		clustering.ComputeCommunityInfo(info, communities[i], 1.0)
	}
	for i := range communities {
		clustering.EstimateCCCommunity(info, communities[i], communities[i].P)
	}
	maxCC := clustering.MeanClusteringCoefficient(communities, info, true)
	d.logger.Debug("computed maximum clustering coefficient", zap.Float64("max_cc", maxCC))

	for i := range communities {
		communities[i].P = 0.5
		clustering.EstimateCCCommunity(info, communities[i], communities[i].P)
	}

	targetCC := cfg.TargetCC()
	fakeTargetCC := targetCC

	var finalCC float64
	iterations := 0
	for {
		iterations++
		if err := ctx.Err(); err != nil {
			return st, err
		}

		refine.Refine(rng, info, communities, fakeTargetCC)

		materialize.Materialize(rng, info, communities, persons, d.reject, st)

		g := graphutils.BuildRealizedGraph(persons)
		finalCC = weightedFinalCC(g, persons)

		delta := targetCC - finalCC
		if math.Abs(delta) <= convergenceTolerance {
			break
		}
		if iterations >= cfg.MaxIterations {
			st.Iterations = iterations
			st.FinalCC = finalCC
			tallyDegreeOutcomes(info, persons, degree, st)
			d.logger.Warn("iteration ceiling reached before convergence",
				zap.Int("iterations", iterations), zap.Float64("final_cc", finalCC), zap.Float64("target_cc", targetCC))
			if d.metrics != nil {
				d.metrics.Observe(st)
			}
			return st, fmt.Errorf("%w: after %d iterations, final_cc=%f target_cc=%f",
				ErrIterationCeilingReached, iterations, finalCC, targetCC)
		}

		st.Reset()
		for _, p := range persons {
			p.Knows().Clear()
		}
		fakeTargetCC += delta * feedbackDamping
	}

	st.Iterations = iterations
	st.FinalCC = finalCC
	tallyDegreeOutcomes(info, persons, degree, st)
	if d.metrics != nil {
		d.metrics.Observe(st)
	}
	return st, nil
}

// weightedFinalCC implements spec.md's per-person weighted final-cc
// formula: the sum over persons with original degree > 1 of their
// measured local clustering coefficient, weighted by realized degree
// relative to original degree, divided by the whole population size.
func weightedFinalCC(g *graphutils.Graph, persons []person.Person) float64 {
	var sum float64
	for i, p := range persons {
		orig := p.MaxKnows()
		if orig <= 1 {
			continue
		}
		deg := p.Knows().Len()
		cc := graphutils.ClusteringCoefficientByIndex(g, i)
		sum += cc * float64(deg) * float64(deg-1) / (float64(orig) * float64(orig-1))
	}
	return sum / float64(len(persons))
}

// tallyDegreeOutcomes fills in the excess/deficit/zero-degree counters
// of st from the final realized knows-sets. Excess and deficit are
// measured against target degree for core persons only, matching the
// source's completion report; zero-degree is counted across the whole
// population.
func tallyDegreeOutcomes(info *clustering.Info, persons []person.Person, targetDegree []int, st *stats.Stats) {
	for i, p := range persons {
		realized := p.Knows().Len()
		if info.IsCore[i] {
			target := targetDegree[i]
			switch {
			case realized > target:
				st.PersonsWithExcessDegree++
				st.SumExcessDegree += realized - target
			case realized < target:
				st.PersonsWithDeficitDegree++
				st.SumDeficitDegree += target - realized
			}
		}
		if realized == 0 {
			st.PersonsWithZeroDegree++
		}
	}
}
