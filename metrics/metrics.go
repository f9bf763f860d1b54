// Package metrics exposes Prometheus collectors for a running
// generator. The generator never starts its own HTTP server; callers
// register a Collector against their own *prometheus.Registry and
// expose it however their service already does.
package metrics

import (
	"github.com/ldbc/knowsgen/stats"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector wraps the counters and gauges the driver updates once, at
// the completion of each GenerateKnows call.
type Collector struct {
	edgesTotal        *prometheus.CounterVec
	missesTotal       prometheus.Counter
	iterations        prometheus.Gauge
	finalClusteringCC prometheus.Gauge
}

// NewCollector constructs and registers a Collector against reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		edgesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "knowsgen_edges_total",
			Help: "Edges materialized by the clustered-knows generator, by pass.",
		}, []string{"kind"}),
		missesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "knowsgen_misses_total",
			Help: "Edge attempts rejected by capacity, duplication, or the external rejection policy.",
		}),
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "knowsgen_convergence_iterations",
			Help: "Outer convergence-loop iterations consumed by the most recent run.",
		}),
		finalClusteringCC: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "knowsgen_final_clustering_coefficient",
			Help: "Measured clustering coefficient of the most recently realized graph.",
		}),
	}
	reg.MustRegister(c.edgesTotal, c.missesTotal, c.iterations, c.finalClusteringCC)
	return c
}

// Observe updates all gauges/counters from the driver's final Stats
// for one GenerateKnows call.
func (c *Collector) Observe(st *stats.Stats) {
	c.edgesTotal.WithLabelValues("core_core").Add(float64(st.NumCoreCoreEdges))
	c.edgesTotal.WithLabelValues("core_periphery").Add(float64(st.NumCorePeripheryEdges))
	c.edgesTotal.WithLabelValues("core_external").Add(float64(st.NumCoreExternalEdges))
	c.missesTotal.Add(float64(st.NumMisses))
	c.iterations.Set(float64(st.Iterations))
	c.finalClusteringCC.Set(st.FinalCC)
}
