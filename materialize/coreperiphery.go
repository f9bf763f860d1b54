package materialize

import (
	"math/rand"

	"github.com/ldbc/knowsgen/clustering"
	"github.com/ldbc/knowsgen/community"
	"github.com/ldbc/knowsgen/person"
	"github.com/ldbc/knowsgen/stats"
)

// CorePeriphery reinitializes a per-community periphery budget and, for
// each core member in order, consumes up to its
// info.ExpectedPeripheryDegree budget slots (the same deterministic
// walk ClusteringEstimator uses), emitting an edge attempt for each
// slot consumed.
func CorePeriphery(rng *rand.Rand, info *clustering.Info, persons []person.Person, c community.Community, reject person.RejectionPolicy, st *stats.Stats) {
	peripheryBudget := make([]int, len(c.Periphery))
	for k, pp := range c.Periphery {
		peripheryBudget[k] = pp.Degree
	}

	for _, pi := range c.Core {
		pDegree := 0.0
		maxDegree := info.ExpectedPeripheryDegree[pi.Index]
		for k := range peripheryBudget {
			if peripheryBudget[k] == 0 || pDegree >= maxDegree {
				continue
			}
			pDegree++
			peripheryBudget[k]--
			if person.Create(rng, persons, pi.Index, c.Periphery[k].Index, reject) {
				st.NumCorePeripheryEdges++
			} else {
				st.NumMisses++
			}
		}
	}
}
