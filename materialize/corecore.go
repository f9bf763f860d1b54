package materialize

import (
	"math/rand"

	"github.com/ldbc/knowsgen/community"
	"github.com/ldbc/knowsgen/person"
	"github.com/ldbc/knowsgen/stats"
)

// CoreCore attempts an edge for every ordered pair (i,j), i<j, within
// c.Core, drawing a uniform float from rng and accepting when it is
// <= c.P. Accepted draws still pass through person.Create, which may
// reject the pair; acceptances increment st.NumCoreCoreEdges, rejections
// increment st.NumMisses.
func CoreCore(rng *rand.Rand, persons []person.Person, c community.Community, reject person.RejectionPolicy, st *stats.Stats) {
	for i, pi := range c.Core {
		for _, other := range c.Core[i+1:] {
			draw := rng.Float64()
			if draw > c.P {
				continue
			}
			if person.Create(rng, persons, pi.Index, other.Index, reject) {
				st.NumCoreCoreEdges++
			} else {
				st.NumMisses++
			}
		}
	}
}
