package materialize

import (
	"math/rand"

	"github.com/ldbc/knowsgen/community"
	"github.com/ldbc/knowsgen/person"
	"github.com/ldbc/knowsgen/stats"
)

// Residual builds a global multiset of core "stubs" — one stub per
// unit of unsatisfied degree (target degree minus current realized
// degree) across every community's core — and pairs them off via two
// independently shuffled index permutations, attempting an edge for
// each popped pair. This is the configuration-model pass that wires up
// whatever core degree the core-core and core-periphery passes left
// unsatisfied.
func Residual(rng *rand.Rand, communities []community.Community, persons []person.Person, reject person.RejectionPolicy, st *stats.Stats) {
	var stubs []int // person index, one entry per stub unit
	for _, c := range communities {
		for _, pi := range c.Core {
			diff := pi.Degree - persons[pi.Index].Knows().Len()
			for i := 0; i < diff; i++ {
				stubs = append(stubs, pi.Index)
			}
		}
	}
	if len(stubs) == 0 {
		return
	}

	indexes := make([]int, len(stubs))
	for i := range indexes {
		indexes[i] = i
	}

	// Two independent shuffles: one permutes the stub-to-index mapping
	// implicitly by shuffling stubs itself, the other permutes the pop
	// order over indexes. Both consume the shared RNG stream in that
	// order, matching the source's two Collections.shuffle calls.
	rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
	rng.Shuffle(len(indexes), func(i, j int) { indexes[i], indexes[j] = indexes[j], indexes[i] })

	for len(indexes) > 1 {
		i1 := indexes[len(indexes)-1]
		indexes = indexes[:len(indexes)-1]
		i2 := indexes[len(indexes)-1]
		indexes = indexes[:len(indexes)-1]

		a, b := stubs[i1], stubs[i2]
		if a == b {
			st.NumMisses++
			continue
		}
		if person.Create(rng, persons, a, b, reject) {
			st.NumCoreExternalEdges++
		} else {
			st.NumMisses++
		}
	}
}
