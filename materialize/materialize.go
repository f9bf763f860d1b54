// Package materialize implements the three edge-emission sub-passes
// that turn a refined community partition into actual "knows" edges:
// core-core (Bernoulli), core-periphery (deterministic budget walk),
// and residual core-stub pairing (shuffled configuration model).
//
// Core-core then core-periphery run in that fixed order for every
// community, then the residual pass runs once globally, to preserve the
// single RNG stream's draw order across a generator invocation.
package materialize

import (
	"math/rand"

	"github.com/ldbc/knowsgen/clustering"
	"github.com/ldbc/knowsgen/community"
	"github.com/ldbc/knowsgen/person"
	"github.com/ldbc/knowsgen/stats"
)

// Materialize runs core-core and core-periphery for every community in
// ascending ID order, then the global residual pass, recording
// outcomes into st.
func Materialize(rng *rand.Rand, info *clustering.Info, communities []community.Community, persons []person.Person, reject person.RejectionPolicy, st *stats.Stats) {
	for _, c := range communities {
		CoreCore(rng, persons, c, reject, st)
		CorePeriphery(rng, info, persons, c, reject, st)
	}
	Residual(rng, communities, persons, reject, st)
}
