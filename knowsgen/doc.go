// Package knowsgen implements the clustered-knows edge generator: a
// procedure that, given a population of persons with target degrees,
// synthesizes an undirected "knows" graph whose global clustering
// coefficient approximates an operator-supplied target while each
// person's realized degree approximates its prescribed target.
//
// Pipeline:
//
//   - community.Partition splits the (externally pre-sorted) person
//     array into contiguous core/periphery Communities.
//   - clustering.Info/EstimateCCCommunity analytically estimate the
//     resulting graph's clustering coefficient under the current
//     per-community edge probabilities.
//   - refine.Refine hill-climbs those probabilities toward a target.
//   - materialize.Materialize emits the actual edges.
//   - Driver.GenerateKnows wraps all of the above in an outer
//     convergence loop that rebuilds the graph from scratch when the
//     realized coefficient deviates too far from the target.
//
// A single Driver call is single-threaded and synchronous; the only
// entropy source is the *rand.Rand seeded once at call entry from
// config.Config.Seed.
package knowsgen
