package graphutils

import "github.com/ldbc/knowsgen/person"

// BuildRealizedGraph materializes every person's knows-set into a
// Graph keyed by population index. It is used once per outer
// convergence iteration, after edge materialization, to measure the
// realized clustering coefficient.
func BuildRealizedGraph(persons []person.Person) *Graph {
	g := NewGraph(len(persons))
	for i, p := range persons {
		for _, j := range p.Knows().Indices() {
			if j <= i {
				continue // each undirected pair is added once, from its lower index
			}
			g.AddEdge(i, j)
		}
	}
	return g
}

// ClusteringCoefficientList returns the standard local clustering
// coefficient for every vertex in g, indexed by population index.
func ClusteringCoefficientList(g *Graph) []float64 {
	out := make([]float64, g.VertexCount())
	for i := range out {
		out[i] = localClusteringCoefficient(g, i)
	}
	return out
}

// ClusteringCoefficientByIndex measures the coefficient for a single
// population index without allocating the full graph-order slice;
// used by the driver's per-person final-cc formula.
func ClusteringCoefficientByIndex(g *Graph, i int) float64 {
	return localClusteringCoefficient(g, i)
}

// localClusteringCoefficient counts closed triangles at vertex i over
// all possible triangles at i: links(neighbor pairs that are also
// neighbors of each other) divided by k*(k-1).
func localClusteringCoefficient(g *Graph, i int) float64 {
	neighbors := g.Neighbors(i)
	k := len(neighbors)
	if k < 2 {
		return 0
	}
	neighborSet := make(map[int]struct{}, k)
	for _, n := range neighbors {
		neighborSet[n] = struct{}{}
	}
	var links int
	for _, n := range neighbors {
		for _, nn := range g.Neighbors(n) {
			if nn == i {
				continue
			}
			if _, ok := neighborSet[nn]; ok {
				links++
			}
		}
	}
	// links counted each triangle edge twice (once from each endpoint).
	return float64(links) / float64(k*(k-1))
}
