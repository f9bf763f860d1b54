package graphutils_test

import (
	"testing"

	"github.com/ldbc/knowsgen/graphutils"
	"github.com/ldbc/knowsgen/person"
	"github.com/stretchr/testify/require"
)

type stubPerson struct {
	knows *person.KnowsSet
}

func (p *stubPerson) TargetEdges([]float64, int) uint64 { return 0 }
func (p *stubPerson) MaxKnows() uint64                  { return 10 }
func (p *stubPerson) AccountID() uint64                 { return 0 }
func (p *stubPerson) Knows() *person.KnowsSet           { return p.knows }

func triangle() []person.Person {
	persons := make([]person.Person, 3)
	for i := range persons {
		persons[i] = &stubPerson{knows: person.NewKnowsSet()}
	}
	_ = person.Create(nil, persons, 0, 1, nil)
	_ = person.Create(nil, persons, 1, 2, nil)
	_ = person.Create(nil, persons, 2, 0, nil)
	return persons
}

func TestBuildRealizedGraph_Triangle(t *testing.T) {
	persons := triangle()
	g := graphutils.BuildRealizedGraph(persons)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
}

func TestClusteringCoefficientList_Triangle(t *testing.T) {
	persons := triangle()
	g := graphutils.BuildRealizedGraph(persons)
	ccs := graphutils.ClusteringCoefficientList(g)
	require.Len(t, ccs, 3)
	for _, cc := range ccs {
		require.InDelta(t, 1.0, cc, 1e-9)
	}
}

func TestClusteringCoefficientByIndex_IsolatedVertexIsZero(t *testing.T) {
	g := graphutils.NewGraph(1)
	cc := graphutils.ClusteringCoefficientByIndex(g, 0)
	require.Equal(t, 0.0, cc)
}
