package refine_test

import (
	"math/rand"
	"testing"

	"github.com/ldbc/knowsgen/clustering"
	"github.com/ldbc/knowsgen/community"
	"github.com/ldbc/knowsgen/refine"
	"github.com/stretchr/testify/require"
)

func buildCommunities(n int, degree int) []community.Community {
	core := make([]community.PersonInfo, n)
	for i := range core {
		core[i] = community.PersonInfo{Index: i, Degree: degree, OriginalDegree: degree}
	}
	return []community.Community{{ID: 0, Core: core, P: 1.0}}
}

func TestRefine_SaturatesAtFloorWhenTargetIsZero(t *testing.T) {
	communities := buildCommunities(6, 5)
	info := clustering.NewInfo(6, communities)
	for i := range communities {
		clustering.ComputeCommunityInfo(info, communities[i], communities[i].P)
		clustering.EstimateCCCommunity(info, communities[i], communities[i].P)
	}

	rng := rand.New(rand.NewSource(42))
	refine.Refine(rng, info, communities, 0.0)

	require.InDelta(t, community.MinCommunityProb, communities[0].P, 1e-9)
}

func TestRefine_NoOpWithinTolerance(t *testing.T) {
	communities := buildCommunities(4, 3)
	info := clustering.NewInfo(4, communities)
	clustering.EstimateCCCommunity(info, communities[0], 1.0)
	target := clustering.MeanClusteringCoefficient(communities, info, true)

	rng := rand.New(rand.NewSource(1))
	got := refine.Refine(rng, info, communities, target)
	require.InDelta(t, target, got, 1e-6)
	require.Equal(t, 1.0, communities[0].P)
}
