package clustering_test

import (
	"testing"

	"github.com/ldbc/knowsgen/clustering"
	"github.com/ldbc/knowsgen/community"
	"github.com/stretchr/testify/require"
)

func mkCommunity(id int, degrees []int) community.Community {
	core := make([]community.PersonInfo, len(degrees))
	for i, d := range degrees {
		core[i] = community.PersonInfo{Index: i, Degree: d, OriginalDegree: d}
	}
	return community.Community{ID: id, Core: core, P: 1.0}
}

func TestComputeCommunityInfo_NoPeriphery(t *testing.T) {
	c := mkCommunity(0, []int{3, 3, 3, 3})
	info := clustering.NewInfo(4, []community.Community{c})

	clustering.ComputeCommunityInfo(info, c, 1.0)

	for _, pi := range c.Core {
		require.InDelta(t, 3.0, info.ExpectedCoreDegree[pi.Index], 1e-9)
		require.InDelta(t, 0.0, info.ExpectedPeripheryDegree[pi.Index], 1e-9)
		require.InDelta(t, 0.0, info.ExpectedExternalDegree[pi.Index], 1e-9)
	}
}

func TestMeanClusteringCoefficient_SingleCommunityZeroExternal(t *testing.T) {
	c := mkCommunity(0, []int{4, 4, 4, 4, 4})
	communities := []community.Community{c}
	info := clustering.NewInfo(5, communities)

	clustering.EstimateCCCommunity(info, c, 1.0)

	mean := clustering.MeanClusteringCoefficient(communities, info, true)
	// Every person has excedence 0 (degree == coreSize-1 at p=1), so the
	// external-triangle term never engages; with no other community to
	// wire stubs against, probSameCommunity and probTriangleSameCommunity
	// are both 0. A full clique's clustering coefficient at p=1 is
	// exactly 1.
	require.InDelta(t, 1.0, mean, 1e-9)
}
