package community_test

import (
	"testing"

	"github.com/ldbc/knowsgen/community"
	"github.com/stretchr/testify/require"
)

func TestPartition_SinglePerson(t *testing.T) {
	cs, err := community.Partition(1, []int{0}, []int{0})
	require.NoError(t, err)
	require.Len(t, cs, 1)
	require.Len(t, cs[0].Core, 1)
	require.Empty(t, cs[0].Periphery)
}

func TestPartition_AllZeroDegree(t *testing.T) {
	n := 5
	degree := make([]int, n)
	orig := make([]int, n)
	cs, err := community.Partition(n, degree, orig)
	require.NoError(t, err)
	total := 0
	for _, c := range cs {
		total += len(c.Core) + len(c.Periphery)
	}
	require.Equal(t, n, total)
}

func TestPartition_CompleteClique(t *testing.T) {
	n := 6
	degree := make([]int, n)
	orig := make([]int, n)
	for i := range degree {
		degree[i] = n - 1
		orig[i] = n - 1
	}
	cs, err := community.Partition(n, degree, orig)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	require.Len(t, cs[0].Core, n)
	require.Empty(t, cs[0].Periphery)
}

func TestPartition_Completeness(t *testing.T) {
	n := 37
	degree := make([]int, n)
	orig := make([]int, n)
	for i := range degree {
		degree[i] = (i % 4)
		orig[i] = degree[i]
	}
	cs, err := community.Partition(n, degree, orig)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, c := range cs {
		for _, pi := range c.Core {
			require.False(t, seen[pi.Index], "index %d appears twice", pi.Index)
			seen[pi.Index] = true
		}
		for _, pi := range c.Periphery {
			require.False(t, seen[pi.Index], "index %d appears twice", pi.Index)
			seen[pi.Index] = true
		}
		require.NoError(t, community.Validate(c))
	}
	require.Len(t, seen, n)
}
