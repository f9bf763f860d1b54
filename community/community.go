// Package community implements the greedy community-partitioning
// heuristic that splits a sorted person array into contiguous
// core/periphery blocks.
//
// Complexity:
//
//	Time:  O(m² log m) per community of size m — every probe re-sorts
//	       its whole window, and the window grows by one person per
//	       probe, plus a bounded number of lookahead probes.
//	Space: O(N) for the PersonInfo ledger.
//
// Errors (sentinel):
//
//	ErrInfeasiblePartition - the entire array could not be partitioned
//	                         (never returned for a single window probe,
//	                         only if growth cannot make progress at all).
package community

import "errors"

// ErrInfeasiblePartition indicates partitioning made no progress: the
// window at the current begin index is infeasible even at its minimal
// size of one person. A one-person window always passes checkBudget,
// whatever its degree, so Partition does not return this error for any
// input with n >= 0; it guards the loop's progress.
var ErrInfeasiblePartition = errors.New("community: partition made no progress")

// PersonInfo is a lightweight ledger entry scoped to one generator
// invocation: a position in the person array plus its current and
// original degree targets.
type PersonInfo struct {
	Index          int // position in the person array
	Degree         int // current target for this step
	OriginalDegree int // upper bound on this person's knows capacity
}

// ByDegreeDescIndexAsc sorts PersonInfo descending by Degree, breaking
// ties by ascending Index. Both CommunityPartitioner and the
// ClusteringEstimator rely on this ordering being stable and
// reproducible across calls.
type ByDegreeDescIndexAsc []PersonInfo

func (s ByDegreeDescIndexAsc) Len() int      { return len(s) }
func (s ByDegreeDescIndexAsc) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s ByDegreeDescIndexAsc) Less(i, j int) bool {
	if s[i].Degree != s[j].Degree {
		return s[i].Degree > s[j].Degree
	}
	return s[i].Index < s[j].Index
}

// Community is a contiguous slice of the person array split into a
// dense core and a sparser periphery, parameterized by an intra-core
// edge probability P.
//
// Invariants:
//   - Core and Periphery are disjoint; their union is contiguous in the
//     original person array.
//   - For every pi in Core: pi.Degree >= len(Core)-1.
//   - Periphery is feasible against Core's excess-budget vector (see
//     checkBudget).
//   - Core and Periphery are each sorted by ByDegreeDescIndexAsc.
type Community struct {
	ID        int
	Core      []PersonInfo
	Periphery []PersonInfo
	P         float64
}
