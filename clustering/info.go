// Package clustering maintains the per-person, per-community
// statistical ledger the generator uses to analytically estimate the
// resulting graph's clustering coefficient without materializing any
// edges, and to drive the refinement hill-climb.
//
// Info's slices are pre-allocated to their final size at construction
// (sized by population N and community count) and never grown
// afterward, per the generator's "no dynamically-grown parallel
// arrays" design note.
package clustering

import "github.com/ldbc/knowsgen/community"

// Info is the ClusteringInfo ledger: per-person expected-degree
// breakdowns and clustering-coefficient estimates, plus per-community
// aggregate stub counts and probabilities.
type Info struct {
	IsCore      []bool
	CommunityID []int

	ExpectedCoreDegree      []float64
	ExcedenceDegree         []float64
	ExpectedPeripheryDegree []float64
	ExpectedExternalDegree  []float64
	ClusteringCoefficient   []float64

	// CoreNodes is the flat list of core person indices across all
	// communities, in community insertion order.
	CoreNodes []int

	CommunityCoreStubs []float64
	CommunityCoreProbs []float64

	// SumProbs is adjusted by +-0.01 per refiner step but never read
	// elsewhere; kept for fidelity with the source ledger.
	SumProbs       float64
	NumCommunities int
}

// NewInfo allocates an Info sized for n persons and the given
// communities, and populates IsCore/CommunityID/CoreNodes from the
// community membership.
func NewInfo(n int, communities []community.Community) *Info {
	info := &Info{
		IsCore:                  make([]bool, n),
		CommunityID:             make([]int, n),
		ExpectedCoreDegree:      make([]float64, n),
		ExcedenceDegree:         make([]float64, n),
		ExpectedPeripheryDegree: make([]float64, n),
		ExpectedExternalDegree:  make([]float64, n),
		ClusteringCoefficient:   make([]float64, n),
		CommunityCoreStubs:      make([]float64, len(communities)),
		CommunityCoreProbs:      make([]float64, len(communities)),
		NumCommunities:          len(communities),
		SumProbs:                float64(len(communities)),
	}
	for idx, c := range communities {
		for _, pi := range c.Core {
			info.CoreNodes = append(info.CoreNodes, pi.Index)
			info.IsCore[pi.Index] = true
			info.CommunityID[pi.Index] = idx
		}
		for _, pi := range c.Periphery {
			info.IsCore[pi.Index] = false
			info.CommunityID[pi.Index] = idx
		}
	}
	return info
}
