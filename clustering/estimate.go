package clustering

import "github.com/ldbc/knowsgen/community"

// ComputeCommunityInfo fills in per-person expected-degree fields for
// every member of c under intra-core probability prob: expected core
// degree, excedence degree, and a deterministic periphery-budget walk
// that distributes each core member's excedence across periphery
// slots, consumed in descending-degree order. community_core_probs is
// recorded from c.P (the community's own current probability), not
// from prob, matching the source's split between "probability used for
// this estimate" and "probability currently assigned to the
// community."
func ComputeCommunityInfo(info *Info, c community.Community, prob float64) {
	peripheryBudget := make([]int, len(c.Periphery))
	for k, pp := range c.Periphery {
		peripheryBudget[k] = pp.Degree
	}

	coreSize := len(c.Core)
	for _, pi := range c.Core {
		info.ExpectedCoreDegree[pi.Index] = float64(coreSize-1) * prob
		info.ExcedenceDegree[pi.Index] = float64(pi.Degree) - info.ExpectedCoreDegree[pi.Index]
		info.ExpectedPeripheryDegree[pi.Index] = 0
	}

	var remainingStubs float64
	for _, pi := range c.Core {
		pDegree := 0.0
		maxDegree := info.ExcedenceDegree[pi.Index]
		for k := range peripheryBudget {
			if peripheryBudget[k] != 0 && pDegree < maxDegree {
				pDegree++
				peripheryBudget[k]--
			}
		}
		info.ExpectedPeripheryDegree[pi.Index] = pDegree

		deg := float64(pi.Degree) - info.ExpectedCoreDegree[pi.Index] - pDegree
		info.ExpectedExternalDegree[pi.Index] = deg
		remainingStubs += deg
	}
	info.CommunityCoreStubs[c.ID] = remainingStubs
	info.CommunityCoreProbs[c.ID] = c.P
}

// EstimateCCCommunity recomputes community info for c under prob, then
// produces an analytic clustering-coefficient estimate for every
// person in c under an assumed random-wiring model of external stubs.
//
// The external-triangle pair loop below reproduces the source's
// `community_id[i] != community_id[i]` guard verbatim: it is a
// self-comparison, always false, which makes probTwoConnected
// contribute nothing. This is an intentionally preserved observable
// behavior of the original generator, not a bug fixed here; the
// evidently-intended guard would have compared against a second loop
// variable instead of itself.
func EstimateCCCommunity(info *Info, c community.Community, prob float64) {
	ComputeCommunityInfo(info, c, prob)

	var probSameCommunity, probTriangleSameCommunity, sumStubs float64
	for j := 0; j < info.NumCommunities; j++ {
		if j == c.ID {
			continue
		}
		s := info.CommunityCoreStubs[j]
		sq := s * s
		probSameCommunity += sq
		probTriangleSameCommunity += sq * info.CommunityCoreProbs[j]
		sumStubs += s
	}
	// With no external stubs in any other community both ratios stay 0
	// rather than becoming 0/0.
	if sumStubs != 0 {
		probSameCommunity /= sumStubs * sumStubs
		probTriangleSameCommunity /= sumStubs * sumStubs
	}

	var probTwoConnected float64
	for _, i := range info.CoreNodes {
		degree1 := info.ExpectedExternalDegree[i]
		if degree1 < 1 {
			continue
		}
		for _, ii := range info.CoreNodes {
			if info.CommunityID[i] != info.CommunityID[i] { //nolint:staticcheck // preserved self-comparison, see doc comment
				degree2 := info.ExpectedExternalDegree[ii]
				if degree2 >= 1 {
					probTwoConnected += degree1 * degree2 / (2 * sumStubs * sumStubs)
				}
			}
		}
	}

	for _, pi := range c.Periphery {
		if pi.Degree > 1 {
			info.ClusteringCoefficient[pi.Index] = float64(pi.Degree) * float64(pi.Degree-1) * prob /
				(float64(pi.OriginalDegree) * float64(pi.OriginalDegree-1))
		}
	}

	peripheryBudget := make([]int, len(c.Periphery))
	for k, pp := range c.Periphery {
		peripheryBudget[k] = pp.Degree
	}

	for _, pi := range c.Core {
		if pi.Degree <= 1 {
			continue
		}
		var internalTriangles float64
		internalDegree := info.ExpectedCoreDegree[pi.Index]
		if internalDegree >= 2.0 {
			internalTriangles = internalDegree * (internalDegree - 1) * prob
		}

		var peripheryTriangles float64
		remainingDegree := pi.Degree
		for k := range peripheryBudget {
			if peripheryBudget[k] > 0 {
				peripheryBudget[k]--
				remainingDegree--
				if c.Periphery[k].Degree > 1 {
					peripheryTriangles += 2 * float64(c.Periphery[k].Degree-1) * prob
				}
			}
			if remainingDegree == 0 {
				break
			}
		}

		var externalTriangles float64
		ext := info.ExpectedExternalDegree[pi.Index]
		if ext >= 2.0 {
			externalTriangles += ext * (ext - 1) * probTriangleSameCommunity
			externalTriangles += ext * (ext - 1) * (1 - probSameCommunity) * probTwoConnected
		}

		degree := float64(pi.OriginalDegree)
		if degree >= 2.0 {
			info.ClusteringCoefficient[pi.Index] = (internalTriangles + peripheryTriangles + externalTriangles) / (degree * (degree - 1))
		}
	}
}

// MeanClusteringCoefficient averages Info's per-person estimates over
// all core and periphery members across communities.
//
// countZeros=true divides by the full population size (matches zero-
// degree persons into the denominator); countZeros=false divides only
// by the count of persons with degree > 0. The refiner always uses the
// countZeros=true variant.
func MeanClusteringCoefficient(communities []community.Community, info *Info, countZeros bool) float64 {
	var accum float64
	var count int
	for _, c := range communities {
		for _, pi := range c.Core {
			if pi.Degree > 0 {
				accum += info.ClusteringCoefficient[pi.Index]
				count++
			}
		}
		for _, pi := range c.Periphery {
			if pi.Degree > 0 {
				accum += info.ClusteringCoefficient[pi.Index]
				count++
			}
		}
	}
	if countZeros {
		return accum / float64(len(info.ClusteringCoefficient))
	}
	return accum / float64(count)
}
