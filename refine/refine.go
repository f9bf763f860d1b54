// Package refine implements the bounded hill-climber that nudges
// per-community intra-core edge probabilities toward a target mean
// clustering coefficient.
package refine

import (
	"math"
	"math/rand"

	"github.com/ldbc/knowsgen/clustering"
	"github.com/ldbc/knowsgen/community"
)

// tolerance is the convergence window for |currentCC - targetCC|.
const tolerance = 0.001

// lookAhead bounds consecutive failed attempts (no eligible community
// to adjust) before the refiner gives up on this call and returns its
// best effort; any successful adjustment resets the count.
const lookAhead = 5

// Refine drives the mean clustering coefficient (countZeros=true
// variant) of communities toward targetCC by repeatedly raising or
// lowering a single randomly chosen community's probability by
// step(|core|) = 3/|core|, clamped to [community.MinCommunityProb, 1.0].
// It mutates communities[i].P in place and returns the final measured
// coefficient.
func Refine(rng *rand.Rand, info *clustering.Info, communities []community.Community, targetCC float64) float64 {
	currentCC := clustering.MeanClusteringCoefficient(communities, info, true)
	tries := 0
	for math.Abs(currentCC-targetCC) > tolerance && tries <= lookAhead {
		tries++
		var found bool
		if currentCC < targetCC {
			found = improveCC(rng, info, communities)
		} else if currentCC > targetCC {
			found = worsenCC(rng, info, communities)
		}
		if found {
			currentCC = clustering.MeanClusteringCoefficient(communities, info, true)
			tries = 0
		}
	}
	return currentCC
}

func step(coreSize int) float64 {
	return 3.0 / float64(coreSize)
}

// improveCC raises the probability of a uniform-random community with
// P < 1.0 by step(|core|), clamped to 1.0, then re-estimates its
// clustering-coefficient contribution.
func improveCC(rng *rand.Rand, info *clustering.Info, communities []community.Community) bool {
	var eligible []int
	for i, c := range communities {
		if c.P < 1.0 {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return false
	}
	idx := eligible[rng.Intn(len(eligible))]
	c := &communities[idx]
	c.P += step(len(c.Core))
	if c.P > 1.0 {
		c.P = 1.0
	}
	info.SumProbs += 0.01
	clustering.EstimateCCCommunity(info, *c, c.P)
	return true
}

// worsenCC lowers the probability of a uniform-random community with
// P > community.MinCommunityProb by step(|core|), clamped to the
// floor, then re-estimates its clustering-coefficient contribution.
func worsenCC(rng *rand.Rand, info *clustering.Info, communities []community.Community) bool {
	var eligible []int
	for i, c := range communities {
		if c.P > community.MinCommunityProb {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return false
	}
	idx := eligible[rng.Intn(len(eligible))]
	c := &communities[idx]
	c.P -= step(len(c.Core))
	if c.P < community.MinCommunityProb {
		c.P = community.MinCommunityProb
	}
	info.SumProbs -= 0.01
	clustering.EstimateCCCommunity(info, *c, c.P)
	return true
}
