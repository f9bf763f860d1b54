package community

import (
	"fmt"
	"sort"
)

// MinCommunityProb is the floor for a community's intra-core edge
// probability P; the refiner never drives P below this value.
const MinCommunityProb = 0.05

// lookaheadThreshold bounds how many consecutive infeasible right-
// endpoint probes the partitioner tolerates before accepting the last
// known-feasible window.
const lookaheadThreshold = 5

// Partition splits persons (indexed 0..len(persons)-1, already sorted
// by the caller) into an ordered list of disjoint Communities.
//
// degree and originalDegree give, for each index, the current target
// degree and the capacity upper bound respectively; both must have
// length len(persons) == n.
func Partition(n int, degree, originalDegree []int) ([]Community, error) {
	var out []Community
	begin := 0
	for begin < n {
		best := -1
		var bestWindow *window
		fails := 0
		last := begin
		for last < n {
			w := findSolution(begin, last, degree, originalDegree)
			if w != nil {
				best = last
				bestWindow = w
				fails = 0
			} else {
				fails++
				if fails > lookaheadThreshold {
					break
				}
			}
			last++
		}
		if bestWindow == nil {
			return nil, ErrInfeasiblePartition
		}
		c := Community{
			ID:        len(out),
			Core:      bestWindow.core,
			Periphery: bestWindow.periphery,
			P:         1.0,
		}
		out = append(out, c)
		begin = best + 1
	}
	return out, nil
}

// window is the intermediate feasibility result for one [begin,last] probe.
type window struct {
	core      []PersonInfo
	periphery []PersonInfo
}

// findSolution builds and classifies PersonInfo entries for the window
// [begin,last] (inclusive), then checks periphery feasibility via
// checkBudget. It returns nil if the window is infeasible.
func findSolution(begin, last int, degree, originalDegree []int) *window {
	size := last - begin + 1
	infos := make([]PersonInfo, size)
	for i := 0; i < size; i++ {
		idx := begin + i
		infos[i] = PersonInfo{Index: idx, Degree: degree[idx], OriginalDegree: originalDegree[idx]}
	}
	sort.Sort(ByDegreeDescIndexAsc(infos))

	var core, periphery []PersonInfo
	for i, pi := range infos {
		// Equivalent to the standard degree-k-core test: a node of
		// degree d can participate in a clique of size <= d+1.
		if pi.Degree >= i {
			core = append(core, pi)
		} else {
			periphery = append(periphery, pi)
		}
	}
	if !checkBudget(core, periphery) {
		return nil
	}
	return &window{core: core, periphery: periphery}
}

// checkBudget verifies periphery is feasible against core's excess
// budget: budget[i] = core[i].Degree - (len(core)-1) stubs remain on
// core node i after it completes the core clique. Periphery nodes are
// consumed, descending by degree: a node of degree d takes one unit
// from each of the first d positive budget slots.
func checkBudget(core, periphery []PersonInfo) bool {
	if len(periphery) == 0 {
		return true
	}
	budget := make([]int, len(core))
	for i, pi := range core {
		budget[i] = pi.Degree - (len(core) - 1)
	}
	peri := append([]PersonInfo(nil), periphery...)
	sort.Sort(ByDegreeDescIndexAsc(peri))

	for _, p := range peri {
		need := p.Degree
		for i := 0; i < len(budget) && need > 0; i++ {
			if budget[i] <= 0 {
				continue
			}
			budget[i]--
			need--
		}
		if need > 0 {
			return false
		}
	}
	return true
}

// Validate asserts the core-viability invariant for c: every core
// member's degree must be at least len(Core)-1. A violation is a
// programmer error upstream of this package (malformed PersonInfo),
// not a condition this package can recover from; callers should treat
// a non-nil error as diagnostic, not as generator-fatal.
func Validate(c Community) error {
	for _, pi := range c.Core {
		if pi.Degree < len(c.Core)-1 {
			return fmt.Errorf("community: core invariant violated: community=%d person=%d degree=%d core_size=%d",
				c.ID, pi.Index, pi.Degree, len(c.Core))
		}
	}
	return nil
}
