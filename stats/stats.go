// Package stats bundles the generator's observation-only counters
// into an explicit value, replacing the ad-hoc global mutable counters
// of the source generator with a struct the driver owns and resets
// between convergence iterations.
package stats

import "fmt"

// Stats tracks edge-emission outcomes across one generator invocation.
type Stats struct {
	NumCoreCoreEdges      int
	NumCorePeripheryEdges int
	NumCoreExternalEdges  int
	NumMisses             int

	// PersonsWithExcessDegree/PersonsWithDeficitDegree and their sums
	// are computed once at the end of generation, over core persons
	// only, comparing realized degree against target degree.
	PersonsWithExcessDegree  int
	SumExcessDegree          int
	PersonsWithDeficitDegree int
	SumDeficitDegree         int
	PersonsWithZeroDegree    int

	Iterations int
	FinalCC    float64
}

// Reset zeroes the edge and miss counters while leaving the
// degree-outcome tallies, Iterations and FinalCC untouched, matching
// the source's resetStatistics, which is called between outer
// convergence iterations but does not reset the iteration count or the
// latest measured coefficient.
func (s *Stats) Reset() {
	s.NumCoreCoreEdges = 0
	s.NumCorePeripheryEdges = 0
	s.NumCoreExternalEdges = 0
	s.NumMisses = 0
}

// Report renders the human-readable statistics block the source
// generator prints at completion.
func (s *Stats) Report() string {
	return fmt.Sprintf(
		"Number core-core edges: %d\n"+
			"Number core-periphery edges: %d\n"+
			"Number core-external edges: %d\n"+
			"Number edges missed: %d\n"+
			"Number of iterations to converge: %d\n"+
			"Number of persons with more degree than expected: %d\n"+
			"Sum of excess degree: %d\n"+
			"Number of persons with less degree than expected: %d\n"+
			"Sum of degree missed: %d\n"+
			"Number of persons with degree zero: %d\n"+
			"Final clustering coefficient: %f\n",
		s.NumCoreCoreEdges, s.NumCorePeripheryEdges, s.NumCoreExternalEdges, s.NumMisses,
		s.Iterations,
		s.PersonsWithExcessDegree, s.SumExcessDegree,
		s.PersonsWithDeficitDegree, s.SumDeficitDegree,
		s.PersonsWithZeroDegree,
		s.FinalCC,
	)
}
