package person

// SimplePerson is a minimal Person implementation for tests, examples,
// and callers that don't need a richer account model. TargetEdges
// applies percentages[stepIndex] (if present) to BaseDegree, rounding
// down; a caller needing different percentage semantics should
// implement Person directly.
type SimplePerson struct {
	Account    uint64
	BaseDegree uint64
	Cap        uint64
	knowsSet   *KnowsSet
}

// NewSimplePerson constructs a SimplePerson with an empty knows-set.
func NewSimplePerson(account, baseDegree, maxKnows uint64) *SimplePerson {
	return &SimplePerson{Account: account, BaseDegree: baseDegree, Cap: maxKnows, knowsSet: NewKnowsSet()}
}

// TargetEdges applies percentages[stepIndex], when present and in
// range, as a multiplier on BaseDegree; otherwise returns BaseDegree
// unchanged.
func (p *SimplePerson) TargetEdges(percentages []float64, stepIndex int) uint64 {
	if stepIndex < 0 || stepIndex >= len(percentages) {
		return p.BaseDegree
	}
	return uint64(float64(p.BaseDegree) * percentages[stepIndex])
}

// MaxKnows returns the capacity cap.
func (p *SimplePerson) MaxKnows() uint64 { return p.Cap }

// AccountID returns the opaque stable identity.
func (p *SimplePerson) AccountID() uint64 { return p.Account }

// Knows returns the mutable knows-set.
func (p *SimplePerson) Knows() *KnowsSet { return p.knowsSet }
