package knowsgen

import "errors"

// ErrIterationCeilingReached indicates the outer convergence loop hit
// config.Config.MaxIterations without driving the measured clustering
// coefficient within tolerance of the target. GenerateKnows still
// returns its best-effort Stats alongside this error.
var ErrIterationCeilingReached = errors.New("knowsgen: iteration ceiling reached before convergence")
