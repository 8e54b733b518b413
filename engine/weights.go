package engine

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidWeights flags a weight triple that is negative somewhere or
// does not sum to 1.0.
var ErrInvalidWeights = errors.New("weights must be non-negative and sum to 1.0")

const weightTolerance = 1e-6

// Weights blend the normalized factors into the figure of merit. Build
// them with NewWeights so the sum invariant holds; weights are never
// silently renormalized.
type Weights struct {
	Cost     float64 `json:"cost_weight"`
	Error    float64 `json:"error_weight"`
	Workload float64 `json:"workload_weight"`
}

func NewWeights(cost, errorWeight, workload float64) (Weights, error) {
	if cost < 0 || errorWeight < 0 || workload < 0 {
		return Weights{}, errors.Wrapf(ErrInvalidWeights, "got (%g, %g, %g)", cost, errorWeight, workload)
	}
	if total := cost + errorWeight + workload; math.Abs(total-1.0) > weightTolerance {
		return Weights{}, errors.Wrapf(ErrInvalidWeights, "sum is %g", total)
	}
	return Weights{Cost: cost, Error: errorWeight, Workload: workload}, nil
}

func DefaultWeights() Weights {
	return Weights{Cost: 0.33, Error: 0.33, Workload: 0.34}
}
