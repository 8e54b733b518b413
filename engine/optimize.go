package engine

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/constraint"
	"github.com/adrrf/qubindr/qpu"
)

// ErrNoFeasibleQPU is returned when optimization receives an empty
// feasible set.
var ErrNoFeasibleQPU = errors.New("no feasible QPU found")

// Optimize picks the feasible QPU with the lowest figure of merit.
// Equal scores keep the earliest candidate.
func (e *Engine) Optimize(feasible []*qpu.QPU, c *circuit.Circuit, w Weights) (*qpu.QPU, error) {
	if len(feasible) == 0 {
		return nil, ErrNoFeasibleQPU
	}

	best := feasible[0]
	bestScore := e.Score(best, c, w)
	for _, q := range feasible[1:] {
		if score := e.Score(q, c, w); score < bestScore {
			best, bestScore = q, score
		}
	}
	return best, nil
}

// RankedQPU is one entry of a ranking, ascending by figure of merit.
type RankedQPU struct {
	ID       string       `json:"qpu_id"`
	Name     string       `json:"qpu_name"`
	Provider qpu.Provider `json:"provider"`
	Score    float64      `json:"figure_of_merit"`
}

// Rank scores every feasible QPU and sorts ascending. The sort is
// stable: equal scores preserve pool order.
func (e *Engine) Rank(feasible []*qpu.QPU, c *circuit.Circuit, w Weights) []RankedQPU {
	ranked := make([]RankedQPU, 0, len(feasible))
	for _, q := range feasible {
		ranked = append(ranked, RankedQPU{
			ID:       q.ID,
			Name:     q.Name,
			Provider: q.Provider,
			Score:    e.Score(q, c, w),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score < ranked[j].Score })
	return ranked
}

// MatchResult is the outcome of a full bind: the selected QPU, its
// figure of merit and, when asked for, the ranking of the whole
// feasible set.
type MatchResult struct {
	Selected *qpu.QPU
	Score    float64
	Ranked   []RankedQPU
}

// Bind runs both phases end to end.
func (e *Engine) Bind(c *circuit.Circuit, constraints []constraint.Constraint, w Weights, ranking bool) (*MatchResult, error) {
	feasible := e.Match(c, constraints)
	selected, err := e.Optimize(feasible, c, w)
	if err != nil {
		return nil, err
	}

	result := &MatchResult{Selected: selected, Score: e.Score(selected, c, w)}
	if ranking {
		result.Ranked = e.Rank(feasible, c, w)
	}
	return result, nil
}
