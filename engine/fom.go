package engine

import (
	"math"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/qpu"
)

// NormalizedCost squashes a raw cost into (0,1) through a logistic
// centered at 100 currency units, so cost 100 maps to 0.5. Monotonic
// increasing in cost.
func (e *Engine) NormalizedCost(cost float64) float64 {
	return 1 / (1 + math.Exp(-0.01*(cost-100)))
}

// Fidelity estimates the end-to-end success probability of the circuit
// on the QPU: gate fidelities raised to their occurrence counts times
// readout fidelities raised to their measurement counts. Gates and
// qubits the QPU does not report are skipped, not penalized. A circuit
// with no gates scores 1.0.
func (e *Engine) Fidelity(q *qpu.QPU, c *circuit.Circuit) float64 {
	if len(c.GateCounts) == 0 {
		return 1.0
	}

	fidelity := 1.0
	for gate, count := range c.GateCounts {
		if f, ok := q.GateFidelities[gate]; ok {
			fidelity *= math.Pow(f, float64(count))
		}
	}
	for qubit, measurements := range c.Measurements {
		if f, ok := q.ReadoutFidelities[qubit]; ok {
			fidelity *= math.Pow(f, float64(measurements))
		}
	}
	return fidelity
}

// NormalizedWorkload maps a queue depth into [0,1], saturating at 100
// pending jobs.
func (e *Engine) NormalizedWorkload(pending int64) float64 {
	return math.Min(1.0, float64(pending)/100.0)
}

// Score is the figure of merit for running the circuit on the QPU.
// Lower is better; with weights summing to 1 the result stays in (0,1).
func (e *Engine) Score(q *qpu.QPU, c *circuit.Circuit, w Weights) float64 {
	normalizedCost := e.NormalizedCost(q.Cost(c))
	fidelity := e.Fidelity(q, c)
	normalizedWorkload := e.NormalizedWorkload(q.Pending.Load())

	return w.Cost*normalizedCost + w.Error*(1-fidelity) + w.Workload*normalizedWorkload
}
