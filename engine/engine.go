// Package engine implements the two-phase QPU binding engine: a
// matching phase that filters the pool through availability, capacity
// and declarative constraints, and an optimization phase that ranks the
// survivors by figure of merit.
package engine

import (
	"log"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/constraint"
	"github.com/adrrf/qubindr/qpu"
)

// Engine evaluates circuits against a fixed snapshot of the QPU pool.
// It runs pure synchronous computation: no I/O, no pool mutation.
type Engine struct {
	qpus []*qpu.QPU
}

var _ constraint.DerivedSource = (*Engine)(nil)

func New(qpus []*qpu.QPU) *Engine {
	return &Engine{qpus: qpus}
}

func (e *Engine) QPUs() []*qpu.QPU { return e.qpus }

// Match returns the feasible subset of the pool for the circuit, in
// pool order. A QPU is feasible when it is available, has enough
// qubits and satisfies every constraint. One QPU failing a constraint,
// or erroring during evaluation, never stops the pass for the rest.
func (e *Engine) Match(c *circuit.Circuit, constraints []constraint.Constraint) []*qpu.QPU {
	var feasible []*qpu.QPU
	for _, q := range e.qpus {
		if e.isFeasible(q, c, constraints) {
			feasible = append(feasible, q)
		}
	}
	return feasible
}

func (e *Engine) isFeasible(q *qpu.QPU, c *circuit.Circuit, constraints []constraint.Constraint) bool {
	if !q.Available {
		return false
	}
	if q.Qubits < c.QubitsRequired {
		return false
	}
	for _, ct := range constraints {
		satisfied, err := ct.Evaluate(q, c, e)
		if err != nil {
			log.Printf("constraint %q errored against %s, marking infeasible: %v\n", ct.Name(), q.ID, err)
			return false
		}
		if !satisfied {
			return false
		}
	}
	return true
}
