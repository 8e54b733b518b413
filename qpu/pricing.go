package qpu

import "github.com/adrrf/qubindr/circuit"

// Pricer is a QPU's pricing strategy. Each provider prices differently,
// so the variant is picked per QPU at registration.
type Pricer interface {
	Cost(c *circuit.Circuit) float64
}

// GateVolumePricing charges per shot and per transpiled gate,
// at Rate currency units per hundred shot-gates.
type GateVolumePricing struct {
	Rate float64
}

func (p GateVolumePricing) Cost(c *circuit.Circuit) float64 {
	return p.Rate * float64(c.Shots) * float64(c.TotalGates()) / 100
}

// QubitVolumePricing charges per shot and per touched qubit,
// at Rate currency units per ten shot-qubits.
type QubitVolumePricing struct {
	Rate float64
}

func (p QubitVolumePricing) Cost(c *circuit.Circuit) float64 {
	return p.Rate * float64(c.Shots) * float64(len(c.QubitsUsed)) / 10
}
