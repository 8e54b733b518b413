package qpu

import (
	"sort"
	"sync/atomic"

	"github.com/adrrf/qubindr/circuit"
)

type Provider string

const (
	IBM   Provider = "IBM"
	Azure Provider = "AZURE"
	AWS   Provider = "AWS"
)

// QPU is one quantum processor in the pool. The engine reads it as a
// snapshot; Pending is the only field callers mutate after registration,
// so it is atomic to keep in-flight scoring off torn reads.
type QPU struct {
	ID                string
	Name              string
	Provider          Provider
	Qubits            int
	NativeGates       map[circuit.Gate]struct{}
	GateFidelities    map[circuit.Gate]float64
	ReadoutFidelities map[int]float64
	MaxDepth          int
	MaxShots          int
	Pending           atomic.Int64
	Available         bool
	Pricing           Pricer
}

// Cost prices the circuit with the QPU's own pricing strategy.
func (q *QPU) Cost(c *circuit.Circuit) float64 {
	if q.Pricing == nil {
		return 0
	}
	return q.Pricing.Cost(c)
}

// Summary is the wire-friendly view of a QPU.
type Summary struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Provider    Provider       `json:"provider"`
	Qubits      int            `json:"qubits"`
	NativeGates []circuit.Gate `json:"native_gates"`
	MaxDepth    int            `json:"max_depth"`
	MaxShots    int            `json:"max_shots"`
	Pending     int64          `json:"pending"`
	Available   bool           `json:"available"`
}

func (q *QPU) Summary() Summary {
	gates := make([]circuit.Gate, 0, len(q.NativeGates))
	for g := range q.NativeGates {
		gates = append(gates, g)
	}
	sort.Slice(gates, func(i, j int) bool { return gates[i] < gates[j] })

	return Summary{
		ID:          q.ID,
		Name:        q.Name,
		Provider:    q.Provider,
		Qubits:      q.Qubits,
		NativeGates: gates,
		MaxDepth:    q.MaxDepth,
		MaxShots:    q.MaxShots,
		Pending:     q.Pending.Load(),
		Available:   q.Available,
	}
}

// Gates builds a native-gate set from a listing.
func Gates(gates ...circuit.Gate) map[circuit.Gate]struct{} {
	set := make(map[circuit.Gate]struct{}, len(gates))
	for _, g := range gates {
		set[g] = struct{}{}
	}
	return set
}

// UniformReadout gives the first n qubits the same readout fidelity.
func UniformReadout(n int, fidelity float64) map[int]float64 {
	readout := make(map[int]float64, n)
	for i := 0; i < n; i++ {
		readout[i] = fidelity
	}
	return readout
}
