package registry

import (
	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/qpu"
)

// Seed builds the demo fleet: six QPUs with distinct trade-offs so the
// optimizer has something to argue about.
func Seed() *Registry {
	return New(
		PremiumQPU(),
		StandardQPU(),
		BudgetQPU(),
		CapacityQPU(),
		AvailableQPU(),
		InactiveQPU(),
	)
}

// PremiumQPU: excellent fidelity, high price.
func PremiumQPU() *qpu.QPU {
	q := &qpu.QPU{
		ID:       "premium-01",
		Name:     "Premium Quantum",
		Provider: qpu.IBM,
		Qubits:   27,
		NativeGates: qpu.Gates(
			circuit.GateX, circuit.GateY, circuit.GateZ, circuit.GateH,
			circuit.GateCNOT, circuit.GateCZ, circuit.GateRZ, circuit.GateRX, circuit.GateRY,
		),
		GateFidelities: map[circuit.Gate]float64{
			circuit.GateX:    0.9995,
			circuit.GateY:    0.9995,
			circuit.GateZ:    0.9997,
			circuit.GateH:    0.9990,
			circuit.GateCNOT: 0.995,
			circuit.GateCZ:   0.994,
			circuit.GateRZ:   0.9993,
			circuit.GateRX:   0.9992,
			circuit.GateRY:   0.9991,
		},
		ReadoutFidelities: qpu.UniformReadout(27, 0.99),
		MaxDepth:          2000,
		MaxShots:          20000,
		Available:         true,
		Pricing:           qpu.GateVolumePricing{Rate: 2.0},
	}
	q.Pending.Store(15)
	return q
}

// StandardQPU: the middle of the road.
func StandardQPU() *qpu.QPU {
	q := &qpu.QPU{
		ID:       "standard-01",
		Name:     "Standard Quantum",
		Provider: qpu.Azure,
		Qubits:   20,
		NativeGates: qpu.Gates(
			circuit.GateX, circuit.GateY, circuit.GateZ, circuit.GateH,
			circuit.GateCNOT, circuit.GateCZ, circuit.GateRZ,
		),
		GateFidelities: map[circuit.Gate]float64{
			circuit.GateX:    0.9980,
			circuit.GateY:    0.9975,
			circuit.GateZ:    0.9985,
			circuit.GateH:    0.9970,
			circuit.GateCNOT: 0.988,
			circuit.GateCZ:   0.987,
			circuit.GateRZ:   0.9975,
		},
		ReadoutFidelities: qpu.UniformReadout(20, 0.985),
		MaxDepth:          1000,
		MaxShots:          10000,
		Available:         true,
		Pricing:           qpu.GateVolumePricing{Rate: 1.0},
	}
	q.Pending.Store(10)
	return q
}

// BudgetQPU: cheap, noisy, busy.
func BudgetQPU() *qpu.QPU {
	q := &qpu.QPU{
		ID:       "budget-01",
		Name:     "Budget Quantum",
		Provider: qpu.AWS,
		Qubits:   12,
		NativeGates: qpu.Gates(
			circuit.GateX, circuit.GateZ, circuit.GateH, circuit.GateCNOT, circuit.GateRZ,
		),
		GateFidelities: map[circuit.Gate]float64{
			circuit.GateX:    0.985,
			circuit.GateZ:    0.987,
			circuit.GateH:    0.982,
			circuit.GateCNOT: 0.975,
			circuit.GateRZ:   0.984,
		},
		ReadoutFidelities: qpu.UniformReadout(12, 0.96),
		MaxDepth:          500,
		MaxShots:          5000,
		Available:         true,
		Pricing:           qpu.GateVolumePricing{Rate: 0.5},
	}
	q.Pending.Store(75)
	return q
}

// CapacityQPU: lots of qubits, medium fidelity, per-qubit pricing.
func CapacityQPU() *qpu.QPU {
	q := &qpu.QPU{
		ID:       "capacity-01",
		Name:     "Capacity Quantum",
		Provider: qpu.IBM,
		Qubits:   127,
		NativeGates: qpu.Gates(
			circuit.GateX, circuit.GateZ, circuit.GateH, circuit.GateCNOT, circuit.GateRZ,
		),
		GateFidelities: map[circuit.Gate]float64{
			circuit.GateX:    0.990,
			circuit.GateZ:    0.992,
			circuit.GateH:    0.988,
			circuit.GateCNOT: 0.980,
			circuit.GateRZ:   0.989,
		},
		ReadoutFidelities: qpu.UniformReadout(127, 0.975),
		MaxDepth:          800,
		MaxShots:          8000,
		Available:         true,
		Pricing:           qpu.QubitVolumePricing{Rate: 1.5},
	}
	q.Pending.Store(50)
	return q
}

// AvailableQPU: same hardware class as CapacityQPU with a short queue.
func AvailableQPU() *qpu.QPU {
	q := &qpu.QPU{
		ID:       "available-01",
		Name:     "Available Quantum",
		Provider: qpu.AWS,
		Qubits:   127,
		NativeGates: qpu.Gates(
			circuit.GateX, circuit.GateZ, circuit.GateH, circuit.GateCNOT, circuit.GateRZ,
		),
		GateFidelities: map[circuit.Gate]float64{
			circuit.GateX:    0.990,
			circuit.GateZ:    0.992,
			circuit.GateH:    0.988,
			circuit.GateCNOT: 0.980,
			circuit.GateRZ:   0.989,
		},
		ReadoutFidelities: qpu.UniformReadout(127, 0.975),
		MaxDepth:          600,
		MaxShots:          15000,
		Available:         true,
		Pricing:           qpu.QubitVolumePricing{Rate: 1.5},
	}
	q.Pending.Store(5)
	return q
}

// InactiveQPU: offline, kept registered to exercise availability
// filtering.
func InactiveQPU() *qpu.QPU {
	return &qpu.QPU{
		ID:       "inactive-01",
		Name:     "Inactive Quantum",
		Provider: qpu.AWS,
		Qubits:   20,
		NativeGates: qpu.Gates(
			circuit.GateX, circuit.GateY, circuit.GateZ, circuit.GateH,
			circuit.GateCNOT, circuit.GateRZ,
		),
		GateFidelities: map[circuit.Gate]float64{
			circuit.GateX:    0.990,
			circuit.GateY:    0.989,
			circuit.GateZ:    0.991,
			circuit.GateH:    0.987,
			circuit.GateCNOT: 0.981,
			circuit.GateRZ:   0.988,
		},
		ReadoutFidelities: qpu.UniformReadout(20, 0.975),
		MaxDepth:          1200,
		MaxShots:          10000,
		Available:         false,
		Pricing:           qpu.GateVolumePricing{Rate: 1.0},
	}
}
