package circuit

import (
	"github.com/google/uuid"
)

// Gate is a transpiled gate kind.
type Gate string

const (
	GateX    Gate = "X"
	GateY    Gate = "Y"
	GateZ    Gate = "Z"
	GateH    Gate = "H"
	GateCNOT Gate = "CNOT"
	GateCZ   Gate = "CZ"
	GateRZ   Gate = "RZ"
	GateRX   Gate = "RX"
	GateRY   Gate = "RY"
	GateT    Gate = "T"
	GateS    Gate = "S"
)

const DefaultShots = 1000

// Circuit is the structured form of a quantum program after compilation.
// The binding engine consumes it read-only.
type Circuit struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	QubitsRequired int              `json:"qubits_required"`
	Shots          int              `json:"shots"`
	GateCounts     map[Gate]int     `json:"gate_counts"`
	Depth          int              `json:"depth"`
	QubitsUsed     map[int]struct{} `json:"-"`
	Measurements   map[int]int      `json:"measurements"`
}

func New(name string, qubitsRequired int) *Circuit {
	return &Circuit{
		ID:             uuid.New(),
		Name:           name,
		QubitsRequired: qubitsRequired,
		Shots:          DefaultShots,
		GateCounts:     make(map[Gate]int),
		QubitsUsed:     make(map[int]struct{}),
		Measurements:   make(map[int]int),
	}
}

// TotalGates is the number of transpiled gate applications.
func (c *Circuit) TotalGates() int {
	total := 0
	for _, n := range c.GateCounts {
		total += n
	}
	return total
}
