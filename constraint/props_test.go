package constraint

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/qpu"
)

func testQPU() *qpu.QPU {
	q := &qpu.QPU{
		ID:       "test-01",
		Name:     "Test Quantum",
		Provider: qpu.IBM,
		Qubits:   27,
		NativeGates: qpu.Gates(
			circuit.GateX, circuit.GateH, circuit.GateCNOT, circuit.GateRZ,
		),
		GateFidelities: map[circuit.Gate]float64{
			circuit.GateX:    0.999,
			circuit.GateH:    0.998,
			circuit.GateCNOT: 0.99,
			circuit.GateRZ:   0.997,
		},
		ReadoutFidelities: qpu.UniformReadout(27, 0.98),
		MaxDepth:          1000,
		MaxShots:          10000,
		Available:         true,
		Pricing:           qpu.GateVolumePricing{Rate: 1.0},
	}
	q.Pending.Store(10)
	return q
}

func testCircuit() *circuit.Circuit {
	c := circuit.New("ghz", 3)
	c.Shots = 1024
	c.Depth = 4
	c.GateCounts[circuit.GateH] = 1
	c.GateCounts[circuit.GateCNOT] = 2
	for i := 0; i < 3; i++ {
		c.QubitsUsed[i] = struct{}{}
		c.Measurements[i] = 1
	}
	return c
}

func TestResolveQPUScalars(t *testing.T) {
	q := testQPU()

	v, err := ResolveQPU(q, "qubits")
	require.NoError(t, err)
	assert.Equal(t, NumberOf(27), v)

	v, err = ResolveQPU(q, "available")
	require.NoError(t, err)
	assert.Equal(t, BoolOf(true), v)

	v, err = ResolveQPU(q, "provider")
	require.NoError(t, err)
	assert.Equal(t, StringOf("IBM"), v)

	v, err = ResolveQPU(q, "workload")
	require.NoError(t, err)
	assert.Equal(t, NumberOf(10), v)
}

func TestResolveQPUNestedPath(t *testing.T) {
	q := testQPU()

	v, err := ResolveQPU(q, "gate_fidelities.CNOT")
	require.NoError(t, err)
	assert.Equal(t, NumberOf(0.99), v)

	v, err = ResolveQPU(q, "readout_fidelities.5")
	require.NoError(t, err)
	assert.Equal(t, NumberOf(0.98), v)
}

func TestResolvePropertyNotFound(t *testing.T) {
	q := testQPU()

	_, err := ResolveQPU(q, "flux_capacitance")
	assert.True(t, errors.Is(err, ErrPropertyNotFound))

	_, err = ResolveQPU(q, "gate_fidelities.TOFFOLI")
	assert.True(t, errors.Is(err, ErrPropertyNotFound))

	// walking past a scalar fails too
	_, err = ResolveQPU(q, "qubits.more")
	assert.True(t, errors.Is(err, ErrPropertyNotFound))
}

func TestResolveCircuitProps(t *testing.T) {
	c := testCircuit()

	v, err := ResolveCircuit(c, "qubits_required")
	require.NoError(t, err)
	assert.Equal(t, NumberOf(3), v)

	v, err = ResolveCircuit(c, "gate_counts.CNOT")
	require.NoError(t, err)
	assert.Equal(t, NumberOf(2), v)

	v, err = ResolveCircuit(c, "measurements.2")
	require.NoError(t, err)
	assert.Equal(t, NumberOf(1), v)

	v, err = ResolveCircuit(c, "qubits_used")
	require.NoError(t, err)
	assert.Equal(t, SetOf("0", "1", "2"), v)

	_, err = ResolveCircuit(c, "teleports")
	assert.True(t, errors.Is(err, ErrPropertyNotFound))
}
