package constraint

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/qpu"
)

func evaluateProperty(t *testing.T, target Target, property string, op Operator, value any) (bool, error) {
	t.Helper()
	ct := New("t", "test constraint", target, property, op, value, nil)
	return ct.Evaluate(testQPU(), testCircuit(), fakeDerived{fidelity: 0.97})
}

func TestOrderingOperators(t *testing.T) {
	cases := []struct {
		name     string
		op       Operator
		value    any
		expected bool
	}{
		{"ge true", OpGE, 27, true},
		{"ge boundary", OpGE, 27.0, true},
		{"ge false", OpGE, 50, false},
		{"gt false at boundary", OpGT, 27, false},
		{"lt true", OpLT, 100, true},
		{"le true at boundary", OpLE, 27, true},
		{"eq true", OpEQ, 27, true},
		{"ne true", OpNE, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := evaluateProperty(t, TargetResource, "qubits", tc.op, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestEqualityAcrossKindsIsFalseNotError(t *testing.T) {
	ok, err := evaluateProperty(t, TargetResource, "qubits", OpEQ, "IBM")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = evaluateProperty(t, TargetResource, "qubits", OpNE, "IBM")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOrderingTypeMismatch(t *testing.T) {
	_, err := evaluateProperty(t, TargetResource, "qubits", OpGE, "fifty")
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = evaluateProperty(t, TargetResource, "native_gates", OpGT, 3)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestMembershipOperators(t *testing.T) {
	ok, err := evaluateProperty(t, TargetResource, "provider", OpIn, []any{"IBM", "AWS"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = evaluateProperty(t, TargetResource, "provider", OpNotIn, []any{"AZURE"})
	require.NoError(t, err)
	assert.True(t, ok)

	// numeric membership stringifies both sides the same way
	ok, err = evaluateProperty(t, TargetResource, "qubits", OpIn, []any{27.0, 127.0})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = evaluateProperty(t, TargetResource, "provider", OpIn, 42)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestSetOperators(t *testing.T) {
	// native_gates = {X, H, CNOT, RZ}
	ok, err := evaluateProperty(t, TargetResource, "native_gates", OpContains, []any{"H", "CNOT"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = evaluateProperty(t, TargetResource, "native_gates", OpContains, []any{"H", "T"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = evaluateProperty(t, TargetResource, "native_gates", OpSubset,
		[]any{"X", "H", "CNOT", "RZ", "CZ"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = evaluateProperty(t, TargetResource, "native_gates", OpSuperset, []any{"X", "H"})
	require.NoError(t, err)
	assert.True(t, ok)

	// map-kinded properties coerce to their key set
	ok, err = evaluateProperty(t, TargetWorkload, "gate_counts", OpSubset, []any{"H", "CNOT", "X"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExpressionComparisonValue(t *testing.T) {
	// resource.qubits (27) >= workload.qubits_required * 2 (6)
	ok, err := evaluateProperty(t, TargetResource, "qubits", OpGE, "workload.qubits_required * 2")
	require.NoError(t, err)
	assert.True(t, ok)

	// workload.depth (4) <= resource.max_depth * 0.8 (800)
	ok, err = evaluateProperty(t, TargetWorkload, "depth", OpLE, "resource.max_depth * 0.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkerFreeStringStaysLiteral(t *testing.T) {
	ok, err := evaluateProperty(t, TargetResource, "provider", OpEQ, "IBM")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDerivedTarget(t *testing.T) {
	ok, err := evaluateProperty(t, TargetDerived, "fidelity", OpGE, 0.95)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = evaluateProperty(t, TargetDerived, "circuit_depth", OpLE, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = evaluateProperty(t, TargetDerived, "decoherence", OpGE, 1)
	assert.True(t, errors.Is(err, ErrUnsupportedDerivedProperty))
}

func TestDerivedTargetWithoutEngine(t *testing.T) {
	ct := New("needs-engine", "", TargetDerived, "fidelity", OpGE, 0.9, nil)
	_, err := ct.Evaluate(testQPU(), testCircuit(), nil)
	assert.True(t, errors.Is(err, ErrMissingEngineContext))
}

func TestPropertyNotFoundPropagates(t *testing.T) {
	_, err := evaluateProperty(t, TargetResource, "flux_capacitance", OpGE, 1)
	assert.True(t, errors.Is(err, ErrPropertyNotFound))
}

func TestCustomConstraintOverride(t *testing.T) {
	called := false
	ct := NewCustom("custom", "predicate wins", func(q *qpu.QPU, c *circuit.Circuit) bool {
		called = true
		return q.Qubits > c.QubitsRequired
	})

	ok, err := ct.Evaluate(testQPU(), testCircuit(), nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, called)
}

func TestParseTargetAndOperator(t *testing.T) {
	target, err := ParseTarget("resource")
	require.NoError(t, err)
	assert.Equal(t, TargetResource, target)

	_, err = ParseTarget("galaxy")
	assert.Error(t, err)

	op, err := ParseOperator("not_in")
	require.NoError(t, err)
	assert.Equal(t, OpNotIn, op)

	_, err = ParseOperator("approximately")
	assert.True(t, errors.Is(err, ErrUnsupportedOperator))
}

func TestParameterBag(t *testing.T) {
	ct := New("tiered", "", TargetResource, "qubits", OpGE, 1,
		map[string]any{"tier": "gold"})

	v, ok := ct.Parameter("tier")
	require.True(t, ok)
	assert.Equal(t, "gold", v)

	_, ok = ct.Parameter("absent")
	assert.False(t, ok)
}

func TestConstraintEvaluationIsPure(t *testing.T) {
	q := testQPU()
	c := testCircuit()
	pendingBefore := q.Pending.Load()
	shotsBefore := c.Shots

	ct := New("pure", "", TargetResource, "qubits", OpGE, 5, nil)
	for i := 0; i < 3; i++ {
		ok, err := ct.Evaluate(q, c, fakeDerived{fidelity: 0.97})
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.Equal(t, pendingBefore, q.Pending.Load())
	assert.Equal(t, shotsBefore, c.Shots)
}
