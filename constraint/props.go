package constraint

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/qpu"
)

// Typed accessor registries: one getter per known property name, so
// dotted-path resolution never reflects over struct fields. Trailing
// path segments index into map-kinded values.

var qpuProps = map[string]func(*qpu.QPU) Value{
	"id":       func(q *qpu.QPU) Value { return StringOf(q.ID) },
	"name":     func(q *qpu.QPU) Value { return StringOf(q.Name) },
	"provider": func(q *qpu.QPU) Value { return StringOf(string(q.Provider)) },
	"qubits":   func(q *qpu.QPU) Value { return NumberOf(float64(q.Qubits)) },
	"native_gates": func(q *qpu.QPU) Value {
		gates := make([]string, 0, len(q.NativeGates))
		for g := range q.NativeGates {
			gates = append(gates, string(g))
		}
		return SetOf(gates...)
	},
	"gate_fidelities": func(q *qpu.QPU) Value {
		m := make(map[string]Value, len(q.GateFidelities))
		for g, f := range q.GateFidelities {
			m[string(g)] = NumberOf(f)
		}
		return MapOf(m)
	},
	"readout_fidelities": func(q *qpu.QPU) Value {
		m := make(map[string]Value, len(q.ReadoutFidelities))
		for qubit, f := range q.ReadoutFidelities {
			m[strconv.Itoa(qubit)] = NumberOf(f)
		}
		return MapOf(m)
	},
	"max_depth": func(q *qpu.QPU) Value { return NumberOf(float64(q.MaxDepth)) },
	"max_shots": func(q *qpu.QPU) Value { return NumberOf(float64(q.MaxShots)) },
	"workload":  func(q *qpu.QPU) Value { return NumberOf(float64(q.Pending.Load())) },
	"available": func(q *qpu.QPU) Value { return BoolOf(q.Available) },
}

var circuitProps = map[string]func(*circuit.Circuit) Value{
	"id":              func(c *circuit.Circuit) Value { return StringOf(c.ID.String()) },
	"name":            func(c *circuit.Circuit) Value { return StringOf(c.Name) },
	"qubits_required": func(c *circuit.Circuit) Value { return NumberOf(float64(c.QubitsRequired)) },
	"shots":           func(c *circuit.Circuit) Value { return NumberOf(float64(c.Shots)) },
	"depth":           func(c *circuit.Circuit) Value { return NumberOf(float64(c.Depth)) },
	"gate_counts": func(c *circuit.Circuit) Value {
		m := make(map[string]Value, len(c.GateCounts))
		for g, n := range c.GateCounts {
			m[string(g)] = NumberOf(float64(n))
		}
		return MapOf(m)
	},
	"qubits_used": func(c *circuit.Circuit) Value {
		qubits := make([]string, 0, len(c.QubitsUsed))
		for q := range c.QubitsUsed {
			qubits = append(qubits, strconv.Itoa(q))
		}
		return SetOf(qubits...)
	},
	"measurements": func(c *circuit.Circuit) Value {
		m := make(map[string]Value, len(c.Measurements))
		for qubit, n := range c.Measurements {
			m[strconv.Itoa(qubit)] = NumberOf(float64(n))
		}
		return MapOf(m)
	},
}

// ResolveQPU resolves a dotted property path against a QPU.
func ResolveQPU(q *qpu.QPU, path string) (Value, error) {
	return resolve(path, func(name string) (Value, bool) {
		getter, ok := qpuProps[name]
		if !ok {
			return Value{}, false
		}
		return getter(q), true
	})
}

// ResolveCircuit resolves a dotted property path against a circuit.
func ResolveCircuit(c *circuit.Circuit, path string) (Value, error) {
	return resolve(path, func(name string) (Value, bool) {
		getter, ok := circuitProps[name]
		if !ok {
			return Value{}, false
		}
		return getter(c), true
	})
}

func resolve(path string, root func(string) (Value, bool)) (Value, error) {
	segments := strings.Split(path, ".")
	value, ok := root(segments[0])
	if !ok {
		return Value{}, errors.Wrap(ErrPropertyNotFound, path)
	}
	for _, segment := range segments[1:] {
		if value.Kind != Map {
			return Value{}, errors.Wrapf(ErrPropertyNotFound, "%s (segment %q is not a mapping)", path, segment)
		}
		next, ok := value.Map[segment]
		if !ok {
			return Value{}, errors.Wrapf(ErrPropertyNotFound, "%s (missing key %q)", path, segment)
		}
		value = next
	}
	return value, nil
}
