// Package constraint implements the declarative predicate sublanguage
// the binding engine filters QPUs with: dotted property resolution,
// comparison-value expressions and the operator set.
package constraint

import (
	"github.com/pkg/errors"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/qpu"
)

// Target names the root a constraint's property resolves against.
type Target string

const (
	TargetResource Target = "resource"
	TargetWorkload Target = "workload"
	TargetDerived  Target = "derived"
)

// ParseTarget validates a target token from a request.
func ParseTarget(token string) (Target, error) {
	switch Target(token) {
	case TargetResource, TargetWorkload, TargetDerived:
		return Target(token), nil
	default:
		return "", errors.Errorf("unknown constraint target %q", token)
	}
}

// Operator is a comparison operator token.
type Operator string

const (
	OpEQ       Operator = "eq"
	OpNE       Operator = "ne"
	OpGT       Operator = "gt"
	OpGE       Operator = "ge"
	OpLT       Operator = "lt"
	OpLE       Operator = "le"
	OpIn       Operator = "in"
	OpNotIn    Operator = "not_in"
	OpContains Operator = "contains"
	OpSubset   Operator = "subset"
	OpSuperset Operator = "superset"
)

// ParseOperator validates an operator token from a request.
func ParseOperator(token string) (Operator, error) {
	switch Operator(token) {
	case OpEQ, OpNE, OpGT, OpGE, OpLT, OpLE, OpIn, OpNotIn, OpContains, OpSubset, OpSuperset:
		return Operator(token), nil
	default:
		return "", errors.Wrap(ErrUnsupportedOperator, token)
	}
}

// Constraint is one declarative predicate over a (QPU, circuit) pair.
// Evaluations are pure: they never mutate either operand.
type Constraint interface {
	Name() string
	Description() string
	Evaluate(q *qpu.QPU, c *circuit.Circuit, derived DerivedSource) (bool, error)
}

// Property compares a resolved property against a stored value, which
// may itself be an expression over resource/workload/derived
// properties.
type Property struct {
	name        string
	description string
	target      Target
	property    string
	operator    Operator
	value       any
	parameters  map[string]any
}

// New builds a property constraint. Target and operator are assumed
// already validated (see ParseTarget and ParseOperator).
func New(name, description string, target Target, property string, operator Operator, value any, parameters map[string]any) *Property {
	return &Property{
		name:        name,
		description: description,
		target:      target,
		property:    property,
		operator:    operator,
		value:       value,
		parameters:  parameters,
	}
}

func (p *Property) Name() string        { return p.name }
func (p *Property) Description() string { return p.description }

// Parameter reads from the optional parameter bag.
func (p *Property) Parameter(key string) (any, bool) {
	v, ok := p.parameters[key]
	return v, ok
}

func (p *Property) Evaluate(q *qpu.QPU, c *circuit.Circuit, derived DerivedSource) (bool, error) {
	env := &Env{QPU: q, Circuit: c, Derived: derived}

	var propertyValue Value
	var err error
	switch p.target {
	case TargetResource:
		propertyValue, err = ResolveQPU(q, p.property)
	case TargetWorkload:
		propertyValue, err = ResolveCircuit(c, p.property)
	case TargetDerived:
		propertyValue, err = resolveDerived(p.property, env)
	default:
		err = errors.Errorf("unknown constraint target %q", p.target)
	}
	if err != nil {
		return false, err
	}

	comparisonValue := ValueOf(p.value)
	if s, ok := p.value.(string); ok && HasPropertyMarker(s) {
		comparisonValue, err = Evaluate(s, env)
		if err != nil {
			return false, err
		}
	}

	return compare(p.operator, propertyValue, comparisonValue)
}

// Custom wraps a caller-supplied predicate. It overrides all property
// and operator logic.
type Custom struct {
	name        string
	description string
	predicate   func(q *qpu.QPU, c *circuit.Circuit) bool
}

func NewCustom(name, description string, predicate func(q *qpu.QPU, c *circuit.Circuit) bool) *Custom {
	return &Custom{name: name, description: description, predicate: predicate}
}

func (cc *Custom) Name() string        { return cc.name }
func (cc *Custom) Description() string { return cc.description }

func (cc *Custom) Evaluate(q *qpu.QPU, c *circuit.Circuit, _ DerivedSource) (bool, error) {
	return cc.predicate(q, c), nil
}

func compare(op Operator, property, comparison Value) (bool, error) {
	switch op {
	case OpEQ:
		return equalValues(property, comparison), nil
	case OpNE:
		return !equalValues(property, comparison), nil

	case OpGT, OpGE, OpLT, OpLE:
		order, err := orderValues(property, comparison)
		if err != nil {
			return false, err
		}
		switch op {
		case OpGT:
			return order > 0, nil
		case OpGE:
			return order >= 0, nil
		case OpLT:
			return order < 0, nil
		default:
			return order <= 0, nil
		}

	case OpIn, OpNotIn:
		collection, err := comparison.asSet()
		if err != nil {
			return false, err
		}
		key, err := property.scalarKey()
		if err != nil {
			return false, err
		}
		_, member := collection[key]
		if op == OpIn {
			return member, nil
		}
		return !member, nil

	case OpContains:
		have, err := property.asSet()
		if err != nil {
			return false, err
		}
		want, err := comparison.asSet()
		if err != nil {
			return false, err
		}
		return subsetOf(want, have), nil

	case OpSubset:
		inner, err := property.asSet()
		if err != nil {
			return false, err
		}
		outer, err := comparison.asSet()
		if err != nil {
			return false, err
		}
		return subsetOf(inner, outer), nil

	case OpSuperset:
		outer, err := property.asSet()
		if err != nil {
			return false, err
		}
		inner, err := comparison.asSet()
		if err != nil {
			return false, err
		}
		return subsetOf(inner, outer), nil

	default:
		return false, errors.Wrap(ErrUnsupportedOperator, string(op))
	}
}
