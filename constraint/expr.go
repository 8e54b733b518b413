package constraint

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/qpu"
)

// DerivedSource computes the engine-derived factors a constraint or
// expression can reference. The binding engine satisfies it.
type DerivedSource interface {
	Fidelity(q *qpu.QPU, c *circuit.Circuit) float64
	NormalizedCost(cost float64) float64
	NormalizedWorkload(pending int64) float64
}

// Env carries the resolution roots for one evaluation.
type Env struct {
	QPU     *qpu.QPU
	Circuit *circuit.Circuit
	Derived DerivedSource
}

// Expr is a parsed comparison-value expression.
type Expr interface {
	Eval(env *Env) (Value, error)
}

// markers that make a stored comparison value an expression rather
// than a literal.
var markers = []string{"resource.", "workload.", "derived."}

// HasPropertyMarker reports whether a comparison value string needs
// expression evaluation.
func HasPropertyMarker(s string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// splitOps in priority order. Splitting is first-match with no
// precedence: "a + b * c" splits on " * " into (a + b) * c. Kept
// intentionally; see the expression tests.
var splitOps = []string{" * ", " / ", " + ", " - "}

// Parse builds an expression tree. A binary split is taken only when
// the operator occurs exactly once; the right side is tried as a
// numeric literal before being parsed recursively.
func Parse(expression string) Expr {
	expression = strings.TrimSpace(expression)

	for _, op := range splitOps {
		parts := strings.Split(expression, op)
		if len(parts) != 2 {
			continue
		}
		right := strings.TrimSpace(parts[1])
		var rhs Expr
		if f, err := strconv.ParseFloat(right, 64); err == nil {
			rhs = literal{NumberOf(f)}
		} else {
			rhs = Parse(right)
		}
		return binary{
			op:    strings.TrimSpace(op),
			left:  Parse(parts[0]),
			right: rhs,
		}
	}

	switch {
	case strings.HasPrefix(expression, "resource."):
		return propRef{TargetResource, strings.TrimPrefix(expression, "resource.")}
	case strings.HasPrefix(expression, "workload."):
		return propRef{TargetWorkload, strings.TrimPrefix(expression, "workload.")}
	case strings.HasPrefix(expression, "derived."):
		return derivedRef{strings.TrimPrefix(expression, "derived.")}
	}

	if n, err := strconv.Atoi(expression); err == nil {
		return literal{NumberOf(float64(n))}
	}
	if f, err := strconv.ParseFloat(expression, 64); err == nil {
		return literal{NumberOf(f)}
	}
	return literal{StringOf(expression)}
}

// Evaluate parses and evaluates an expression in one step.
func Evaluate(expression string, env *Env) (Value, error) {
	return Parse(expression).Eval(env)
}

type literal struct {
	value Value
}

func (l literal) Eval(*Env) (Value, error) { return l.value, nil }

type propRef struct {
	target Target
	path   string
}

func (r propRef) Eval(env *Env) (Value, error) {
	if r.target == TargetWorkload {
		return ResolveCircuit(env.Circuit, r.path)
	}
	return ResolveQPU(env.QPU, r.path)
}

type derivedRef struct {
	name string
}

func (r derivedRef) Eval(env *Env) (Value, error) {
	return resolveDerived(r.name, env)
}

func resolveDerived(name string, env *Env) (Value, error) {
	if env == nil || env.Derived == nil {
		return Value{}, errors.Wrap(ErrMissingEngineContext, name)
	}
	switch name {
	case "fidelity":
		return NumberOf(env.Derived.Fidelity(env.QPU, env.Circuit)), nil
	case "cost":
		return NumberOf(env.QPU.Cost(env.Circuit)), nil
	case "normalized_cost":
		return NumberOf(env.Derived.NormalizedCost(env.QPU.Cost(env.Circuit))), nil
	case "normalized_workload":
		return NumberOf(env.Derived.NormalizedWorkload(env.QPU.Pending.Load())), nil
	case "circuit_depth":
		return NumberOf(float64(env.Circuit.Depth)), nil
	default:
		return Value{}, errors.Wrap(ErrUnsupportedDerivedProperty, name)
	}
}

type binary struct {
	op          string
	left, right Expr
}

func (b binary) Eval(env *Env) (Value, error) {
	left, err := b.left.Eval(env)
	if err != nil {
		return Value{}, err
	}
	right, err := b.right.Eval(env)
	if err != nil {
		return Value{}, err
	}
	if left.Kind != Number || right.Kind != Number {
		return Value{}, errors.Wrapf(ErrTypeMismatch, "operator %q wants numbers, got %s and %s", b.op, left.Kind, right.Kind)
	}
	switch b.op {
	case "*":
		return NumberOf(left.Num * right.Num), nil
	case "/":
		return NumberOf(left.Num / right.Num), nil
	case "+":
		return NumberOf(left.Num + right.Num), nil
	default:
		return NumberOf(left.Num - right.Num), nil
	}
}
