package constraint

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Kind tags the variants a resolved property value can take.
type Kind int

const (
	Number Kind = iota
	Bool
	String
	Set
	Map
)

func (k Kind) String() string {
	return [...]string{"number", "bool", "string", "set", "map"}[k]
}

// Value is the tagged union produced by property resolution and
// expression evaluation. Exactly the field selected by Kind is set.
type Value struct {
	Kind Kind
	Num  float64
	Bool bool
	Str  string
	Set  map[string]struct{}
	Map  map[string]Value
}

func NumberOf(f float64) Value       { return Value{Kind: Number, Num: f} }
func BoolOf(b bool) Value            { return Value{Kind: Bool, Bool: b} }
func StringOf(s string) Value        { return Value{Kind: String, Str: s} }
func MapOf(m map[string]Value) Value { return Value{Kind: Map, Map: m} }

func SetOf(elems ...string) Value {
	set := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}
	return Value{Kind: Set, Set: set}
}

// scalarKey renders a scalar as a set-membership key. Numbers drop
// trailing zero fractions so 50 and 50.0 collide, matching how
// comparison collections are built from decoded JSON.
func (v Value) scalarKey() (string, error) {
	switch v.Kind {
	case Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64), nil
	case String:
		return v.Str, nil
	case Bool:
		return strconv.FormatBool(v.Bool), nil
	default:
		return "", errors.Wrapf(ErrTypeMismatch, "%s is not a scalar", v.Kind)
	}
}

// asSet coerces set-like values: sets stay, maps contribute their keys.
func (v Value) asSet() (map[string]struct{}, error) {
	switch v.Kind {
	case Set:
		return v.Set, nil
	case Map:
		keys := make(map[string]struct{}, len(v.Map))
		for k := range v.Map {
			keys[k] = struct{}{}
		}
		return keys, nil
	default:
		return nil, errors.Wrapf(ErrTypeMismatch, "%s is not a collection", v.Kind)
	}
}

// ValueOf converts a decoded literal (JSON scalar, list or object) into
// a Value. Lists become sets of scalar keys; objects become maps.
func ValueOf(raw any) Value {
	switch t := raw.(type) {
	case Value:
		return t
	case nil:
		return StringOf("")
	case bool:
		return BoolOf(t)
	case int:
		return NumberOf(float64(t))
	case int64:
		return NumberOf(float64(t))
	case float64:
		return NumberOf(t)
	case string:
		return StringOf(t)
	case []any:
		elems := make([]string, 0, len(t))
		for _, e := range t {
			if key, err := ValueOf(e).scalarKey(); err == nil {
				elems = append(elems, key)
			}
		}
		return SetOf(elems...)
	case []string:
		return SetOf(t...)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = ValueOf(e)
		}
		return MapOf(m)
	default:
		return StringOf(fmt.Sprintf("%v", raw))
	}
}

func equalValues(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Number:
		return a.Num == b.Num
	case Bool:
		return a.Bool == b.Bool
	case String:
		return a.Str == b.Str
	case Set:
		if len(a.Set) != len(b.Set) {
			return false
		}
		for e := range a.Set {
			if _, ok := b.Set[e]; !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// orderValues compares two scalars of the same comparable kind,
// returning <0, 0 or >0.
func orderValues(a, b Value) (int, error) {
	if a.Kind == Number && b.Kind == Number {
		switch {
		case a.Num < b.Num:
			return -1, nil
		case a.Num > b.Num:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.Kind == String && b.Kind == String {
		switch {
		case a.Str < b.Str:
			return -1, nil
		case a.Str > b.Str:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, errors.Wrapf(ErrTypeMismatch, "cannot order %s against %s", a.Kind, b.Kind)
}

func subsetOf(inner, outer map[string]struct{}) bool {
	for e := range inner {
		if _, ok := outer[e]; !ok {
			return false
		}
	}
	return true
}
