package binder

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// FSM is a small transition table over states S driven by events E.
// Transitions the table does not list land in the sink state.
type FSM[S comparable, E comparable] struct {
	transitions map[S]map[E]S
	sink        S
}

func (f FSM[S, E]) Next(from S, event E) S {
	if to, ok := f.transitions[from][event]; ok {
		return to
	}
	return f.sink
}

func (f FSM[S, E]) Terminal(s S) bool {
	return len(f.transitions[s]) == 0
}

// BindingState is the lifecycle of one tracked binding request.
type BindingState int

const (
	Received BindingState = iota
	Matched
	Bound
	Rejected
)

var bindingStateNames = [...]string{
	"Received",
	"Matched",
	"Bound",
	"Rejected",
}

func (s BindingState) String() string {
	return bindingStateNames[s]
}

func (s BindingState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BindingState) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, candidate := range bindingStateNames {
		if candidate == name {
			*s = BindingState(i)
			return nil
		}
	}
	return errors.Errorf("unknown binding state %q", name)
}

type bindingEvent int

const (
	eventMatched bindingEvent = iota
	eventBound
	eventRejected
)

var bindingFSM = FSM[BindingState, bindingEvent]{
	transitions: map[BindingState]map[bindingEvent]BindingState{
		Received: {
			eventMatched:  Matched,
			eventRejected: Rejected,
		},
		Matched: {
			eventBound:    Bound,
			eventRejected: Rejected,
		},
	},
	sink: Rejected,
}
