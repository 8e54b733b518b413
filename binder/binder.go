// Package binder is the service layer over the binding engine: it owns
// the QPU registry, turns API requests into engine calls, applies the
// queue-depth updates the engine itself never makes, and keeps a
// bounded ledger of recent bindings.
package binder

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-collections/collections/queue"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/adrrf/qubindr/circuit"
	"github.com/adrrf/qubindr/constraint"
	"github.com/adrrf/qubindr/engine"
	"github.com/adrrf/qubindr/qpu"
	"github.com/adrrf/qubindr/registry"
)

const DefaultLedgerSize = 64

type Binder struct {
	Registry *registry.Registry

	mu        sync.Mutex
	ledger    queue.Queue
	ledgerCap int
	events    map[uuid.UUID]*Binding

	bindsServed atomic.Int64
	rejections  atomic.Int64
}

func New(reg *registry.Registry, ledgerCap int) *Binder {
	if ledgerCap <= 0 {
		ledgerCap = DefaultLedgerSize
	}
	return &Binder{
		Registry:  reg,
		ledger:    *queue.New(),
		ledgerCap: ledgerCap,
		events:    make(map[uuid.UUID]*Binding),
	}
}

// Binding is one ledger entry.
type Binding struct {
	ID            uuid.UUID    `json:"id"`
	Circuit       string       `json:"circuit"`
	QPU           string       `json:"qpu,omitempty"`
	FigureOfMerit float64      `json:"figure_of_merit"`
	State         BindingState `json:"state"`
	RequestedAt   time.Time    `json:"requested_at"`
}

type ConstraintRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Target      string         `json:"target"`
	Property    string         `json:"property"`
	Operator    string         `json:"operator"`
	Value       any            `json:"value"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type BindRequest struct {
	QASM        string              `json:"qasm"`
	Shots       int                 `json:"shots"`
	Constraints []ConstraintRequest `json:"constraints"`
	Weights     map[string]float64  `json:"figures_of_merit"`
	Ranking     bool                `json:"ranking"`
}

type BindingResult struct {
	SelectedQPU   qpu.Summary        `json:"selected_qpu"`
	FigureOfMerit float64            `json:"figure_of_merit"`
	RankedQPUs    []engine.RankedQPU `json:"ranked_qpus,omitempty"`
}

// Bind compiles the request's circuit, runs both engine phases against
// a pool snapshot, and on success bumps the selected QPU's pending
// counter. Infeasibility surfaces as engine.ErrNoFeasibleQPU; every
// other error means a malformed request.
func (b *Binder) Bind(req BindRequest) (*BindingResult, error) {
	c, err := circuit.ParseQASM(req.QASM)
	if err != nil {
		return nil, err
	}
	if req.Shots > 0 {
		c.Shots = req.Shots
	}

	constraints, err := buildConstraints(req.Constraints)
	if err != nil {
		return nil, err
	}
	weights, err := buildWeights(req.Weights)
	if err != nil {
		return nil, err
	}

	record := b.track(c)

	eng := engine.New(b.Registry.Snapshot())
	result, err := eng.Bind(c, constraints, weights, req.Ranking)
	if err != nil {
		b.advance(record, eventRejected)
		b.rejections.Add(1)
		return nil, err
	}

	// Queue-depth updates belong to the service layer; the engine
	// treats the pool as read-only.
	result.Selected.Pending.Add(1)
	b.bindsServed.Add(1)

	b.advance(record, eventMatched)
	b.finish(record, result.Selected.ID, result.Score)

	return &BindingResult{
		SelectedQPU:   result.Selected.Summary(),
		FigureOfMerit: result.Score,
		RankedQPUs:    result.Ranked,
	}, nil
}

// Bindings lists the tracked ledger, oldest first.
func (b *Binder) Bindings() []Binding {
	b.mu.Lock()
	defer b.mu.Unlock()

	bindings := make([]Binding, 0, b.ledger.Len())
	for i := b.ledger.Len(); i > 0; i-- {
		id := b.ledger.Dequeue().(uuid.UUID)
		bindings = append(bindings, *b.events[id])
		b.ledger.Enqueue(id)
	}
	return bindings
}

func (b *Binder) track(c *circuit.Circuit) *Binding {
	record := &Binding{
		ID:          uuid.New(),
		Circuit:     c.Name,
		State:       Received,
		RequestedAt: time.Now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[record.ID] = record
	b.ledger.Enqueue(record.ID)
	for b.ledger.Len() > b.ledgerCap {
		evicted := b.ledger.Dequeue().(uuid.UUID)
		delete(b.events, evicted)
	}
	return record
}

func (b *Binder) advance(record *Binding, event bindingEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	record.State = bindingFSM.Next(record.State, event)
}

func (b *Binder) finish(record *Binding, qpuID string, score float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	record.State = bindingFSM.Next(record.State, eventBound)
	record.QPU = qpuID
	record.FigureOfMerit = score
}

func buildConstraints(reqs []ConstraintRequest) ([]constraint.Constraint, error) {
	constraints := make([]constraint.Constraint, 0, len(reqs))
	for _, r := range reqs {
		target, err := constraint.ParseTarget(r.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %q", r.Name)
		}
		operator, err := constraint.ParseOperator(r.Operator)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %q", r.Name)
		}
		constraints = append(constraints, constraint.New(
			r.Name, r.Description, target, r.Property, operator, r.Value, r.Parameters,
		))
	}
	return constraints, nil
}

func buildWeights(weights map[string]float64) (engine.Weights, error) {
	if len(weights) == 0 {
		return engine.DefaultWeights(), nil
	}
	pick := func(key string, fallback float64) float64 {
		if v, ok := weights[key]; ok {
			return v
		}
		return fallback
	}
	return engine.NewWeights(
		pick("cost_weight", 0.33),
		pick("error_weight", 0.33),
		pick("workload_weight", 0.34),
	)
}
