// Package registry holds the ordered pool of known QPUs.
package registry

import (
	"sync"

	"github.com/adrrf/qubindr/qpu"
)

type Registry struct {
	mu   sync.RWMutex
	pool []*qpu.QPU
}

func New(pool ...*qpu.QPU) *Registry {
	return &Registry{pool: pool}
}

func (r *Registry) Add(q *qpu.QPU) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pool = append(r.pool, q)
}

// Snapshot copies the pool slice so an in-flight match never observes
// membership changes. The QPUs themselves are shared; their pending
// counters are atomic.
func (r *Registry) Snapshot() []*qpu.QPU {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]*qpu.QPU, len(r.pool))
	copy(snapshot, r.pool)
	return snapshot
}

func (r *Registry) Available() []*qpu.QPU {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var available []*qpu.QPU
	for _, q := range r.pool {
		if q.Available {
			available = append(available, q)
		}
	}
	return available
}

func (r *Registry) Get(id string) (*qpu.QPU, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.pool {
		if q.ID == id {
			return q, true
		}
	}
	return nil, false
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pool)
}
