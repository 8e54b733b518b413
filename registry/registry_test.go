package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrrf/qubindr/qpu"
)

func TestSeedFleet(t *testing.T) {
	reg := Seed()

	assert.Equal(t, 6, reg.Len())
	assert.Len(t, reg.Available(), 5)

	inactive, ok := reg.Get("inactive-01")
	require.True(t, ok)
	assert.False(t, inactive.Available)

	premium, ok := reg.Get("premium-01")
	require.True(t, ok)
	assert.Equal(t, 27, premium.Qubits)
	assert.Equal(t, int64(15), premium.Pending.Load())

	_, ok = reg.Get("nonexistent-99")
	assert.False(t, ok)
}

func TestSnapshotIsolation(t *testing.T) {
	reg := Seed()
	snapshot := reg.Snapshot()
	lenBefore := reg.Len()

	// membership changes after the snapshot are invisible to it
	reg.Add(&qpu.QPU{ID: "late-01", Available: true})

	assert.Len(t, snapshot, lenBefore)
	assert.Equal(t, lenBefore+1, reg.Len())
}

func TestSnapshotPreservesOrder(t *testing.T) {
	reg := Seed()
	snapshot := reg.Snapshot()

	expected := []string{
		"premium-01", "standard-01", "budget-01",
		"capacity-01", "available-01", "inactive-01",
	}
	require.Len(t, snapshot, len(expected))
	for i, id := range expected {
		assert.Equal(t, id, snapshot[i].ID)
	}
}
