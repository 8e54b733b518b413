package binder

import (
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"
)

// HostMetrics is a point-in-time view of the machine serving bindings.
type HostMetrics struct {
	Load       load.AvgStat          `json:"load"`
	CPUPercent float64               `json:"cpu_percent"`
	Memory     mem.VirtualMemoryStat `json:"memory"`
}

// Stats combines host metrics with binder counters.
type Stats struct {
	Host            HostMetrics `json:"host"`
	BindsServed     int64       `json:"binds_served"`
	Rejections      int64       `json:"rejections"`
	TrackedBindings int         `json:"tracked_bindings"`
	RegisteredQPUs  int         `json:"registered_qpus"`
	AvailableQPUs   int         `json:"available_qpus"`
}

func hostMetrics() HostMetrics {
	var metrics HostMetrics
	if avg, err := load.Avg(); err == nil {
		metrics.Load = *avg
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		metrics.Memory = *vm
	}
	if times, err := cpu.Times(false); err == nil && len(times) > 0 {
		metrics.CPUPercent = cpuUsage(times[0])
	}
	return metrics
}

func cpuUsage(stat cpu.TimesStat) float64 {
	idle := stat.Idle + stat.Iowait
	nonIdle := stat.User + stat.Nice + stat.System + stat.Irq + stat.Softirq + stat.Steal

	total := idle + nonIdle
	if total == 0 {
		return 0.00
	}
	return (total - idle) / total
}

func (b *Binder) Stats() Stats {
	b.mu.Lock()
	tracked := len(b.events)
	b.mu.Unlock()

	return Stats{
		Host:            hostMetrics(),
		BindsServed:     b.bindsServed.Load(),
		Rejections:      b.rejections.Load(),
		TrackedBindings: tracked,
		RegisteredQPUs:  b.Registry.Len(),
		AvailableQPUs:   len(b.Registry.Available()),
	}
}
