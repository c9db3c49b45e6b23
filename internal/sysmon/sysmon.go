// Package sysmon provides system-wide CPU and memory usage sampling for the
// vanity statistics block. Knowing the machine-wide load while printing
// twelve characters is strictly necessary.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/viviai0214/fancy-hello-world/internal/format"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error;
// a stats line reading 0.0% beats failing the greeting over it.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// CPUString returns the CPU usage formatted for display.
func (s Stats) CPUString() string { return format.FormatPercent(s.CPUPercent) }

// MemString returns the memory usage formatted for display.
func (s Stats) MemString() string { return format.FormatPercent(s.MemPercent) }
