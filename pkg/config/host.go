package config

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// HostInfo describes the machine a render runs on
type HostInfo struct {
	CPUModel      string
	PhysicalCores int
	LogicalCores  int
	TotalMemory   uint64 // Bytes
}

// DescribeHost collects CPU and memory details. Fields that cannot be read
// are left zero.
func DescribeHost() HostInfo {
	var info HostInfo

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
	}
	info.PhysicalCores = physicalCores()
	if n, err := cpu.Counts(true); err == nil {
		info.LogicalCores = n
	}
	if memInfo, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = memInfo.Total
	}

	return info
}

func (h HostInfo) String() string {
	model := h.CPUModel
	if model == "" {
		model = "unknown CPU"
	}
	return fmt.Sprintf("%s, %d cores (%d threads), %.1f GiB RAM",
		model, h.PhysicalCores, h.LogicalCores, float64(h.TotalMemory)/(1<<30))
}
