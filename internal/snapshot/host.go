package snapshot

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Host reports CPU and memory facts about the machine
type Host interface {
	// CPUCounts returns the logical and physical core counts. A physical
	// count of zero means the host could not tell.
	CPUCounts(ctx context.Context) (logical, physical int, err error)

	// Memory returns total and used memory in bytes
	Memory(ctx context.Context) (total, used uint64, err error)
}

// SystemHost queries the running operating system
type SystemHost struct{}

// CPUCounts implements Host
func (SystemHost) CPUCounts(ctx context.Context) (int, int, error) {
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, 0, err
	}

	// Some virtualised hosts expose no core topology
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		physical = 0
	}

	return logical, physical, nil
}

// Memory implements Host
func (SystemHost) Memory(ctx context.Context) (uint64, uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Used, nil
}
