package timing

import (
	"math"

	"github.com/katalvlaran/smctpd/core"
)

// ET computes the execution time of task t on vm: size/capacity. Both
// arguments are validated by core.NewGraph to be positive, so this never
// returns infinity for a graph built through that constructor; it is kept
// total (rather than erroring) so callers computing minima/averages across
// many VMs can treat an unreachable VM uniformly via IsSchedulable.
func ET(task *core.Task, vm *core.VM) float64 {
	if task.Size <= 0 || vm.Capacity <= 0 {
		return math.Inf(1)
	}
	return task.Size / vm.Capacity
}

// IsSchedulable reports whether ET(task, vm) is finite.
func IsSchedulable(task *core.Task, vm *core.VM) bool {
	return !isInfinite(ET(task, vm))
}

// MinET returns the minimum ET(task, vm) over all VMs in the pool on which
// task is schedulable, along with the VM index achieving it (ties broken by
// smallest VmIndex). Returns ErrUnschedulable if task is schedulable on no
// VM.
func MinET(task *core.Task, vms []core.VM) (float64, core.VmIndex, error) {
	best := math.Inf(1)
	var bestIdx core.VmIndex
	found := false
	for i := range vms {
		et := ET(task, &vms[i])
		if isInfinite(et) {
			continue
		}
		if !found || et < best || (et == best && vms[i].Index < bestIdx) {
			best = et
			bestIdx = vms[i].Index
			found = true
		}
	}
	if !found {
		return 0, 0, ErrUnschedulable
	}
	return best, bestIdx, nil
}

// MeanET returns the arithmetic mean of ET(task, vm) over all VMs in the
// pool on which task is schedulable (unschedulable VMs are excluded from
// both the sum and the count, per the spec's definition of W(t)). Returns
// ErrUnschedulable if task is schedulable on no VM.
func MeanET(task *core.Task, vms []core.VM) (float64, error) {
	var sum float64
	var count int
	for i := range vms {
		et := ET(task, &vms[i])
		if isInfinite(et) {
			continue
		}
		sum += et
		count++
	}
	if count == 0 {
		return 0, ErrUnschedulable
	}
	return sum / float64(count), nil
}
