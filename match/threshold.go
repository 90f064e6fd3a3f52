package match

import (
	"math"

	"github.com/katalvlaran/smctpd/core"
)

// computeThresholds sets, for every VM, the maximum number of tasks at this
// level it may accept: its capacity-proportional share of numTasks,
// rounded up, with a floor of 1. This gives the VM a threshold at least
// matching its proportion of total cluster capacity, never fewer than one
// task, per the scheduling spec's threshold rule (and matches the spec's
// worked example: 10 tasks, 2 equal-capacity VMs -> ceil(10/2)=5 each).
func computeThresholds(vms []core.VM, numTasks int) map[core.VmIndex]int {
	var totalCap float64
	for _, v := range vms {
		totalCap += v.Capacity
	}

	out := make(map[core.VmIndex]int, len(vms))
	for _, v := range vms {
		if totalCap <= 0 {
			out[v.Index] = 1
			continue
		}
		share := v.Capacity / totalCap * float64(numTasks)
		t := int(math.Ceil(share - 1e-9))
		if t < 1 {
			t = 1
		}
		out[v.Index] = t
	}
	return out
}

// hasRoom reports whether vm has not yet reached its threshold at this
// level.
func (ls *levelState) hasRoom(vm core.VmIndex) bool {
	return ls.load[vm] < ls.threshold[vm]
}

// largestAvailableVM returns the VM with the largest capacity that still
// has room at this level (tie-break: smallest VmIndex). Returns false if
// every VM is at threshold.
func (ls *levelState) largestAvailableVM() (core.VmIndex, bool) {
	var (
		best    core.VmIndex
		bestCap float64
		found   bool
	)
	for _, v := range ls.vms {
		if !ls.hasRoom(v.Index) {
			continue
		}
		if !found || v.Capacity > bestCap || (v.Capacity == bestCap && v.Index < best) {
			best = v.Index
			bestCap = v.Capacity
			found = true
		}
	}
	return best, found
}

// leastLoadedVM returns the VM with the smallest current load at this
// level (tie-break: smallest VmIndex), ignoring threshold — used only by
// the spill step, which must preserve totality even when every VM is
// nominally "full".
func (ls *levelState) leastLoadedVM() core.VmIndex {
	best := ls.vms[0].Index
	bestLoad := ls.load[best]
	for _, v := range ls.vms[1:] {
		l := ls.load[v.Index]
		if l < bestLoad || (l == bestLoad && v.Index < best) {
			best = v.Index
			bestLoad = l
		}
	}
	return best
}
