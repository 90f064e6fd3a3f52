package match

import (
	"sort"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// commPenalty estimates the communication cost task would incur from its
// already-placed predecessors (tasks at strictly earlier levels, already
// final in ls.placed) if task were placed on vm: the sum, over
// predecessors placed on a VM other than vm, of the normalized
// communication cost scaled by the actual pairwise bandwidth. Predecessors
// already on vm contribute zero.
func (ls *levelState) commPenalty(task *core.Task, vm core.VmIndex) float64 {
	vmPtr, err := ls.g.VMByIndex(vm)
	if err != nil {
		return 0
	}
	var penalty float64
	for _, pID := range task.Predecessors {
		pVMIdx, ok := ls.placed[pID]
		if !ok || pVMIdx == vm {
			continue
		}
		pVM, err := ls.g.VMByIndex(pVMIdx)
		if err != nil {
			continue
		}
		cost, _ := timing.CommCost(ls.table, pID, task.ID, pVM, vmPtr)
		penalty += cost
	}
	_ = vmPtr
	return penalty
}

// taskPreferences returns the VM indices task prefers, in descending order
// of preference: primarily by ascending execution time on that VM, then by
// ascending communication penalty from already-placed predecessors, then
// by ascending current-load-to-threshold ratio, with smallest VmIndex as
// the final tie-break.
func (ls *levelState) taskPreferences(task *core.Task) []core.VmIndex {
	type scored struct {
		vm      core.VmIndex
		et      float64
		penalty float64
		loadRat float64
	}
	scores := make([]scored, 0, len(ls.vms))
	for _, v := range ls.vms {
		et := timing.ET(task, &v)
		loadRat := float64(ls.load[v.Index]) / float64(maxInt(ls.threshold[v.Index], 1))
		scores = append(scores, scored{
			vm:      v.Index,
			et:      et,
			penalty: ls.commPenalty(task, v.Index),
			loadRat: loadRat,
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.et != b.et {
			return a.et < b.et
		}
		if a.penalty != b.penalty {
			return a.penalty < b.penalty
		}
		if a.loadRat != b.loadRat {
			return a.loadRat < b.loadRat
		}
		return a.vm < b.vm
	})

	out := make([]core.VmIndex, len(scores))
	for i, s := range scores {
		out[i] = s.vm
	}
	return out
}

// vmPreferenceLess orders two contending tasks for a VM's preference list,
// using the spec's exact tiebreak chain: ET-ratio ascending, rank
// descending, task id ascending. ETRatio(t,vm) = ET(t,vm)/minET(t).
func (ls *levelState) vmPreferenceLess(vm core.VmIndex, a, b *core.Task) bool {
	vmPtr, _ := ls.g.VMByIndex(vm)
	etA := timing.ET(a, vmPtr)
	etB := timing.ET(b, vmPtr)
	minA, _, errA := timing.MinET(a, ls.vms)
	minB, _, errB := timing.MinET(b, ls.vms)
	ratioA, ratioB := etA, etB
	if errA == nil && minA > 0 {
		ratioA = etA / minA
	}
	if errB == nil && minB > 0 {
		ratioB = etB / minB
	}

	if ratioA != ratioB {
		return ratioA < ratioB
	}
	rankA, rankB := ls.ranks[a.ID], ls.ranks[b.ID]
	if rankA != rankB {
		return rankA > rankB // higher rank preferred => "less" (comes first)
	}
	return a.ID < b.ID
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
