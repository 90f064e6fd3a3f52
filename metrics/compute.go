package metrics

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

// Compute derives a Snapshot from a finished, validated schedule: makespan,
// SLR against the given critical-path set, AVU over every VM in g, VF over
// every originally-placed task, and the duplication count (the number of
// distinct (task,vm) duplicate pairs present in s).
func Compute(g *core.Graph, s *schedule.Schedule, cp map[core.TaskID]struct{}) (Snapshot, error) {
	makespan := s.Makespan()

	slr, err := computeSLR(g, makespan, cp)
	if err != nil {
		return Snapshot{}, err
	}
	avu := computeAVU(g, s, makespan)
	vf, err := computeVF(g, s)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Makespan:         makespan,
		SLR:              slr,
		AVU:              avu,
		VF:               vf,
		DuplicationCount: countDuplicates(g, s),
		CriticalPathSize: len(cp),
	}, nil
}

// computeSLR divides makespan by the sum of minimum ETs across the
// critical-path tasks.
func computeSLR(g *core.Graph, makespan float64, cp map[core.TaskID]struct{}) (float64, error) {
	vms := g.VMs()
	var denom float64
	for id := range cp {
		task, err := g.TaskByID(id)
		if err != nil {
			return 0, err
		}
		minET, _, err := timing.MinET(task, vms)
		if err != nil {
			return 0, ErrUnschedulableCriticalTask
		}
		denom += minET
	}
	if denom <= 0 {
		return 0, ErrUnschedulableCriticalTask
	}
	return makespan / denom, nil
}

// computeAVU averages, over every VM, the sum of ET(t,vm) for every slot on
// that VM (originals and duplicates alike) divided by makespan.
func computeAVU(g *core.Graph, s *schedule.Schedule, makespan float64) float64 {
	if makespan <= 0 {
		return 0
	}
	vms := g.VMs()
	var sum float64
	for i := range vms {
		vm := &vms[i]
		var busy float64
		for _, slot := range s.Slots(vm.Index) {
			task, err := g.TaskByID(slot.Task)
			if err != nil {
				continue
			}
			busy += timing.ET(task, vm)
		}
		sum += busy / makespan
	}
	return sum / float64(len(vms))
}

// computeVF returns the population variance of each originally-placed
// task's satisfaction ratio ET(t, vm_of(t)) / min_v ET(t,v), excluding
// tasks whose numerator or denominator is non-finite.
func computeVF(g *core.Graph, s *schedule.Schedule) (float64, error) {
	vms := g.VMs()
	var ratios []float64

	for _, task := range g.Tasks() {
		vmIdx, ok := s.VMOf(task.ID)
		if !ok {
			continue
		}
		vm, err := g.VMByIndex(vmIdx)
		if err != nil {
			return 0, err
		}
		actual := timing.ET(&task, vm)
		fastest, _, err := timing.MinET(&task, vms)
		if err != nil {
			continue // unschedulable everywhere: excluded per spec
		}
		if math.IsInf(actual, 1) || math.IsInf(fastest, 1) || fastest <= 0 {
			continue
		}
		ratios = append(ratios, actual/fastest)
	}

	if len(ratios) == 0 {
		return 0, nil
	}
	variance, err := stats.PopulationVariance(stats.Float64Data(ratios))
	if err != nil {
		return 0, err
	}
	return variance, nil
}

// countDuplicates returns the number of distinct (task,vm) duplicate pairs
// present in s, summed over every task in g.
func countDuplicates(g *core.Graph, s *schedule.Schedule) int {
	var n int
	for _, task := range g.Tasks() {
		n += len(s.DuplicateVMs(task.ID))
	}
	return n
}
