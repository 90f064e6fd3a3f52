package match

import (
	"sort"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// PlaceLevels runs SMGT over every topological level, ascending, and
// returns the resulting task->VM placement for all tasks in g.
//
// Contracts:
//   - g must have at least one VM (ErrNoVMs otherwise).
//   - ranks and cp must come from the rank package, computed over the same
//     cost table.
func PlaceLevels(g *core.Graph, table timing.CostTable, ranks map[core.TaskID]float64, cp map[core.TaskID]struct{}) (map[core.TaskID]core.VmIndex, error) {
	vms := g.VMs()
	if len(vms) == 0 {
		return nil, ErrNoVMs
	}

	placed := make(map[core.TaskID]core.VmIndex, g.NumTasks())

	for lvl := 0; lvl < g.NumLevels(); lvl++ {
		ids := g.TasksAtLevel(lvl)
		if len(ids) == 0 {
			continue
		}
		if err := placeLevel(g, table, ranks, cp, placed, vms, ids); err != nil {
			return nil, err
		}
	}

	return placed, nil
}

// placeLevel handles one level: CP placement, then deferred acceptance for
// the rest, writing results directly into placed.
func placeLevel(
	g *core.Graph,
	table timing.CostTable,
	ranks map[core.TaskID]float64,
	cp map[core.TaskID]struct{},
	placed map[core.TaskID]core.VmIndex,
	vms []core.VM,
	ids []core.TaskID,
) error {
	ls := &levelState{
		g:         g,
		table:     table,
		ranks:     ranks,
		cp:        cp,
		placed:    placed,
		vms:       vms,
		threshold: computeThresholds(vms, len(ids)),
		load:      make(map[core.VmIndex]int, len(vms)),
	}

	sorted := append([]core.TaskID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// Stage 1: place critical-path tasks at this level directly.
	var nonCritical []*core.Task
	for _, id := range sorted {
		task, err := g.TaskByID(id)
		if err != nil {
			return err
		}
		if _, isCP := cp[id]; isCP {
			vm, ok := ls.largestAvailableVM()
			if !ok {
				// Every VM is nominally full: spill onto least loaded,
				// preserving totality (thresholds are soft caps, per the
				// spec's "unless all tasks could not otherwise be placed").
				vm = ls.leastLoadedVM()
			}
			placed[id] = vm
			ls.load[vm]++
			continue
		}
		nonCritical = append(nonCritical, task)
	}

	// Stage 2: deferred-acceptance over the remaining non-CP tasks.
	if len(nonCritical) == 0 {
		return nil
	}
	assignment := ls.deferredAcceptance(nonCritical)
	for id, vm := range assignment {
		placed[id] = vm
		ls.load[vm]++
	}

	return nil
}
