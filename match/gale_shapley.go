package match

import (
	"sort"

	"github.com/katalvlaran/smctpd/core"
)

// deferredAcceptance runs one level's Gale–Shapley-style stable matching
// over the given non-critical tasks against ls.vms, respecting
// ls.threshold and the room already consumed by CP placements (ls.load).
// It returns the resulting task->vm assignment for exactly these tasks.
//
// Tasks that exhaust their entire VM preference list without being held
// are spilled onto the least-loaded VM (by ls.leastLoadedVM), preserving
// totality per the spec's SMGT design.
func (ls *levelState) deferredAcceptance(tasks []*core.Task) map[core.TaskID]core.VmIndex {
	assignment := make(map[core.TaskID]core.VmIndex, len(tasks))

	// Each task's preference list and a cursor into it (next VM to try).
	prefs := make(map[core.TaskID][]core.VmIndex, len(tasks))
	cursor := make(map[core.TaskID]int, len(tasks))
	taskByID := make(map[core.TaskID]*core.Task, len(tasks))
	for _, t := range tasks {
		prefs[t.ID] = ls.taskPreferences(t)
		taskByID[t.ID] = t
	}

	// free holds tasks not yet tentatively held by any VM, in ascending
	// task-id order (deterministic proposal order).
	free := make([]core.TaskID, 0, len(tasks))
	for _, t := range tasks {
		free = append(free, t.ID)
	}
	sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })

	// held[vm] is the set of tasks currently tentatively accepted by vm
	// (bounded by remaining room: threshold - ls.load).
	held := make(map[core.VmIndex][]core.TaskID, len(ls.vms))

	exhausted := make(map[core.TaskID]bool, len(tasks))

	for len(free) > 0 {
		id := free[0]
		free = free[1:]

		pl := prefs[id]
		if cursor[id] >= len(pl) {
			exhausted[id] = true
			continue
		}
		vm := pl[cursor[id]]
		cursor[id]++

		room := ls.threshold[vm] - ls.load[vm]
		cur := held[vm]
		if room <= 0 {
			// CP placements already filled vm at this level: reject id.
			free = append(free, id)
			continue
		}
		if len(cur) < room {
			held[vm] = append(cur, id)
			continue
		}

		// VM is at capacity for tentative holds: find its weakest held
		// proposer (the one vm's preference order ranks last).
		sortedCur := append([]core.TaskID(nil), cur...)
		sort.Slice(sortedCur, func(i, j int) bool {
			return ls.vmPreferenceLess(vm, taskByID[sortedCur[i]], taskByID[sortedCur[j]])
		})
		worstID := sortedCur[len(sortedCur)-1]
		worstIdx := 0
		for i, hID := range cur {
			if hID == worstID {
				worstIdx = i
				break
			}
		}
		// If vm prefers the new proposer over its current weakest hold,
		// swap; otherwise reject the new proposer.
		if ls.vmPreferenceLess(vm, taskByID[id], taskByID[worstID]) {
			// vm prefers `id` over its current worst hold: swap.
			cur[worstIdx] = id
			held[vm] = cur
			free = append(free, worstID)
			sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })
		} else {
			// vm rejects id; id proposes elsewhere next round.
			free = append(free, id)
		}
	}

	for vm, ids := range held {
		for _, id := range ids {
			assignment[id] = vm
		}
	}
	for id := range exhausted {
		assignment[id] = ls.leastLoadedAmong(tasks, assignment)
	}

	return assignment
}

// leastLoadedAmong computes the least-loaded VM accounting for tentative
// holds already recorded in partial (used for the spill step).
func (ls *levelState) leastLoadedAmong(_ []*core.Task, partial map[core.TaskID]core.VmIndex) core.VmIndex {
	counts := make(map[core.VmIndex]int, len(ls.vms))
	for _, v := range ls.vms {
		counts[v.Index] = ls.load[v.Index]
	}
	for _, vm := range partial {
		counts[vm]++
	}
	best := ls.vms[0].Index
	bestCount := counts[best]
	for _, v := range ls.vms[1:] {
		c := counts[v.Index]
		if c < bestCount || (c == bestCount && v.Index < best) {
			best = v.Index
			bestCount = c
		}
	}
	return best
}
