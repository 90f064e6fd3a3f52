package rank

import (
	"sort"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// Ranks computes rank(t) for every task in g, memoized in a map keyed by
// TaskID. Traversal proceeds level-descending (from the last level to
// level 0) so that every successor's rank is already known when a task is
// visited — the iterative equivalent of bottom-up memoized recursion,
// without recursion.
//
// Returns timing.ErrUnschedulable if any task has no schedulable VM (W(t)
// would be undefined).
func Ranks(g *core.Graph, table timing.CostTable) (map[core.TaskID]float64, error) {
	memo := make(map[core.TaskID]float64, g.NumTasks())
	vms := g.VMs()

	levels := g.LevelsOf()
	lvlNums := make([]int, 0, len(levels))
	for lvl := range levels {
		lvlNums = append(lvlNums, lvl)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lvlNums)))

	for _, lvl := range lvlNums {
		ids := append([]core.TaskID(nil), levels[lvl]...)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			task, err := g.TaskByID(id)
			if err != nil {
				return nil, err
			}

			w, err := timing.MeanET(task, vms)
			if err != nil {
				return nil, err
			}

			if len(task.Successors) == 0 {
				memo[id] = w
				continue
			}

			var best float64
			for _, sID := range task.Successors {
				sRank, ok := memo[sID]
				if !ok {
					// Successor must already be memoized: it lives at a
					// strictly higher level, visited earlier in this
					// level-descending pass.
					return nil, core.ErrTaskNotFound
				}
				cc, _ := table.Lookup(id, sID)
				candidate := cc + sRank
				if candidate > best {
					best = candidate
				}
			}
			memo[id] = w + best
		}
	}

	return memo, nil
}
