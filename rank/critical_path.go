package rank

import (
	"sort"

	"github.com/katalvlaran/smctpd/core"
)

// CriticalPath selects, for each topological level in ascending order, the
// task with the maximum rank (ties broken by smallest task id), and returns
// the set of chosen task ids. The result always has exactly one task per
// level: |CP| == g.NumLevels().
func CriticalPath(g *core.Graph, ranks map[core.TaskID]float64) (map[core.TaskID]struct{}, error) {
	cp := make(map[core.TaskID]struct{}, g.NumLevels())

	for lvl := 0; lvl < g.NumLevels(); lvl++ {
		ids := g.TasksAtLevel(lvl)
		if len(ids) == 0 {
			continue
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		best := ids[0]
		bestRank := ranks[best]
		for _, id := range ids[1:] {
			r := ranks[id]
			if r > bestRank {
				best = id
				bestRank = r
			}
		}
		cp[best] = struct{}{}
	}

	return cp, nil
}

// IsCritical reports whether id is a member of the critical-path set cp.
func IsCritical(cp map[core.TaskID]struct{}, id core.TaskID) bool {
	_, ok := cp[id]
	return ok
}
