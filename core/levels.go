package core

import "sort"

// NewGraph validates tasks and vms and builds an immutable Graph, computing
// topological levels by Kahn-style propagation: sources (no predecessors)
// are level 0; every other task's level is 1+max(level of its
// predecessors). Validation order follows the engine's error taxonomy:
// structural task/VM shape first, symmetry second, leveling (which detects
// cycles) last.
//
// Contracts:
//   - task ids and VM indices are each unique.
//   - every predecessor/successor relation is symmetric (u in pre(v) iff v
//     in succ(u)).
//   - every task has positive Size; every VM has positive Capacity.
//   - every VM's Bandwidth map has an entry for every other VM's ID.
//
// Complexity: O(n log n + m) for validation and sorting, O(n+e) for Kahn
// leveling, where n=|tasks|, m=|vms|, e=|edges|.
func NewGraph(tasks []Task, vms []VM) (*Graph, error) {
	g := &Graph{
		tasks:   make([]Task, len(tasks)),
		taskIdx: make(map[TaskID]int, len(tasks)),
		vms:     make([]VM, len(vms)),
		vmByID:  make(map[VmID]int, len(vms)),
		levels:  make(map[int][]TaskID),
	}

	// 1. Copy and index tasks, rejecting duplicate ids and bad sizes.
	for i, t := range tasks {
		if _, dup := g.taskIdx[t.ID]; dup {
			return nil, ErrDuplicateTaskID
		}
		if t.Size <= 0 {
			return nil, ErrInvalidSize
		}
		// Defensive copies + deterministic ordering of pred/succ lists.
		t.Predecessors = sortedCopy(t.Predecessors)
		t.Successors = sortedCopy(t.Successors)
		t.Level = -1
		g.tasks[i] = t
		g.taskIdx[t.ID] = i
	}

	// 2. Copy and index VMs, rejecting duplicate ids and bad capacity.
	for i, v := range vms {
		if _, dup := g.vmByID[v.ID]; dup {
			return nil, ErrDuplicateVmIndex
		}
		if v.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		bw := make(map[VmID]float64, len(v.Bandwidth))
		for k, val := range v.Bandwidth {
			bw[k] = val
		}
		v.Bandwidth = bw
		g.vms[i] = v
		g.vmByID[v.ID] = i
	}
	// vms is indexed by VmIndex: require it be dense 0..m-1.
	byIndex := make(map[VmIndex]int, len(g.vms))
	for i, v := range g.vms {
		if _, dup := byIndex[v.Index]; dup {
			return nil, ErrDuplicateVmIndex
		}
		if int(v.Index) != i {
			return nil, ErrVmNotFound
		}
		byIndex[v.Index] = i
	}

	// 3. Bandwidth completeness: every VM must know every other VM's peer.
	for _, v := range g.vms {
		for _, other := range g.vms {
			if other.ID == v.ID {
				continue
			}
			if _, ok := v.Bandwidth[other.ID]; !ok {
				return nil, ErrMissingBandwidth
			}
		}
	}

	// 4. Symmetry of predecessor/successor relations.
	for _, t := range g.tasks {
		for _, s := range t.Successors {
			sIdx, ok := g.taskIdx[s]
			if !ok {
				return nil, ErrTaskNotFound
			}
			if !containsID(g.tasks[sIdx].Predecessors, t.ID) {
				return nil, ErrAsymmetricEdge
			}
		}
		for _, p := range t.Predecessors {
			pIdx, ok := g.taskIdx[p]
			if !ok {
				return nil, ErrTaskNotFound
			}
			if !containsID(g.tasks[pIdx].Successors, t.ID) {
				return nil, ErrAsymmetricEdge
			}
		}
	}

	// 5. Kahn-style leveling (also detects cycles).
	if err := g.computeLevels(); err != nil {
		return nil, err
	}

	return g, nil
}

// computeLevels runs Kahn's algorithm, tracking in-degree per task and
// propagating level = 1+max(predecessor level) as each task's in-degree
// reaches zero. A residual count below len(tasks) after the queue drains
// means a cycle exists.
func (g *Graph) computeLevels() error {
	n := len(g.tasks)
	indeg := make([]int, n)
	for i, t := range g.tasks {
		indeg[i] = len(t.Predecessors)
	}

	// Seed the queue with all sources (indeg==0), in ascending TaskID order
	// for determinism.
	queue := make([]int, 0, n)
	for i := range g.tasks {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}
	sort.Slice(queue, func(a, b int) bool { return g.tasks[queue[a]].ID < g.tasks[queue[b]].ID })

	visited := 0
	for len(queue) > 0 {
		// Pop front (BFS order); stable because we always re-sort newly
		// admitted sources below before the next round is consumed.
		idx := queue[0]
		queue = queue[1:]
		visited++

		t := &g.tasks[idx]
		if t.Level < 0 {
			t.Level = 0
		}
		g.levels[t.Level] = append(g.levels[t.Level], t.ID)
		if t.Level > g.maxLvl {
			g.maxLvl = t.Level
		}

		// Round of newly-freed successors, collected then sorted before
		// appending, to keep queue order deterministic by id.
		freed := make([]int, 0, len(t.Successors))
		for _, sID := range t.Successors {
			sIdx := g.taskIdx[sID]
			indeg[sIdx]--
			candLevel := t.Level + 1
			if candLevel > g.tasks[sIdx].Level {
				g.tasks[sIdx].Level = candLevel
			}
			if indeg[sIdx] == 0 {
				freed = append(freed, sIdx)
			}
		}
		sort.Slice(freed, func(a, b int) bool { return g.tasks[freed[a]].ID < g.tasks[freed[b]].ID })
		queue = append(queue, freed...)
	}

	if visited != n {
		return ErrCycleDetected
	}

	for lvl := range g.levels {
		sort.Slice(g.levels[lvl], func(a, b int) bool { return g.levels[lvl][a] < g.levels[lvl][b] })
	}

	return nil
}

func sortedCopy(ids []TaskID) []TaskID {
	out := make([]TaskID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func containsID(ids []TaskID, target TaskID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
