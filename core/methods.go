package core

import "sort"

// TaskByID returns the task with the given id, or ErrTaskNotFound.
func (g *Graph) TaskByID(id TaskID) (*Task, error) {
	idx, ok := g.taskIdx[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return &g.tasks[idx], nil
}

// VMByIndex returns the VM at the given index, or ErrVmNotFound.
func (g *Graph) VMByIndex(idx VmIndex) (*VM, error) {
	if int(idx) < 0 || int(idx) >= len(g.vms) {
		return nil, ErrVmNotFound
	}
	return &g.vms[idx], nil
}

// Tasks returns all tasks, sorted by TaskID ascending. The returned slice is
// a defensive copy; mutating it does not affect the Graph.
func (g *Graph) Tasks() []Task {
	out := make([]Task, len(g.tasks))
	copy(out, g.tasks)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// VMs returns all VMs, sorted by VmIndex ascending. The returned slice is a
// defensive copy.
func (g *Graph) VMs() []VM {
	out := make([]VM, len(g.vms))
	copy(out, g.vms)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// NumLevels returns the number of distinct topological levels (maxLvl+1).
func (g *Graph) NumLevels() int { return g.maxLvl + 1 }

// LevelsOf returns a map from level to the sorted list of task ids at that
// level. The returned map is a defensive copy.
func (g *Graph) LevelsOf() map[int][]TaskID {
	out := make(map[int][]TaskID, len(g.levels))
	for lvl, ids := range g.levels {
		cp := make([]TaskID, len(ids))
		copy(cp, ids)
		out[lvl] = cp
	}
	return out
}

// TasksAtLevel returns the sorted task ids at the given level (nil if the
// level does not exist).
func (g *Graph) TasksAtLevel(level int) []TaskID {
	ids := g.levels[level]
	out := make([]TaskID, len(ids))
	copy(out, ids)
	return out
}

// EntryTasks returns the ids of all tasks with no predecessors, sorted
// ascending.
func (g *Graph) EntryTasks() []TaskID {
	var out []TaskID
	for _, t := range g.tasks {
		if t.IsEntry() {
			out = append(out, t.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExitTasks returns the ids of all tasks with no successors, sorted
// ascending.
func (g *Graph) ExitTasks() []TaskID {
	var out []TaskID
	for _, t := range g.tasks {
		if t.IsExit() {
			out = append(out, t.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExitTaskCanonical returns the canonical exit task: when several tasks
// have no successors, the one with the maximum id, per the engine's
// tie-break convention. Returns ErrNoExitTask if the graph has no exit
// task at all.
func (g *Graph) ExitTaskCanonical() (TaskID, error) {
	exits := g.ExitTasks()
	if len(exits) == 0 {
		return 0, ErrNoExitTask
	}
	max := exits[0]
	for _, id := range exits[1:] {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// NumTasks returns the number of tasks in the graph.
func (g *Graph) NumTasks() int { return len(g.tasks) }

// NumVMs returns the number of VMs in the pool.
func (g *Graph) NumVMs() int { return len(g.vms) }

// Bandwidth returns the pairwise bandwidth between two VMs identified by
// their VmID. Same-VM bandwidth is conventionally 0 and is never consulted
// by the engine (communication cost on the same VM is always zero).
func (g *Graph) Bandwidth(a, b VmID) (float64, bool) {
	if a == b {
		return 0, true
	}
	idx, ok := g.vmByID[a]
	if !ok {
		return 0, false
	}
	bw, ok := g.vms[idx].Bandwidth[b]
	return bw, ok
}
