package schedule

import (
	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// RecomputeTaskInPlace re-derives AST/AFT for task id on its existing VM
// assignment: it pulls the task's slot out of that VM's occupancy list,
// recomputes DRT against the current Timetable (which may now include a
// newly-accepted duplicate of one of its predecessors), reinserts at the
// earliest feasible gap, and commits the result. The task's VM assignment
// itself never changes — only where within that VM it lands.
//
// Callers (the duplication optimizer) use this to propagate an accepted
// duplicate's effect through the task's successor closure, processed in
// topological order so each task observes its predecessors' already-updated
// AST/AFT.
func (s *Schedule) RecomputeTaskInPlace(id core.TaskID) (ast, aft float64, err error) {
	vmIdx, ok := s.vmOf[id]
	if !ok {
		return 0, 0, ErrUnknownPlacement
	}
	vm, err := s.graph.VMByIndex(vmIdx)
	if err != nil {
		return 0, 0, err
	}
	task, err := s.graph.TaskByID(id)
	if err != nil {
		return 0, 0, err
	}

	slots := s.slots[vmIdx]
	for i, sl := range slots {
		if sl.Task == id {
			slots = timing.RemoveAt(slots, i)
			break
		}
	}

	drt, err := timing.DRT(s.graph, s.table, s.tt, task, vm)
	if err != nil {
		return 0, 0, err
	}
	et := timing.ET(task, vm)
	ast, _ = timing.FindInsertion(slots, drt, et)
	aft = ast + et

	s.slots[vmIdx] = timing.InsertSorted(slots, timing.Slot{Task: id, AST: ast, AFT: aft})
	s.tt.AST[id] = ast
	s.tt.AFT[id] = aft

	return ast, aft, nil
}
