package schedule

import (
	"errors"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// ErrDuplicateAlreadyExists indicates InsertDuplicate was called for a
// (task, vm) pair that already has a duplicate.
var ErrDuplicateAlreadyExists = errors.New("schedule: duplicate already exists on this vm")

// ErrDuplicateNotFound indicates RemoveDuplicate was called for a
// (task, vm) pair with no recorded duplicate.
var ErrDuplicateNotFound = errors.New("schedule: duplicate not found")

// InsertDuplicate commits a duplicate occupancy of task on vm at
// [ast, aft]: it inserts the slot into vm's execution-order list (keeping
// it sorted by AST) and records the duplicate's AST/AFT in the Timetable
// under (task, vm). The duplication optimizer (package dup) calls this only
// after it has independently verified the slot does not overlap any
// existing occupancy on vm; Insert does not re-validate overlap itself so
// that tentative probing (insert, measure, maybe roll back) stays cheap.
func (s *Schedule) InsertDuplicate(task core.TaskID, vm core.VmIndex, ast, aft float64) error {
	key := timing.DuplicateKey{Task: task, VM: vm}
	if _, exists := s.tt.DupAFT[key]; exists {
		return ErrDuplicateAlreadyExists
	}

	s.slots[vm] = timing.InsertSorted(s.slots[vm], timing.Slot{Task: task, AST: ast, AFT: aft})
	s.tt.DupAST[key] = ast
	s.tt.DupAFT[key] = aft
	s.dupVMs[task] = append(s.dupVMs[task], vm)

	return nil
}

// RemoveDuplicate rolls back a previously-inserted duplicate: it removes
// the matching slot from vm's execution-order list and clears the
// duplicate's Timetable entries.
func (s *Schedule) RemoveDuplicate(task core.TaskID, vm core.VmIndex) error {
	key := timing.DuplicateKey{Task: task, VM: vm}
	ast, exists := s.tt.DupAST[key]
	if !exists {
		return ErrDuplicateNotFound
	}
	aft := s.tt.DupAFT[key]

	slots := s.slots[vm]
	for i, sl := range slots {
		if sl.Task == task && sl.AST == ast && sl.AFT == aft {
			s.slots[vm] = timing.RemoveAt(slots, i)
			break
		}
	}
	delete(s.tt.DupAST, key)
	delete(s.tt.DupAFT, key)

	dups := s.dupVMs[task]
	for i, v := range dups {
		if v == vm {
			s.dupVMs[task] = append(dups[:i], dups[i+1:]...)
			break
		}
	}

	return nil
}

// AFTsOnVM returns a snapshot of task-id -> AFT for every slot (original or
// duplicate) currently on vm, used by the duplication optimizer's Rule 2
// no-harm check (compare before/after a tentative insertion).
func (s *Schedule) AFTsOnVM(vm core.VmIndex) map[core.TaskID]float64 {
	out := make(map[core.TaskID]float64, len(s.slots[vm]))
	for _, sl := range s.slots[vm] {
		out[sl.Task] = sl.AFT
	}
	return out
}

// RecomputeVM re-derives AST/AFT for every slot currently on vm, in AST
// order, using the insertion rule from scratch (as if vm's slots were
// empty and each were scheduled in turn against the others already
// placed). This is exactly the "re-run 4.F restricted to k's tasks" step
// the duplication optimizer's Rule 2 validation calls for: it returns the
// recomputed AFTs without mutating the Schedule, so the caller can compare
// against the pre-insertion snapshot.
func (s *Schedule) RecomputeVM(vm core.VmIndex) (map[core.TaskID]float64, error) {
	vmPtr, err := s.graph.VMByIndex(vm)
	if err != nil {
		return nil, err
	}
	slots := s.Slots(vm)

	var rebuilt []timing.Slot
	out := make(map[core.TaskID]float64, len(slots))
	for _, sl := range slots {
		task, err := s.graph.TaskByID(sl.Task)
		if err != nil {
			return nil, err
		}
		drt, err := timing.DRT(s.graph, s.table, s.tt, task, vmPtr)
		if err != nil {
			return nil, err
		}
		et := timing.ET(task, vmPtr)
		ast, _ := timing.FindInsertion(rebuilt, drt, et)
		aft := ast + et
		rebuilt = timing.InsertSorted(rebuilt, timing.Slot{Task: sl.Task, AST: ast, AFT: aft})
		// Later occurrences of the same task id (original + duplicate
		// cannot coexist under the same key here) simply overwrite; this
		// map is keyed by task id for the no-harm comparison, which only
		// ever inspects originals' AFTs.
		out[sl.Task] = aft
	}
	return out, nil
}
