package dup

import (
	"sort"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

// Optimize runs LOTD over every entry task in g, ascending by task id,
// mutating s in place with whatever duplicates pass both admission rules.
// It returns the accepted duplications in commit order.
//
// For each entry task e and each VM k hosting at least one of e's
// successors (k != e's own VM, candidates visited ascending by VmIndex):
//
//  1. The binding successor on k is the one with the earliest AST (ties
//     broken by task id ascending) — the most constraining deadline a local
//     copy of e must beat.
//  2. A tentative slot for e is searched on k via the same insertion rule
//     the engine uses everywhere else (timing.FindInsertion), bounded above
//     by the binding successor's AST.
//  3. Rule 1 (benefit): the tentative AFT must finish strictly before the
//     remote transfer from e's original would have arrived.
//  4. Rule 2 (no harm): after tentatively committing, recomputing k's
//     entire slot list must not push back any AFT already on k.
//
// A duplicate passing both rules is committed through s.InsertDuplicate,
// and the timing change is propagated through e's successor closure via
// s.RecomputeTaskInPlace, in topological order, so downstream tasks that
// can now see a local predecessor observe the improved DRT.
func Optimize(g *core.Graph, table timing.CostTable, s *schedule.Schedule) ([]Acceptance, error) {
	if s == nil {
		return nil, ErrNilSchedule
	}

	var accepted []Acceptance

	for _, e := range g.EntryTasks() {
		eTask, err := g.TaskByID(e)
		if err != nil {
			return nil, err
		}
		oVMIdx, ok := s.VMOf(e)
		if !ok {
			return nil, schedule.ErrUnknownPlacement
		}
		oVM, err := g.VMByIndex(oVMIdx)
		if err != nil {
			return nil, err
		}
		origAFT, ok := s.AFT(e)
		if !ok {
			return nil, schedule.ErrUnknownPlacement
		}

		for _, k := range candidateVMs(s, eTask.Successors, oVMIdx) {
			target, deadline, err := bindingSuccessor(s, eTask.Successors, k)
			if err != nil {
				return nil, err
			}
			if target < 0 {
				continue // no successor of e actually landed on k
			}

			vmK, err := g.VMByIndex(k)
			if err != nil {
				return nil, err
			}

			drt, err := timing.DRT(g, table, s.Timetable(), eTask, vmK)
			if err != nil {
				return nil, err
			}
			et := timing.ET(eTask, vmK)
			ast, _ := timing.FindInsertion(s.Slots(k), drt, et)
			aft := ast + et

			if aft > deadline+timing.Epsilon {
				continue // earliest feasible slot still misses the deadline
			}

			cost, ok := timing.CommCost(table, e, target, oVM, vmK)
			if !ok || aft >= origAFT+cost-timing.Epsilon {
				continue // Rule 1 fails: no genuine benefit over the remote transfer
			}

			before := s.AFTsOnVM(k)
			if err := s.InsertDuplicate(e, k, ast, aft); err != nil {
				return nil, err
			}
			after, err := s.RecomputeVM(k)
			if err != nil {
				return nil, err
			}
			if harms(before, after) {
				if err := s.RemoveDuplicate(e, k); err != nil {
					return nil, err
				}
				continue
			}

			for _, succID := range g.SuccessorClosure(e) {
				if _, _, err := s.RecomputeTaskInPlace(succID); err != nil {
					return nil, err
				}
			}

			accepted = append(accepted, Acceptance{Task: e, VM: k, AST: ast, AFT: aft})
		}
	}

	return accepted, nil
}

// candidateVMs returns, ascending, every VmIndex hosting one of successors,
// excluding oVMIdx (the duplication source's own VM).
func candidateVMs(s *schedule.Schedule, successors []core.TaskID, oVMIdx core.VmIndex) []core.VmIndex {
	seen := make(map[core.VmIndex]bool)
	var out []core.VmIndex
	for _, succ := range successors {
		vm, ok := s.VMOf(succ)
		if !ok || vm == oVMIdx || seen[vm] {
			continue
		}
		seen[vm] = true
		out = append(out, vm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// bindingSuccessor picks, among successors that are placed on vm, the one
// with the earliest AST (ties broken by task id ascending), returning its
// id and AST as the deadline a duplicate of e on vm must beat. Returns
// target -1 if no successor lands on vm.
func bindingSuccessor(s *schedule.Schedule, successors []core.TaskID, vm core.VmIndex) (core.TaskID, float64, error) {
	target := core.TaskID(-1)
	var deadline float64

	for _, succ := range successors {
		succVM, ok := s.VMOf(succ)
		if !ok || succVM != vm {
			continue
		}
		ast, ok := s.AST(succ)
		if !ok {
			return 0, 0, schedule.ErrUnknownPlacement
		}
		if target < 0 || ast < deadline || (ast == deadline && succ < target) {
			target = succ
			deadline = ast
		}
	}
	return target, deadline, nil
}

// harms reports whether any task present in before has a strictly larger
// AFT in after (beyond Epsilon), meaning Rule 2 (no harm) was violated.
func harms(before, after map[core.TaskID]float64) bool {
	for id, b := range before {
		if a, ok := after[id]; ok && a > b+timing.Epsilon {
			return true
		}
	}
	return false
}
