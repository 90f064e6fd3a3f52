package schedule

import (
	"sort"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// Run builds a fresh Schedule from a placement: for every task, in
// topological order, it computes DRT (timing.DRT), finds the earliest
// insertion point on its assigned VM (timing.FindInsertion), and derives
// AST=max(DRT,MRT), AFT=AST+ET. Topological order here is levels ascending,
// task id ascending within a level — a valid topological order because a
// task's level always exceeds every predecessor's level (core.NewGraph's
// Kahn leveling guarantees this), and determinism requires this stronger
// total order rather than "any" topological order.
//
// Contracts:
//   - vmOf must contain an entry for every task id in g.
//
// Complexity: O(n log n) for sorting + O(n*s) for insertion search, where s
// is the maximum number of slots on any one VM.
func Run(g *core.Graph, table timing.CostTable, vmOf map[core.TaskID]core.VmIndex) (*Schedule, error) {
	s := &Schedule{
		graph:  g,
		table:  table,
		vmOf:   make(map[core.TaskID]core.VmIndex, len(vmOf)),
		slots:  make(map[core.VmIndex][]timing.Slot),
		tt:     timing.NewTimetable(),
		dupVMs: make(map[core.TaskID][]core.VmIndex),
	}
	for k, v := range vmOf {
		s.vmOf[k] = v
	}

	order, err := topoOrder(g)
	if err != nil {
		return nil, err
	}

	for _, id := range order {
		task, err := g.TaskByID(id)
		if err != nil {
			return nil, err
		}
		vmIdx, ok := s.vmOf[id]
		if !ok {
			return nil, ErrUnknownPlacement
		}
		vm, err := g.VMByIndex(vmIdx)
		if err != nil {
			return nil, err
		}

		if err := s.scheduleOriginal(task, vm); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// scheduleOriginal computes and commits the AST/AFT of task on vm, and
// inserts its slot into vm's execution-order list.
func (s *Schedule) scheduleOriginal(task *core.Task, vm *core.VM) error {
	drt, err := timing.DRT(s.graph, s.table, s.tt, task, vm)
	if err != nil {
		return err
	}
	et := timing.ET(task, vm)
	ast, _ := timing.FindInsertion(s.slots[vm.Index], drt, et)
	aft := ast + et

	s.slots[vm.Index] = timing.InsertSorted(s.slots[vm.Index], timing.Slot{Task: task.ID, AST: ast, AFT: aft})
	s.tt.AST[task.ID] = ast
	s.tt.AFT[task.ID] = aft
	s.tt.VMOf[task.ID] = vm.Index

	return nil
}

// topoOrder returns task ids in level-ascending, id-ascending order: a
// deterministic topological order (see Run's doc comment for why this
// stronger order, rather than an arbitrary topological order, is required).
func topoOrder(g *core.Graph) ([]core.TaskID, error) {
	levels := g.LevelsOf()
	order := make([]core.TaskID, 0, g.NumTasks())
	lvls := make([]int, 0, len(levels))
	for lvl := range levels {
		lvls = append(lvls, lvl)
	}
	sort.Ints(lvls)
	for _, lvl := range lvls {
		ids := append([]core.TaskID(nil), levels[lvl]...)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		order = append(order, ids...)
	}
	return order, nil
}
