package schedule

import (
	"errors"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// ErrScheduleInvariantViolated indicates a post-condition failure after
// duplication: an overlap or precedence violation was found. Per the
// scheduling spec, this is an engine bug, not a user error — callers should
// treat it as fatal and not retry.
var ErrScheduleInvariantViolated = errors.New("schedule: invariant violated")

// ErrUnknownPlacement indicates Run was given a vmOf map missing an entry
// for some task in the graph.
var ErrUnknownPlacement = errors.New("schedule: missing vm placement for task")

// Schedule is the engine's single source of truth for AST/AFT: the
// per-VM ordered execution slots (including duplicates) and the shared
// Timetable (original + duplicate AST/AFT).
type Schedule struct {
	graph *core.Graph
	table timing.CostTable

	vmOf  map[core.TaskID]core.VmIndex   // original (non-duplicate) placement
	slots map[core.VmIndex][]timing.Slot // per-VM ordered occupancy, originals+duplicates
	tt    *timing.Timetable

	dupVMs map[core.TaskID][]core.VmIndex // duplicate VMs per task, insertion order
}

// Timetable exposes the underlying read-only AST/AFT tables.
func (s *Schedule) Timetable() *timing.Timetable { return s.tt }

// VMOf returns the VmIndex the (non-duplicate) task is assigned to.
func (s *Schedule) VMOf(id core.TaskID) (core.VmIndex, bool) {
	idx, ok := s.vmOf[id]
	return idx, ok
}

// Slots returns a defensive copy of the ordered execution slots on vm,
// sorted by AST ascending.
func (s *Schedule) Slots(vm core.VmIndex) []timing.Slot {
	src := s.slots[vm]
	out := make([]timing.Slot, len(src))
	copy(out, src)
	return out
}

// Makespan returns the maximum AFT over all original task slots. Per the
// duplication optimizer's Rule 2 (no-harm), duplicates never extend beyond
// the makespan established by original tasks.
func (s *Schedule) Makespan() float64 {
	var mk float64
	for _, aft := range s.tt.AFT {
		if aft > mk {
			mk = aft
		}
	}
	return mk
}

// AST/AFT return the original task's actual start/finish time.
func (s *Schedule) AST(id core.TaskID) (float64, bool) { v, ok := s.tt.AST[id]; return v, ok }
func (s *Schedule) AFT(id core.TaskID) (float64, bool) { v, ok := s.tt.AFT[id]; return v, ok }

// DuplicateAST/DuplicateAFT return a duplicate's AST/AFT on the given VM.
func (s *Schedule) DuplicateAST(id core.TaskID, vm core.VmIndex) (float64, bool) {
	v, ok := s.tt.DupAST[timing.DuplicateKey{Task: id, VM: vm}]
	return v, ok
}
func (s *Schedule) DuplicateAFT(id core.TaskID, vm core.VmIndex) (float64, bool) {
	v, ok := s.tt.DupAFT[timing.DuplicateKey{Task: id, VM: vm}]
	return v, ok
}

// DuplicateVMs returns the VMs hosting a duplicate of task id, in the order
// they were accepted.
func (s *Schedule) DuplicateVMs(id core.TaskID) []core.VmIndex {
	return append([]core.VmIndex(nil), s.dupVMs[id]...)
}

// FinalSchedule returns the VM-index -> ordered task-id list view of the
// spec's "Schedule" output bundle: a task id may repeat across VMs when a
// duplicate exists.
func (s *Schedule) FinalSchedule() map[core.VmIndex][]core.TaskID {
	out := make(map[core.VmIndex][]core.TaskID, len(s.slots))
	for vm, slots := range s.slots {
		ids := make([]core.TaskID, len(slots))
		for i, sl := range slots {
			ids[i] = sl.Task
		}
		out[vm] = ids
	}
	return out
}
