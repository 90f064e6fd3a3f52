package schedule

import (
	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// Validate checks the two universal post-conditions the scheduling spec
// requires after the duplication optimizer finishes:
//
//  1. No two slots on any VM overlap (AFT_i <= AST_{i+1} + Epsilon).
//  2. For every dependency edge u->v, either u and v share a VM with
//     AFT(u) <= AST(v)+Epsilon, or a duplicate of u exists on v's VM with
//     duplicate AFT <= AST(v)+Epsilon, or the communication-augmented
//     inequality AFT(u)+commcost(u,v) <= AST(v)+Epsilon holds.
//
// A failure here is ErrScheduleInvariantViolated: per the spec, this is an
// engine bug, not a user error, and callers must not retry or silently
// continue.
func (s *Schedule) Validate() error {
	for _, slots := range s.slots {
		if !timing.NoOverlap(slots) {
			return ErrScheduleInvariantViolated
		}
	}

	for _, task := range s.graph.Tasks() {
		vAST, ok := s.tt.AST[task.ID]
		if !ok {
			return ErrScheduleInvariantViolated
		}
		vVMIdx, ok := s.tt.VMOf[task.ID]
		if !ok {
			return ErrScheduleInvariantViolated
		}

		for _, pID := range task.Predecessors {
			if !s.precedenceSatisfied(pID, task.ID, vAST, vVMIdx) {
				return ErrScheduleInvariantViolated
			}
		}
	}

	return nil
}

// precedenceSatisfied checks edge p->v against the three admissible
// satisfactions listed in Validate's doc comment.
func (s *Schedule) precedenceSatisfied(pID, vID core.TaskID, vAST float64, vVMIdx core.VmIndex) bool {
	pVMIdx, ok := s.tt.VMOf[pID]
	if !ok {
		return false
	}
	pAFT, ok := s.tt.AFT[pID]
	if !ok {
		return false
	}

	// Same VM: direct precedence.
	if pVMIdx == vVMIdx {
		return pAFT <= vAST+timing.Epsilon
	}

	// A duplicate of p on v's VM: local precedence, no communication.
	if dupAFT, ok := s.tt.DupAFT[timing.DuplicateKey{Task: pID, VM: vVMIdx}]; ok {
		return dupAFT <= vAST+timing.Epsilon
	}

	// Otherwise the communication-augmented inequality must hold.
	pVM, err := s.graph.VMByIndex(pVMIdx)
	if err != nil {
		return false
	}
	vVM, err := s.graph.VMByIndex(vVMIdx)
	if err != nil {
		return false
	}
	cost, ok := timing.CommCost(s.table, pID, vID, pVM, vVM)
	if !ok {
		// No table entry for an edge that core.NewGraph guarantees exists
		// is itself an engine bug; treat conservatively as unsatisfied.
		return false
	}
	return pAFT+cost <= vAST+timing.Epsilon
}
