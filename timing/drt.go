package timing

import "github.com/katalvlaran/smctpd/core"

// DuplicateKey identifies a duplicate occupancy of a task on a specific VM
// (the "phantom task" representation from the engine's design notes): a
// duplicate's timing is recorded under this key rather than overwriting the
// original task's AST/AFT.
type DuplicateKey struct {
	Task core.TaskID
	VM   core.VmIndex
}

// Timetable is the shared read view DRT needs: the original AST/AFT per
// task, and duplicate AST/AFT per (task, vm). It is populated by the
// schedule package and consulted (read-only) by DRT and by the duplication
// optimizer.
type Timetable struct {
	AST    map[core.TaskID]float64
	AFT    map[core.TaskID]float64
	DupAST map[DuplicateKey]float64
	DupAFT map[DuplicateKey]float64
	VMOf   map[core.TaskID]core.VmIndex
}

// NewTimetable returns an empty Timetable ready for incremental population.
func NewTimetable() *Timetable {
	return &Timetable{
		AST:    make(map[core.TaskID]float64),
		AFT:    make(map[core.TaskID]float64),
		DupAST: make(map[DuplicateKey]float64),
		DupAFT: make(map[DuplicateKey]float64),
		VMOf:   make(map[core.TaskID]core.VmIndex),
	}
}

// DRT computes the Data Ready Time of task t if placed on targetVM: the
// maximum, over every predecessor p, of p's finish time plus the
// communication cost of shipping p's output to targetVM — except that if a
// duplicate of p already exists on targetVM, that duplicate's AFT is used
// with zero communication cost (the data is already local). Tasks with no
// predecessors have DRT 0.
func DRT(g *core.Graph, table CostTable, tt *Timetable, t *core.Task, targetVM *core.VM) (float64, error) {
	if len(t.Predecessors) == 0 {
		return 0, nil
	}

	var drt float64
	for _, pID := range t.Predecessors {
		// A local duplicate of p on targetVM always wins: no communication.
		if dupAFT, ok := tt.DupAFT[DuplicateKey{Task: pID, VM: targetVM.Index}]; ok {
			if dupAFT > drt {
				drt = dupAFT
			}
			continue
		}

		pAFT, ok := tt.AFT[pID]
		if !ok {
			return 0, core.ErrTaskNotFound
		}
		pVMIdx, ok := tt.VMOf[pID]
		if !ok {
			return 0, core.ErrTaskNotFound
		}
		pVM, err := g.VMByIndex(pVMIdx)
		if err != nil {
			return 0, err
		}

		cost, _ := CommCost(table, pID, t.ID, pVM, targetVM)
		candidate := pAFT + cost
		if candidate > drt {
			drt = candidate
		}
	}
	return drt, nil
}
