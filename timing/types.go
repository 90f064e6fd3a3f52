package timing

import (
	"errors"
	"math"

	"github.com/katalvlaran/smctpd/core"
)

// ErrUnschedulable indicates a task's execution time is infinite on every
// VM in the pool (size>0 on a VM with capacity<=0 never occurs once
// core.NewGraph has validated the pool, but a caller may still query a
// size<=0 task directly against ET).
var ErrUnschedulable = errors.New("timing: task not schedulable on any vm")

// EdgeKey identifies an ordered task pair (u,v) with v a successor of u, the
// key shape the communication-cost table is indexed by.
type EdgeKey struct {
	From core.TaskID
	To   core.TaskID
}

// CostTable maps an ordered task pair to its communication cost, normalized
// to BaseBandwidth. It is built externally: pass 1 by DCP-formula averaging,
// pass 2 from assignment-specific bandwidth (see the driver package).
type CostTable map[EdgeKey]float64

// Lookup returns the normalized communication cost for edge u->v, and
// whether the table has an entry for it.
func (c CostTable) Lookup(u, v core.TaskID) (float64, bool) {
	cost, ok := c[EdgeKey{From: u, To: v}]
	return cost, ok
}

// Slot is one scheduled occupancy of a VM: a task (or task duplicate)
// running from AST to AFT.
type Slot struct {
	Task core.TaskID
	AST  float64
	AFT  float64
}

// isInfinite reports whether x is +Inf (the engine's representation of "not
// schedulable"); never compares against a sentinel float directly elsewhere.
func isInfinite(x float64) bool { return math.IsInf(x, 1) }
