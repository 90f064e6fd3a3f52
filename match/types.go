package match

import (
	"errors"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// ErrNoVMs indicates a level was processed against an empty VM pool.
var ErrNoVMs = errors.New("match: no vms available")

// ErrUnplacedTask indicates the deferred-acceptance/spill loop finished
// without placing every task at a level — an engine bug (totality is a
// hard invariant of SMGT), never a valid user-input outcome.
var ErrUnplacedTask = errors.New("match: failed to place every task at level")

// levelState carries the per-level, mutable bookkeeping threaded through
// threshold computation, CP placement, and the deferred-acceptance loop.
type levelState struct {
	g      *core.Graph
	table  timing.CostTable
	ranks  map[core.TaskID]float64
	cp     map[core.TaskID]struct{}
	placed map[core.TaskID]core.VmIndex // final placement across all levels so far (read-only here except for this level's writes)

	vms       []core.VM
	threshold map[core.VmIndex]int
	load      map[core.VmIndex]int // tasks accepted at this level so far
}
