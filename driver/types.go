package driver

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/dup"
	"github.com/katalvlaran/smctpd/metrics"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

// Input bundles the immutable graph plus the raw per-edge data volume
// (CCR-scaled transfer time at unit bandwidth — the "TT_i,j" term in the
// DCP-formula) that the driver derives both passes' cost tables from. Both
// are produced by the out-of-scope ingestion collaborator; the driver
// merely consumes them.
type Input struct {
	Graph      *core.Graph
	DataVolume timing.CostTable
}

// PassResult captures everything one pass of C->D->E->F->G produced.
type PassResult struct {
	CostTable    timing.CostTable
	Ranks        map[core.TaskID]float64
	CriticalPath map[core.TaskID]struct{}
	Placement    map[core.TaskID]core.VmIndex
	Schedule     *schedule.Schedule
	Duplications []dup.Acceptance
	Metrics      metrics.Snapshot
}

// Result is the driver's output bundle: a stable run identity plus both
// passes, so callers can inspect the refinement's effect (pass 1 vs 2) or
// simply use Pass2 as the final answer.
type Result struct {
	RunID uuid.UUID
	Pass1 PassResult
	Pass2 PassResult
}
