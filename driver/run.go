package driver

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/dup"
	"github.com/katalvlaran/smctpd/match"
	"github.com/katalvlaran/smctpd/metrics"
	"github.com/katalvlaran/smctpd/rank"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

// Run executes the two-pass refinement: pass 1 with averaged communication
// costs, pass 2 with the pass-1 placement's assignment-specific costs, each
// pass running rank -> SMGT -> LOTD -> schedule validation -> metrics.
//
// A failure in either pass is fatal (wrapped with github.com/pkg/errors for
// stack context) and aborts Run; the spec draws no distinction between a
// pass-1 and a pass-2 failure, so both paths wrap and return immediately.
func Run(in Input) (*Result, error) {
	if in.Graph == nil {
		return nil, errors.New("driver: graph must not be nil")
	}

	runID := uuid.New()
	log := slog.With("run_id", runID.String())

	log.Info("pass 1: averaged communication costs")
	pass1Table, err := buildAveragedCostTable(in.Graph, in.DataVolume)
	if err != nil {
		return nil, errors.Wrap(err, "driver: pass 1 cost table")
	}
	pass1, err := runPass(in.Graph, pass1Table)
	if err != nil {
		return nil, errors.Wrap(err, "driver: pass 1")
	}
	log.Info("pass 1 complete", "makespan", pass1.Metrics.Makespan, "slr", pass1.Metrics.SLR)

	log.Info("pass 2: assignment-specific communication costs")
	pass2Table, err := buildAssignmentCostTable(in.Graph, in.DataVolume, pass1.Placement)
	if err != nil {
		return nil, errors.Wrap(err, "driver: pass 2 cost table")
	}
	pass2, err := runPass(in.Graph, pass2Table)
	if err != nil {
		return nil, errors.Wrap(err, "driver: pass 2")
	}
	log.Info("pass 2 complete", "makespan", pass2.Metrics.Makespan, "slr", pass2.Metrics.SLR)

	return &Result{RunID: runID, Pass1: *pass1, Pass2: *pass2}, nil
}

// runPass executes rank -> SMGT -> LOTD -> schedule validation -> metrics
// against one cost table, in full.
func runPass(g *core.Graph, table timing.CostTable) (*PassResult, error) {
	ranks, err := rank.Ranks(g, table)
	if err != nil {
		return nil, errors.Wrap(err, "rank")
	}
	cp, err := rank.CriticalPath(g, ranks)
	if err != nil {
		return nil, errors.Wrap(err, "critical path")
	}
	placement, err := match.PlaceLevels(g, table, ranks, cp)
	if err != nil {
		return nil, errors.Wrap(err, "placement")
	}
	sched, err := schedule.Run(g, table, placement)
	if err != nil {
		return nil, errors.Wrap(err, "schedule")
	}
	accepted, err := dup.Optimize(g, table, sched)
	if err != nil {
		return nil, errors.Wrap(err, "duplication")
	}
	if err := sched.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation")
	}
	snap, err := metrics.Compute(g, sched, cp)
	if err != nil {
		return nil, errors.Wrap(err, "metrics")
	}

	return &PassResult{
		CostTable:    table,
		Ranks:        ranks,
		CriticalPath: cp,
		Placement:    placement,
		Schedule:     sched,
		Duplications: accepted,
		Metrics:      snap,
	}, nil
}
