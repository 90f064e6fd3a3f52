package metrics

import (
	"errors"
	"fmt"
)

// ErrUnschedulableCriticalTask indicates a task on the critical path has no
// schedulable VM at all (ET infinite everywhere): SLR's denominator would be
// infinite, which the spec treats as fatal rather than silently zero.
var ErrUnschedulableCriticalTask = errors.New("metrics: critical-path task unschedulable on every vm")

// Snapshot bundles the three summary statistics computed over one finished
// schedule.
type Snapshot struct {
	Makespan         float64
	SLR              float64
	AVU              float64
	VF               float64
	DuplicationCount int
	CriticalPathSize int
}

// String renders a one-line human-readable summary, the form cmd/smctpd's
// `run` subcommand prints.
func (snap Snapshot) String() string {
	return fmt.Sprintf(
		"makespan=%.4f slr=%.4f avu=%.4f vf=%.4f duplications=%d cp_size=%d",
		snap.Makespan, snap.SLR, snap.AVU, snap.VF, snap.DuplicationCount, snap.CriticalPathSize,
	)
}
