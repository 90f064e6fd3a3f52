package dup

import (
	"errors"

	"github.com/katalvlaran/smctpd/core"
)

// ErrNilSchedule indicates Optimize was called with a nil *schedule.Schedule.
var ErrNilSchedule = errors.New("dup: schedule must not be nil")

// Acceptance records one committed duplication: entry task Task duplicated
// onto VM, with its locally-scheduled AST/AFT.
type Acceptance struct {
	Task core.TaskID
	VM   core.VmIndex
	AST  float64
	AFT  float64
}
