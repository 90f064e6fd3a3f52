package metrics_test

import (
	"fmt"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/metrics"
	"github.com/katalvlaran/smctpd/rank"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

// ExampleCompute schedules a single task on a single VM, the degenerate
// case where SLR is always exactly 1.
func ExampleCompute() {
	tasks := []core.Task{{ID: 0, Size: 5}}
	vms := []core.VM{{ID: 0, Index: 0, Capacity: 1, Bandwidth: map[core.VmID]float64{}}}
	g, err := core.NewGraph(tasks, vms)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ranks, err := rank.Ranks(g, timing.CostTable{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cp, err := rank.CriticalPath(g, ranks)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, err := schedule.Run(g, timing.CostTable{}, map[core.TaskID]core.VmIndex{0: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	snap, err := metrics.Compute(g, s, cp)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("slr:", snap.SLR)
	// Output:
	// slr: 1
}
