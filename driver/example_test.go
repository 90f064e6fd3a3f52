package driver_test

import (
	"fmt"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/driver"
	"github.com/katalvlaran/smctpd/timing"
)

// ExampleRun schedules a single task on a single VM end to end, the
// degenerate case where both passes agree and SLR is exactly 1.
func ExampleRun() {
	tasks := []core.Task{{ID: 0, Size: 5}}
	vms := []core.VM{{ID: 0, Index: 0, Capacity: 1, Bandwidth: map[core.VmID]float64{}}}
	g, err := core.NewGraph(tasks, vms)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := driver.Run(driver.Input{Graph: g, DataVolume: timing.CostTable{}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pass2 slr:", result.Pass2.Metrics.SLR)
	// Output:
	// pass2 slr: 1
}
