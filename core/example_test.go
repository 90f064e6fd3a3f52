package core_test

import (
	"fmt"

	"github.com/katalvlaran/smctpd/core"
)

// ExampleNewGraph builds the four-task "diamond" DAG used throughout the
// scheduler's test suite and prints its topological levels.
func ExampleNewGraph() {
	tasks := []core.Task{
		{ID: 0, Size: 10, Successors: []core.TaskID{1, 2}},
		{ID: 1, Size: 10, Predecessors: []core.TaskID{0}, Successors: []core.TaskID{3}},
		{ID: 2, Size: 10, Predecessors: []core.TaskID{0}, Successors: []core.TaskID{3}},
		{ID: 3, Size: 10, Predecessors: []core.TaskID{1, 2}},
	}
	vms := []core.VM{
		{ID: 0, Index: 0, Capacity: 2, Bandwidth: map[core.VmID]float64{1: 25}},
		{ID: 1, Index: 1, Capacity: 1, Bandwidth: map[core.VmID]float64{0: 25}},
	}

	g, err := core.NewGraph(tasks, vms)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("levels:", g.NumLevels())
	for lvl := 0; lvl < g.NumLevels(); lvl++ {
		fmt.Println(lvl, g.TasksAtLevel(lvl))
	}
	// Output:
	// levels: 3
	// 0 [0]
	// 1 [1 2]
	// 2 [3]
}
