package dup_test

import (
	"fmt"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/dup"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

// ExampleOptimize duplicates an entry task across a slow VM link and
// reports the resulting makespan improvement.
func ExampleOptimize() {
	tasks := []core.Task{
		{ID: 0, Size: 1, Successors: []core.TaskID{1, 2}},
		{ID: 1, Size: 2, Predecessors: []core.TaskID{0}, Successors: []core.TaskID{3}},
		{ID: 2, Size: 2, Predecessors: []core.TaskID{0}, Successors: []core.TaskID{3}},
		{ID: 3, Size: 1, Predecessors: []core.TaskID{1, 2}},
	}
	vms := []core.VM{
		{ID: 0, Index: 0, Capacity: 1, Bandwidth: map[core.VmID]float64{1: 5}},
		{ID: 1, Index: 1, Capacity: 1, Bandwidth: map[core.VmID]float64{0: 5}},
	}
	g, err := core.NewGraph(tasks, vms)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	table := timing.CostTable{
		{From: 0, To: 1}: 0,
		{From: 0, To: 2}: 2.0,
		{From: 1, To: 3}: 1.0,
		{From: 2, To: 3}: 0,
	}
	vmOf := map[core.TaskID]core.VmIndex{0: 0, 1: 0, 2: 1, 3: 1}

	s, err := schedule.Run(g, table, vmOf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	before := s.Makespan()

	accepted, err := dup.Optimize(g, table, s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("duplications:", len(accepted))
	fmt.Println("makespan improved:", s.Makespan() < before)
	// Output:
	// duplications: 1
	// makespan improved: true
}
