package demo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/driver"
	"github.com/katalvlaran/smctpd/timing"
)

// ErrUnknownWorkflow indicates Build was asked for a workflow name it does
// not recognize.
var ErrUnknownWorkflow = errors.New("demo: unknown workflow")

// Build dispatches to one of the named in-memory workflows. vmCount must be
// at least 1; Diamond and ForkJoin additionally require at least 2 so there
// is a cross-VM edge to exercise the communication model.
func Build(name string, vmCount int) (driver.Input, error) {
	switch name {
	case "diamond":
		return Diamond(vmCount)
	case "fork-join":
		return ForkJoin(vmCount)
	case "linear-chain":
		return LinearChain(vmCount)
	default:
		return driver.Input{}, fmt.Errorf("%w: %s", ErrUnknownWorkflow, name)
	}
}

// vmPool builds n VMs of uniform capacity 1 and uniform pairwise bandwidth
// equal to timing.BaseBandwidth, so the averaged and assignment-specific
// cost tables pass 1 and pass 2 derive coincide on every cross-VM edge
// (pass 2 additionally prices same-VM edges at 0) — the
// asymmetry that actually stresses SMGT/LOTD comes from task placement and
// data volume, not from a lopsided VM pool.
func vmPool(n int) []core.VM {
	vms := make([]core.VM, n)
	for i := 0; i < n; i++ {
		bw := make(map[core.VmID]float64, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			bw[core.VmID(j)] = timing.BaseBandwidth
		}
		vms[i] = core.VM{ID: core.VmID(i), Index: core.VmIndex(i), Capacity: 1, Bandwidth: bw}
	}
	return vms
}

// Diamond builds the canonical 0 -> {1,2} -> 3 workflow: one entry task
// fans out to two independent branches that join at a single exit task.
// It is the smallest graph where LOTD's entry-task duplication can pay off.
func Diamond(vmCount int) (driver.Input, error) {
	if vmCount < 2 {
		return driver.Input{}, fmt.Errorf("demo: diamond workflow needs at least 2 vms, got %d", vmCount)
	}
	tasks := []core.Task{
		{ID: 0, Size: 10, Successors: []core.TaskID{1, 2}},
		{ID: 1, Size: 12, Predecessors: []core.TaskID{0}, Successors: []core.TaskID{3}},
		{ID: 2, Size: 8, Predecessors: []core.TaskID{0}, Successors: []core.TaskID{3}},
		{ID: 3, Size: 10, Predecessors: []core.TaskID{1, 2}},
	}
	g, err := core.NewGraph(tasks, vmPool(vmCount))
	if err != nil {
		return driver.Input{}, err
	}
	dataVolume := timing.CostTable{
		{From: 0, To: 1}: 6,
		{From: 0, To: 2}: 4,
		{From: 1, To: 3}: 5,
		{From: 2, To: 3}: 5,
	}
	return driver.Input{Graph: g, DataVolume: dataVolume}, nil
}

// ForkJoin builds a single entry task fanning out to branchCount parallel
// branches of two tasks each, rejoining at a single exit task — the shape a
// real map-reduce or scatter-gather workflow takes.
func ForkJoin(vmCount int) (driver.Input, error) {
	if vmCount < 2 {
		return driver.Input{}, fmt.Errorf("demo: fork-join workflow needs at least 2 vms, got %d", vmCount)
	}
	const branchCount = 3

	var tasks []core.Task
	dataVolume := timing.CostTable{}

	entry := core.TaskID(0)
	exit := core.TaskID(branchCount*2 + 1)
	entrySuccessors := make([]core.TaskID, 0, branchCount)
	exitPredecessors := make([]core.TaskID, 0, branchCount)

	next := core.TaskID(1)
	for b := 0; b < branchCount; b++ {
		first := next
		second := next + 1
		next += 2

		entrySuccessors = append(entrySuccessors, first)
		exitPredecessors = append(exitPredecessors, second)

		tasks = append(tasks,
			core.Task{ID: first, Size: 6, Predecessors: []core.TaskID{entry}, Successors: []core.TaskID{second}},
			core.Task{ID: second, Size: 6, Predecessors: []core.TaskID{first}, Successors: []core.TaskID{exit}},
		)
		dataVolume[timing.EdgeKey{From: entry, To: first}] = 4
		dataVolume[timing.EdgeKey{From: second, To: exit}] = 4
	}

	tasks = append([]core.Task{{ID: entry, Size: 5, Successors: entrySuccessors}}, tasks...)
	tasks = append(tasks, core.Task{ID: exit, Size: 5, Predecessors: exitPredecessors})

	g, err := core.NewGraph(tasks, vmPool(vmCount))
	if err != nil {
		return driver.Input{}, err
	}
	return driver.Input{Graph: g, DataVolume: dataVolume}, nil
}

// LinearChain builds a straight-line pipeline of length tasks chained
// 0 -> 1 -> ... -> length-1, the degenerate case with no placement choice
// beyond where to start, used as a baseline to sanity-check SLR close to 1.
func LinearChain(vmCount int) (driver.Input, error) {
	if vmCount < 1 {
		return driver.Input{}, fmt.Errorf("demo: linear-chain workflow needs at least 1 vm, got %d", vmCount)
	}
	const length = 5

	tasks := make([]core.Task, length)
	dataVolume := timing.CostTable{}
	for i := 0; i < length; i++ {
		t := core.Task{ID: core.TaskID(i), Size: 8}
		if i > 0 {
			t.Predecessors = []core.TaskID{core.TaskID(i - 1)}
		}
		if i < length-1 {
			t.Successors = []core.TaskID{core.TaskID(i + 1)}
			dataVolume[timing.EdgeKey{From: core.TaskID(i), To: core.TaskID(i + 1)}] = 3
		}
		tasks[i] = t
	}

	g, err := core.NewGraph(tasks, vmPool(vmCount))
	if err != nil {
		return driver.Input{}, err
	}
	return driver.Input{Graph: g, DataVolume: dataVolume}, nil
}
