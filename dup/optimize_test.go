package dup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/dup"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

// diamondGraph builds 0 -> {1,2} -> 3 with a cross-VM placement (0,1 on
// vm0; 2,3 on vm1) and a low vm0<->vm1 bandwidth, so duplicating entry
// task 0 onto vm1 should visibly shorten task 3's finish time.
func diamondGraph(t *testing.T) (*core.Graph, timing.CostTable, map[core.TaskID]core.VmIndex) {
	t.Helper()

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
	require.NoError(t, err)

	table := timing.CostTable{
		{From: 0, To: 1}: 0,
		{From: 0, To: 2}: 2.0,
		{From: 1, To: 3}: 1.0,
		{From: 2, To: 3}: 0,
	}
	vmOf := map[core.TaskID]core.VmIndex{0: 0, 1: 0, 2: 1, 3: 1}

	return g, table, vmOf
}

func TestOptimize_AcceptsBeneficialDuplicate(t *testing.T) {
	g, table, vmOf := diamondGraph(t)

	s, err := schedule.Run(g, table, vmOf)
	require.NoError(t, err)

	originalAFT3, ok := s.AFT(3)
	require.True(t, ok)

	accepted, err := dup.Optimize(g, table, s)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, core.TaskID(0), accepted[0].Task)
	assert.Equal(t, core.VmIndex(1), accepted[0].VM)

	newAFT3, ok := s.AFT(3)
	require.True(t, ok)
	assert.Less(t, newAFT3, originalAFT3, "duplicating the entry task onto vm1 should shorten task 3's finish time")

	assert.NoError(t, s.Validate())
}

func TestOptimize_NilScheduleErrors(t *testing.T) {
	g, table, _ := diamondGraph(t)
	_, err := dup.Optimize(g, table, nil)
	assert.ErrorIs(t, err, dup.ErrNilSchedule)
}

func TestOptimize_NoEntryTasksBenefit(t *testing.T) {
	// Two independent single-task chains on their own VMs: no successor of
	// either entry task ever lands on a different VM, so nothing should be
	// duplicated.
	tasks := []core.Task{
		{ID: 0, Size: 1},
		{ID: 1, Size: 1},
	}
	vms := []core.VM{
		{ID: 0, Index: 0, Capacity: 1, Bandwidth: map[core.VmID]float64{1: 25}},
		{ID: 1, Index: 1, Capacity: 1, Bandwidth: map[core.VmID]float64{0: 25}},
	}
	g, err := core.NewGraph(tasks, vms)
	require.NoError(t, err)

	vmOf := map[core.TaskID]core.VmIndex{0: 0, 1: 1}
	s, err := schedule.Run(g, timing.CostTable{}, vmOf)
	require.NoError(t, err)

	accepted, err := dup.Optimize(g, timing.CostTable{}, s)
	require.NoError(t, err)
	assert.Empty(t, accepted)
}
