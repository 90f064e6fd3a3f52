package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/schedule"
	"github.com/katalvlaran/smctpd/timing"
)

func diamondGraph(t *testing.T) *core.Graph {
	t.Helper()
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
	require.NoError(t, err)
	return g
}

// TestRun_DiamondScenario reproduces scenario 1 from the scheduling spec's
// test seed: task 0 on vm0, task 1 on vm0, task 2 on vm1, task 3 on vm0,
// bandwidth 25 both ways, B̄=25 (so same-bandwidth edges cost exactly the
// table value). Expected makespan 20: 0:[0,5] on vm0 (ET=10/2=5),
// 1:[5,10] on vm0, 2 data-ready at AFT(0)+commcost=5+0(same table*25/25)=5,
// runs [5,15] on vm1 (ET=10/1=10), 3 data-ready at max(AFT(1), AFT(2)+comm)
// = max(10, 15+0)=15, runs on vm0 [15,20] (ET=5).
func TestRun_DiamondScenario(t *testing.T) {
	g := diamondGraph(t)
	table := timing.CostTable{
		{From: 0, To: 1}: 0,
		{From: 0, To: 2}: 0,
		{From: 1, To: 3}: 0,
		{From: 2, To: 3}: 0,
	}
	vmOf := map[core.TaskID]core.VmIndex{0: 0, 1: 0, 2: 1, 3: 0}

	s, err := schedule.Run(g, table, vmOf)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	aft0, _ := s.AFT(0)
	aft1, _ := s.AFT(1)
	aft2, _ := s.AFT(2)
	aft3, _ := s.AFT(3)
	assert.InDelta(t, 5.0, aft0, 1e-9)
	assert.InDelta(t, 10.0, aft1, 1e-9)
	assert.InDelta(t, 15.0, aft2, 1e-9)
	assert.InDelta(t, 20.0, aft3, 1e-9)
	assert.InDelta(t, 20.0, s.Makespan(), 1e-9)
}

func TestRun_MissingPlacementErrors(t *testing.T) {
	g := diamondGraph(t)
	_, err := schedule.Run(g, timing.CostTable{}, map[core.TaskID]core.VmIndex{0: 0})
	assert.ErrorIs(t, err, schedule.ErrUnknownPlacement)
}

func TestSchedule_NoOverlapOnSingleVM(t *testing.T) {
	g := diamondGraph(t)
	vmOf := map[core.TaskID]core.VmIndex{0: 0, 1: 0, 2: 0, 3: 0}
	s, err := schedule.Run(g, timing.CostTable{
		{From: 0, To: 1}: 0, {From: 0, To: 2}: 0, {From: 1, To: 3}: 0, {From: 2, To: 3}: 0,
	}, vmOf)
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	slots := s.Slots(0)
	assert.Len(t, slots, 4)
}

func TestDuplicate_InsertAndRemoveRoundTrip(t *testing.T) {
	g := diamondGraph(t)
	vmOf := map[core.TaskID]core.VmIndex{0: 0, 1: 0, 2: 1, 3: 0}
	s, err := schedule.Run(g, timing.CostTable{
		{From: 0, To: 1}: 0, {From: 0, To: 2}: 0, {From: 1, To: 3}: 0, {From: 2, To: 3}: 0,
	}, vmOf)
	require.NoError(t, err)

	require.NoError(t, s.InsertDuplicate(0, 1, 0, 5))
	aft, ok := s.DuplicateAFT(0, 1)
	require.True(t, ok)
	assert.Equal(t, 5.0, aft)

	require.NoError(t, s.RemoveDuplicate(0, 1))
	_, ok = s.DuplicateAFT(0, 1)
	assert.False(t, ok)
}
