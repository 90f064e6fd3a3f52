package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/match"
	"github.com/katalvlaran/smctpd/rank"
	"github.com/katalvlaran/smctpd/timing"
)

// singleLevelGraph builds one source task feeding n independent tasks at
// level 1 (no sink), used to exercise threshold enforcement in isolation.
func singleLevelGraph(t *testing.T, n int) (*core.Graph, []core.TaskID) {
	t.Helper()
	tasks := []core.Task{{ID: 0, Size: 1, Successors: make([]core.TaskID, 0, n)}}
	ids := make([]core.TaskID, 0, n)
	for i := 1; i <= n; i++ {
		id := core.TaskID(i)
		tasks[0].Successors = append(tasks[0].Successors, id)
		tasks = append(tasks, core.Task{ID: id, Size: 1, Predecessors: []core.TaskID{0}})
		ids = append(ids, id)
	}
	vms := []core.VM{
		{ID: 0, Index: 0, Capacity: 1, Bandwidth: map[core.VmID]float64{1: 25}},
		{ID: 1, Index: 1, Capacity: 1, Bandwidth: map[core.VmID]float64{0: 25}},
	}
	g, err := core.NewGraph(tasks, vms)
	require.NoError(t, err)
	return g, ids
}

func TestPlaceLevels_EveryTaskPlacedExactlyOnce(t *testing.T) {
	g, ids := singleLevelGraph(t, 10)
	table := timing.CostTable{}
	ranks, err := rank.Ranks(g, table)
	require.NoError(t, err)
	cp, err := rank.CriticalPath(g, ranks)
	require.NoError(t, err)

	placement, err := match.PlaceLevels(g, table, ranks, cp)
	require.NoError(t, err)

	assert.Len(t, placement, g.NumTasks())
	for _, id := range ids {
		_, ok := placement[id]
		assert.True(t, ok, "task %d must be placed", id)
	}
}

func TestPlaceLevels_ThresholdEnforcement(t *testing.T) {
	g, ids := singleLevelGraph(t, 10)
	table := timing.CostTable{}
	ranks, err := rank.Ranks(g, table)
	require.NoError(t, err)
	cp, err := rank.CriticalPath(g, ranks)
	require.NoError(t, err)

	placement, err := match.PlaceLevels(g, table, ranks, cp)
	require.NoError(t, err)

	counts := map[core.VmIndex]int{}
	for _, id := range ids {
		counts[placement[id]]++
	}
	for _, c := range counts {
		assert.LessOrEqual(t, c, 5, "no VM should exceed ceil(10/2)=5 at this level")
	}
}

func TestPlaceLevels_NoVMsErrors(t *testing.T) {
	tasks := []core.Task{{ID: 0, Size: 1}}
	_, err := match.PlaceLevels(&core.Graph{}, timing.CostTable{}, nil, nil)
	_ = tasks
	assert.Error(t, err)
}
