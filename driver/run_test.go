package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/driver"
	"github.com/katalvlaran/smctpd/timing"
)

func diamondInput(t *testing.T) driver.Input {
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

	dataVolume := timing.CostTable{
		{From: 0, To: 1}: 5,
		{From: 0, To: 2}: 5,
		{From: 1, To: 3}: 5,
		{From: 2, To: 3}: 5,
	}
	return driver.Input{Graph: g, DataVolume: dataVolume}
}

func TestRun_TwoPassesProduceValidSchedules(t *testing.T) {
	in := diamondInput(t)

	result, err := driver.Run(in)
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.RunID.String())
	assert.NoError(t, result.Pass1.Schedule.Validate())
	assert.NoError(t, result.Pass2.Schedule.Validate())
	assert.Len(t, result.Pass1.Placement, 4)
	assert.Len(t, result.Pass2.Placement, 4)
	assert.GreaterOrEqual(t, result.Pass2.Metrics.SLR, 1.0-1e-6)
}

func TestRun_NilGraphErrors(t *testing.T) {
	_, err := driver.Run(driver.Input{})
	assert.Error(t, err)
}
