package timing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

func TestET(t *testing.T) {
	task := &core.Task{Size: 10}
	vm := &core.VM{Capacity: 2}
	assert.Equal(t, 5.0, timing.ET(task, vm))
}

func TestET_ZeroCapacityIsInfinite(t *testing.T) {
	task := &core.Task{Size: 10}
	vm := &core.VM{Capacity: 0}
	assert.True(t, math.IsInf(timing.ET(task, vm), 1))
	assert.False(t, timing.IsSchedulable(task, vm))
}

func TestMinET_TieBreakSmallestIndex(t *testing.T) {
	task := &core.Task{Size: 10}
	vms := []core.VM{
		{Index: 1, Capacity: 2},
		{Index: 0, Capacity: 2},
	}
	best, idx, err := timing.MinET(task, vms)
	require.NoError(t, err)
	assert.Equal(t, 5.0, best)
	assert.Equal(t, core.VmIndex(0), idx)
}

func TestMinET_Unschedulable(t *testing.T) {
	task := &core.Task{Size: 10}
	vms := []core.VM{{Index: 0, Capacity: 0}}
	_, _, err := timing.MinET(task, vms)
	assert.ErrorIs(t, err, timing.ErrUnschedulable)
}

func TestMeanET_ExcludesUnschedulable(t *testing.T) {
	task := &core.Task{Size: 10}
	vms := []core.VM{
		{Index: 0, Capacity: 2},  // ET=5
		{Index: 1, Capacity: 0},  // excluded
		{Index: 2, Capacity: 10}, // ET=1
	}
	mean, err := timing.MeanET(task, vms)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, mean, 1e-9)
}
