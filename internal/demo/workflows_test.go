package demo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smctpd/driver"
	"github.com/katalvlaran/smctpd/internal/demo"
)

func TestBuild_AllWorkflowsScheduleCleanly(t *testing.T) {
	for _, name := range []string{"diamond", "fork-join", "linear-chain"} {
		t.Run(name, func(t *testing.T) {
			in, err := demo.Build(name, 3)
			require.NoError(t, err)

			result, err := driver.Run(in)
			require.NoError(t, err)
			assert.NoError(t, result.Pass1.Schedule.Validate())
			assert.NoError(t, result.Pass2.Schedule.Validate())
		})
	}
}

func TestBuild_UnknownWorkflowErrors(t *testing.T) {
	_, err := demo.Build("nonexistent", 3)
	assert.ErrorIs(t, err, demo.ErrUnknownWorkflow)
}

func TestLinearChain_SingleVM(t *testing.T) {
	in, err := demo.LinearChain(1)
	require.NoError(t, err)

	result, err := driver.Run(in)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Pass2.Metrics.SLR, 1e-6)
}

func TestDiamond_RejectsSingleVM(t *testing.T) {
	_, err := demo.Diamond(1)
	assert.Error(t, err)
}
