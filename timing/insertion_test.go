package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/smctpd/timing"
)

func TestFindInsertion_EmptySlots(t *testing.T) {
	ast, at := timing.FindInsertion(nil, 5, 3)
	assert.Equal(t, 5.0, ast)
	assert.Equal(t, 0, at)
}

func TestFindInsertion_GapBeforeFirstSlot(t *testing.T) {
	slots := []timing.Slot{{Task: 1, AST: 10, AFT: 20}}
	ast, at := timing.FindInsertion(slots, 0, 5) // gap [0,10) fits a 5-unit task
	assert.Equal(t, 0.0, ast)
	assert.Equal(t, 0, at)
}

func TestFindInsertion_GapBetweenSlots(t *testing.T) {
	slots := []timing.Slot{
		{Task: 1, AST: 0, AFT: 10},
		{Task: 2, AST: 20, AFT: 30},
	}
	// Gap [10,20) is 10 wide; a 5-unit task fits.
	ast, at := timing.FindInsertion(slots, 0, 5)
	assert.Equal(t, 10.0, ast)
	assert.Equal(t, 1, at)
}

func TestFindInsertion_NoGapAppendsAtEnd(t *testing.T) {
	slots := []timing.Slot{
		{Task: 1, AST: 0, AFT: 10},
		{Task: 2, AST: 10, AFT: 20},
	}
	ast, at := timing.FindInsertion(slots, 0, 100)
	assert.Equal(t, 20.0, ast)
	assert.Equal(t, 2, at)
}

func TestInsertSorted_MaintainsOrder(t *testing.T) {
	var slots []timing.Slot
	slots = timing.InsertSorted(slots, timing.Slot{Task: 2, AST: 10, AFT: 20})
	slots = timing.InsertSorted(slots, timing.Slot{Task: 1, AST: 0, AFT: 10})
	slots = timing.InsertSorted(slots, timing.Slot{Task: 3, AST: 20, AFT: 30})

	assert.True(t, timing.NoOverlap(slots))
	var order []int
	for _, s := range slots {
		order = append(order, int(s.Task))
	}
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestNoOverlap_DetectsOverlap(t *testing.T) {
	slots := []timing.Slot{
		{Task: 1, AST: 0, AFT: 10},
		{Task: 2, AST: 5, AFT: 15},
	}
	assert.False(t, timing.NoOverlap(slots))
}
