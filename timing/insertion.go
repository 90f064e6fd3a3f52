package timing

import "sort"

// Gap describes an idle interval in a VM's execution-order slot list,
// bounded by [Start, End) with End=+Inf for the trailing gap after the last
// slot.
type Gap struct {
	Start    float64
	End      float64
	InsertAt int // index in the slot list a new slot would be inserted at
}

// FindInsertion implements the engine's insertion-based scheduling rule: try
// the gap before the first slot, then gaps between consecutive slots (each
// must span at least `need` above max(earliest, previous slot's AFT)), else
// the trailing gap after the last slot. Slots must already be sorted by
// AST ascending (the invariant the schedule package maintains via binary
// insertion).
//
// Returns the AST the new occupancy would start at and the index to insert
// it at to keep the slice sorted by AST.
func FindInsertion(slots []Slot, earliest float64, need float64) (ast float64, insertAt int) {
	prevEnd := earliest

	for i, s := range slots {
		// Gap is [prevEnd, s.AST): usable if its span >= `need`.
		candidateStart := prevEnd
		if s.AST-candidateStart >= need-Epsilon {
			return candidateStart, i
		}
		if s.AFT > prevEnd {
			prevEnd = s.AFT
		}
	}

	// No earlier gap fit: append after the last slot (or at `earliest` if
	// the list was empty).
	return prevEnd, len(slots)
}

// InsertSorted inserts s into slots, keeping the slice sorted by AST
// ascending (binary insertion per the design notes), and returns the
// updated slice.
func InsertSorted(slots []Slot, s Slot) []Slot {
	i := sort.Search(len(slots), func(i int) bool { return slots[i].AST >= s.AST })
	slots = append(slots, Slot{})
	copy(slots[i+1:], slots[i:])
	slots[i] = s
	return slots
}

// RemoveAt removes the slot at index i, preserving order.
func RemoveAt(slots []Slot, i int) []Slot {
	return append(slots[:i:i], slots[i+1:]...)
}

// NoOverlap reports whether adjacent slots in a sorted-by-AST list satisfy
// AFT_i <= AST_{i+1} + Epsilon.
func NoOverlap(slots []Slot) bool {
	for i := 1; i < len(slots); i++ {
		if slots[i-1].AFT > slots[i].AST+Epsilon {
			return false
		}
	}
	return true
}
