// Package driver owns the two-pass refinement loop described by the
// scheduling engine's design: pass 1 computes communication costs from the
// averaged-over-all-VM-pairs DCP formula and runs rank -> SMGT placement ->
// LOTD duplication -> timing -> metrics; pass 2 rebuilds the cost table
// from the pass-1 placement's actual pairwise bandwidth and reruns the
// same pipeline, so the final result reflects the concrete communication
// costs the first pass could only guess at.
//
// The engine itself (core/timing/rank/match/dup/schedule/metrics) is pure
// given a cost table; driver is the one place that decides which cost
// table to hand it and when to re-enter with a refined one.
package driver
