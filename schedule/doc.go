// Package schedule is the single source of truth for AST/AFT: given a
// placement (a VmIndex for every task), it topologically walks the tasks,
// computing each one's Data Ready Time, its insertion-based Machine Ready
// Time on its assigned VM, and from those its Actual Start/Finish Time. It
// also hosts the per-VM execution-order slot lists that both the
// duplication optimizer (package dup) and the final invariant checks read
// and mutate through.
//
// A Schedule is built from scratch by Run once per scheduling pass, before
// duplication search (see the driver package), and then mutated
// incrementally by the duplication optimizer through
// InsertDuplicate/RemoveDuplicate and RecomputeTaskInPlace. No full rebuild
// follows duplication: Validate checks the incrementally updated schedule
// as it stands. Everything else is read-only after Run returns.
package schedule
