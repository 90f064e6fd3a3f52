// Package smctpd implements the SM-CPTD workflow scheduling engine: DCP
// critical-path ranking, SMGT stable-matching placement, LOTD entry-task
// duplication, an insertion-based timing engine, and SLR/AVU/VF metrics,
// orchestrated by a two-pass refinement driver.
//
// The engine is organized under one subpackage per stage:
//
//	core/     — Task/VM/Graph model, leveling, successor closures
//	timing/   — ET, communication cost, DRT/MRT, insertion-based scheduling
//	rank/     — DCP rank and critical-path extraction
//	match/    — SMGT per-level threshold + Gale-Shapley deferred acceptance
//	dup/      — LOTD entry-task duplication search, admission, rollback
//	schedule/ — per-VM slot timetable, AST/AFT propagation, validation
//	metrics/  — SLR, AVU, VF, and their Prometheus export
//	driver/   — the two-pass run: averaged costs, then assignment-specific
//
// cmd/smctpd is a demo CLI collaborator (spec.md §6, "listed for
// completeness") that runs the engine over a small built-in workflow
// (internal/demo) in place of the out-of-scope XML/CSV ingestion pipeline.
//
// The engine itself is single-threaded and synchronous: determinism comes
// from stable tie-breakers (task id ascending, VM index ascending), not
// from locking, so unlike its teacher this package carries no concurrency
// primitives of its own.
package smctpd
