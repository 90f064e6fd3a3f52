// Package core defines the immutable Task/VM data model the SM-CPTD
// scheduling engine operates over, and the Kahn-style leveling pass that
// derives topological levels from task precedence.
//
// A Graph is a fixed collection of Tasks (identity, size, predecessor and
// successor ids) plus a fixed pool of VMs (identity, processing capacity,
// pairwise bandwidth). Both are populated once by an external ingestion
// collaborator (see the "out of scope" section of the scheduling spec) and
// never mutated afterwards: the engine reads a Graph, it never writes one.
//
// Two distinct identifier spaces are kept apart on purpose:
//
//	TaskID  — stable, externally assigned task identity.
//	VmID    — stable, externally assigned VM identity (used only to look up
//	          bandwidth between two VMs).
//	VmIndex — dense, contiguous 0-based position used everywhere a VM is a
//	          map/slice key for the schedule and timing tables.
//
// Collapsing VmID and VmIndex into one type is a classic source of aliasing
// bugs once VMs are duplicated or reordered; they are kept as distinct
// defined types here precisely to let the compiler catch that class of bug.
package core
