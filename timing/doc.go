// Package timing provides the scheduling engine's primitive time
// computations: execution time, communication cost, data ready time, and
// the insertion-based gap search that turns a data-ready time into a
// machine-ready start time on a VM's existing slot list.
//
// Everything here is a pure function of its arguments: no package-level
// state, no I/O. Floating-point comparisons that matter for correctness
// (slot overlap, precedence) always go through Epsilon rather than a bare
// "==" or "<", per the engine-wide convention (see Epsilon below).
package timing

// Epsilon is the absolute tolerance used for all overlap and precedence
// floating-point comparisons across the engine (1e-9, per the scheduling
// spec's floating-point design note).
const Epsilon = 1e-9

// BaseBandwidth is the canonical average bandwidth (B̄) the communication
// cost table is normalized to. Changing it is an ABI change to the
// communication-cost table format, per the scheduling spec's environment
// section — it is therefore a named constant, not a magic number, and
// never read from configuration.
const BaseBandwidth = 25.0
