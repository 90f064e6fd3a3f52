// Package metrics computes the three summary statistics the spec defines
// over a finished schedule.Schedule: SLR (Schedule Length Ratio), AVU
// (Average VM Utilization), and VF (Variance of Fairness), bundled into a
// single Snapshot.
//
//   - SLR = makespan / Σ_{t∈CP} min_v ET(t,v). A task on the critical path
//     unschedulable on every VM is a fatal error, not a zero term.
//   - AVU = arithmetic mean, over all VMs, of that VM's utilization
//     (Σ ET(t,vm) over every occupancy on vm, including duplicates,
//     divided by makespan).
//   - VF = population variance, over every originally-placed task, of its
//     satisfaction ratio ET(t, vm_of(t)) / min_v ET(t,v) — always >= 1,
//     lower is fairer. Tasks whose numerator or denominator is non-finite
//     are excluded (per the spec's stated convention: actual/fastest).
//
// Variance is computed with github.com/montanaflynn/stats rather than by
// hand, matching the engine's "never hand-roll what a library already
// does well" convention.
package metrics
