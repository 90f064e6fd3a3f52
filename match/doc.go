// Package match implements SMGT: per-level placement of non-critical
// tasks by deferred-acceptance (Gale–Shapley-style) stable matching between
// tasks and VMs, seeded by a capacity-proportional per-(vm,level)
// threshold and by direct placement of critical-path tasks.
//
// Levels are processed independently and in ascending order. Within a
// level:
//
//  1. Each VM's threshold (the most tasks it may accept at this level) is
//     computed from its share of total cluster capacity.
//  2. Critical-path tasks at this level are placed directly on the largest
//     available VM (by capacity) that has not hit its threshold.
//  3. Remaining tasks and VMs run one round of deferred acceptance: tasks
//     propose down their VM preference list; VMs hold their top-threshold
//     proposers and reject the rest; unassigned tasks re-propose to their
//     next choice.
//  4. Any task that exhausts its preference list without being held is
//     spilled onto the VM with the least current load at this level, to
//     preserve totality (every task is placed somewhere).
//
// All tie-breaks are documented once, here, and used uniformly:
//   - Tasks, VMs, and levels are always iterated in ascending id/index
//     order.
//   - A task's VM preference favors lower ET, then lower expected
//     communication penalty, then lower current VM load.
//   - A VM's task preference favors a smaller ET-ratio (this VM's ET over
//     the task's minimum ET across all VMs), then higher rank, then
//     smaller task id.
package match
