// Package dup implements LOTD: selective duplication of entry tasks onto
// VMs hosting their successors, to eliminate communication bottlenecks.
//
// For each entry task e (processed in ascending task-id order, per the
// engine-wide tie-break convention), every VM hosting a successor of e
// (excluding e's own VM, visited in ascending VmIndex order) is considered
// a duplication candidate. A duplicate is accepted only if both hold:
//
//   - Rule 1 (benefit): the duplicate would finish before the data
//     transferred from the original arrives — i.e. it genuinely shortens
//     the successor's data ready time.
//   - Rule 2 (no harm): inserting the duplicate does not push back the
//     AFT of any task already scheduled on the candidate VM.
//
// Acceptance commits the duplicate through schedule.Schedule's documented
// InsertDuplicate/RemoveDuplicate operations (tentative insert, measure,
// commit or roll back) and propagates the timing change through every
// downstream task that might now observe a local predecessor. Only entry
// tasks are considered, per the spec's explicit scope limitation — a
// legacy path in the reference implementation hinted at duplicating
// non-entry tasks too, but the production path (and this one) restricts to
// entry tasks.
package dup
