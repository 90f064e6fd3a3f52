// Package rank implements the Dynamic Critical Path (DCP) computation:
// a bottom-up, memoized task rank and the critical-path assembly built from
// it.
//
// rank(t) is the longest-path weight from t to the workflow's exit, using
// each task's mean execution time across schedulable VMs and the
// normalized communication cost table:
//
//	rank(t) = W(t)                                   if succ(t) is empty
//	rank(t) = W(t) + max_{s in succ(t)} (commcost(t,s) + rank(s))  otherwise
//
// Memoization is mandatory and is implemented as an iterative traversal in
// reverse-topological (level-descending) order rather than naive recursion,
// per the engine's design note on avoiding deep-recursion stack growth on
// long chains (mirrors the "iterative post-order" rewrite of the teacher
// library's recursive DFS/topological-sort primitives).
package rank
