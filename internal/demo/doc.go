// Package demo builds small, non-trivial in-memory workflows (diamond,
// fork-join, linear chain) for the CLI's `run` subcommand and package
// Examples to schedule. It is a stand-in for the out-of-scope XML/CSV
// workflow-ingestion collaborator the spec names but does not define
// (spec.md §1/§6): real deployments parse a workflow description file into
// a core.Graph and a driver.Input themselves, the way builder.Cycle and
// friends synthesize core.Graph topologies for the teacher's examples.
package demo
