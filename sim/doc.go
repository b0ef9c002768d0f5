// Package sim provides the tick-stepped CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process descriptor and ProcessState lifecycle (unarrived → ready → running → finished)
//   - scheduler.go: the Policy interface and the FCFS, Round Robin and preemptive SJF disciplines
//   - simulator.go: the tick loop (arrival, selection/preemption, advance, consume, wait accounting)
//
// # Architecture
//
// The sim package owns the engine and its data types; everything around it
// lives in sub-packages:
//   - sim/trace/: the append-only event log and its summary
//   - sim/workload/: process file parsing, YAML specs and seeded generation
//   - sim/report/: text, table, JSON and YAML rendering of a Result
//
// A run is single-threaded and synchronous. The loop always executes the full
// horizon (SchedulerConfig.RunFor); there is no early exit when all work is done.
package sim
