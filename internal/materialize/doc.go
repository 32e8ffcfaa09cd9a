// Package materialize turns a resolved configuration into a project on disk.
//
// A run is a fixed chain of steps: guard check, base scaffold, dependency
// install, config emit, template overlay and theme patch. Every write goes
// below the ExecutionContext root; the process working directory is never
// changed. The guard check runs first and writes nothing, so a run that
// fails there leaves the filesystem untouched. Later failures stop the run
// without rolling back what was already written.
package materialize
