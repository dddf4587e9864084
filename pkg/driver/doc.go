// Package driver is the top-level entry point: it loads a run Manifest
// (the numeric profile and equality oracle a run should use), builds the
// initial environment and store, and invokes pkg/interpreter. Nothing
// outside this package knows how a CExp tree is produced; driver consumes
// one along with an initial argument list and returns an Answer.
package driver
