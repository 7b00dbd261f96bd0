// Package plan turns scanned file entries into an immutable move plan.
// Building a plan touches the filesystem only for destination existence
// probes; executing it is the mover's job. The split keeps the destructive
// step inspectable and independently testable.
package plan
