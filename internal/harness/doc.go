// Package harness provides a conformance testing framework for the
// ordinal engine.
//
// Scenarios are YAML files declaring seed records, a sequence of engine
// operations (promote, demote, add, remove), and assertions over the
// resulting group states. Each scenario runs against a fresh in-memory
// database with a deterministic ID sequence, so the same scenario always
// produces the same snapshots.
//
// After the seed and after every step the harness captures a snapshot of
// all group orderings. Snapshots render to a stable text form and are
// compared against golden files with goldie:
//
//	go test ./internal/harness -update
//
// regenerates the golden files.
//
// Records are referenced by title inside a scenario, so titles must be
// unique across its groups. The harness exercises the real engine against
// the real store - there is no mock layer between the scenario and the
// swap transactions it is checking.
package harness
