// Package ordinal implements the ordinal position engine.
//
// The engine maintains a dense, gap-free, 1-based position ("ordinal") for
// every record in a group: after each operation the ordinals of a group
// with N records are exactly {1..N}. Records move one step at a time by
// swapping with an adjacent sibling.
//
// ARCHITECTURE:
//
// The engine holds no state of its own beyond its store handle and an ID
// generator. Every boundary query re-reads the store; there is no cached
// derived state, so results always reflect the latest committed ordinals.
//
// Mutating operations (Promote, Demote, Create, Delete) run inside a single
// atomic unit of work delegated to the store. A half-applied swap is the
// one correctness-fatal failure class here - it corrupts every subsequent
// move - so both halves commit together or not at all. Operations on
// different groups proceed in parallel; operations on the same group
// serialize on the store's transaction lock.
//
// Group scoping is explicit everywhere: the group is either an argument
// (LowestOrdinal, HighestOrdinal, NextOrdinal, Audit) or taken from the
// record being acted on. The engine never carries an ambient "current
// group" between calls.
//
// Failure semantics: boundary no-ops (promoting the first record, demoting
// the last) return successfully without mutating anything. Contention and
// unavailability surface as PositionError codes; the engine never retries.
// If a swap-target lookup finds zero or more than one sibling the engine
// fails loudly with INVARIANT_VIOLATION instead of silently repairing,
// since silent repair can mask a deeper bug.
package ordinal
