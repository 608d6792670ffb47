// Package store provides SQLite-backed durable storage for ordered records.
//
// The store is the single durable owner of records. It exposes exactly the
// primitives the ordinal engine needs:
//   - Min/max ordinal within a group
//   - Single-record lookup by id or by (group, ordinal)
//   - Bulk ordinal shifts scoped to a group
//   - Atomic units of work (all-or-nothing, rolled back on any failure)
//
// The store does NOT enforce the per-group density invariant ({1..N} with
// no gaps or duplicates). A two-step adjacent swap necessarily passes
// through a transient duplicate ordinal inside its transaction, so the
// (grp, ordinal) index is deliberately non-unique; density is maintained by
// the engine and audited by `ordinal check`.
//
// # Group scoping
//
// Every group-filtered query normalizes its group argument to Unicode NFC
// at the store boundary, so callers never have to pre-normalize.
//
// # Deterministic reads
//
// All list queries order by: ordinal ASC, id ASC COLLATE BINARY. Ordinals
// are unique within a healthy group; the id tie-break only matters when
// inspecting a corrupted group, where it yields creation order (UUIDv7).
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// The connection pool is limited to a single connection: SQLite allows one
// writer at a time, and a single connection avoids SQLITE_BUSY storms when
// concurrent operations contend for the same group.
package store
