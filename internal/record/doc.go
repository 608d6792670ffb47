// Package record defines the ordered record model shared by the store,
// the ordinal engine, and the CLI.
//
// A record belongs to exactly one group. Within a group, records carry a
// dense 1-based ordinal: after every engine operation the ordinals of a
// group with N records are exactly {1..N}, each held by one record.
//
// Group keys are NFC-normalized before storage so that byte-different but
// canonically equal strings select the same partition. Record IDs are
// UUIDv7, which makes them time-sortable and gives reads a deterministic
// tie-break without a separate sequence column.
package record
