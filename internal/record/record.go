package record

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// OrdinalUnassigned marks a record whose position has not been assigned yet.
// The engine replaces it with max(group)+1 before the record is first stored.
const OrdinalUnassigned = 0

// Record is an ordered entity within a group.
//
// Ordinal is mutated only by the ordinal engine. Direct writes bypass the
// density invariant and are disallowed by convention.
type Record struct {
	// ID uniquely identifies the record. Immutable after creation.
	ID string

	// Group partitions the ordering space. Records in different groups
	// are never order-compared.
	Group string

	// Ordinal is the 1-based position within the group, or
	// OrdinalUnassigned before first store.
	Ordinal int

	// Title is the display payload carried for listing.
	Title string
}

// NormalizeGroup returns the canonical (NFC) form of a group key.
//
// All store queries and the engine's sibling lookups filter on the
// normalized form, so "café" composed and decomposed land in the same
// partition.
func NormalizeGroup(group string) string {
	return norm.NFC.String(group)
}

// Validate checks structural validity before a store write.
// It does not check the group-wide density invariant - that requires
// store access and belongs to the engine.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record: empty id")
	}
	if r.Group == "" {
		return fmt.Errorf("record %s: empty group", r.ID)
	}
	if r.Ordinal < OrdinalUnassigned {
		return fmt.Errorf("record %s: negative ordinal %d", r.ID, r.Ordinal)
	}
	return nil
}

// Assigned reports whether the record has been given a position.
func (r Record) Assigned() bool {
	return r.Ordinal != OrdinalUnassigned
}
