// Package types defines the Contact entity, the Book interface, the snapshot
// and configuration types, and the standard errors for the contacts module.
//
// A Contact is validated once, at construction. A Book owns an ordered set of
// contacts indexed by phone and by email and persists to a single JSON
// snapshot file named contacts.json.
package types
