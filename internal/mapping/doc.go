// Package mapping is the core name-mapping store for bindgen-bridge.
//
// During a binding import pass the header importer reports every C
// composite type it discovers together with the Go name it assigned to
// it, plus every typedef alias it encounters. This package collects
// those facts into a NameMappings aggregate and reconciles them
// independently of arrival order: a typedef may be seen before or after
// the struct it names, and a struct may be visited several times
// through repeated header inclusion.
//
// Key guarantees:
//   - Re-discovery of identical facts is idempotent
//   - Contradicting facts surface as *ConflictError, never as a
//     silently picked winner
//   - Aliases seen before their target are held pending and resolved
//     retroactively when the target appears
//   - The final aggregate is identical for every permutation of one
//     pass's discovery events
//
// A NameMappings is exclusively owned by the caller of the collection
// phase; once it is handed to the renderer nothing mutates it anymore.
package mapping
