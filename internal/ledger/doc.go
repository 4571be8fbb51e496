// Package ledger implements the sprint ledger: an in-memory record store
// backed by a flat tab-separated file.
//
// The ledger maps normalized sprint ids to entries. A Ledger is created
// fresh per command invocation: Load reads the whole backing file into
// memory, mutations happen on the map, and Save rewrites the file in one
// atomic pass. Nothing persists between invocations beyond the file itself.
//
// # Invariants
//
//   - Ids are unique within a ledger and stored in canonical zero-padded
//     form ("7", "07" and "007" are the same entry).
//   - All ordering is numeric by sprint number, never lexical ("010" sorts
//     between "009" and "100").
//   - At most one entry is in_progress at a time; UpdateStatus enforces
//     this for its own writes. Hand-edited files can still violate it, in
//     which case InProgress deterministically picks the lowest number.
//   - Mutating commands save exactly once; queries never write.
//
// The design assumes exclusive single-process access to the backing file
// for the duration of each invocation. Concurrent writers can race and
// the last writer wins; the atomic rename in Save only guarantees that
// readers never observe a torn file.
package ledger
