// Package pm implements the per-package, per-user state engine used to track
// installable packages on a multi-user device.
//
// Responsibilities:
//   - PackageSetting owns package-scoped installation metadata (paths, ABIs,
//     version, signing identity, install source) plus a sparse table of
//     per-user state records.
//   - Per-user records are created lazily on first mutation; reads for users
//     with no stored record synthesize a default view without touching the
//     table.
//   - Suspension is a multi-writer set keyed by suspending actor; the
//     Suspended flag is always derived from that set, never written directly.
//   - Component enable/disable overrides resolve with enabled-set precedence.
//   - Domain-verification status and app-link generation pack into one
//     64-bit value for cheap comparison.
//
// Data flow:
//
//	mutators -> modifyUserState(userID) -> *UserState (stored)
//	readers  -> ReadUserState(userID)   -> UserState view (never inserts)
//
// The engine performs no locking and no I/O; callers serialize access to a
// given record. Persistence, package parsing, and signature verification are
// external collaborators that only call the accessors defined here.
package pm
