// Package reconcile computes the post-sync value of both tag stores.
//
// Reconciliation is a pure function of the two pre-sync tag sets and the
// selected sync mode. It performs no I/O and has no error cases; the caller
// decides what to persist based on the changed flags in the Result.
//
// Modes:
//   - AdoptShell: the shell store is authoritative, the embedded store follows
//   - AdoptEmbedded: the embedded store is authoritative, the shell store follows
//   - Merge: both stores receive the union of the two sets
//
// A store is marked changed only when its new value differs from its
// original value by set equality. Changed stores are replaced wholesale.
package reconcile
