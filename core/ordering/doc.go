// Package ordering implements the ordered parent→child relation core used
// by the portal's content hierarchy (synopsis topics, section trees, class
// sections).
//
// A Relation is one (parent, child, index) membership. For every parent the
// stored indexes are a contiguous 0..N-1 range, each child appears at most
// once, and index order matches the declared order. The Reconciler turns a
// client-declared ordering (or a single append/remove) into a valid stored
// set without ever exposing a state that violates those invariants, even
// transiently.
//
// # Components
//
//   - Reconciler: ReplaceAll, Append, Remove, ReadOrdered. Stateless; all
//     state lives in the Store. One transaction per operation.
//   - Store / Tx: the transactional store abstraction. GormStore maps a
//     relation kind onto a relational table via a RelationSpec column
//     mapping; MemStore is the in-memory reference implementation.
//   - Error: the failure taxonomy. Every rejection carries enough detail
//     (missing indexes, duplicated children, ...) for the caller to repair
//     the submitted ordering.
//
// The reconciler performs no internal locking and no internal retries. The
// store's transaction isolation plus its unique (parent, index) and
// (parent, child) constraints are the backstop that turns a lost race into
// a retryable KindReconciliationFailed error.
package ordering
