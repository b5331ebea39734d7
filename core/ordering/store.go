package ordering

import "context"

// Tx is the set of operations available inside one store transaction.
// Implementations must enforce uniqueness of (parent, child) and
// (parent, index) and fail the offending call as a whole; the reconciler
// relies on that backstop rather than re-checking under race.
type Tx interface {
	// GetAll returns every relation of parent, sorted by index ascending.
	GetAll(ctx context.Context, parent string) ([]Relation, error)

	// DeleteAll removes every relation of parent.
	DeleteAll(ctx context.Context, parent string) error

	// Delete removes a single relation and reports whether one existed.
	Delete(ctx context.Context, parent, child string) (bool, error)

	// InsertMany inserts the given relations. The whole call fails if any
	// (parent, index) or (parent, child) pair already exists.
	InsertMany(ctx context.Context, rels []Relation) error

	// UpdateIndices moves the given children of parent to new indexes.
	// Updates must be applied so that no two relations of the parent ever
	// share an index as observed by a concurrent reader.
	UpdateIndices(ctx context.Context, parent string, updates map[string]int) error
}

// Store is a transactional store of ordered relations. Operations on
// different parents are independent; implementations must not serialize
// them behind a global lock.
type Store interface {
	// Update runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back on any other exit path, including context
	// cancellation. No partial state is ever visible outside.
	Update(ctx context.Context, fn func(tx Tx) error) error

	// GetAll reads every relation of parent outside a transaction, sorted
	// by index ascending.
	GetAll(ctx context.Context, parent string) ([]Relation, error)
}
