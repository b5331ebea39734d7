package ordering

import (
	"context"
	"sort"
)

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithSelfReferenceCheck rejects relations whose child id equals the parent
// id. Enable it for self-referencing hierarchies (sections containing
// sections); for relations between distinct entity kinds the ids live in
// different spaces and a coincidental match is legal.
func WithSelfReferenceCheck() Option {
	return func(r *Reconciler) { r.checkSelfRef = true }
}

// Reconciler brings the stored relations of a parent into agreement with a
// caller-declared ordering. It is stateless between calls; every operation
// runs in one store transaction.
type Reconciler struct {
	store        Store
	checkSelfRef bool
}

// New creates a Reconciler over the given store.
func New(store Store, opts ...Option) *Reconciler {
	r := &Reconciler{store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReplaceAll replaces the parent's ordered child set with the proposed one.
// Entries may arrive in any order and are sorted by declared index first.
// Validation runs to completion before any write: malformed entries, then
// the index permutation check, then duplicate children. An empty proposal
// is only honored with opts.ConfirmEmpty.
//
// The write is delete-then-insert inside one transaction; with tens of
// children per parent this is the simplest strategy that can never expose
// a transient invariant violation. When the proposed order equals the
// stored order the write is skipped entirely.
func (r *Reconciler) ReplaceAll(ctx context.Context, parent string, proposed []Entry, opts ReplaceOptions) ([]Relation, error) {
	ordered, err := r.validate(parent, proposed, opts)
	if err != nil {
		return nil, err
	}

	next := make([]Relation, len(ordered))
	for i, e := range ordered {
		next[i] = Relation{Parent: parent, Child: e.Child, Index: i}
	}

	err = r.store.Update(ctx, func(tx Tx) error {
		current, err := tx.GetAll(ctx, parent)
		if err != nil {
			return err
		}
		if sameOrder(current, next) {
			return nil
		}
		if err := tx.DeleteAll(ctx, parent); err != nil {
			return err
		}
		if len(next) == 0 {
			return nil
		}
		return tx.InsertMany(ctx, next)
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return next, nil
}

// Append attaches child at the end of the parent's sequence. Appending an
// already-present child is a successful no-op; the returned bool reports
// whether a relation was created. A concurrent Append racing for the same
// index is caught by the store's (parent, index) uniqueness backstop and
// surfaces as a retryable KindReconciliationFailed.
func (r *Reconciler) Append(ctx context.Context, parent, child string) (Relation, bool, error) {
	if child == "" {
		return Relation{}, false, newMalformed("empty child id")
	}
	if r.checkSelfRef && child == parent {
		return Relation{}, false, newMalformed("child %q references its own parent", child)
	}

	var (
		rel     Relation
		created bool
	)
	err := r.store.Update(ctx, func(tx Tx) error {
		current, err := tx.GetAll(ctx, parent)
		if err != nil {
			return err
		}
		next := 0
		for _, c := range current {
			if c.Child == child {
				rel = c
				return nil
			}
			if c.Index+1 > next {
				next = c.Index + 1
			}
		}
		rel = Relation{Parent: parent, Child: child, Index: next}
		created = true
		return tx.InsertMany(ctx, []Relation{rel})
	})
	if err != nil {
		return Relation{}, false, wrapStoreErr(err)
	}
	return rel, created, nil
}

// Remove detaches child from parent and shifts every relation above the
// removed index down by one, restoring the contiguous range. The shift is
// applied in ascending index order inside the same transaction. Removing
// an absent child fails with KindNotFound.
func (r *Reconciler) Remove(ctx context.Context, parent, child string) error {
	err := r.store.Update(ctx, func(tx Tx) error {
		current, err := tx.GetAll(ctx, parent)
		if err != nil {
			return err
		}
		removed := -1
		for _, c := range current {
			if c.Child == child {
				removed = c.Index
				break
			}
		}
		if removed < 0 {
			return NewNotFound(parent, child)
		}
		if _, err := tx.Delete(ctx, parent, child); err != nil {
			return err
		}
		updates := make(map[string]int)
		for _, c := range current {
			if c.Index > removed {
				updates[c.Child] = c.Index - 1
			}
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.UpdateIndices(ctx, parent, updates)
	})
	return wrapStoreErr(err)
}

// ReadOrdered returns the parent's relations sorted by index ascending.
// Read-only, no side effects.
func (r *Reconciler) ReadOrdered(ctx context.Context, parent string) ([]Relation, error) {
	rels, err := r.store.GetAll(ctx, parent)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i].Index < rels[j].Index })
	return rels, nil
}

// validate checks a proposed ordering and returns it sorted by declared
// index. It never touches the store.
func (r *Reconciler) validate(parent string, proposed []Entry, opts ReplaceOptions) ([]Entry, error) {
	if len(proposed) == 0 {
		if !opts.ConfirmEmpty {
			return nil, newEmptyReplace()
		}
		return nil, nil
	}

	for _, e := range proposed {
		if e.Child == "" {
			return nil, newMalformed("entry at index %d has an empty child id", e.Index)
		}
		if e.Index < 0 {
			return nil, newMalformed("negative index %d for child %q", e.Index, e.Child)
		}
		if r.checkSelfRef && e.Child == parent {
			return nil, newMalformed("child %q references its own parent", e.Child)
		}
	}

	// The declared indexes must be a permutation of 0..N-1.
	n := len(proposed)
	seen := make(map[int]int, n)
	var outOfRange []int
	for _, e := range proposed {
		if e.Index >= n {
			outOfRange = append(outOfRange, e.Index)
			continue
		}
		seen[e.Index]++
	}
	var missing, duplicates []int
	for i := 0; i < n; i++ {
		switch {
		case seen[i] == 0:
			missing = append(missing, i)
		case seen[i] > 1:
			duplicates = append(duplicates, i)
		}
	}
	if len(missing) > 0 || len(duplicates) > 0 || len(outOfRange) > 0 {
		sort.Ints(outOfRange)
		return nil, newMissingIndexes(missing, duplicates, outOfRange)
	}

	byChild := make(map[string]int, n)
	var dupChildren []string
	for _, e := range proposed {
		byChild[e.Child]++
		if byChild[e.Child] == 2 {
			dupChildren = append(dupChildren, e.Child)
		}
	}
	if len(dupChildren) > 0 {
		sort.Strings(dupChildren)
		return nil, newDuplicateChild(dupChildren)
	}

	ordered := make([]Entry, n)
	copy(ordered, proposed)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })
	return ordered, nil
}

func sameOrder(current, next []Relation) bool {
	if len(current) != len(next) {
		return false
	}
	for i := range current {
		if current[i].Child != next[i].Child || current[i].Index != next[i].Index {
			return false
		}
	}
	return true
}
