package ordering

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemStore is the in-memory reference Store. It is used in tests and as the
// executable specification the relational store is checked against.
//
// Locking is per parent: a transaction locks only the parents it touches,
// so operations on different parents run in parallel. Mutations happen on
// copies and are swapped in on commit, which gives full rollback on any
// error.
type MemStore struct {
	mu      sync.Mutex // guards the parents map, not its contents
	parents map[string]*parentSet
}

type parentSet struct {
	mu      sync.Mutex
	byChild map[string]int
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{parents: make(map[string]*parentSet)}
}

func (s *MemStore) parent(id string) *parentSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parents[id]
	if !ok {
		p = &parentSet{byChild: make(map[string]int)}
		s.parents[id] = p
	}
	return p
}

// Update implements Store.
func (s *MemStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memTx{store: s, touched: make(map[string]*txParent)}
	defer tx.release()
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// GetAll implements Store.
func (s *MemStore) GetAll(ctx context.Context, parent string) ([]Relation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := s.parent(parent)
	p.mu.Lock()
	defer p.mu.Unlock()
	return relationsOf(parent, p.byChild), nil
}

// memTx mutates copies of the touched parent sets; commit swaps them in.
type memTx struct {
	store   *MemStore
	touched map[string]*txParent
}

type txParent struct {
	set  *parentSet     // held locked for the duration of the transaction
	work map[string]int // the copy being mutated
}

func (t *memTx) get(id string) *txParent {
	if tp, ok := t.touched[id]; ok {
		return tp
	}
	set := t.store.parent(id)
	set.mu.Lock()
	work := make(map[string]int, len(set.byChild))
	for c, i := range set.byChild {
		work[c] = i
	}
	tp := &txParent{set: set, work: work}
	t.touched[id] = tp
	return tp
}

func (t *memTx) commit() {
	for _, tp := range t.touched {
		tp.set.byChild = tp.work
		tp.work = nil
	}
}

func (t *memTx) release() {
	for _, tp := range t.touched {
		tp.set.mu.Unlock()
	}
	t.touched = nil
}

// GetAll implements Tx.
func (t *memTx) GetAll(ctx context.Context, parent string) ([]Relation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return relationsOf(parent, t.get(parent).work), nil
}

// DeleteAll implements Tx.
func (t *memTx) DeleteAll(ctx context.Context, parent string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.get(parent).work = make(map[string]int)
	return nil
}

// Delete implements Tx.
func (t *memTx) Delete(ctx context.Context, parent, child string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	tp := t.get(parent)
	_, ok := tp.work[child]
	delete(tp.work, child)
	return ok, nil
}

// InsertMany implements Tx. It enforces both uniqueness constraints and
// fails the whole call on the first conflict.
func (t *memTx) InsertMany(ctx context.Context, rels []Relation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, rel := range rels {
		tp := t.get(rel.Parent)
		if _, exists := tp.work[rel.Child]; exists {
			return fmt.Errorf("unique constraint: child %q already attached to parent %q", rel.Child, rel.Parent)
		}
		for c, i := range tp.work {
			if i == rel.Index {
				return fmt.Errorf("unique constraint: index %d of parent %q already held by %q", rel.Index, rel.Parent, c)
			}
		}
		tp.work[rel.Child] = rel.Index
	}
	return nil
}

// UpdateIndices implements Tx.
func (t *memTx) UpdateIndices(ctx context.Context, parent string, updates map[string]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tp := t.get(parent)
	for child := range updates {
		if _, ok := tp.work[child]; !ok {
			return fmt.Errorf("no relation %q/%q to move", parent, child)
		}
	}
	for child, idx := range updates {
		tp.work[child] = idx
	}
	held := make(map[int]string, len(tp.work))
	for c, i := range tp.work {
		if other, dup := held[i]; dup {
			return fmt.Errorf("unique constraint: index %d of parent %q held by both %q and %q", i, parent, other, c)
		}
		held[i] = c
	}
	return nil
}

func relationsOf(parent string, byChild map[string]int) []Relation {
	rels := make([]Relation, 0, len(byChild))
	for c, i := range byChild {
		rels = append(rels, Relation{Parent: parent, Child: c, Index: i})
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i].Index < rels[j].Index })
	return rels
}
