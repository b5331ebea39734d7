package ordering

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *MemStore, parent string, childIDs ...string) {
	t.Helper()
	rels := make([]Relation, len(childIDs))
	for i, c := range childIDs {
		rels[i] = Relation{Parent: parent, Child: c, Index: i}
	}
	err := s.Update(context.Background(), func(tx Tx) error {
		return tx.InsertMany(context.Background(), rels)
	})
	require.NoError(t, err)
}

func TestMemStoreRollbackOnError(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	seed(t, s, "p", "a", "b")

	boom := errors.New("boom")
	err := s.Update(ctx, func(tx Tx) error {
		if err := tx.DeleteAll(ctx, "p"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	rels, err := s.GetAll(ctx, "p")
	require.NoError(t, err)
	assert.Len(t, rels, 2, "failed transaction must leave no trace")
}

func TestMemStoreInsertManyEnforcesUniqueness(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	seed(t, s, "p", "a")

	err := s.Update(ctx, func(tx Tx) error {
		return tx.InsertMany(ctx, []Relation{{Parent: "p", Child: "a", Index: 5}})
	})
	assert.Error(t, err, "duplicate child must fail")

	err = s.Update(ctx, func(tx Tx) error {
		return tx.InsertMany(ctx, []Relation{{Parent: "p", Child: "b", Index: 0}})
	})
	assert.Error(t, err, "duplicate index must fail")

	rels, err := s.GetAll(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, []Relation{{Parent: "p", Child: "a", Index: 0}}, rels)
}

func TestMemStoreUpdateIndicesRejectsCollisions(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	seed(t, s, "p", "a", "b", "c")

	err := s.Update(ctx, func(tx Tx) error {
		return tx.UpdateIndices(ctx, "p", map[string]int{"c": 0})
	})
	assert.Error(t, err, "moving c onto a's index must fail")

	err = s.Update(ctx, func(tx Tx) error {
		return tx.UpdateIndices(ctx, "p", map[string]int{"ghost": 9})
	})
	assert.Error(t, err, "moving an absent child must fail")
}

func TestMemStoreGetAllSorted(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	err := s.Update(ctx, func(tx Tx) error {
		return tx.InsertMany(ctx, []Relation{
			{Parent: "p", Child: "c", Index: 2},
			{Parent: "p", Child: "a", Index: 0},
			{Parent: "p", Child: "b", Index: 1},
		})
	})
	require.NoError(t, err)

	rels, err := s.GetAll(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, children(rels))
}

func TestMemStoreParentsAreIndependent(t *testing.T) {
	s := NewMemStore()
	r := New(s)
	ctx := context.Background()

	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		parent := fmt.Sprintf("p%d", p)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_, _, err := r.Append(ctx, parent, fmt.Sprintf("c%d", i))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	for p := 0; p < 8; p++ {
		rels, err := s.GetAll(ctx, fmt.Sprintf("p%d", p))
		require.NoError(t, err)
		require.Len(t, rels, 20)
		for i, rel := range rels {
			assert.Equal(t, i, rel.Index)
		}
	}
}
