package ordering

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a relational table described by a
// RelationSpec. The table must carry unique indexes over (parent, child)
// and (parent, index); those constraints are the backstop that turns a
// lost race into a failed transaction instead of a silent index collision.
type GormStore struct {
	db   *gorm.DB
	spec RelationSpec
}

// NewGormStore creates a GormStore for one relation kind.
func NewGormStore(db *gorm.DB, spec RelationSpec) *GormStore {
	return &GormStore{db: db, spec: spec}
}

// Spec returns the relation kind mapping this store operates on.
func (s *GormStore) Spec() RelationSpec { return s.spec }

// Update implements Store. It delegates atomicity to the database
// transaction: fn returning an error rolls everything back.
func (s *GormStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx, spec: s.spec})
	})
}

// GetAll implements Store.
func (s *GormStore) GetAll(ctx context.Context, parent string) ([]Relation, error) {
	tx := &gormTx{db: s.db.WithContext(ctx), spec: s.spec}
	return tx.GetAll(ctx, parent)
}

type gormTx struct {
	db   *gorm.DB
	spec RelationSpec
}

// relationRow is the normalized scan target; the SELECT aliases the mapped
// columns onto it so one row type serves every relation kind.
type relationRow struct {
	Parent   string `gorm:"column:parent"`
	Child    string `gorm:"column:child"`
	Position int    `gorm:"column:position"`
}

func (t *gormTx) GetAll(ctx context.Context, parent string) ([]Relation, error) {
	var rows []relationRow
	err := t.db.WithContext(ctx).
		Table(t.spec.Table).
		Select(fmt.Sprintf("%s AS parent, %s AS child, %s AS position",
			t.spec.ParentColumn, t.spec.ChildColumn, t.spec.IndexColumn)).
		Where(t.spec.ParentColumn+" = ?", parent).
		Order("position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read relations: %w", err)
	}
	rels := make([]Relation, len(rows))
	for i, r := range rows {
		rels[i] = Relation{Parent: r.Parent, Child: r.Child, Index: r.Position}
	}
	return rels, nil
}

func (t *gormTx) DeleteAll(ctx context.Context, parent string) error {
	result := t.db.WithContext(ctx).
		Table(t.spec.Table).
		Where(t.spec.ParentColumn+" = ?", parent).
		Delete(nil)
	if result.Error != nil {
		return fmt.Errorf("failed to delete relations: %w", result.Error)
	}
	return nil
}

func (t *gormTx) Delete(ctx context.Context, parent, child string) (bool, error) {
	result := t.db.WithContext(ctx).
		Table(t.spec.Table).
		Where(t.spec.ParentColumn+" = ? AND "+t.spec.ChildColumn+" = ?", parent, child).
		Delete(nil)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete relation: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (t *gormTx) InsertMany(ctx context.Context, rels []Relation) error {
	if len(rels) == 0 {
		return nil
	}
	rows := make([]map[string]any, len(rels))
	for i, rel := range rels {
		rows[i] = map[string]any{
			t.spec.ParentColumn: rel.Parent,
			t.spec.ChildColumn:  rel.Child,
			t.spec.IndexColumn:  rel.Index,
		}
	}
	if err := t.db.WithContext(ctx).Table(t.spec.Table).Create(rows).Error; err != nil {
		return fmt.Errorf("failed to insert relations: %w", err)
	}
	return nil
}

// UpdateIndices applies the moves one statement at a time in ascending
// target-index order. After the delete that precedes a shift-down, every
// target slot is vacated by the time its statement runs, so the unique
// (parent, index) key is never violated mid-flight.
func (t *gormTx) UpdateIndices(ctx context.Context, parent string, updates map[string]int) error {
	type move struct {
		child string
		index int
	}
	moves := make([]move, 0, len(updates))
	for child, idx := range updates {
		moves = append(moves, move{child: child, index: idx})
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].index < moves[j].index })

	for _, m := range moves {
		result := t.db.WithContext(ctx).
			Table(t.spec.Table).
			Where(t.spec.ParentColumn+" = ? AND "+t.spec.ChildColumn+" = ?", parent, m.child).
			Update(t.spec.IndexColumn, m.index)
		if result.Error != nil {
			return fmt.Errorf("failed to move %q to index %d: %w", m.child, m.index, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("no relation %q/%q to move", parent, m.child)
		}
	}
	return nil
}
