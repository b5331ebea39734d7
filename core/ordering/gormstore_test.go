package ordering

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var testSpec = RelationSpec{
	Kind:         "topic-sections",
	Table:        "synopsis_topic_sections",
	ParentColumn: "topic_id",
	ChildColumn:  "section_id",
	IndexColumn:  "position",
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func relationRows(rels ...Relation) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"parent", "child", "position"})
	for _, r := range rels {
		rows.AddRow(r.Parent, r.Child, r.Index)
	}
	return rows
}

func TestGormStoreReplaceAll(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db, testSpec)
	r := New(store)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `synopsis_topic_sections` WHERE topic_id = \\?").
		WillReturnRows(relationRows(Relation{Parent: "t1", Child: "old", Index: 0}))
	mock.ExpectExec("DELETE FROM `synopsis_topic_sections` WHERE topic_id = \\?").
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `synopsis_topic_sections`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	_, err := r.ReplaceAll(context.Background(), "t1", []Entry{
		{Index: 0, Child: "a"},
		{Index: 1, Child: "b"},
	}, ReplaceOptions{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreReplaceAllSkipsWriteWhenUnchanged(t *testing.T) {
	db, mock := setupMockDB(t)
	r := New(NewGormStore(db, testSpec))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `synopsis_topic_sections` WHERE topic_id = \\?").
		WillReturnRows(relationRows(
			Relation{Parent: "t1", Child: "a", Index: 0},
			Relation{Parent: "t1", Child: "b", Index: 1},
		))
	mock.ExpectCommit()

	_, err := r.ReplaceAll(context.Background(), "t1", []Entry{
		{Index: 0, Child: "a"},
		{Index: 1, Child: "b"},
	}, ReplaceOptions{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreRemoveShiftsAscending(t *testing.T) {
	db, mock := setupMockDB(t)
	r := New(NewGormStore(db, testSpec))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `synopsis_topic_sections` WHERE topic_id = \\?").
		WillReturnRows(relationRows(
			Relation{Parent: "t1", Child: "a", Index: 0},
			Relation{Parent: "t1", Child: "b", Index: 1},
			Relation{Parent: "t1", Child: "c", Index: 2},
			Relation{Parent: "t1", Child: "d", Index: 3},
		))
	mock.ExpectExec("DELETE FROM `synopsis_topic_sections` WHERE topic_id = \\? AND section_id = \\?").
		WithArgs("t1", "b").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Shifts run in ascending target-index order: c -> 1, then d -> 2.
	mock.ExpectExec("UPDATE `synopsis_topic_sections` SET `position`").
		WithArgs(1, "t1", "c").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `synopsis_topic_sections` SET `position`").
		WithArgs(2, "t1", "d").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.Remove(context.Background(), "t1", "b")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreRollsBackOnInsertFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	r := New(NewGormStore(db, testSpec))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `synopsis_topic_sections` WHERE topic_id = \\?").
		WillReturnRows(relationRows())
	mock.ExpectExec("DELETE FROM `synopsis_topic_sections` WHERE topic_id = \\?").
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO `synopsis_topic_sections`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := r.ReplaceAll(context.Background(), "t1", []Entry{{Index: 0, Child: "a"}}, ReplaceOptions{})
	require.Error(t, err)
	assert.Equal(t, KindReconciliationFailed, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreAppendComputesNextIndex(t *testing.T) {
	db, mock := setupMockDB(t)
	r := New(NewGormStore(db, testSpec))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `synopsis_topic_sections` WHERE topic_id = \\?").
		WillReturnRows(relationRows(
			Relation{Parent: "t1", Child: "a", Index: 0},
			Relation{Parent: "t1", Child: "b", Index: 1},
		))
	mock.ExpectExec("INSERT INTO `synopsis_topic_sections`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rel, created, err := r.Append(context.Background(), "t1", "c")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, rel.Index)
	assert.NoError(t, mock.ExpectationsWereMet())
}
