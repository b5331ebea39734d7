package synopses_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/NovaUNL/Supernova-sub001/core/database"
	"github.com/NovaUNL/Supernova-sub001/core/ordering"
	"github.com/NovaUNL/Supernova-sub001/core/storage/mocks"
	"github.com/NovaUNL/Supernova-sub001/feature/synopses"
	"github.com/NovaUNL/Supernova-sub001/feature/synopses/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testBucket = "synopses"

func setupService(t *testing.T) (*synopses.Service, *mocks.Client) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, models.Migrate(db))

	// Seed a small taxonomy.
	assert.NoError(t, db.Create(&models.SynopsisTopic{ID: "calculus", Name: "Calculus"}).Error)
	for _, s := range []models.SynopsisSection{
		{ID: "limits", Title: "Limits"},
		{ID: "derivatives", Title: "Derivatives"},
		{ID: "integrals", Title: "Integrals"},
		{ID: "chain-rule", Title: "The chain rule"},
	} {
		assert.NoError(t, db.Create(&s).Error)
	}

	client := new(mocks.Client)
	return synopses.NewService(client, testBucket, zap.NewNop(), db, time.Minute), client
}

func entries(children ...string) []ordering.Entry {
	out := make([]ordering.Entry, len(children))
	for i, c := range children {
		out[i] = ordering.Entry{Index: i, Child: c}
	}
	return out
}

func TestReplaceAndListTopicSections(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	// Entries arrive out of declared-index order; positions decide.
	rels, err := svc.ReplaceTopicSections(ctx, "calculus", []ordering.Entry{
		{Index: 2, Child: "integrals"},
		{Index: 0, Child: "limits"},
		{Index: 1, Child: "derivatives"},
	}, false)
	assert.NoError(t, err)
	assert.Equal(t, []ordering.Relation{
		{Parent: "calculus", Child: "limits", Index: 0},
		{Parent: "calculus", Child: "derivatives", Index: 1},
		{Parent: "calculus", Child: "integrals", Index: 2},
	}, rels)

	listed, err := svc.TopicSections(ctx, "calculus")
	assert.NoError(t, err)
	assert.Equal(t, rels, listed)
}

func TestReplaceTopicSectionsUnknownTopic(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ReplaceTopicSections(context.Background(), "algebra", entries("limits"), false)
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))
}

func TestReplaceTopicSectionsUnknownSection(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ReplaceTopicSections(context.Background(), "calculus", entries("limits", "series"), false)
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))

	var oerr *ordering.Error
	assert.ErrorAs(t, err, &oerr)
	assert.Equal(t, "series", oerr.Child)
}

func TestReplaceTopicSectionsEmptyNeedsConfirmation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.ReplaceTopicSections(ctx, "calculus", entries("limits"), false)
	assert.NoError(t, err)

	_, err = svc.ReplaceTopicSections(ctx, "calculus", nil, false)
	assert.Equal(t, ordering.KindEmptyReplace, ordering.KindOf(err))

	rels, err := svc.ReplaceTopicSections(ctx, "calculus", nil, true)
	assert.NoError(t, err)
	assert.Empty(t, rels)
}

func TestAppendTopicSectionIdempotent(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	rel, created, err := svc.AppendTopicSection(ctx, "calculus", "limits")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ordering.Relation{Parent: "calculus", Child: "limits", Index: 0}, rel)

	again, created, err := svc.AppendTopicSection(ctx, "calculus", "limits")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, rel, again)

	rel, created, err = svc.AppendTopicSection(ctx, "calculus", "derivatives")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, rel.Index)
}

func TestAppendTopicSectionUnknownSection(t *testing.T) {
	svc, _ := setupService(t)

	_, _, err := svc.AppendTopicSection(context.Background(), "calculus", "series")
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))
}

func TestRemoveTopicSectionShiftsFollowers(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.ReplaceTopicSections(ctx, "calculus", entries("limits", "derivatives", "integrals"), false)
	assert.NoError(t, err)

	assert.NoError(t, svc.RemoveTopicSection(ctx, "calculus", "derivatives"))

	rels, err := svc.TopicSections(ctx, "calculus")
	assert.NoError(t, err)
	assert.Equal(t, []ordering.Relation{
		{Parent: "calculus", Child: "limits", Index: 0},
		{Parent: "calculus", Child: "integrals", Index: 1},
	}, rels)

	err = svc.RemoveTopicSection(ctx, "calculus", "derivatives")
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))
}

func TestListingCacheInvalidatedByWrites(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.ReplaceTopicSections(ctx, "calculus", entries("limits"), false)
	assert.NoError(t, err)

	// Prime the cache, then write through the service. The next read must
	// reflect the write even though the TTL has not expired.
	rels, err := svc.TopicSections(ctx, "calculus")
	assert.NoError(t, err)
	assert.Len(t, rels, 1)

	_, _, err = svc.AppendTopicSection(ctx, "calculus", "derivatives")
	assert.NoError(t, err)

	rels, err = svc.TopicSections(ctx, "calculus")
	assert.NoError(t, err)
	assert.Len(t, rels, 2)
}

func TestSectionChildrenRejectsSelfReference(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ReplaceSectionChildren(context.Background(), "derivatives", entries("limits", "derivatives"), false)
	assert.Equal(t, ordering.KindMalformedInput, ordering.KindOf(err))
}

func TestSectionChildrenRoundTrip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.ReplaceSectionChildren(ctx, "derivatives", entries("chain-rule"), false)
	assert.NoError(t, err)

	rel, created, err := svc.AppendSectionChild(ctx, "derivatives", "limits")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, rel.Index)

	assert.NoError(t, svc.RemoveSectionChild(ctx, "derivatives", "chain-rule"))

	rels, err := svc.SectionChildren(ctx, "derivatives")
	assert.NoError(t, err)
	assert.Equal(t, []ordering.Relation{
		{Parent: "derivatives", Child: "limits", Index: 0},
	}, rels)
}

func TestSectionChildrenUnknownSection(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.SectionChildren(context.Background(), "series")
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))
}

func TestGetDocument(t *testing.T) {
	svc, client := setupService(t)

	client.On("GetObject", mock.Anything, testBucket, "sections/limits.md", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("# Limits\n"))), nil)

	data, err := svc.GetDocument(context.Background(), "limits")
	assert.NoError(t, err)
	assert.Equal(t, "# Limits\n", string(data))
	client.AssertExpectations(t)
}

func TestGetDocumentUnknownSection(t *testing.T) {
	svc, client := setupService(t)

	_, err := svc.GetDocument(context.Background(), "series")
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))

	// Storage must not be touched for a section that does not exist.
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPutDocument(t *testing.T) {
	svc, client := setupService(t)

	client.On("PutObject", mock.Anything, testBucket, "sections/limits.md", mock.Anything, int64(9), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	assert.NoError(t, svc.PutDocument(context.Background(), "limits", []byte("# Limits\n")))
	client.AssertExpectations(t)
}

func TestDeleteDocument(t *testing.T) {
	svc, client := setupService(t)

	client.On("RemoveObject", mock.Anything, testBucket, "sections/limits.md", mock.Anything).
		Return(nil)

	assert.NoError(t, svc.DeleteDocument(context.Background(), "limits"))
	client.AssertExpectations(t)
}

func TestDocumentStorageFailure(t *testing.T) {
	svc, client := setupService(t)

	client.On("GetObject", mock.Anything, testBucket, "sections/limits.md", mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := svc.GetDocument(context.Background(), "limits")
	assert.Error(t, err)
}
