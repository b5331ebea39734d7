package college_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NovaUNL/Supernova-sub001/core/database"
	"github.com/NovaUNL/Supernova-sub001/core/ordering"
	"github.com/NovaUNL/Supernova-sub001/feature/college"
	"github.com/NovaUNL/Supernova-sub001/feature/college/models"
	synopsismodels "github.com/NovaUNL/Supernova-sub001/feature/synopses/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupService(t *testing.T) *college.Service {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, synopsismodels.Migrate(db))
	assert.NoError(t, models.Migrate(db))

	assert.NoError(t, db.Create(&models.CollegeClass{ID: "analysis-1", Name: "Mathematical Analysis I"}).Error)
	for _, s := range []synopsismodels.SynopsisSection{
		{ID: "limits", Title: "Limits"},
		{ID: "derivatives", Title: "Derivatives"},
		{ID: "integrals", Title: "Integrals"},
	} {
		assert.NoError(t, db.Create(&s).Error)
	}

	return college.NewService(zap.NewNop(), db, time.Minute)
}

func entries(children ...string) []ordering.Entry {
	out := make([]ordering.Entry, len(children))
	for i, c := range children {
		out[i] = ordering.Entry{Index: i, Child: c}
	}
	return out
}

func TestReplaceAndListClassSections(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	rels, err := svc.ReplaceClassSections(ctx, "analysis-1", entries("limits", "derivatives"), false)
	assert.NoError(t, err)
	assert.Equal(t, []ordering.Relation{
		{Parent: "analysis-1", Child: "limits", Index: 0},
		{Parent: "analysis-1", Child: "derivatives", Index: 1},
	}, rels)

	listed, err := svc.ClassSections(ctx, "analysis-1")
	assert.NoError(t, err)
	assert.Equal(t, rels, listed)
}

func TestReplaceClassSectionsUnknownClass(t *testing.T) {
	svc := setupService(t)

	_, err := svc.ReplaceClassSections(context.Background(), "physics-1", entries("limits"), false)
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))
}

func TestReplaceClassSectionsUnknownSection(t *testing.T) {
	svc := setupService(t)

	_, err := svc.ReplaceClassSections(context.Background(), "analysis-1", entries("series"), false)
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))
}

func TestAppendAndRemoveClassSection(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	rel, created, err := svc.AppendClassSection(ctx, "analysis-1", "limits")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 0, rel.Index)

	_, created, err = svc.AppendClassSection(ctx, "analysis-1", "limits")
	assert.NoError(t, err)
	assert.False(t, created)

	_, created, err = svc.AppendClassSection(ctx, "analysis-1", "integrals")
	assert.NoError(t, err)
	assert.True(t, created)

	assert.NoError(t, svc.RemoveClassSection(ctx, "analysis-1", "limits"))

	rels, err := svc.ClassSections(ctx, "analysis-1")
	assert.NoError(t, err)
	assert.Equal(t, []ordering.Relation{
		{Parent: "analysis-1", Child: "integrals", Index: 0},
	}, rels)

	err = svc.RemoveClassSection(ctx, "analysis-1", "limits")
	assert.Equal(t, ordering.KindNotFound, ordering.KindOf(err))
}

func TestClassSectionsHTTP(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, synopsismodels.Migrate(db))
	assert.NoError(t, models.Migrate(db))
	assert.NoError(t, db.Create(&models.CollegeClass{ID: "analysis-1", Name: "Mathematical Analysis I"}).Error)
	assert.NoError(t, db.Create(&synopsismodels.SynopsisSection{ID: "limits", Title: "Limits"}).Error)

	app := fiber.New()
	feature := college.NewFeature(zap.NewNop(), db, time.Minute)
	assert.NoError(t, feature.Load(app))

	req := httptest.NewRequest("PUT", "/college/classes/analysis-1/sections",
		strings.NewReader(`[{"index":0,"id":"limits"}]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/college/classes/analysis-1/sections", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/college/classes/physics-1/sections", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
