package college

import (
	"context"
	"fmt"
	"time"

	"github.com/NovaUNL/Supernova-sub001/core/cache"
	"github.com/NovaUNL/Supernova-sub001/core/ordering"
	"github.com/NovaUNL/Supernova-sub001/feature/college/models"
	synopsismodels "github.com/NovaUNL/Supernova-sub001/feature/synopses/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ClassSectionsSpec maps the class→sections relation kind onto its table.
var ClassSectionsSpec = ordering.RelationSpec{
	Kind:         "class-sections",
	Table:        "class_sections",
	ParentColumn: "class_id",
	ChildColumn:  "section_id",
	IndexColumn:  "position",
}

// NewClassSections builds the reconciler for class→sections ordering.
func NewClassSections(db *gorm.DB) *ordering.Reconciler {
	return ordering.New(ordering.NewGormStore(db, ClassSectionsSpec))
}

// Service handles the ordering of synopsis sections within classes.
type Service struct {
	logger   *zap.Logger
	db       *gorm.DB
	sections *ordering.Reconciler
	listings *cache.Cache[[]ordering.Relation]
}

// NewService creates a new college service.
func NewService(logger *zap.Logger, db *gorm.DB, cacheTTL time.Duration) *Service {
	return &Service{
		logger:   logger,
		db:       db,
		sections: NewClassSections(db),
		listings: cache.New[[]ordering.Relation](cacheTTL),
	}
}

// ClassSections returns the ordered sections of a class.
func (s *Service) ClassSections(ctx context.Context, classID string) ([]ordering.Relation, error) {
	if err := s.checkClass(ctx, classID); err != nil {
		return nil, err
	}
	return s.listings.GetOrLoad(ctx, "class:"+classID, func(ctx context.Context) ([]ordering.Relation, error) {
		return s.sections.ReadOrdered(ctx, classID)
	})
}

// ReplaceClassSections replaces the whole ordering of a class's sections.
func (s *Service) ReplaceClassSections(ctx context.Context, classID string, entries []ordering.Entry, confirmEmpty bool) ([]ordering.Relation, error) {
	if err := s.checkClass(ctx, classID); err != nil {
		return nil, err
	}
	if err := s.checkSections(ctx, entries); err != nil {
		return nil, err
	}
	rels, err := s.sections.ReplaceAll(ctx, classID, entries, ordering.ReplaceOptions{ConfirmEmpty: confirmEmpty})
	if err != nil {
		return nil, err
	}
	s.listings.Invalidate("class:" + classID)
	return rels, nil
}

// AppendClassSection attaches a section at the end of a class's ordering.
func (s *Service) AppendClassSection(ctx context.Context, classID, sectionID string) (ordering.Relation, bool, error) {
	if err := s.checkClass(ctx, classID); err != nil {
		return ordering.Relation{}, false, err
	}
	if err := s.checkSections(ctx, []ordering.Entry{{Child: sectionID}}); err != nil {
		return ordering.Relation{}, false, err
	}
	rel, created, err := s.sections.Append(ctx, classID, sectionID)
	if err != nil {
		return ordering.Relation{}, false, err
	}
	if created {
		s.listings.Invalidate("class:" + classID)
	}
	return rel, created, nil
}

// RemoveClassSection detaches a section from a class's ordering.
func (s *Service) RemoveClassSection(ctx context.Context, classID, sectionID string) error {
	if err := s.checkClass(ctx, classID); err != nil {
		return err
	}
	if err := s.sections.Remove(ctx, classID, sectionID); err != nil {
		return err
	}
	s.listings.Invalidate("class:" + classID)
	return nil
}

// checkClass verifies the class exists before the core is invoked.
func (s *Service) checkClass(ctx context.Context, classID string) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.CollegeClass{}).Where("id = ?", classID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to look up class: %w", err)
	}
	if n == 0 {
		return ordering.NewNotFound(classID, "")
	}
	return nil
}

// checkSections verifies every referenced synopsis section exists, reporting
// the first missing id.
func (s *Service) checkSections(ctx context.Context, entries []ordering.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	unique := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !seen[e.Child] {
			seen[e.Child] = true
			unique = append(unique, e.Child)
		}
	}
	var found []string
	if err := s.db.WithContext(ctx).Model(&synopsismodels.SynopsisSection{}).Where("id IN ?", unique).Pluck("id", &found).Error; err != nil {
		return fmt.Errorf("failed to look up sections: %w", err)
	}
	if len(found) == len(unique) {
		return nil
	}
	exists := make(map[string]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}
	for _, id := range unique {
		if !exists[id] {
			return ordering.NewNotFound("", id)
		}
	}
	return nil
}
