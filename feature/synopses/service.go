package synopses

import (
	"context"
	"fmt"
	"time"

	"github.com/NovaUNL/Supernova-sub001/core/cache"
	"github.com/NovaUNL/Supernova-sub001/core/ordering"
	"github.com/NovaUNL/Supernova-sub001/core/storage"
	"github.com/NovaUNL/Supernova-sub001/feature/synopses/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TopicSectionsSpec maps the topic→sections relation kind onto its table.
var TopicSectionsSpec = ordering.RelationSpec{
	Kind:         "topic-sections",
	Table:        "synopsis_topic_sections",
	ParentColumn: "topic_id",
	ChildColumn:  "section_id",
	IndexColumn:  "position",
}

// SectionChildrenSpec maps the section→subsections relation kind onto its
// table. Parent and child ids share the sections id space.
var SectionChildrenSpec = ordering.RelationSpec{
	Kind:         "section-children",
	Table:        "synopsis_section_children",
	ParentColumn: "parent_id",
	ChildColumn:  "child_id",
	IndexColumn:  "position",
}

// NewTopicSections builds the reconciler for topic→sections ordering.
func NewTopicSections(db *gorm.DB) *ordering.Reconciler {
	return ordering.New(ordering.NewGormStore(db, TopicSectionsSpec))
}

// NewSectionChildren builds the reconciler for section→subsections
// ordering, with the self-reference check a self-referencing hierarchy
// needs.
func NewSectionChildren(db *gorm.DB) *ordering.Reconciler {
	return ordering.New(ordering.NewGormStore(db, SectionChildrenSpec), ordering.WithSelfReferenceCheck())
}

// Service handles synopses ordering and section documents.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	db       *gorm.DB
	topics   *ordering.Reconciler
	children *ordering.Reconciler
	listings *cache.Cache[[]ordering.Relation]
}

// NewService creates a new synopses service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cacheTTL time.Duration) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		db:       db,
		topics:   NewTopicSections(db),
		children: NewSectionChildren(db),
		listings: cache.New[[]ordering.Relation](cacheTTL),
	}
}

// TopicSections returns the ordered sections of a topic.
func (s *Service) TopicSections(ctx context.Context, topicID string) ([]ordering.Relation, error) {
	if err := s.checkTopic(ctx, topicID); err != nil {
		return nil, err
	}
	return s.listings.GetOrLoad(ctx, "topic:"+topicID, func(ctx context.Context) ([]ordering.Relation, error) {
		return s.topics.ReadOrdered(ctx, topicID)
	})
}

// ReplaceTopicSections replaces the whole ordering of a topic's sections.
func (s *Service) ReplaceTopicSections(ctx context.Context, topicID string, entries []ordering.Entry, confirmEmpty bool) ([]ordering.Relation, error) {
	if err := s.checkTopic(ctx, topicID); err != nil {
		return nil, err
	}
	if err := s.checkSections(ctx, entryChildren(entries)); err != nil {
		return nil, err
	}
	rels, err := s.topics.ReplaceAll(ctx, topicID, entries, ordering.ReplaceOptions{ConfirmEmpty: confirmEmpty})
	if err != nil {
		return nil, err
	}
	s.listings.Invalidate("topic:" + topicID)
	return rels, nil
}

// AppendTopicSection attaches a section at the end of a topic's ordering.
func (s *Service) AppendTopicSection(ctx context.Context, topicID, sectionID string) (ordering.Relation, bool, error) {
	if err := s.checkTopic(ctx, topicID); err != nil {
		return ordering.Relation{}, false, err
	}
	if err := s.checkSections(ctx, []string{sectionID}); err != nil {
		return ordering.Relation{}, false, err
	}
	rel, created, err := s.topics.Append(ctx, topicID, sectionID)
	if err != nil {
		return ordering.Relation{}, false, err
	}
	if created {
		s.listings.Invalidate("topic:" + topicID)
	}
	return rel, created, nil
}

// RemoveTopicSection detaches a section from a topic's ordering.
func (s *Service) RemoveTopicSection(ctx context.Context, topicID, sectionID string) error {
	if err := s.checkTopic(ctx, topicID); err != nil {
		return err
	}
	if err := s.topics.Remove(ctx, topicID, sectionID); err != nil {
		return err
	}
	s.listings.Invalidate("topic:" + topicID)
	return nil
}

// SectionChildren returns the ordered subsections of a section.
func (s *Service) SectionChildren(ctx context.Context, sectionID string) ([]ordering.Relation, error) {
	if err := s.checkSections(ctx, []string{sectionID}); err != nil {
		return nil, err
	}
	return s.listings.GetOrLoad(ctx, "section:"+sectionID, func(ctx context.Context) ([]ordering.Relation, error) {
		return s.children.ReadOrdered(ctx, sectionID)
	})
}

// ReplaceSectionChildren replaces the whole ordering of a section's
// subsections.
func (s *Service) ReplaceSectionChildren(ctx context.Context, sectionID string, entries []ordering.Entry, confirmEmpty bool) ([]ordering.Relation, error) {
	if err := s.checkSections(ctx, append(entryChildren(entries), sectionID)); err != nil {
		return nil, err
	}
	rels, err := s.children.ReplaceAll(ctx, sectionID, entries, ordering.ReplaceOptions{ConfirmEmpty: confirmEmpty})
	if err != nil {
		return nil, err
	}
	s.listings.Invalidate("section:" + sectionID)
	return rels, nil
}

// AppendSectionChild attaches a subsection at the end of a section's
// ordering.
func (s *Service) AppendSectionChild(ctx context.Context, sectionID, childID string) (ordering.Relation, bool, error) {
	if err := s.checkSections(ctx, []string{sectionID, childID}); err != nil {
		return ordering.Relation{}, false, err
	}
	rel, created, err := s.children.Append(ctx, sectionID, childID)
	if err != nil {
		return ordering.Relation{}, false, err
	}
	if created {
		s.listings.Invalidate("section:" + sectionID)
	}
	return rel, created, nil
}

// RemoveSectionChild detaches a subsection from a section's ordering.
func (s *Service) RemoveSectionChild(ctx context.Context, sectionID, childID string) error {
	if err := s.checkSections(ctx, []string{sectionID}); err != nil {
		return err
	}
	if err := s.children.Remove(ctx, sectionID, childID); err != nil {
		return err
	}
	s.listings.Invalidate("section:" + sectionID)
	return nil
}

// checkTopic verifies the topic exists before the core is invoked.
func (s *Service) checkTopic(ctx context.Context, topicID string) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.SynopsisTopic{}).Where("id = ?", topicID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to look up topic: %w", err)
	}
	if n == 0 {
		return ordering.NewNotFound(topicID, "")
	}
	return nil
}

// checkSections verifies every referenced section exists, reporting the
// first missing id.
func (s *Service) checkSections(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	var found []string
	if err := s.db.WithContext(ctx).Model(&models.SynopsisSection{}).Where("id IN ?", unique).Pluck("id", &found).Error; err != nil {
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

func entryChildren(entries []ordering.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Child
	}
	return out
}
