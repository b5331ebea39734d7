package models

import "gorm.io/gorm"

// SynopsisTopic is one node of the synopses taxonomy. Topics own an ordered
// list of sections.
type SynopsisTopic struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

// TableName overrides the table name.
func (SynopsisTopic) TableName() string {
	return "synopsis_topics"
}

// SynopsisSection is one unit of learning material. Sections are attached
// to topics and may contain other sections as ordered subsections; the
// rendered document itself lives in object storage.
type SynopsisSection struct {
	ID    string `gorm:"column:id;primaryKey"`
	Title string `gorm:"column:title"`
}

// TableName overrides the table name.
func (SynopsisSection) TableName() string {
	return "synopsis_sections"
}

// TopicSectionRelation is one ordered membership of a section in a topic.
// Both unique indexes are load-bearing: they are the backstop the ordering
// core relies on under concurrent writes.
type TopicSectionRelation struct {
	TopicID   string `gorm:"column:topic_id;uniqueIndex:uniq_topic_section;uniqueIndex:uniq_topic_position"`
	SectionID string `gorm:"column:section_id;uniqueIndex:uniq_topic_section"`
	Position  int    `gorm:"column:position;uniqueIndex:uniq_topic_position"`
}

// TableName overrides the table name.
func (TopicSectionRelation) TableName() string {
	return "synopsis_topic_sections"
}

// SectionChildRelation is one ordered membership of a section inside a
// containing section. Parent and child ids share one id space, so the
// reconciler for this kind runs with the self-reference check.
type SectionChildRelation struct {
	ParentID string `gorm:"column:parent_id;uniqueIndex:uniq_section_child;uniqueIndex:uniq_section_position"`
	ChildID  string `gorm:"column:child_id;uniqueIndex:uniq_section_child"`
	Position int    `gorm:"column:position;uniqueIndex:uniq_section_position"`
}

// TableName overrides the table name.
func (SectionChildRelation) TableName() string {
	return "synopsis_section_children"
}

// Migrate creates or updates the synopses tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SynopsisTopic{},
		&SynopsisSection{},
		&TopicSectionRelation{},
		&SectionChildRelation{},
	)
}
