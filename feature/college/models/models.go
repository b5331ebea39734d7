package models

import "gorm.io/gorm"

// CollegeClass is one course unit. Classes own an ordered list of synopsis
// sections covering their material.
type CollegeClass struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

// TableName overrides the table name.
func (CollegeClass) TableName() string {
	return "classes"
}

// ClassSectionRelation is one ordered membership of a synopsis section in a
// class. The unique indexes back the ordering core under concurrent writes.
type ClassSectionRelation struct {
	ClassID   string `gorm:"column:class_id;uniqueIndex:uniq_class_section;uniqueIndex:uniq_class_position"`
	SectionID string `gorm:"column:section_id;uniqueIndex:uniq_class_section"`
	Position  int    `gorm:"column:position;uniqueIndex:uniq_class_position"`
}

// TableName overrides the table name.
func (ClassSectionRelation) TableName() string {
	return "class_sections"
}

// Migrate creates or updates the college tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&CollegeClass{},
		&ClassSectionRelation{},
	)
}
