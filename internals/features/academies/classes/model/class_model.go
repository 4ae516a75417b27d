package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassId uuid.UUID `gorm:"type:uuid;primaryKey;column:class_id" json:"class_id"`

	ClassAcademyId uuid.UUID `gorm:"type:uuid;not null;index;column:class_academy_id" json:"class_academy_id"`

	ClassName     string `gorm:"not null;column:class_name" json:"class_name"`
	ClassCapacity int    `gorm:"not null;default:0;column:class_capacity" json:"class_capacity"`
	ClassSchedule string `gorm:"column:class_schedule" json:"class_schedule"`

	// Instructor pemilik kelas. Data lama kadang hanya menyimpan kontak,
	// bukan id kanonik — lihat fallback matching di RosterService.
	ClassInstructorId      *uuid.UUID `gorm:"type:uuid;column:class_instructor_id" json:"class_instructor_id,omitempty"`
	ClassInstructorContact string     `gorm:"column:class_instructor_contact" json:"class_instructor_contact"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt *time.Time     `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at,omitempty"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassId == uuid.Nil {
		m.ClassId = uuid.New()
	}
	return nil
}
