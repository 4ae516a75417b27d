package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademyModel struct {
	AcademyId uuid.UUID `gorm:"type:uuid;primaryKey;column:academy_id" json:"academy_id"`

	AcademyName     string `gorm:"not null;column:academy_name" json:"academy_name"`
	AcademySlug     string `gorm:"uniqueIndex;not null;column:academy_slug" json:"academy_slug"`
	AcademyTimezone string `gorm:"not null;default:'Asia/Jakarta';column:academy_timezone" json:"academy_timezone"`

	AcademyCreatedAt time.Time      `gorm:"column:academy_created_at;autoCreateTime" json:"academy_created_at"`
	AcademyUpdatedAt *time.Time     `gorm:"column:academy_updated_at;autoUpdateTime" json:"academy_updated_at,omitempty"`
	AcademyDeletedAt gorm.DeletedAt `gorm:"column:academy_deleted_at;index" json:"academy_deleted_at,omitempty"`
}

func (AcademyModel) TableName() string { return "academies" }

func (m *AcademyModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademyId == uuid.Nil {
		m.AcademyId = uuid.New()
	}
	return nil
}
