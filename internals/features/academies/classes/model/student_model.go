package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentId uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	StudentAcademyId uuid.UUID `gorm:"type:uuid;not null;index;column:student_academy_id" json:"student_academy_id"`

	StudentName    string `gorm:"not null;column:student_name" json:"student_name"`
	StudentContact string `gorm:"column:student_contact" json:"student_contact"`
	StudentActive  bool   `gorm:"not null;default:true;column:student_active" json:"student_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentId == uuid.Nil {
		m.StudentId = uuid.New()
	}
	return nil
}
