package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// ClassSessionModel adalah satu jendela check-in untuk satu kelas.
// Maksimal satu yang aktif per (academy, class) — ditegakkan partial unique
// index uq_class_sessions_active, bukan pengecekan aplikasi.
type ClassSessionModel struct {
	ClassSessionId uuid.UUID `gorm:"type:uuid;primaryKey;column:class_session_id" json:"class_session_id"`

	ClassSessionAcademyId uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_academy_id" json:"class_session_academy_id"`
	ClassSessionClassId   uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_class_id" json:"class_session_class_id"`
	ClassSessionClassName string    `gorm:"not null;column:class_session_class_name" json:"class_session_class_name"`

	ClassSessionOpenedBy uuid.UUID `gorm:"type:uuid;not null;column:class_session_opened_by" json:"class_session_opened_by"`

	ClassSessionStatus string `gorm:"not null;default:'active';column:class_session_status" json:"class_session_status"`

	// Hanya bertambah selama aktif; increment atomik dari Ledger.
	ClassSessionLiveCount int `gorm:"not null;default:0;column:class_session_live_count" json:"class_session_live_count"`

	ClassSessionOpenedAt time.Time  `gorm:"column:class_session_opened_at;autoCreateTime" json:"class_session_opened_at"`
	ClassSessionClosedAt *time.Time `gorm:"column:class_session_closed_at" json:"class_session_closed_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

func (m *ClassSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSessionId == uuid.Nil {
		m.ClassSessionId = uuid.New()
	}
	return nil
}
