package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MethodManual = "manual"
	MethodBatch  = "batch"
	MethodScan   = "scan"
)

// AttendanceRecordModel adalah satu kehadiran siswa di satu kelas pada satu
// hari kalender (lokal academy). Tuple (academy, class, student, day) unik —
// ditegakkan index uq_attendance_records_day di storage. Baris tidak pernah
// diubah setelah dibuat; koreksi bukan urusan modul ini.
type AttendanceRecordModel struct {
	AttendanceRecordId uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordAcademyId uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_academy_id" json:"attendance_record_academy_id"`
	AttendanceRecordClassId   uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_class_id" json:"attendance_record_class_id"`
	AttendanceRecordStudentId uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_student_id" json:"attendance_record_student_id"`

	// denormalisasi untuk tampilan list tanpa join
	AttendanceRecordStudentName string `gorm:"not null;column:attendance_record_student_name" json:"attendance_record_student_name"`

	AttendanceRecordDay datatypes.Date `gorm:"not null;column:attendance_record_day" json:"attendance_record_day"`

	AttendanceRecordMethod     string    `gorm:"not null;default:'manual';column:attendance_record_method" json:"attendance_record_method"`
	AttendanceRecordRecordedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_recorded_by" json:"attendance_record_recorded_by"`
	AttendanceRecordRecordedAt time.Time `gorm:"column:attendance_record_recorded_at;autoCreateTime" json:"attendance_record_recorded_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordId == uuid.Nil {
		m.AttendanceRecordId = uuid.New()
	}
	return nil
}
