// file: internals/features/attendance/records/dto/records_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "gymku_backend/internals/features/attendance/records/model"
	"gymku_backend/internals/features/attendance/records/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateCheckInRequest struct {
	AttendanceRecordClassId   uuid.UUID `json:"attendance_record_class_id" validate:"required"`
	AttendanceRecordStudentId uuid.UUID `json:"attendance_record_student_id" validate:"required"`
}

// Scan: QR reader cuma menghasilkan identifier siswa; bentuk request sama,
// method dipaksa "scan" oleh controller.
type ScanCheckInRequest struct {
	AttendanceRecordClassId   uuid.UUID `json:"attendance_record_class_id" validate:"required"`
	AttendanceRecordStudentId uuid.UUID `json:"attendance_record_student_id" validate:"required"`
}

type BatchCheckInRequest struct {
	AttendanceRecordClassId    uuid.UUID   `json:"attendance_record_class_id" validate:"required"`
	AttendanceRecordStudentIds []uuid.UUID `json:"attendance_record_student_ids" validate:"required,min=1,max=500"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceRecordResponse struct {
	AttendanceRecordId          uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordAcademyId   uuid.UUID `json:"attendance_record_academy_id"`
	AttendanceRecordClassId     uuid.UUID `json:"attendance_record_class_id"`
	AttendanceRecordStudentId   uuid.UUID `json:"attendance_record_student_id"`
	AttendanceRecordStudentName string    `json:"attendance_record_student_name"`
	AttendanceRecordDay         time.Time `json:"attendance_record_day"`
	AttendanceRecordMethod      string    `json:"attendance_record_method"`
	AttendanceRecordRecordedBy  uuid.UUID `json:"attendance_record_recorded_by"`
	AttendanceRecordRecordedAt  time.Time `json:"attendance_record_recorded_at"`
}

// CheckInResponse membungkus outcome single check-in; duplikat bukan error,
// cuma created=false.
type CheckInResponse struct {
	Created bool                     `json:"created"`
	Record  AttendanceRecordResponse `json:"record"`
}

type BatchResultResponse struct {
	Created    []AttendanceRecordResponse `json:"created"`
	Duplicates []uuid.UUID                `json:"duplicates"`
	Failures   []service.BatchItemFailure `json:"failures"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromAttendanceRecordModel(mdl m.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordId:          mdl.AttendanceRecordId,
		AttendanceRecordAcademyId:   mdl.AttendanceRecordAcademyId,
		AttendanceRecordClassId:     mdl.AttendanceRecordClassId,
		AttendanceRecordStudentId:   mdl.AttendanceRecordStudentId,
		AttendanceRecordStudentName: mdl.AttendanceRecordStudentName,
		AttendanceRecordDay:         time.Time(mdl.AttendanceRecordDay),
		AttendanceRecordMethod:      mdl.AttendanceRecordMethod,
		AttendanceRecordRecordedBy:  mdl.AttendanceRecordRecordedBy,
		AttendanceRecordRecordedAt:  mdl.AttendanceRecordRecordedAt,
	}
}

func FromAttendanceRecordModels(ms []m.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(ms))
	for _, it := range ms {
		out = append(out, FromAttendanceRecordModel(it))
	}
	return out
}

func FromBatchResult(r service.BatchResult) BatchResultResponse {
	resp := BatchResultResponse{
		Created:    FromAttendanceRecordModels(r.Created),
		Duplicates: r.Duplicates,
		Failures:   r.Failures,
	}
	if resp.Duplicates == nil {
		resp.Duplicates = []uuid.UUID{}
	}
	if resp.Failures == nil {
		resp.Failures = []service.BatchItemFailure{}
	}
	return resp
}
