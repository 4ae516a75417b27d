// file: internals/features/academies/classes/dto/classes_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "gymku_backend/internals/features/academies/classes/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Filter / List students (query)
type FilterEligibleStudentsRequest struct {
	Search *string `query:"search" validate:"omitempty,max=100"`
	Page   *int    `query:"page" validate:"omitempty,min=1"`
	Limit  *int    `query:"limit" validate:"omitempty,min=1,max=500"`
}

type CreateClassRequest struct {
	ClassName     string `json:"class_name" validate:"required,max=120"`
	ClassCapacity int    `json:"class_capacity" validate:"omitempty,min=0,max=1000"`
	ClassSchedule string `json:"class_schedule" validate:"omitempty,max=200"`

	ClassInstructorId      *uuid.UUID `json:"class_instructor_id" validate:"omitempty"`
	ClassInstructorContact string     `json:"class_instructor_contact" validate:"omitempty,max=120"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ClassSummaryResponse struct {
	ClassId        uuid.UUID  `json:"class_id"`
	ClassName      string     `json:"class_name"`
	ClassCapacity  int        `json:"class_capacity"`
	ClassSchedule  string     `json:"class_schedule"`
	ClassInstructorId *uuid.UUID `json:"class_instructor_id,omitempty"`
	ClassCreatedAt time.Time  `json:"class_created_at"`
}

type StudentSummaryResponse struct {
	StudentId      uuid.UUID `json:"student_id"`
	StudentName    string    `json:"student_name"`
	StudentContact string    `json:"student_contact"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateClassRequest) ToModel(academyID uuid.UUID) m.ClassModel {
	return m.ClassModel{
		ClassAcademyId:         academyID,
		ClassName:              r.ClassName,
		ClassCapacity:          r.ClassCapacity,
		ClassSchedule:          r.ClassSchedule,
		ClassInstructorId:      r.ClassInstructorId,
		ClassInstructorContact: r.ClassInstructorContact,
	}
}

func FromClassModel(mdl m.ClassModel) ClassSummaryResponse {
	return ClassSummaryResponse{
		ClassId:           mdl.ClassId,
		ClassName:         mdl.ClassName,
		ClassCapacity:     mdl.ClassCapacity,
		ClassSchedule:     mdl.ClassSchedule,
		ClassInstructorId: mdl.ClassInstructorId,
		ClassCreatedAt:    mdl.ClassCreatedAt,
	}
}

func FromClassModels(ms []m.ClassModel) []ClassSummaryResponse {
	out := make([]ClassSummaryResponse, 0, len(ms))
	for _, it := range ms {
		out = append(out, FromClassModel(it))
	}
	return out
}

func FromStudentModel(mdl m.StudentModel) StudentSummaryResponse {
	return StudentSummaryResponse{
		StudentId:      mdl.StudentId,
		StudentName:    mdl.StudentName,
		StudentContact: mdl.StudentContact,
	}
}

func FromStudentModels(ms []m.StudentModel) []StudentSummaryResponse {
	out := make([]StudentSummaryResponse, 0, len(ms))
	for _, it := range ms {
		out = append(out, FromStudentModel(it))
	}
	return out
}
