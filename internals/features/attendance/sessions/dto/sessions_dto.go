// file: internals/features/attendance/sessions/dto/sessions_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "gymku_backend/internals/features/attendance/sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type OpenClassSessionRequest struct {
	ClassSessionClassId uuid.UUID `json:"class_session_class_id" validate:"required"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ClassSessionResponse struct {
	ClassSessionId        uuid.UUID  `json:"class_session_id"`
	ClassSessionAcademyId uuid.UUID  `json:"class_session_academy_id"`
	ClassSessionClassId   uuid.UUID  `json:"class_session_class_id"`
	ClassSessionClassName string     `json:"class_session_class_name"`
	ClassSessionOpenedBy  uuid.UUID  `json:"class_session_opened_by"`
	ClassSessionStatus    string     `json:"class_session_status"`
	ClassSessionLiveCount int        `json:"class_session_live_count"`
	ClassSessionOpenedAt  time.Time  `json:"class_session_opened_at"`
	ClassSessionClosedAt  *time.Time `json:"class_session_closed_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromClassSessionModel(mdl m.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		ClassSessionId:        mdl.ClassSessionId,
		ClassSessionAcademyId: mdl.ClassSessionAcademyId,
		ClassSessionClassId:   mdl.ClassSessionClassId,
		ClassSessionClassName: mdl.ClassSessionClassName,
		ClassSessionOpenedBy:  mdl.ClassSessionOpenedBy,
		ClassSessionStatus:    mdl.ClassSessionStatus,
		ClassSessionLiveCount: mdl.ClassSessionLiveCount,
		ClassSessionOpenedAt:  mdl.ClassSessionOpenedAt,
		ClassSessionClosedAt:  mdl.ClassSessionClosedAt,
	}
}

func FromClassSessionModels(ms []m.ClassSessionModel) []ClassSessionResponse {
	out := make([]ClassSessionResponse, 0, len(ms))
	for _, it := range ms {
		out = append(out, FromClassSessionModel(it))
	}
	return out
}
