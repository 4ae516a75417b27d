// file: internals/features/attendance/records/service/query_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gymku_backend/internals/features/attendance/records/model"
	helperAuth "gymku_backend/internals/helpers/auth"
)

// todaysCap: batas tampilan list "hari ini" di layar instructor.
const todaysCap = 200

// TodaysCheckIns: gabungan check-in hari `day` di semua kelas milik
// instructor, terbaru dulu, dibatasi todaysCap.
func (s *LedgerService) TodaysCheckIns(scope helperAuth.TenantScope, instructorID uuid.UUID, instructorContact string, day time.Time) ([]model.AttendanceRecordModel, error) {
	classIDs, err := s.Roster.ClassIDsForInstructor(scope, instructorID, instructorContact)
	if err != nil {
		return nil, err
	}
	if len(classIDs) == 0 {
		return []model.AttendanceRecordModel{}, nil
	}

	var rows []model.AttendanceRecordModel
	err = s.DB.
		Where(`attendance_record_academy_id = ?
		       AND attendance_record_class_id IN ?
		       AND attendance_record_day = ?`,
			scope.AcademyID, classIDs, datatypes.Date(day)).
		Order("attendance_record_recorded_at DESC").
		Limit(todaysCap).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CheckedInStudentIDs dipakai UI untuk menandai roster yang sudah tercatat,
// supaya jalur duplikat Ledger jarang terpakai di happy path. Ledger tetap
// otoritasnya — ini cuma hint tampilan.
func (s *LedgerService) CheckedInStudentIDs(scope helperAuth.TenantScope, classID uuid.UUID, day time.Time) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := s.DB.Model(&model.AttendanceRecordModel{}).
		Where(`attendance_record_academy_id = ?
		       AND attendance_record_class_id = ?
		       AND attendance_record_day = ?`,
			scope.AcademyID, classID, datatypes.Date(day)).
		Pluck("attendance_record_student_id", &ids).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// CountForClassDay: jumlah record satu kelas satu hari (cross-check
// live_count sesi).
func (s *LedgerService) CountForClassDay(scope helperAuth.TenantScope, classID uuid.UUID, day time.Time) (int64, error) {
	var total int64
	err := s.DB.Model(&model.AttendanceRecordModel{}).
		Where(`attendance_record_academy_id = ?
		       AND attendance_record_class_id = ?
		       AND attendance_record_day = ?`,
			scope.AcademyID, classID, datatypes.Date(day)).
		Count(&total).Error
	return total, err
}

// RecentForClass: riwayat check-in satu kelas, terbaru dulu, dengan paging.
func (s *LedgerService) RecentForClass(scope helperAuth.TenantScope, classID uuid.UUID, limit, offset int) ([]model.AttendanceRecordModel, int64, error) {
	q := s.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_academy_id = ? AND attendance_record_class_id = ?",
			scope.AcademyID, classID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.AttendanceRecordModel
	if err := q.Order("attendance_record_recorded_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
