// file: internals/features/academies/classes/service/roster_service.go
package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/academies/classes/model"
	helperAuth "gymku_backend/internals/helpers/auth"
)

// RosterService adalah sisi baca kelas + siswa. Ledger dan session manager
// tidak pernah menulis ke tabel di sini.
type RosterService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *RosterService { return &RosterService{DB: db} }

// ClassesForInstructor mengembalikan kelas milik instructor.
//
// Match utama by class_instructor_id; fallback by contact string adalah
// akomodasi data lama yang belum di-backfill id kanonik (kebijakan sadar,
// bukan bug). Kandidat untuk dipensiunkan setelah backfill tuntas.
func (s *RosterService) ClassesForInstructor(scope helperAuth.TenantScope, instructorID uuid.UUID, instructorContact string) ([]model.ClassModel, error) {
	q := s.DB.
		Where("class_academy_id = ?", scope.AcademyID)

	contact := strings.TrimSpace(instructorContact)
	if contact != "" {
		q = q.Where("class_instructor_id = ? OR LOWER(class_instructor_contact) = LOWER(?)", instructorID, contact)
	} else {
		q = q.Where("class_instructor_id = ?", instructorID)
	}

	var rows []model.ClassModel
	if err := q.Order("class_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ClassIDsForInstructor: varian ringan untuk query service attendance.
func (s *RosterService) ClassIDsForInstructor(scope helperAuth.TenantScope, instructorID uuid.UUID, instructorContact string) ([]uuid.UUID, error) {
	rows, err := s.ClassesForInstructor(scope, instructorID, instructorContact)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ClassId)
	}
	return ids, nil
}

func (s *RosterService) GetClass(scope helperAuth.TenantScope, classID uuid.UUID) (*model.ClassModel, error) {
	var m model.ClassModel
	err := s.DB.
		Where("class_academy_id = ? AND class_id = ?", scope.AcademyID, classID).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// EligibleStudents mengembalikan siswa aktif satu academy, opsional filter
// substring case-insensitive pada nama/kontak. Ukuran gym real-world masih
// wajar dikembalikan penuh; limit/offset tetap tersedia untuk tampilan.
func (s *RosterService) EligibleStudents(scope helperAuth.TenantScope, search string, limit, offset int) ([]model.StudentModel, int64, error) {
	q := s.DB.Model(&model.StudentModel{}).
		Where("student_academy_id = ? AND student_active = ?", scope.AcademyID, true)

	if needle := strings.TrimSpace(search); needle != "" {
		like := "%" + strings.ToLower(needle) + "%"
		q = q.Where("LOWER(student_name) LIKE ? OR LOWER(student_contact) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var rows []model.StudentModel
	if err := q.Order("student_name ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// StudentsByIDs dipakai Ledger untuk denormalisasi nama saat batch check-in.
func (s *RosterService) StudentsByIDs(scope helperAuth.TenantScope, ids []uuid.UUID) (map[uuid.UUID]model.StudentModel, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]model.StudentModel{}, nil
	}
	var rows []model.StudentModel
	err := s.DB.
		Where("student_academy_id = ? AND student_id IN ?", scope.AcademyID, ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]model.StudentModel, len(rows))
	for _, r := range rows {
		out[r.StudentId] = r
	}
	return out, nil
}
