// file: internals/features/attendance/sessions/service/session_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymku_backend/internals/events"
	"gymku_backend/internals/features/attendance/sessions/model"
	helperAuth "gymku_backend/internals/helpers/auth"
)

var (
	ErrSessionAlreadyActive = errors.New("sesi untuk kelas ini masih aktif")
	ErrSessionNotFound      = errors.New("sesi tidak ditemukan")
	ErrSessionAlreadyClosed = errors.New("sesi sudah ditutup")
)

type SessionService struct {
	DB  *gorm.DB
	Bus *events.Bus
}

func New(db *gorm.DB) *SessionService {
	return &SessionService{DB: db, Bus: events.Default}
}

// Open membuka sesi check-in untuk satu kelas. Insert memakai
// ON CONFLICT DO NOTHING terhadap partial unique index; 0 row berarti
// sudah ada sesi aktif — tanpa read-then-write.
func (s *SessionService) Open(scope helperAuth.TenantScope, classID uuid.UUID, className string, instructorID uuid.UUID) (*model.ClassSessionModel, error) {
	m := model.ClassSessionModel{
		ClassSessionAcademyId: scope.AcademyID,
		ClassSessionClassId:   classID,
		ClassSessionClassName: className,
		ClassSessionOpenedBy:  instructorID,
		ClassSessionStatus:    model.SessionStatusActive,
		ClassSessionLiveCount: 0,
	}

	res := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrSessionAlreadyActive
	}

	s.Bus.Publish(events.Event{
		Topic:     events.TopicAttendance,
		Kind:      "session_opened",
		AcademyID: scope.AcademyID,
		Payload:   m.ClassSessionId,
	})
	return &m, nil
}

// Close menyelesaikan sesi. Satu UPDATE kondisional; status check yang
// menolak close kedua, bukan lock.
func (s *SessionService) Close(scope helperAuth.TenantScope, sessionID, actorID uuid.UUID) (*model.ClassSessionModel, error) {
	now := time.Now()
	res := s.DB.Model(&model.ClassSessionModel{}).
		Where("class_session_academy_id = ? AND class_session_id = ? AND class_session_status = ?",
			scope.AcademyID, sessionID, model.SessionStatusActive).
		Updates(map[string]any{
			"class_session_status":    model.SessionStatusCompleted,
			"class_session_closed_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// bedakan: tidak ada vs sudah completed
		var existing model.ClassSessionModel
		err := s.DB.
			Where("class_session_academy_id = ? AND class_session_id = ?", scope.AcademyID, sessionID).
			Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrSessionAlreadyClosed
	}

	out, err := s.GetByID(scope, sessionID)
	if err != nil {
		return nil, err
	}

	s.Bus.Publish(events.Event{
		Topic:     events.TopicAttendance,
		Kind:      "session_closed",
		AcademyID: scope.AcademyID,
		Payload:   sessionID,
	})
	return out, nil
}

func (s *SessionService) GetByID(scope helperAuth.TenantScope, sessionID uuid.UUID) (*model.ClassSessionModel, error) {
	var m model.ClassSessionModel
	err := s.DB.
		Where("class_session_academy_id = ? AND class_session_id = ?", scope.AcademyID, sessionID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ActiveForClass dipakai Ledger: boleh nil kalau tidak ada sesi aktif.
func (s *SessionService) ActiveForClass(scope helperAuth.TenantScope, classID uuid.UUID) (*model.ClassSessionModel, error) {
	var m model.ClassSessionModel
	err := s.DB.
		Where("class_session_academy_id = ? AND class_session_class_id = ? AND class_session_status = ?",
			scope.AcademyID, classID, model.SessionStatusActive).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListActive mengembalikan sesi aktif; instructorID uuid.Nil berarti semua.
func (s *SessionService) ListActive(scope helperAuth.TenantScope, instructorID uuid.UUID) ([]model.ClassSessionModel, error) {
	q := s.DB.
		Where("class_session_academy_id = ? AND class_session_status = ?",
			scope.AcademyID, model.SessionStatusActive)
	if instructorID != uuid.Nil {
		q = q.Where("class_session_opened_by = ?", instructorID)
	}

	var rows []model.ClassSessionModel
	if err := q.Order("class_session_opened_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// History: sesi completed terbaru, untuk layar riwayat.
func (s *SessionService) History(scope helperAuth.TenantScope, limit, offset int) ([]model.ClassSessionModel, int64, error) {
	q := s.DB.Model(&model.ClassSessionModel{}).
		Where("class_session_academy_id = ? AND class_session_status = ?",
			scope.AcademyID, model.SessionStatusCompleted)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ClassSessionModel
	if err := q.Order("class_session_closed_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// IncrementLiveCount menaikkan live counter sesi aktif secara atomik di
// storage (`live_count = live_count + 1`) — bukan read-modify-write.
// Return false kalau tidak ada sesi aktif untuk kelas itu.
func (s *SessionService) IncrementLiveCount(db *gorm.DB, scope helperAuth.TenantScope, classID uuid.UUID) (bool, error) {
	if db == nil {
		db = s.DB
	}
	res := db.Model(&model.ClassSessionModel{}).
		Where("class_session_academy_id = ? AND class_session_class_id = ? AND class_session_status = ?",
			scope.AcademyID, classID, model.SessionStatusActive).
		UpdateColumn("class_session_live_count", gorm.Expr("class_session_live_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
