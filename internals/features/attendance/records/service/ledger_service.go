// file: internals/features/attendance/records/service/ledger_service.go
package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymku_backend/internals/events"
	rosterService "gymku_backend/internals/features/academies/classes/service"
	"gymku_backend/internals/features/attendance/records/model"
	sessionService "gymku_backend/internals/features/attendance/sessions/service"
	helperAuth "gymku_backend/internals/helpers/auth"
)

var ErrStudentNotFound = errors.New("siswa tidak terdaftar di academy ini")

// batchConcurrency membatasi fan-out insert batch.
const batchConcurrency = 8

// LedgerService adalah satu-satunya jalur tulis AttendanceRecord.
// Idempotensi per (academy, class, student, hari) ditegakkan lewat
// conditional insert di storage, bukan cek read-then-write.
type LedgerService struct {
	DB       *gorm.DB
	Sessions *sessionService.SessionService
	Roster   *rosterService.RosterService
	Bus      *events.Bus
}

func New(db *gorm.DB) *LedgerService {
	return &LedgerService{
		DB:       db,
		Sessions: sessionService.New(db),
		Roster:   rosterService.New(db),
		Bus:      events.Default,
	}
}

type CheckInInput struct {
	ClassID     uuid.UUID
	StudentID   uuid.UUID
	StudentName string // kosong → di-resolve dari roster
	Day         time.Time
	Method      string
	RecordedBy  uuid.UUID
}

// RecordCheckIn mencatat satu kehadiran. created=false berarti duplikat:
// record yang sudah ada dikembalikan dan itu BUKAN error — "sudah hadir"
// adalah hasil yang terdefinisi.
//
// Urutan:
//  1. normalisasi Day ke batas hari (caller sudah memberi hari lokal tenant)
//  2. INSERT ... ON CONFLICT DO NOTHING pada kunci unik
//  3. kalau baris baru: naikkan live_count sesi aktif secara atomik
func (s *LedgerService) RecordCheckIn(scope helperAuth.TenantScope, in CheckInInput) (*model.AttendanceRecordModel, bool, error) {
	if in.StudentName == "" {
		names, err := s.Roster.StudentsByIDs(scope, []uuid.UUID{in.StudentID})
		if err != nil {
			return nil, false, err
		}
		st, ok := names[in.StudentID]
		if !ok {
			return nil, false, ErrStudentNotFound
		}
		in.StudentName = st.StudentName
	}

	if in.Method == "" {
		in.Method = model.MethodManual
	}

	day := datatypes.Date(in.Day)
	m := model.AttendanceRecordModel{
		AttendanceRecordAcademyId:   scope.AcademyID,
		AttendanceRecordClassId:     in.ClassID,
		AttendanceRecordStudentId:   in.StudentID,
		AttendanceRecordStudentName: in.StudentName,
		AttendanceRecordDay:         day,
		AttendanceRecordMethod:      in.Method,
		AttendanceRecordRecordedBy:  in.RecordedBy,
	}

	res := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if res.Error != nil {
		return nil, false, res.Error
	}

	if res.RowsAffected == 0 {
		// kalah balapan / sudah tercatat: ambil baris pemenang
		var existing model.AttendanceRecordModel
		err := s.DB.
			Where(`attendance_record_academy_id = ?
			       AND attendance_record_class_id = ?
			       AND attendance_record_student_id = ?
			       AND attendance_record_day = ?`,
				scope.AcademyID, in.ClassID, in.StudentID, day).
			Take(&existing).Error
		if err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	}

	// check-in manual tanpa sesi aktif tetap sah; counter saja yang tidak naik
	if _, err := s.Sessions.IncrementLiveCount(s.DB, scope, in.ClassID); err != nil {
		return &m, true, err
	}

	s.Bus.Publish(events.Event{
		Topic:     events.TopicAttendance,
		Kind:      "attendance_recorded",
		AcademyID: scope.AcademyID,
		Payload:   m.AttendanceRecordId,
	})
	return &m, true, nil
}

/* =========================================================
 * BATCH
 * ========================================================= */

type BatchItemFailure struct {
	StudentID uuid.UUID `json:"student_id"`
	Error     string    `json:"error"`
}

type BatchResult struct {
	Created    []model.AttendanceRecordModel `json:"created"`
	Duplicates []uuid.UUID                   `json:"duplicates"`
	Failures   []BatchItemFailure            `json:"failures"`
}

// RecordBatch adalah N operasi single-record idempoten yang berjalan
// concurrent — BUKAN satu transaksi atomik. Sukses parsial (sebagian
// tercatat, sebagian sudah hadir) adalah hasil yang benar; caller menerima
// rincian per siswa. Tidak ada jaminan urutan antar write, dan write yang
// sudah durable tidak di-rollback oleh timeout caller.
func (s *LedgerService) RecordBatch(scope helperAuth.TenantScope, classID uuid.UUID, studentIDs []uuid.UUID, day time.Time, actorID uuid.UUID) (*BatchResult, error) {
	// set semantics: id ganda dalam satu batch dihitung sekali
	seen := make(map[uuid.UUID]struct{}, len(studentIDs))
	unique := make([]uuid.UUID, 0, len(studentIDs))
	for _, id := range studentIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	names, err := s.Roster.StudentsByIDs(scope, unique)
	if err != nil {
		return nil, err
	}

	var (
		mu  sync.Mutex
		out BatchResult
	)

	g := new(errgroup.Group)
	g.SetLimit(batchConcurrency)

	for _, id := range unique {
		studentID := id
		g.Go(func() error {
			st, ok := names[studentID]
			if !ok {
				mu.Lock()
				out.Failures = append(out.Failures, BatchItemFailure{
					StudentID: studentID, Error: ErrStudentNotFound.Error(),
				})
				mu.Unlock()
				return nil
			}

			rec, created, err := s.RecordCheckIn(scope, CheckInInput{
				ClassID:     classID,
				StudentID:   studentID,
				StudentName: st.StudentName,
				Day:         day,
				Method:      model.MethodBatch,
				RecordedBy:  actorID,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				// kegagalan item diisolasi: tidak menggagalkan batch
				out.Failures = append(out.Failures, BatchItemFailure{
					StudentID: studentID, Error: err.Error(),
				})
			case created:
				out.Created = append(out.Created, *rec)
			default:
				out.Duplicates = append(out.Duplicates, studentID)
			}
			return nil
		})
	}

	// error item sudah ditampung per siswa; Wait tidak membawa error
	_ = g.Wait()

	return &out, nil
}
