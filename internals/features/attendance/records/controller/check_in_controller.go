// file: internals/features/attendance/records/controller/check_in_controller.go
package controller

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"gymku_backend/internals/events"
	academyService "gymku_backend/internals/features/academies/academy/service"
	rosterService "gymku_backend/internals/features/academies/classes/service"
	"gymku_backend/internals/features/attendance/records/dto"
	recordModel "gymku_backend/internals/features/attendance/records/model"
	"gymku_backend/internals/features/attendance/records/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
	dbtime "gymku_backend/internals/helpers/dbtime"
)

type CheckInController struct {
	DB        *gorm.DB
	ledger    *service.LedgerService
	roster    *rosterService.RosterService
	academies *academyService.AcademyService
	validate  *validator.Validate
}

func NewCheckInController(db *gorm.DB) *CheckInController {
	return &CheckInController{
		DB:        db,
		ledger:    service.New(db),
		roster:    rosterService.New(db),
		academies: academyService.New(db),
		validate:  validator.New(),
	}
}

// location: klaim timezone di token menang; token lama tanpa klaim jatuh ke
// metadata academy di DB.
func (ctrl *CheckInController) location(c *fiber.Ctx, scope helperAuth.TenantScope) *time.Location {
	if c.Locals(dbtime.LocAcademyLoc) != nil || c.Locals(dbtime.LocAcademyTimezone) != nil {
		return dbtime.GetAcademyLocation(c)
	}
	return ctrl.academies.Location(scope)
}

/* ===================== SINGLE CHECK-IN ===================== */
// POST /instructor/check-ins
func (ctrl *CheckInController) CreateCheckIn(c *fiber.Ctx) error {
	var req dto.CreateCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	return ctrl.recordSingle(c, req.AttendanceRecordClassId, req.AttendanceRecordStudentId, recordModel.MethodManual)
}

/* ===================== SCAN CHECK-IN ===================== */
// POST /instructor/check-ins/scan
// QR scanner hanya sumber input: hasil scan = student_id.
func (ctrl *CheckInController) ScanCheckIn(c *fiber.Ctx) error {
	var req dto.ScanCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	return ctrl.recordSingle(c, req.AttendanceRecordClassId, req.AttendanceRecordStudentId, recordModel.MethodScan)
}

func (ctrl *CheckInController) recordSingle(c *fiber.Ctx, classID, studentID uuid.UUID, method string) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	if classID == uuid.Nil || studentID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id dan student_id wajib diisi")
	}

	if _, err := ctrl.roster.GetClass(tc.Scope(), classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	day := dbtime.StartOfDay(time.Now(), ctrl.location(c, tc.Scope()))

	rec, created, err := ctrl.ledger.RecordCheckIn(tc.Scope(), service.CheckInInput{
		ClassID:    classID,
		StudentID:  studentID,
		Day:        day,
		Method:     method,
		RecordedBy: tc.UserID,
	})
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat check-in")
	}

	body := dto.CheckInResponse{Created: created, Record: dto.FromAttendanceRecordModel(*rec)}
	if !created {
		// duplikat = outcome normal, bukan failure toast
		return helper.JsonOK(c, "Siswa sudah tercatat hadir hari ini", body)
	}
	return helper.JsonCreated(c, "Check-in tercatat", body)
}

/* ===================== BATCH CHECK-IN ===================== */
// POST /instructor/check-ins/batch
func (ctrl *CheckInController) BatchCheckIn(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	var req dto.BatchCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if _, err := ctrl.roster.GetClass(tc.Scope(), req.AttendanceRecordClassId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	day := dbtime.StartOfDay(time.Now(), ctrl.location(c, tc.Scope()))

	result, err := ctrl.ledger.RecordBatch(tc.Scope(), req.AttendanceRecordClassId, req.AttendanceRecordStudentIds, day, tc.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menjalankan batch check-in")
	}

	return helper.JsonOK(c, "Batch check-in selesai", dto.FromBatchResult(*result))
}

/* ===================== TODAY ===================== */
// GET /instructor/check-ins/today
func (ctrl *CheckInController) TodaysCheckIns(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	day := dbtime.StartOfDay(time.Now(), ctrl.location(c, tc.Scope()))

	rows, err := ctrl.ledger.TodaysCheckIns(tc.Scope(), tc.UserID, helperAuth.UserContact(c), day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil check-in hari ini")
	}

	return helper.JsonOK(c, "Check-in hari ini", dto.FromAttendanceRecordModels(rows))
}

/* ===================== CHECKED-IN IDS ===================== */
// GET /instructor/classes/:class_id/checked-in?date=2006-01-02
func (ctrl *CheckInController) CheckedInStudents(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	loc := ctrl.location(c, tc.Scope())
	day := dbtime.StartOfDay(time.Now(), loc)
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, perr := time.ParseInLocation("2006-01-02", raw, loc)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format date harus YYYY-MM-DD")
		}
		day = parsed
	}

	idSet, err := ctrl.ledger.CheckedInStudentIDs(tc.Scope(), classID, day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar check-in")
	}

	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	return helper.JsonOK(c, "Siswa yang sudah check-in", fiber.Map{
		"class_id":    classID,
		"date":        day.Format("2006-01-02"),
		"student_ids": ids,
	})
}

/* ===================== LIVE STREAM (SSE) ===================== */
// GET /instructor/check-ins/stream
// Pengganti refresh layar: dashboard instructor subscribe ke bus dan
// menerima event attendance academy-nya lewat Server-Sent Events.
func (ctrl *CheckInController) StreamEvents(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}
	academyID := tc.AcademyID

	ch, cancel := events.Default.Subscribe(events.TopicAttendance, 32)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		heartbeat := time.NewTicker(25 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case e, ok := <-ch:
				if !ok {
					return
				}
				if e.AcademyID != academyID {
					continue
				}
				payload, merr := sonic.Marshal(e)
				if merr != nil {
					continue
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Kind, payload)
				if err := w.Flush(); err != nil {
					return // klien putus
				}
			case <-heartbeat.C:
				fmt.Fprint(w, ": ping\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

/* ===================== RECENT (per kelas) ===================== */
// GET /instructor/classes/:class_id/check-ins
func (ctrl *CheckInController) RecentForClass(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	p := helper.ResolvePaging(c, 25, 200)
	rows, total, err := ctrl.ledger.RecentForClass(tc.Scope(), classID, p.Limit, p.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat check-in")
	}

	return helper.JsonList(c, "Riwayat check-in kelas", dto.FromAttendanceRecordModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
