// file: internals/features/attendance/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rosterService "gymku_backend/internals/features/academies/classes/service"
	"gymku_backend/internals/features/attendance/sessions/dto"
	"gymku_backend/internals/features/attendance/sessions/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type ClassSessionController struct {
	DB       *gorm.DB
	sessions *service.SessionService
	roster   *rosterService.RosterService
	validate *validator.Validate
}

func NewClassSessionController(db *gorm.DB) *ClassSessionController {
	return &ClassSessionController{
		DB:       db,
		sessions: service.New(db),
		roster:   rosterService.New(db),
		validate: validator.New(),
	}
}

/* ===================== OPEN ===================== */
// POST /instructor/class-sessions
func (ctrl *ClassSessionController) OpenSession(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	var req dto.OpenClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Kelas wajib milik academy pemanggil; sekalian ambil nama utk denormalisasi
	cls, err := ctrl.roster.GetClass(tc.Scope(), req.ClassSessionClassId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	sess, err := ctrl.sessions.Open(tc.Scope(), cls.ClassId, cls.ClassName, tc.UserID)
	if err != nil {
		if errors.Is(err, service.ErrSessionAlreadyActive) {
			return fiber.NewError(fiber.StatusConflict, "Sesi untuk kelas ini masih aktif")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuka sesi")
	}

	return helper.JsonCreated(c, "Sesi check-in dibuka", dto.FromClassSessionModel(*sess))
}

/* ===================== CLOSE ===================== */
// POST /instructor/class-sessions/:id/close
func (ctrl *ClassSessionController) CloseSession(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	sess, err := ctrl.sessions.Close(tc.Scope(), sessionID, tc.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		case errors.Is(err, service.ErrSessionAlreadyClosed):
			return fiber.NewError(fiber.StatusConflict, "Sesi sudah ditutup")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menutup sesi")
		}
	}

	return helper.JsonUpdated(c, "Sesi ditutup", dto.FromClassSessionModel(*sess))
}

/* ===================== LIST ACTIVE ===================== */
// GET /instructor/class-sessions/active
func (ctrl *ClassSessionController) ListActive(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	rows, err := ctrl.sessions.ListActive(tc.Scope(), tc.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi aktif")
	}

	return helper.JsonOK(c, "Sesi aktif", dto.FromClassSessionModels(rows))
}

/* ===================== DETAIL ===================== */
// GET /instructor/class-sessions/:id
func (ctrl *ClassSessionController) GetByID(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	sess, err := ctrl.sessions.GetByID(tc.Scope(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Detail sesi", dto.FromClassSessionModel(*sess))
}

/* ===================== HISTORY ===================== */
// GET /instructor/class-sessions/history
func (ctrl *ClassSessionController) History(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.sessions.History(tc.Scope(), p.Limit, p.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat sesi")
	}

	return helper.JsonList(c, "Riwayat sesi", dto.FromClassSessionModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
