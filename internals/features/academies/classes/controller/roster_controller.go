// file: internals/features/academies/classes/controller/roster_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/events"
	"gymku_backend/internals/features/academies/classes/dto"
	"gymku_backend/internals/features/academies/classes/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type RosterController struct {
	DB       *gorm.DB
	roster   *service.RosterService
	validate *validator.Validate
}

func NewRosterController(db *gorm.DB) *RosterController {
	return &RosterController{
		DB:       db,
		roster:   service.New(db),
		validate: validator.New(),
	}
}

/* ===================== LIST MY CLASSES ===================== */
// GET /instructor/classes
func (ctrl *RosterController) ListMyClasses(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	rows, err := ctrl.roster.ClassesForInstructor(tc.Scope(), tc.UserID, helperAuth.UserContact(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	return helper.JsonOK(c, "Daftar kelas instructor", dto.FromClassModels(rows))
}

/* ===================== ELIGIBLE STUDENTS ===================== */
// GET /instructor/classes/:class_id/students?search=
func (ctrl *RosterController) ListEligibleStudents(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	// guard: kelas harus milik academy pemanggil
	if _, err := ctrl.roster.GetClass(tc.Scope(), classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.FilterEligibleStudentsRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	search := ""
	if req.Search != nil {
		search = *req.Search
	}
	p := helper.ResolvePaging(c, 100, 500)

	rows, total, err := ctrl.roster.EligibleStudents(tc.Scope(), search, p.Limit, p.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}

	return helper.JsonList(c, "Daftar siswa eligible", dto.FromStudentModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== CREATE CLASS (admin) ===================== */
// POST /admin/classes
func (ctrl *RosterController) CreateClass(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(tc.AcademyID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	events.Default.Publish(events.Event{
		Topic:     events.TopicRoster,
		Kind:      "class_created",
		AcademyID: tc.AcademyID,
		Payload:   m.ClassId,
	})

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromClassModel(m))
}
