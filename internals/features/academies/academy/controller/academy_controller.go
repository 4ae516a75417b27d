package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/features/academies/academy/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type AcademyController struct {
	DB        *gorm.DB
	academies *service.AcademyService
}

func NewAcademyController(db *gorm.DB) *AcademyController {
	return &AcademyController{DB: db, academies: service.New(db)}
}

/* ===================== PROFILE ===================== */
// GET /admin/academy
func (ctrl *AcademyController) GetProfile(c *fiber.Ctx) error {
	tc, err := helperAuth.ResolveTenantContext(c)
	if err != nil {
		return helperAuth.FiberError(err)
	}

	m, err := ctrl.academies.GetByID(tc.Scope())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Academy tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Profil academy", m)
}
