package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academyCtrl "gymku_backend/internals/features/academies/academy/controller"
)

func AcademyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := academyCtrl.NewAcademyController(db)

	g := r.Group("/academy")
	g.Get("/", ctrl.GetProfile)
}
