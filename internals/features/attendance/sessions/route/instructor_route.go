package route

import (
	sessCtrl "gymku_backend/internals/features/attendance/sessions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassSessionsInstructorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sessCtrl.NewClassSessionController(db)

	g := r.Group("/class-sessions")
	g.Post("/", ctrl.OpenSession)
	g.Get("/active", ctrl.ListActive)
	g.Get("/history", ctrl.History)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/:id/close", ctrl.CloseSession)
}
