package route

import (
	classCtrl "gymku_backend/internals/features/academies/classes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassesInstructorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewRosterController(db)

	g := r.Group("/classes")
	g.Get("/", ctrl.ListMyClasses)
	g.Get("/:class_id/students", ctrl.ListEligibleStudents)
}

func ClassesAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewRosterController(db)

	g := r.Group("/classes")
	g.Post("/", ctrl.CreateClass)
}
