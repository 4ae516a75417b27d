package route

import (
	recCtrl "gymku_backend/internals/features/attendance/records/controller"
	"gymku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CheckInsInstructorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := recCtrl.NewCheckInController(db)

	g := r.Group("/check-ins")
	g.Post("/", ctrl.CreateCheckIn)
	g.Post("/scan", middlewares.ScanRateLimiter(), ctrl.ScanCheckIn)
	g.Post("/batch", ctrl.BatchCheckIn)
	g.Get("/today", ctrl.TodaysCheckIns)
	g.Get("/stream", ctrl.StreamEvents)

	cg := r.Group("/classes")
	cg.Get("/:class_id/checked-in", ctrl.CheckedInStudents)
	cg.Get("/:class_id/check-ins", ctrl.RecentForClass)
}
