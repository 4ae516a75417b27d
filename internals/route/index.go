// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	"gymku_backend/internals/constants"
	academyRoute "gymku_backend/internals/features/academies/academy/route"
	classesRoute "gymku_backend/internals/features/academies/classes/route"
	recordsRoute "gymku_backend/internals/features/attendance/records/route"
	sessionsRoute "gymku_backend/internals/features/attendance/sessions/route"
	authMw "gymku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== INSTRUCTOR =====================
	log.Println("[INFO] Setting up INSTRUCTOR group (Auth + RoleCheck)...")
	instructor := app.Group("/api/i",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMw.RequireRoles(constants.RoleErrorInstructor("attendance"), constants.InstructorAndAbove...),
	)
	classesRoute.ClassesInstructorRoutes(instructor, db)
	sessionsRoute.ClassSessionsInstructorRoutes(instructor, db)
	recordsRoute.CheckInsInstructorRoutes(instructor, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMw.RequireRoles(constants.RoleErrorAdmin("kelas"), constants.AdminAndAbove...),
	)
	academyRoute.AcademyAdminRoutes(admin, db)
	classesRoute.ClassesAdminRoutes(admin, db)
}
