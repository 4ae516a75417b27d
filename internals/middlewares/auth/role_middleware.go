// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "gymku_backend/internals/helpers/auth"
)

// RequireRoles menolak request yang role-nya tidak masuk daftar.
// Dipasang setelah AuthJWT (butuh locals "role").
func RequireRoles(message string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(helperAuth.LocRole).(string)
		role = strings.ToLower(strings.TrimSpace(role))
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
