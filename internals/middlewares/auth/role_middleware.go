// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "kampusku_backend/internals/helpers"
)

// OnlyRolesSlice menolak request yang role-nya tidak ada di daftar.
// Dipasang SETELAH AuthMiddleware (butuh Locals("role")).
func OnlyRolesSlice(message string, roles []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromLocals(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
